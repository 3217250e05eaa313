/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the
// user scope. Environment variables are treated as read-only overrides at
// runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type ViewerConfig struct {
	// DPI controls the rasterization resolution when a document is opened.
	DPI float64 `yaml:"dpi"`
	// MaxPageDim caps the longest axis of a decoded page image in pixels.
	// Pages above the cap are downscaled once at decode time. Zero disables
	// the cap.
	MaxPageDim int `yaml:"max_page_dim"`
}

type AnnotationConfig struct {
	// Color is the outline color of committed and in-progress rectangles,
	// as a #RRGGBB hex string.
	Color string `yaml:"color"`
	// StrokeWidth is the outline width in pixels.
	StrokeWidth int `yaml:"stroke_width"`
}

type GeneralConfig struct {
	TelemetryOptIn bool   `yaml:"telemetry_opt_in"`
	Theme          string `yaml:"theme"` // "system" | "light" | "dark" (informational for now)
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int              `yaml:"config_version"`
	General       GeneralConfig    `yaml:"general"`
	Viewer        ViewerConfig     `yaml:"viewer"`
	Annotation    AnnotationConfig `yaml:"annotation"`
	Logging       LoggingConfig    `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{TelemetryOptIn: false, Theme: "system"},
		Viewer:        ViewerConfig{DPI: 200, MaxPageDim: 4096},
		Annotation:    AnnotationConfig{Color: "#FF0000", StrokeWidth: 3},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvDPI            = "PDV_DPI"
	EnvMaxPageDim     = "PDV_MAX_PAGE_DIM"
	EnvAnnotColor     = "PDV_ANNOTATION_COLOR"
	EnvAnnotWidth     = "PDV_ANNOTATION_WIDTH"
	EnvTelemetryOptIn = "PDV_TELEMETRY_OPT_IN"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "PDV_LOG_LEVEL"
	EnvLogFormat = "PDV_LOG_FORMAT"
	EnvLogSource = "PDV_LOG_SOURCE"
	EnvLogFile   = "PDV_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "PDFView")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "PDFView")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "pdfview")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.General.Theme != "" {
		dst.General.Theme = src.General.Theme
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	if src.Viewer.DPI > 0 {
		dst.Viewer.DPI = src.Viewer.DPI
	}
	if src.Viewer.MaxPageDim > 0 {
		dst.Viewer.MaxPageDim = src.Viewer.MaxPageDim
	}
	if strings.TrimSpace(src.Annotation.Color) != "" {
		dst.Annotation.Color = strings.TrimSpace(src.Annotation.Color)
	}
	if src.Annotation.StrokeWidth > 0 {
		dst.Annotation.StrokeWidth = src.Annotation.StrokeWidth
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvDPI)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Viewer.DPI = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvMaxPageDim)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Viewer.MaxPageDim = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvAnnotColor)); v != "" {
		cfg.Annotation.Color = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAnnotWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Annotation.StrokeWidth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		lv := strings.ToLower(v)
		cfg.General.TelemetryOptIn = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// StrokeColor parses the annotation color into a color.RGBA.
// Accepts #RGB and #RRGGBB; falls back to the default color on a malformed
// value so a bad config never disables annotation.
func (a AnnotationConfig) StrokeColor() color.RGBA {
	c, err := ParseHexColor(a.Color)
	if err != nil {
		c, _ = ParseHexColor(Defaults().Annotation.Color)
	}
	return c
}

// ParseHexColor converts "#RRGGBB" or "#RGB" to an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
