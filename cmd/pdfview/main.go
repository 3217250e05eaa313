/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pdfview/internal/config"
	"pdfview/internal/crash"
	applog "pdfview/internal/log"
	"pdfview/internal/pagesource"
	"pdfview/internal/ui"
	"pdfview/internal/version"
)

func usage() {
	fmt.Println("PDF Viewer")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pdfview version|-v|--version      Show version")
	fmt.Println("  pdfview info <file.pdf>            Print page count and document metadata")
	fmt.Println("  pdfview ui [<file.pdf>]            Launch desktop viewer (build with -tags fyne for full UI)")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	sess := &crash.Session{}
	defer crash.Recover(sess)

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("PDF Viewer")
			fmt.Println(version.String())
			return
		case "info":
			if len(args) < 3 {
				fmt.Println("info requires <file.pdf>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			sess.DocumentPath = abs
			l.Info("inspect document", slog.String("path", abs))

			cfg, err := config.Load()
			if err != nil {
				l.Warn("config load failed, using defaults", slog.Any("err", err))
				cfg = config.Defaults()
			}
			src, err := pagesource.Load(abs, pagesource.Options{DPI: cfg.Viewer.DPI, MaxDim: cfg.Viewer.MaxPageDim})
			if err != nil {
				l.Error("open failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			info := src.Info()
			fmt.Println("File:", info.Path)
			fmt.Println("Pages:", info.Pages)
			if info.Title != "" {
				fmt.Println("Title:", info.Title)
			}
			if info.Author != "" {
				fmt.Println("Author:", info.Author)
			}
			if info.Format != "" {
				fmt.Println("Format:", info.Format)
			}
			return
		case "ui":
			var path string
			if len(args) >= 3 {
				path = args[2]
				sess.DocumentPath = path
			}
			if err := ui.Run(path); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}
