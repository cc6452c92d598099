// seehuhn.de/go/cv - lay out résumés and export them as paginated PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Cv2png renders the pages of a résumé as PNG images.
//
// This shows the virtual pages as they are passed to the PDF assembler,
// which is useful for checking the layout.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/cv"
	"seehuhn.de/go/cv/export"
	"seehuhn.de/go/cv/internal/config"
	"seehuhn.de/go/cv/photo"
)

func main() {
	os.Exit(cv2png())
}

func cv2png() int {
	configFile := flag.String("config", "cv.yaml", "configuration file")
	pageNum := flag.Int("page", -1, "page to render (0-based, default: all pages)")
	scale := flag.Float64("scale", 0, "pixels per virtual unit")
	layoutName := flag.String("layout", "", "page layout (desktop or narrow)")
	themeName := flag.String("theme", "", "colour theme")
	prefix := flag.String("prefix", "page", "prefix for the output file names")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Printf("Usage: %s [options] [record.yaml]\n", os.Args[0])
		flag.PrintDefaults()
		return 1
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
		return 1
	}
	if *scale != 0 {
		cfg.Scale = *scale
	}
	if *layoutName != "" {
		cfg.Layout = *layoutName
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}
	opt, err := cfg.ExportOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	rec := cv.Preset()
	if flag.NArg() == 1 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading record: %v\n", err)
			return 1
		}
		rec = &cv.Record{}
		if err := yaml.Unmarshal(data, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing record: %v\n", err)
			return 1
		}
		rec.Personal.Photo = photo.Resolve(rec.Personal.Photo, filepath.Dir(flag.Arg(0)))
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bitmaps, err := export.New(opt, logger).Bitmaps(ctx, rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering pages: %v\n", err)
		return 1
	}
	if *pageNum >= len(bitmaps) {
		fmt.Fprintf(os.Stderr, "Page %d not found, the résumé has %d pages\n", *pageNum, len(bitmaps))
		return 1
	}

	for i, img := range bitmaps {
		if *pageNum >= 0 && i != *pageNum {
			continue
		}
		name := fmt.Sprintf("%s-%02d.png", *prefix, i)
		out, err := os.Create(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return 1
		}
		err = png.Encode(out, img)
		if err != nil {
			out.Close()
			fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
			return 1
		}
		if err := out.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			return 1
		}
		fmt.Printf("Rendered page %d to %s\n", i, name)
	}
	return 0
}
