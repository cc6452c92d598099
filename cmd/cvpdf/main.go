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

// Cvpdf exports a résumé as a PDF file.
//
// Usage:
//
//	cvpdf [options] [record.yaml]
//
// The résumé is read from the given YAML file.  If no file is given, the
// built-in sample résumé is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/cv"
	"seehuhn.de/go/cv/export"
	"seehuhn.de/go/cv/internal/config"
	"seehuhn.de/go/cv/photo"
	"seehuhn.de/go/cv/theme"
)

func main() {
	os.Exit(cvpdf())
}

// cvpdf runs the command and returns the exit status.  Deferred cleanup
// happens before the process exits.
func cvpdf() int {
	configFile := flag.String("config", "cv.yaml", "configuration file")
	output := flag.String("o", "", "output file (default: standard output)")
	themeName := flag.String("theme", "", "colour theme")
	layoutName := flag.String("layout", "", "page layout (desktop or narrow)")
	paper := flag.String("paper", "", "paper size (A4, A5 or Letter)")
	locale := flag.String("locale", "", "language for dates and headings")
	photoRef := flag.String("photo", "", "photo file or URL, overrides the record")
	listThemes := flag.Bool("list-themes", false, "list the available themes and exit")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [record.yaml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		return 0
	}
	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cvpdf:", err)
		return 1
	}
	set := func(dst *string, val string) {
		if val != "" {
			*dst = val
		}
	}
	set(&cfg.Theme, *themeName)
	set(&cfg.Layout, *layoutName)
	set(&cfg.Paper, *paper)
	set(&cfg.Locale, *locale)
	if *verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cvpdf:", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, logger, cfg, flag.Arg(0), cv.PhotoRef(*photoRef), *output)
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if level < zap.InfoLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	return zc.Build()
}

func run(ctx context.Context, logger *zap.Logger, cfg *config.Config, recordFile string, photoRef cv.PhotoRef, output string) error {
	opt, err := cfg.ExportOptions()
	if err != nil {
		return err
	}

	rec, err := readRecord(recordFile)
	if err != nil {
		return err
	}
	if photoRef != "" {
		rec.Personal.Photo = photoRef
	}

	if output == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PDF data to a terminal, use -o")
	}

	logger.Debug("starting export",
		zap.String("theme", opt.Theme),
		zap.Stringer("layout", opt.Mode),
		zap.Stringer("paper", opt.Paper),
		zap.Int("workers", opt.Workers))

	e := export.New(opt, logger)
	if output == "" {
		return e.Export(ctx, rec, os.Stdout)
	}
	return writeFile(output, func(w io.Writer) error {
		return e.Export(ctx, rec, w)
	})
}

// readRecord reads a résumé from a YAML file.  If name is empty, the
// sample résumé is returned.  A relative photo path is taken relative to
// the directory of the file.
func readRecord(name string) (*cv.Record, error) {
	if name == "" {
		return cv.Preset(), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	rec := &cv.Record{}
	err = yaml.Unmarshal(data, rec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	rec.Personal.Photo = photo.Resolve(rec.Personal.Photo, filepath.Dir(name))
	return rec, nil
}

// writeFile writes to a temporary file in the target directory, which is
// renamed once fn returns successfully.
func writeFile(name string, fn func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), ".cvpdf-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	err = fn(tmp)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}
