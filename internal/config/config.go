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

// Package config reads the settings of the command line tools.
//
// Settings are taken, in order of increasing priority, from the built-in
// defaults, a YAML file and CV_* environment variables.  Environment
// variables can also be set in a .env file in the current directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/cv/document"
	"seehuhn.de/go/cv/export"
	"seehuhn.de/go/cv/layout"
	"seehuhn.de/go/cv/raster"
	"seehuhn.de/go/cv/render"
	"seehuhn.de/go/cv/theme"
)

// Config holds the settings for an export.
type Config struct {
	Theme             string  `yaml:"theme"`
	ItemsPerPage      int     `yaml:"items_per_page"`
	Layout            string  `yaml:"layout"` // "desktop" or "narrow"
	Scale             float64 `yaml:"scale"`
	Paper             string  `yaml:"paper"`
	Workers           int     `yaml:"workers"`
	AllowRemotePhotos bool    `yaml:"allow_remote_photos"`
	Locale            string  `yaml:"locale"`
	JPEGQuality       int     `yaml:"jpeg_quality"` // 0 for lossless images
	LogLevel          string  `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:             theme.Default,
		ItemsPerPage:      layout.DefaultItemsPerPage,
		Layout:            render.Desktop.String(),
		Scale:             raster.DefaultScale,
		Paper:             "A4",
		Workers:           export.DefaultWorkers,
		AllowRemotePhotos: true,
		Locale:            "en",
		LogLevel:          "info",
	}
}

// Load reads the configuration.  If path is empty or the file does not
// exist, only the defaults and the environment are used.
// The result is not validated, call [Config.Validate] for this.
func Load(path string) (*Config, error) {
	// a missing .env file is not an error
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		} else if err == nil {
			err = yaml.Unmarshal(data, cfg)
			if err != nil {
				return nil, fmt.Errorf("config %q: %w", path, err)
			}
		}
	}

	err := cfg.fromEnv()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	str := func(name string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v := os.Getenv(name)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = n
		return nil
	}

	str("CV_THEME", &c.Theme)
	str("CV_LAYOUT", &c.Layout)
	str("CV_PAPER", &c.Paper)
	str("CV_LOCALE", &c.Locale)
	str("CV_LOG_LEVEL", &c.LogLevel)
	if err := num("CV_ITEMS_PER_PAGE", &c.ItemsPerPage); err != nil {
		return err
	}
	if err := num("CV_WORKERS", &c.Workers); err != nil {
		return err
	}
	if err := num("CV_JPEG_QUALITY", &c.JPEGQuality); err != nil {
		return err
	}
	if v := os.Getenv("CV_SCALE"); v != "" {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid CV_SCALE: %w", err)
		}
		c.Scale = x
	}
	if v := os.Getenv("CV_ALLOW_REMOTE_PHOTOS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid CV_ALLOW_REMOTE_PHOTOS: %w", err)
		}
		c.AllowRemotePhotos = b
	}
	return nil
}

// Validate checks that all settings have valid values.  All problems
// found are reported together.
func (c *Config) Validate() error {
	var errs []error
	if _, err := theme.Lookup(c.Theme); err != nil {
		errs = append(errs, err)
	}
	if c.ItemsPerPage <= 0 {
		errs = append(errs, &layout.ConfigError{ItemsPerPage: c.ItemsPerPage})
	}
	if _, err := render.ParseMode(c.Layout); err != nil {
		errs = append(errs, err)
	}
	if !(c.Scale > 0) {
		errs = append(errs, fmt.Errorf("scale %g: %w", c.Scale, raster.ErrScale))
	}
	if _, err := document.ParseSize(c.Paper); err != nil {
		errs = append(errs, err)
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("invalid number of workers %d", c.Workers))
	}
	if c.JPEGQuality < 0 || c.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("invalid JPEG quality %d", c.JPEGQuality))
	}
	if _, err := language.Parse(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("locale %q: %w", c.Locale, err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured log level.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// ExportOptions converts the configuration into options for the exporter.
func (c *Config) ExportOptions() (*export.Options, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// errors were checked by Validate
	mode, _ := render.ParseMode(c.Layout)
	paper, _ := document.ParseSize(c.Paper)
	locale, _ := language.Parse(c.Locale)

	return &export.Options{
		Theme:        c.Theme,
		ItemsPerPage: c.ItemsPerPage,
		Mode:         mode,
		Locale:       locale,
		Scale:        c.Scale,
		Paper:        paper,
		Quality:      c.JPEGQuality,
		Workers:      c.Workers,
		AllowRemote:  c.AllowRemotePhotos,
	}, nil
}
