// Copyright 2016 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sunyihoo/go-ethabi/log"
)

// setupLogging installs the root logger. Logs go to stderr so they never mix
// with command output.
func setupLogging(cfg *ethabiConfig, output io.Writer) error {
	var (
		handler slog.Handler
		level   = log.FromLegacyLevel(cfg.Verbosity)
	)
	switch cfg.LogFormat {
	case "json":
		handler = log.JSONHandlerWithLevel(output, level)
	case "logfmt":
		handler = log.LogfmtHandlerWithLevel(output, level)
	case "", "terminal":
		useColor := false
		if f, ok := output.(*os.File); ok {
			useColor = (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) && os.Getenv("TERM") != "dumb"
			if useColor {
				output = colorable.NewColorable(f)
			}
		}
		handler = log.NewTerminalHandlerWithLevel(output, level, useColor)
	default:
		return errors.Errorf("unknown log format: %v", cfg.LogFormat)
	}
	log.SetDefault(log.NewLogger(handler))
	return nil
}
