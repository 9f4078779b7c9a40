// Copyright 2025 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// abicodec is a command line front end to the contract ABI codec. It encodes
// function calls and decodes call data, return data, reverts and logs against
// contract interface descriptions.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	abiFlag = &cli.StringSliceFlag{
		Name:  "abi",
		Usage: "Register an interface description as id=path (may be repeated)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format of decoded values (json, yaml)",
		Value: formatJSON,
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 2,
	}
	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Order of listed interfaces (id, url)",
		Value: sortByID,
	}
	topicFlag = &cli.StringSliceFlag{
		Name:  "topic",
		Usage: "Log topic, hex encoded, in log order (may be repeated)",
	}
	logJSONFlag = &cli.BoolFlag{
		Name:  "log.json",
		Usage: "Format logs with JSON",
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "Write logs to a rotated file instead of stderr",
	}
	logMaxSizeFlag = &cli.IntFlag{
		Name:  "log.maxsize",
		Usage: "Maximum size in megabytes of the log file before it gets rotated",
		Value: 100,
	}
	logMaxBackupsFlag = &cli.IntFlag{
		Name:  "log.maxbackups",
		Usage: "Maximum number of rotated log files to keep",
		Value: 10,
	}
)

// logOutputFile is the rotated log file, if --log.file is set.
var logOutputFile io.WriteCloser

func newApp() *cli.App {
	return &cli.App{
		Name:  "abicodec",
		Usage: "encode and decode contract ABI calls",
		Flags: []cli.Flag{
			configFileFlag,
			abiFlag,
			formatFlag,
			verbosityFlag,
			logJSONFlag,
			logFileFlag,
			logMaxSizeFlag,
			logMaxBackupsFlag,
		},
		Commands: []*cli.Command{
			encodeCommand,
			decodeInputCommand,
			decodeOutputCommand,
			decodeErrorCommand,
			decodeEventCommand,
			listCommand,
			selectorCommand,
		},
		Before: func(ctx *cli.Context) error {
			w := ctx.App.ErrWriter
			if file := ctx.String(logFileFlag.Name); file != "" {
				if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
					return fmt.Errorf("failed to create log directory: %v", err)
				}
				logOutputFile = &lumberjack.Logger{
					Filename:   file,
					MaxSize:    ctx.Int(logMaxSizeFlag.Name),
					MaxBackups: ctx.Int(logMaxBackupsFlag.Name),
				}
				w = logOutputFile
			}
			setupLogging(w, ctx.Int(verbosityFlag.Name), ctx.Bool(logJSONFlag.Name))
			return nil
		},
		After: func(ctx *cli.Context) error {
			if logOutputFile != nil {
				err := logOutputFile.Close()
				logOutputFile = nil
				return err
			}
			return nil
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging installs the root log handler. Terminal output is coloured
// when stderr is a terminal.
func setupLogging(w io.Writer, verbosity int, asJSON bool) {
	if w == nil {
		w = os.Stderr
	}
	lvl := log.FromLegacyLevel(verbosity)
	var handler slog.Handler
	if asJSON {
		handler = log.JSONHandlerWithLevel(w, lvl)
	} else {
		usecolor := false
		if f, ok := w.(*os.File); ok {
			usecolor = (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) && os.Getenv("TERM") != "dumb"
			if usecolor {
				w = colorable.NewColorable(f)
			}
		}
		handler = log.NewTerminalHandlerWithLevel(w, lvl, usecolor)
	}
	log.SetDefault(log.NewLogger(handler))
}
