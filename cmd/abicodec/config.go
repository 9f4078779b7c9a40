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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/ethereum/go-abicodec/accounts"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type outputConfig struct {
	Format string
}

type abicodecConfig struct {
	// Interfaces maps identifiers to interface description files.
	Interfaces map[string]string
	Output     outputConfig
}

func defaultConfig() abicodecConfig {
	return abicodecConfig{
		Interfaces: make(map[string]string),
		Output:     outputConfig{Format: formatJSON},
	}
}

func loadConfig(file string, cfg *abicodecConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the configuration file, if any, and applies the command
// line flags on top of it.
func makeConfig(ctx *cli.Context) (abicodecConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
		if cfg.Interfaces == nil {
			cfg.Interfaces = make(map[string]string)
		}
	}
	for _, entry := range ctx.StringSlice(abiFlag.Name) {
		id, path, ok := strings.Cut(entry, "=")
		if !ok || id == "" || path == "" {
			return cfg, fmt.Errorf("invalid --%s value %q, want id=path", abiFlag.Name, entry)
		}
		cfg.Interfaces[id] = path
	}
	if ctx.IsSet(formatFlag.Name) || cfg.Output.Format == "" {
		cfg.Output.Format = ctx.String(formatFlag.Name)
	}
	switch cfg.Output.Format {
	case formatJSON, formatYAML:
	default:
		return cfg, fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
	return cfg, nil
}

// makeManager creates the interface registry described by the configuration.
func makeManager(ctx *cli.Context) (*accounts.Manager, abicodecConfig, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, cfg, err
	}
	am, err := accounts.NewManager(&accounts.Config{Interfaces: cfg.Interfaces})
	if err != nil {
		return nil, cfg, err
	}
	return am, cfg, nil
}
