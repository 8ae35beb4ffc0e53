// This file is part of brainfuck-interp - https://github.com/danielpivonka/brainfuck-interp
//
// Copyright 2026 The brainfuck-interp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configName = ".bf.toml"

// config holds the settings read from the configuration file. Command line
// flags take precedence.
type config struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
	Debug   bool   `toml:"debug"`
	Trace   bool   `toml:"trace"`
	Dump    bool   `toml:"dump"`
	NoLine  bool   `toml:"noline"`

	// Undecoded lists unknown keys found in the file.
	Undecoded []string `toml:"-"`
}

// defaultConfigPath returns $HOME/.bf.toml, or "" if the home directory
// cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configName)
}

// expandHome replaces a leading "~/" in path with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// loadConfig reads the configuration file at path. A missing file is not an
// error unless mustExist is true.
func loadConfig(path string, mustExist bool) (*config, error) {
	var cfg config
	if path == "" {
		return &cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return &config{}, nil
		}
		return nil, errors.Wrapf(err, "config %s", path)
	}
	for _, k := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, k.String())
	}
	cfg.History = expandHome(cfg.History)
	return &cfg, nil
}
