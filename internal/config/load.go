// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding
// configuration values.
const EnvPrefix = "YUZURUN"

// ErrLoad is returned if the configuration could not be loaded.
var ErrLoad = errors.New("load config")

// Load reads the configuration from the YAML file at the given path and the
// environment.
//
// If path is empty, [DefaultPath] is used. A missing file is only an error
// if the path was given explicitly.
func Load(path string) (Config, error) {
	explicit := path != ""

	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrLoad, err)
		}

		path = defaultPath
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("yuzu.yuzu_cmd_path", cfg.Yuzu.YuzuCmdPath)
	v.SetDefault("yuzu.gdbstub_port", cfg.Yuzu.GDBStubPort)
	v.SetDefault("yuzu.log_filter", cfg.Yuzu.LogFilter)
	v.SetDefault("gdb.gdb_location", cfg.Gdb.GDBLocation)
	v.SetDefault("gdb.gdbinit_commands", cfg.Gdb.GDBInitCommands)
	v.SetDefault("gdb.rust_pretty_printers_dir", cfg.Gdb.RustPrettyPrintersDir)

	err := v.ReadInConfig()
	if err != nil && (explicit || !isNotFound(err)) {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
