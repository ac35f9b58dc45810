/*
 * Copyright 2022 CECTC, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cectc/dbbind/pkg/constant"
	"github.com/cectc/dbbind/pkg/log"
)

// EnvPrefix prefixes environment variables that override file settings,
// e.g. DBBIND_CURSOR_ARRAYSIZE.
const EnvPrefix = "DBBIND"

type Configuration struct {
	Log *log.Config `yaml:"log" mapstructure:"log"`

	Cursor *Cursor `yaml:"cursor" mapstructure:"cursor"`

	DataSources []*DataSource `yaml:"data_sources" mapstructure:"data_sources"`
}

func newConfiguration() *Configuration {
	return &Configuration{
		Log: &log.Config{Level: log.InfoLevel},
		Cursor: &Cursor{
			ArraySize:      constant.DefaultArraySize,
			BindArraySize:  constant.DefaultBindArraySize,
			LongBufferSize: constant.DefaultLongBufferSize,
		},
	}
}

// DataSource returns the data source registered under name.
func (c *Configuration) DataSource(name string) (*DataSource, error) {
	for _, ds := range c.DataSources {
		if ds.Name == name {
			return ds, nil
		}
	}
	if name == "" && len(c.DataSources) == 1 {
		return c.DataSources[0], nil
	}
	return nil, errors.Errorf("data source %q not configured", name)
}

func (c *Configuration) validate() error {
	seen := make(map[string]bool, len(c.DataSources))
	for _, ds := range c.DataSources {
		if ds.Name == "" {
			return errors.New("data source without name")
		}
		if seen[ds.Name] {
			return errors.Errorf("duplicate data source %q", ds.Name)
		}
		seen[ds.Name] = true
		if ds.Backend == Memory {
			return errors.Errorf("data source %q needs a database/sql backend, got %s", ds.Name, ds.Backend)
		}
	}
	if c.Cursor.ArraySize < 1 || c.Cursor.BindArraySize < 1 {
		return errors.Errorf("cursor array sizes must be positive, got arraysize %d, bind_array_size %d",
			c.Cursor.ArraySize, c.Cursor.BindArraySize)
	}
	if c.Cursor.LongBufferSize < 1 || c.Cursor.LongBufferSize > constant.MaxBufferSize {
		return errors.Errorf("long_buffer_size out of range: %d", c.Cursor.LongBufferSize)
	}
	return nil
}

// Parse decodes a YAML document on top of the defaults.
func Parse(content []byte) (*Configuration, error) {
	cfg := newConfiguration()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(err, "yaml unmarshal config failed")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the config file at path. Keys already present in the file or in
// the defaults may be overridden through DBBIND_* environment variables.
func Load(path string) (*Configuration, error) {
	configPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	log.Infof("load config from : %s", configPath)

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("log.level", "info")
	v.SetDefault("cursor.arraysize", constant.DefaultArraySize)
	v.SetDefault("cursor.bind_array_size", constant.DefaultBindArraySize)
	v.SetDefault("cursor.long_buffer_size", constant.DefaultLongBufferSize)
	v.SetDefault("cursor.log_sql", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "load config %s failed", configPath)
	}
	cfg := newConfiguration()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.Wrapf(err, "decode config %s failed", configPath)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Dump renders the effective configuration as YAML.
func Dump(cfg *Configuration) ([]byte, error) {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return content, nil
}
