/*
 * Copyright 2021-2022 by the pcapio authors
 * https://github.com/pcapio/pcapio
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pcapio/pcapio/pkg/util/log"
)

const configFile = "config-file"

// Config stores the settings that drive the pcapio commands.
type Config struct {
	// Pcap stores the knobs that influence how capture files are
	// compared and rewritten.
	Pcap PcapConfig `json:"pcap" yaml:"pcap"`
	// Log contains log-specific configuration options.
	Log log.Config `json:"logging" yaml:"logging"`

	flags *pflag.FlagSet
	viper *viper.Viper
	opts  *Options
}

// Options determines which config flags are toggled depending on the command type.
type Options struct {
	diff    bool
	rewrite bool
	info    bool
}

// Option is the type alias for the config option.
type Option func(*Options)

// WithDiff determines the diff command is executed.
func WithDiff() Option {
	return func(o *Options) {
		o.diff = true
	}
}

// WithRewrite determines the rewrite command is executed.
func WithRewrite() Option {
	return func(o *Options) {
		o.rewrite = true
	}
}

// WithInfo determines the info command is executed.
func WithInfo() Option {
	return func(o *Options) {
		o.info = true
	}
}

// NewWithOpts builds a new config instance with the flag set scoped to the
// given command options.
func NewWithOpts(options ...Option) *Config {
	opts := &Options{}
	for _, opt := range options {
		opt(opts)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	flagSet := new(pflag.FlagSet)
	flagSet.String(configFile, "", "Indicates the location of the configuration file")

	c := &Config{
		Pcap:  PcapConfig{},
		Log:   log.Config{},
		viper: v,
		flags: flagSet,
		opts:  opts,
	}

	c.Log.AddFlags(flagSet)
	if opts.diff || opts.rewrite {
		c.Pcap.AddFlags(flagSet)
	}

	return c
}

// Init reads the settings bound in the Viper instance into the config state.
func (c *Config) Init() error {
	c.Pcap.InitFromViper(c.viper)
	c.Log.InitFromViper(c.viper)
	return nil
}

// TryLoadFile attempts to load the configuration file from the specified
// path on the file system. Empty path is not an error since the flags
// already carry usable defaults.
func (c *Config) TryLoadFile(file string) error {
	if file == "" {
		return nil
	}
	switch filepath.Ext(file) {
	case ".yaml", ".yml", ".json":
	default:
		return fmt.Errorf("%s is not a supported config file extension", filepath.Ext(file))
	}
	c.viper.SetConfigFile(file)
	if err := c.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("couldn't read the config file: %v", err)
	}
	return nil
}

// File gets the path of the configuration file from the Viper value.
func (c *Config) File() string { return c.viper.GetString(configFile) }

// MustViperize adds the flag set to the Cobra command and binds them within the Viper flags.
func (c *Config) MustViperize(cmd *cobra.Command) {
	cmd.PersistentFlags().AddFlagSet(c.flags)
	if err := c.viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}
}
