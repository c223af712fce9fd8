// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/unicode-analyze/unicode_analyze/tools/utils"
)

var _ = fmt.Print

const EnvPrefix = "UNICODE_ANALYZE"

// NewConfig returns a viper instance that reads UNICODE_ANALYZE_* environment
// variables and the optional config file from the config directory.
func NewConfig() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigName(utils.AppName)
	v.AddConfigPath(utils.ConfigDir())
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("Failed to read config file with error: %w", err)
		}
	}
	return v, nil
}

func is_list_flag(flag *pflag.Flag) bool {
	switch flag.Value.Type() {
	case "stringArray", "stringSlice":
		return true
	}
	return false
}

// ApplyConfig fills in every flag of cmd not given on the command line from
// the environment or the config file. Flags on the command line win, then the
// environment, then the config file, then the flag default. Returns the path
// of the config file, if one was read.
func ApplyConfig(cmd *cobra.Command) (config_file string, err error) {
	v, err := NewConfig()
	if err != nil {
		return "", err
	}
	config_file = v.ConfigFileUsed()
	flags := cmd.Flags()
	flags.VisitAll(func(flag *pflag.Flag) {
		if err != nil || flag.Changed || flag.Name == "help" || flag.Name == "version" {
			return
		}
		if !v.IsSet(flag.Name) {
			return
		}
		if is_list_flag(flag) {
			for _, x := range v.GetStringSlice(flag.Name) {
				if err = flag.Value.Set(x); err != nil {
					break
				}
			}
		} else {
			err = flags.Set(flag.Name, v.GetString(flag.Name))
		}
		if err != nil {
			err = fmt.Errorf("Invalid configured value for %s: %w", opt_fmt("--"+flag.Name), err)
		}
	})
	return
}
