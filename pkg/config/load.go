package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/apkwrap/errors"
	log "github.com/cloudposse/apkwrap/pkg/logger"
	"github.com/cloudposse/apkwrap/pkg/schema"
)

// flagBindings maps configuration keys to the command-line flags that override them.
var flagBindings = map[string]string{
	"tool_path":  ToolPathFlag,
	"java":       JavaFlag,
	"timeout":    TimeoutFlag,
	"logs.level": LogsLevelFlag,
	"logs.file":  LogsFileFlag,
}

// LoadConfig loads the configuration from the following locations (from lower to higher priority):
// system dir (`/usr/local/etc/apkwrap`)
// XDG config home (`$XDG_CONFIG_HOME/apkwrap`)
// home dir (`~/.apkwrap`)
// current directory
// APKWRAP_CLI_CONFIG_PATH
// --config
// ENV vars (APKWRAP_*)
// Command-line flags
func LoadConfig(info schema.ConfigInfo) (schema.Configuration, error) {
	v := viper.New()
	var cfg schema.Configuration

	v.SetConfigType("yaml")
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	dirs := []string{SystemDirConfigFilePath, filepath.Join(xdg.ConfigHome, AppName)}
	if home, err := homedir.Dir(); err == nil {
		dirs = append(dirs, filepath.Join(home, DotCliConfigDirName))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if envPath := os.Getenv(CliConfigPathEnvVar); envPath != "" {
		dirs = append(dirs, envPath)
	}

	for _, dir := range lo.Uniq(dirs) {
		if err := mergeConfig(v, dir); err != nil {
			return cfg, err
		}
	}

	if info.CliConfigPath != "" {
		found, err := mergeConfigPath(v, info.CliConfigPath)
		if err != nil {
			return cfg, err
		}
		if !found {
			return cfg, errUtils.Build(errUtils.ErrInvalidConfig).
				WithExplanationf("config file %s does not exist", info.CliConfigPath).
				WithHint("Pass a path to an existing apkwrap.yaml or to the directory containing it").
				Err()
		}
	}

	if info.Flags != nil {
		for key, name := range flagBindings {
			if f := info.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, errors.Wrapf(err, "bind flag --%s", name)
				}
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errUtils.Build(errUtils.ErrInvalidConfig).WithCause(err).Err()
	}

	cfg.CliConfigPath = v.ConfigFileUsed()
	if cfg.CliConfigPath == "" {
		log.Debug("apkwrap.yaml was not found, using defaults",
			"paths", "system dir, XDG config home, home dir, current dir, ENV vars")
	}

	return cfg, validate(&cfg)
}

// setDefaultConfiguration sets every key so AutomaticEnv can resolve it during Unmarshal.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("tool_path", "")
	v.SetDefault("java", DefaultJava)
	v.SetDefault("framework_path", "")
	v.SetDefault("timeout", "0s")
	v.SetDefault("logs.level", DefaultLogLevel)
	v.SetDefault("logs.file", DefaultLogFile)
}

// mergeConfig merges <dir>/apkwrap.yaml when it exists.
func mergeConfig(v *viper.Viper, dir string) error {
	_, err := mergeConfigPath(v, dir)
	return err
}

// mergeConfigPath merges path, which is either an apkwrap.yaml file or a
// directory containing one. It reports whether a file was merged.
func mergeConfigPath(v *viper.Viper, path string) (bool, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return false, errors.Wrapf(err, "expand %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat %s", path)
	}

	if info.IsDir() {
		path = filepath.Join(path, CliConfigFile)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, errors.Wrapf(err, "stat %s", path)
		}
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return false, errUtils.Build(errUtils.ErrInvalidConfig).
			WithCause(err).
			WithContext("file", path).
			Err()
	}
	log.Debug("Merged config", "file", path)

	return true, nil
}

// validate normalizes paths and rejects values no operation could use.
func validate(cfg *schema.Configuration) error {
	if _, err := log.ParseLogLevel(cfg.Logs.Level); err != nil {
		return err
	}

	if cfg.Timeout < 0 {
		return errUtils.Build(errUtils.ErrInvalidConfig).
			WithExplanationf("timeout must not be negative, got %s", cfg.Timeout).
			Err()
	}

	if strings.TrimSpace(cfg.Java) == "" {
		cfg.Java = DefaultJava
	}

	for _, p := range []*string{&cfg.ToolPath, &cfg.FrameworkPath} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return errUtils.Build(errUtils.ErrInvalidConfig).WithCause(err).Err()
		}
		*p = expanded
	}

	return nil
}
