package schema

import (
	"time"

	"github.com/spf13/pflag"
)

// Configuration is the merged apkwrap configuration: defaults, apkwrap.yaml
// files, APKWRAP_* environment variables and command-line flags.
type Configuration struct {
	// ToolPath overrides the location of apktool.jar.
	ToolPath string `yaml:"tool_path" json:"tool_path" mapstructure:"tool_path"`
	// Java is the runtime used to launch the jar.
	Java string `yaml:"java" json:"java" mapstructure:"java"`
	// FrameworkPath is applied to framework-aware operations that do not set their own.
	FrameworkPath string        `yaml:"framework_path" json:"framework_path" mapstructure:"framework_path"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
	Logs          Logs          `yaml:"logs" json:"logs" mapstructure:"logs"`

	// CliConfigPath is the last apkwrap.yaml merged, empty when none was found.
	CliConfigPath string `yaml:"-" json:"cli_config_path,omitempty" mapstructure:"-"`
}

type Logs struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	File  string `yaml:"file" json:"file" mapstructure:"file"`
}

// ConfigInfo carries what the command line knows before configuration is loaded.
type ConfigInfo struct {
	// CliConfigPath is an explicit apkwrap.yaml (file or directory) from --config.
	CliConfigPath string
	// Flags are bound on top of files and environment. Only flags the user set win.
	Flags *pflag.FlagSet
}
