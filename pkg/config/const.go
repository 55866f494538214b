package config

const (
	AppName = "apkwrap"

	// CliConfigFileName is the base name of the configuration file, without extension.
	CliConfigFileName = "apkwrap"
	// CliConfigFile is the full configuration file name.
	CliConfigFile = "apkwrap.yaml"

	// DotCliConfigDirName is the per-user configuration directory under $HOME.
	DotCliConfigDirName = ".apkwrap"

	SystemDirConfigFilePath = "/usr/local/etc/apkwrap"

	// EnvPrefix prefixes every environment variable apkwrap reads.
	EnvPrefix = "APKWRAP"
	// CliConfigPathEnvVar points at a directory or file holding apkwrap.yaml.
	CliConfigPathEnvVar = "APKWRAP_CLI_CONFIG_PATH"

	DefaultJava     = "java"
	DefaultLogLevel = "Info"
	DefaultLogFile  = "/dev/stderr"
)

// Flag names bound into the configuration.
const (
	ToolPathFlag  = "tool-path"
	JavaFlag      = "java"
	TimeoutFlag   = "timeout"
	LogsLevelFlag = "logs-level"
	LogsFileFlag  = "logs-file"
	ConfigFlag    = "config"
)
