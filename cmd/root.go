package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/cloudposse/apkwrap/pkg/apktool"
	cfg "github.com/cloudposse/apkwrap/pkg/config"
	log "github.com/cloudposse/apkwrap/pkg/logger"
	"github.com/cloudposse/apkwrap/pkg/schema"
)

var (
	cliConfig schema.Configuration
	logCloser io.Closer

	// newClient builds the apktool client used by every command.
	newClient = func(c schema.Configuration, opts ...apktool.Option) *apktool.Client {
		return apktool.NewFromConfig(c, opts...)
	}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "apkwrap",
	Short: "Decode, rebuild and manage frameworks for Android apps with apktool",
	Long: `apkwrap runs apktool for you. It finds apktool.jar, turns flags into an apktool
command line, and runs it with the configured Java runtime.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Do not silence usage or errors when help is invoked
		isHelpRequested := cmd.Name() == "help" || cmd.Flags().Changed("help")
		cmd.SilenceUsage = !isHelpRequested
		cmd.SilenceErrors = !isHelpRequested

		return initConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the command tree. This is called by main.main().
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// Cleanup releases resources acquired while running a command.
func Cleanup() {
	if logCloser != nil {
		if err := logCloser.Close(); err != nil {
			log.Debug("Failed to close log file", "err", err)
		}
		logCloser = nil
	}
}

// initConfig loads apkwrap.yaml, APKWRAP_* variables and flags, then configures logging.
func initConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString(cfg.ConfigFlag)

	c, err := cfg.LoadConfig(schema.ConfigInfo{
		CliConfigPath: configPath,
		Flags:         cmd.Flags(),
	})
	if err != nil {
		return err
	}

	level, err := log.ParseLogLevel(c.Logs.Level)
	if err != nil {
		return err
	}

	Cleanup()
	closer, err := log.Configure(level, c.Logs.File)
	if err != nil {
		return err
	}
	logCloser = closer
	cliConfig = c

	log.Trace("Loaded configuration", "file", c.CliConfigPath, "java", c.Java, "tool_path", c.ToolPath)
	return nil
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.BoolP("quiet", "q", false, "Pass --quiet to apktool")
	pf.BoolP("verbose", "v", false, "Pass --verbose to apktool")
	pf.String(cfg.ToolPathFlag, "", "Path to apktool.jar. Defaults to apktool.jar next to the apkwrap binary")
	pf.String(cfg.JavaFlag, cfg.DefaultJava, "Java runtime used to launch apktool")
	pf.Duration(cfg.TimeoutFlag, 0, "Stop apktool after this long, e.g. 10m. Zero means no limit")
	pf.Bool("dry-run", false, "Print the apktool command line instead of running it")
	pf.String(cfg.LogsLevelFlag, cfg.DefaultLogLevel, "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off")
	pf.String(cfg.LogsFileFlag, cfg.DefaultLogFile, "The file to write apkwrap logs to, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
	pf.String(cfg.ConfigFlag, "", "Path to apkwrap.yaml or to the directory containing it")

	RootCmd.AddCommand(
		decodeCmd,
		buildCmd,
		installFrameworkCmd,
		listFrameworksCmd,
		emptyFrameworkDirCmd,
		publicizeResourcesCmd,
		versionCmd,
		locateCmd,
		metadataCmd,
	)
}
