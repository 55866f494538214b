package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cloudposse/apkwrap/pkg/apktool"
)

// getClient returns an apktool client for the loaded configuration, streaming to the command's writers.
func getClient(cmd *cobra.Command) *apktool.Client {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return newClient(cliConfig,
		apktool.WithDryRun(dryRun),
		apktool.WithStdout(cmd.OutOrStdout()),
		apktool.WithStderr(cmd.ErrOrStderr()),
	)
}

// globalOptions reads --quiet and --verbose.
func globalOptions(cmd *cobra.Command) apktool.GlobalOptions {
	quiet, _ := cmd.Flags().GetBool("quiet")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return apktool.GlobalOptions{Quiet: quiet, Verbose: verbose}
}

// apiLevel returns --api-level only when the user set it.
func apiLevel(cmd *cobra.Command) *int {
	if !cmd.Flags().Changed("api-level") {
		return nil
	}
	n, _ := cmd.Flags().GetInt("api-level")
	return &n
}

func addFramePathFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("frame-path", "p", "", "Use framework files located in this directory. Defaults to framework_path from apkwrap.yaml")
}

func addAPILevelFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().IntP("api-level", "a", 0, usage)
}
