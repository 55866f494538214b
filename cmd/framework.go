package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudposse/apkwrap/pkg/apktool"
	log "github.com/cloudposse/apkwrap/pkg/logger"
)

// installFrameworkCmd represents the install-framework command
var installFrameworkCmd = &cobra.Command{
	Use:     "install-framework <framework.apk>",
	Aliases: []string{"if"},
	Short:   "Install a framework apk",
	Example: "apkwrap install-framework framework-res.apk -t htc",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := apktool.InstallFrameworkOptions{GlobalOptions: globalOptions(cmd)}
		opts.FrameworkPath, _ = cmd.Flags().GetString("frame-path")
		opts.Tag, _ = cmd.Flags().GetString("tag")

		_, err := getClient(cmd).InstallFramework(cmd.Context(), args[0], opts)
		return err
	},
}

// listFrameworksCmd represents the list-frameworks command
var listFrameworksCmd = &cobra.Command{
	Use:   "list-frameworks",
	Short: "List installed framework files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if g := globalOptions(cmd); g.Quiet || g.Verbose {
			log.Debug("--quiet and --verbose are not passed to apktool list-frameworks, its output is parsed",
				"quiet", g.Quiet, "verbose", g.Verbose)
		}

		var opts apktool.ListFrameworksOptions
		opts.FrameworkPath, _ = cmd.Flags().GetString("frame-path")

		frameworks, err := getClient(cmd).ListFrameworks(cmd.Context(), opts)
		if err != nil {
			return err
		}
		for _, fw := range frameworks {
			fmt.Fprintln(cmd.OutOrStdout(), fw)
		}
		return nil
	},
}

// emptyFrameworkDirCmd represents the empty-framework-dir command
var emptyFrameworkDirCmd = &cobra.Command{
	Use:   "empty-framework-dir",
	Short: "Remove installed framework files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := apktool.EmptyFrameworkDirOptions{GlobalOptions: globalOptions(cmd)}
		opts.Force, _ = cmd.Flags().GetBool("force")
		opts.FrameworkPath, _ = cmd.Flags().GetString("frame-path")

		_, err := getClient(cmd).EmptyFrameworkDir(cmd.Context(), opts)
		return err
	},
}

// publicizeResourcesCmd represents the publicize-resources command
var publicizeResourcesCmd = &cobra.Command{
	Use:   "publicize-resources <resources.arsc>",
	Short: "Make all framework resources public",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := apktool.PublicizeResourcesOptions{GlobalOptions: globalOptions(cmd)}
		_, err := getClient(cmd).PublicizeResources(cmd.Context(), args[0], opts)
		return err
	},
}

func init() {
	addFramePathFlag(installFrameworkCmd)
	installFrameworkCmd.Flags().StringP("tag", "t", "", "Tag frameworks using this tag")

	addFramePathFlag(listFrameworksCmd)

	emptyFrameworkDirCmd.Flags().BoolP("force", "f", false, "Force delete destination directory")
	addFramePathFlag(emptyFrameworkDirCmd)
}
