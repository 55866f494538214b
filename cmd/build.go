package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cloudposse/apkwrap/pkg/apktool"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:     "build <dir>",
	Aliases: []string{"b"},
	Short:   "Build an apk from a decoded directory",
	Example: "apkwrap build app -o dist/app.apk",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := getClient(cmd).Build(cmd.Context(), args[0], buildOptions(cmd))
		return err
	},
}

func buildOptions(cmd *cobra.Command) apktool.BuildOptions {
	f := cmd.Flags()
	opts := apktool.BuildOptions{GlobalOptions: globalOptions(cmd), APILevel: apiLevel(cmd)}
	opts.Output, _ = f.GetString("output")
	opts.Debug, _ = f.GetBool("debug")
	opts.CopyOriginal, _ = f.GetBool("copy-original")
	opts.ForceAll, _ = f.GetBool("force-all")
	opts.NoCrunch, _ = f.GetBool("no-crunch")
	opts.FrameworkPath, _ = f.GetString("frame-path")
	opts.NetworkSecurityConfig, _ = f.GetBool("net-sec-conf")
	opts.AAPTPath, _ = f.GetString("aapt")
	opts.UseAAPT1, _ = f.GetBool("use-aapt1")
	return opts
}

func init() {
	f := buildCmd.Flags()
	f.StringP("output", "o", "", "The name of apk that gets written. Default is dist/name.apk")
	addAPILevelFlag(buildCmd, "The numeric api-level of the file to generate, e.g. 14 for ICS")
	f.BoolP("debug", "d", false, "Sets android:debuggable to \"true\" in the APK's compiled manifest")
	f.BoolP("copy-original", "c", false, "Copy original AndroidManifest.xml and META-INF")
	f.BoolP("force-all", "f", false, "Skip changes detection and build all files")
	f.Bool("no-crunch", false, "Disable crunching of resource files during the build step")
	addFramePathFlag(buildCmd)
	f.BoolP("net-sec-conf", "n", false, "Add a generic Network Security Configuration file in the output APK")
	f.String("aapt", "", "Load aapt from specified location")
	f.Bool("use-aapt1", false, "Use aapt binary instead of aapt2 during the resource building step")
}
