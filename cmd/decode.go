package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cloudposse/apkwrap/pkg/apktool"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode <apk>",
	Aliases: []string{"d"},
	Short:   "Decode an apk into resources and smali sources",
	Example: "apkwrap decode app.apk -o app --no-src",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := getClient(cmd).Decode(cmd.Context(), args[0], decodeOptions(cmd))
		return err
	},
}

func decodeOptions(cmd *cobra.Command) apktool.DecodeOptions {
	f := cmd.Flags()
	opts := apktool.DecodeOptions{GlobalOptions: globalOptions(cmd), APILevel: apiLevel(cmd)}
	opts.Output, _ = f.GetString("output")
	opts.Force, _ = f.GetBool("force")
	opts.NoDebugInfo, _ = f.GetBool("no-debug-info")
	opts.NoResources, _ = f.GetBool("no-res")
	opts.NoSources, _ = f.GetBool("no-src")
	opts.KeepBrokenResources, _ = f.GetBool("keep-broken-res")
	opts.NoAssets, _ = f.GetBool("no-assets")
	opts.OnlyMainClasses, _ = f.GetBool("only-main-classes")
	opts.FrameworkPath, _ = f.GetString("frame-path")
	opts.FrameworkTag, _ = f.GetString("frame-tag")
	opts.ForceManifest, _ = f.GetBool("force-manifest")
	opts.MatchOriginal, _ = f.GetBool("match-original")
	mode, _ := f.GetString("resource-mode")
	opts.ResourceMode = apktool.ResourceMode(mode)
	return opts
}

func init() {
	f := decodeCmd.Flags()
	f.StringP("output", "o", "", "The name of the folder that gets written. Default is apk.out")
	f.BoolP("force", "f", false, "Force delete destination directory")
	f.BoolP("no-debug-info", "b", false, "Don't write out debug info (.local, .param, .line, etc.)")
	f.BoolP("no-res", "r", false, "Do not decode resources")
	f.BoolP("no-src", "s", false, "Do not decode sources")
	f.Bool("keep-broken-res", false, "Use if there was an error and some resources were dropped")
	f.Bool("no-assets", false, "Do not decode assets")
	f.Bool("only-main-classes", false, "Only disassemble the main dex classes (classes[0-9]*.dex) in the root")
	addFramePathFlag(decodeCmd)
	f.StringP("frame-tag", "t", "", "Use framework files tagged by this tag")
	addAPILevelFlag(decodeCmd, "The numeric api-level of the file to generate, e.g. 14 for ICS")
	f.BoolP("force-manifest", "m", false, "Decode the APK's compiled manifest, even if decoding of resources is set to false")
	f.Bool("match-original", false, "Keep files closest to original as possible (prevents rebuild)")
	modes := lo.Map(apktool.ResourceModes, func(m apktool.ResourceMode, _ int) string { return string(m) })
	f.String("resource-mode", "", "How to handle unresolved resources: "+strings.Join(modes, ", "))
	_ = decodeCmd.RegisterFlagCompletionFunc("resource-mode", cobra.FixedCompletions(modes, cobra.ShellCompDirectiveNoFileComp))
}
