package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	errUtils "github.com/cloudposse/apkwrap/errors"
	"github.com/cloudposse/apkwrap/pkg/apktool"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// metadataCmd represents the metadata command
var metadataCmd = &cobra.Command{
	Use:     "metadata <decoded-dir>",
	Short:   "Show the apktool.yml of a decoded apk",
	Example: "apkwrap metadata app --format yaml",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format != formatText && format != formatYAML {
			return errUtils.Build(errors.Wrapf(errUtils.ErrInvalidOption, "--format must be %s or %s, got %q", formatText, formatYAML, format)).
				WithContext("option", "format").
				Err()
		}

		m, err := apktool.ReadMetadata(args[0])
		if err != nil {
			return err
		}

		if format == formatYAML {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(m); err != nil {
				return errors.Wrap(err, "encode metadata")
			}
			return enc.Close()
		}
		printMetadata(cmd.OutOrStdout(), m)
		return nil
	},
}

var metadataKeyStyle = lipgloss.NewStyle().Bold(true)

func printMetadata(w io.Writer, m *apktool.Metadata) {
	row := func(key, value string) {
		if value != "" {
			fmt.Fprintf(w, "%s %s\n", metadataKeyStyle.Render(key+":"), value)
		}
	}

	row("apk", m.APKFileName)
	row("apktool", m.Version)
	if m.VersionInfo != nil {
		row("version name", m.VersionInfo.VersionName)
		row("version code", m.VersionInfo.VersionCode)
	}
	if m.SDKInfo != nil {
		row("min sdk", m.SDKInfo.MinSDKVersion)
		row("target sdk", m.SDKInfo.TargetSDKVersion)
		row("max sdk", m.SDKInfo.MaxSDKVersion)
	}
	if m.UsesFramework != nil && len(m.UsesFramework.IDs) > 0 {
		ids := lo.Map(m.UsesFramework.IDs, func(id int, _ int) string { return strconv.Itoa(id) })
		row("frameworks", strings.Join(ids, ", "))
		row("framework tag", m.UsesFramework.Tag)
	}
	if m.IsFrameworkAPK {
		row("framework apk", "true")
	}
	if len(m.DoNotCompress) > 0 {
		row("do not compress", strings.Join(m.DoNotCompress, ", "))
	}
}

func init() {
	metadataCmd.Flags().StringP("format", "f", formatText, "Output format: text or yaml")
	_ = metadataCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{formatText, formatYAML}, cobra.ShellCompDirectiveNoFileComp))
}
