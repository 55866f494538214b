package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	log "github.com/cloudposse/apkwrap/pkg/logger"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the apktool version",
	Example: "apkwrap version --check-constraint '>= 2.9.0'",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := getClient(cmd)

		constraint, _ := cmd.Flags().GetString("check-constraint")
		if constraint == "" {
			v, err := client.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		}

		v, err := client.CheckVersion(cmd.Context(), constraint)
		if err != nil {
			return err
		}
		log.Debug("apktool version satisfies constraint", "version", v, "constraint", constraint)
		fmt.Fprintln(cmd.OutOrStdout(), v.Original())
		return nil
	},
}

func init() {
	versionCmd.Flags().String("check-constraint", "", "Fail unless the apktool version satisfies this semver constraint")
}
