package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "View statichuff's version",
	Long:  "Display the version of statichuff and of the code table it was built with.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var version string = "statichuff version 0.1.0"
		var table string = "Code table: 257 symbols, 10-bit decode table"
		fmt.Fprintln(cmd.OutOrStdout(), version)
		fmt.Fprintln(cmd.OutOrStdout(), table)

		return nil
	},
}
