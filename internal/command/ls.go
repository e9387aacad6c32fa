package command

import (
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "list modules and conventions",
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
