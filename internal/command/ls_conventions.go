package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/konvent-build/konvent/internal/format"
	"github.com/konvent-build/konvent/internal/format/csv"
	"github.com/konvent-build/konvent/internal/format/table"
	"github.com/konvent-build/konvent/pkg/konvent"
)

func init() {
	lsCmd.AddCommand(&newLsConventionsCmd().Command)
}

type lsConventionsCmd struct {
	cobra.Command

	csv   bool
	quiet bool
}

func newLsConventionsCmd() *lsConventionsCmd {
	cmd := lsConventionsCmd{
		Command: cobra.Command{
			Use:   "conventions",
			Short: "list the built-in convention sets",
			Args:  cobra.NoArgs,
		},
	}
	cmd.Run = cmd.run

	cmd.Flags().BoolVar(&cmd.csv, "csv", false,
		"list conventions in RFC4180 CSV format")

	cmd.Flags().BoolVarP(&cmd.quiet, "quiet", "q", false,
		"suppress printing a header")

	return &cmd
}

func (c *lsConventionsCmd) run(_ *cobra.Command, _ []string) {
	var headers []string
	var formatter format.Formatter

	if !c.quiet && !c.csv {
		headers = []string{"Name", "Description", "Catalog Keys"}
	}

	if c.csv {
		formatter = csv.New(headers, stdout)
	} else {
		formatter = table.New(headers, stdout)
	}

	for _, conv := range konvent.Conventions() {
		keys := make([]string, 0, len(conv.Constants))
		for _, constant := range conv.Constants {
			keys = append(keys, constant.Key)
		}

		mustWriteRow(formatter, conv.Name, conv.Description, strings.Join(keys, ", "))
	}

	err := formatter.Flush()
	exitOnErr(err)
}
