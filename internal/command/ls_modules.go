package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/konvent-build/konvent/internal/command/flag"
	"github.com/konvent-build/konvent/internal/format"
	"github.com/konvent-build/konvent/internal/format/csv"
	"github.com/konvent-build/konvent/internal/format/table"
	"github.com/konvent-build/konvent/pkg/konvent"
)

const (
	lsModuleNameHeader        = "Name"
	lsModuleNameParam         = "name"
	lsModulePathHeader        = "Path"
	lsModulePathParam         = "path"
	lsModuleConventionsHeader = "Conventions"
	lsModuleConventionsParam  = "conventions"
	lsModuleDialectHeader     = "Dialect"
	lsModuleDialectParam      = "dialect"
)

func init() {
	lsCmd.AddCommand(&newLsModulesCmd().Command)
}

type lsModulesCmd struct {
	cobra.Command

	csv      bool
	quiet    bool
	absPaths bool
	fields   *flag.Fields
}

func newLsModulesCmd() *lsModulesCmd {
	cmd := lsModulesCmd{
		Command: cobra.Command{
			Use:   "modules [<MODULE-NAME>|<PATH>]...",
			Short: "list modules and their configuration",
			Args:  cobra.ArbitraryArgs,
		},

		fields: flag.NewFields([]string{
			lsModuleNameParam,
			lsModulePathParam,
			lsModuleConventionsParam,
			lsModuleDialectParam,
		}),
	}
	cmd.Run = cmd.run

	cmd.Flags().BoolVar(&cmd.csv, "csv", false,
		"list modules in RFC4180 CSV format")

	cmd.Flags().BoolVarP(&cmd.quiet, "quiet", "q", false,
		"suppress printing a header")

	cmd.Flags().BoolVar(&cmd.absPaths, "abs-path", false,
		"show absolute instead of relative paths")

	cmd.Flags().VarP(cmd.fields, "fields", "f",
		cmd.fields.Usage(highlight))

	return &cmd
}

func (c *lsModulesCmd) run(_ *cobra.Command, args []string) {
	var headers []string
	var formatter format.Formatter

	repo := mustFindRepository()
	loader := mustNewLoader(repo)
	modules := mustLoadModules(loader, args)

	if !c.quiet && !c.csv {
		headers = c.createHeader()
	}

	if c.csv {
		formatter = csv.New(headers, stdout)
	} else {
		formatter = table.New(headers, stdout)
	}

	konvent.SortModulesByName(modules)

	for _, module := range modules {
		mustWriteRow(formatter, c.assembleRow(module)...)
	}

	err := formatter.Flush()
	exitOnErr(err)
}

func (c *lsModulesCmd) createHeader() []string {
	var headers []string

	for _, f := range c.fields.Fields {
		switch f {
		case lsModuleNameParam:
			headers = append(headers, lsModuleNameHeader)
		case lsModulePathParam:
			headers = append(headers, lsModulePathHeader)
		case lsModuleConventionsParam:
			headers = append(headers, lsModuleConventionsHeader)
		case lsModuleDialectParam:
			headers = append(headers, lsModuleDialectHeader)
		default:
			panic(fmt.Sprintf("unsupported value %q in fields parameter", f))
		}
	}

	return headers
}

func (c *lsModulesCmd) assembleRow(module *konvent.Module) []any {
	row := make([]any, 0, len(c.fields.Fields))

	for _, f := range c.fields.Fields {
		switch f {
		case lsModuleNameParam:
			row = append(row, module.Name)

		case lsModulePathParam:
			if c.absPaths {
				row = append(row, module.Path)
			} else {
				row = append(row, module.RelPath)
			}

		case lsModuleConventionsParam:
			row = append(row, strings.Join(module.Config.Conventions, ", "))

		case lsModuleDialectParam:
			row = append(row, module.Dialect)
		}
	}

	return row
}
