package command

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/konvent-build/konvent/internal/digest/sha256"
	"github.com/konvent-build/konvent/internal/log"
	"github.com/konvent-build/konvent/pkg/konvent"
)

const verifyLongHelp = `
Verify that the generated version constants files of modules are up to date.

The expected content of each constants file is rendered from the version
catalog and compared with the file on disk. Files are not modified.

Exit Codes:
  0 - all constants files are up to date
  1 - Error
  2 - one or more constants files are missing or stale
`

const verifyExample = `
konvent verify           verify the constants files of all modules
konvent verify billing   verify the constants file of the billing module`

func init() {
	rootCmd.AddCommand(&newVerifyCmd().Command)
}

type verifyCmd struct {
	cobra.Command

	quiet bool
}

func newVerifyCmd() *verifyCmd {
	cmd := verifyCmd{
		Command: cobra.Command{
			Use:     "verify [<MODULE-NAME>|<PATH>]...",
			Short:   "verify that generated constants files are up to date",
			Long:    strings.TrimSpace(verifyLongHelp),
			Example: strings.TrimSpace(verifyExample),
			Args:    cobra.ArbitraryArgs,
		},
	}
	cmd.Run = cmd.run

	cmd.Flags().BoolVarP(&cmd.quiet, "quiet", "q", false,
		"only print stale modules")

	return &cmd
}

func (c *verifyCmd) run(_ *cobra.Command, args []string) {
	repo := mustFindRepository()
	loader := mustNewLoader(repo)
	modules := mustLoadModules(loader, args)

	konvent.SortModulesByName(modules)

	var staleCnt int

	for _, module := range modules {
		state, err := c.verifyModule(loader, module)
		exitOnErrf(err, "%s: verifying constants file failed", module)

		if state == verifyStateCurrent {
			if !c.quiet {
				stdout.ModulePrintf(module, "%s\n", greenHighlight(state))
			}

			continue
		}

		staleCnt++

		stateHighlight := redHighlight
		if state == verifyStateMissing {
			stateHighlight = yellowHighlight
		}

		stdout.ModulePrintf(module, "%s (%s)\n",
			stateHighlight(state), relPath(repo.Path, module.OutputPath))
	}

	if staleCnt > 0 {
		stderr.Printf("\n%d of %d constants files are not up to date, run '%s' to regenerate them\n",
			staleCnt, len(modules), highlight("konvent generate"))
		exitFunc(exitCodeStale)
	}
}

const (
	verifyStateCurrent = "up to date"
	verifyStateStale   = "stale"
	verifyStateMissing = "missing"
)

// verifyModule compares the constants file of the module on disk with the
// content rendered from the version catalog.
func (c *verifyCmd) verifyModule(loader *konvent.Loader, module *konvent.Module) (string, error) {
	cat, err := loader.CatalogFor(module)
	if err != nil {
		return "", err
	}

	rendered, err := konvent.NewGenerator(module, cat).Render()
	if err != nil {
		return "", err
	}

	wantDigest, err := sha256.SumBytes(rendered)
	if err != nil {
		return "", err
	}

	haveDigest, err := sha256.SumFile(module.OutputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return verifyStateMissing, nil
		}

		return "", err
	}

	log.Debugf("%s: constants file digest: %s, expected: %s",
		module, haveDigest, wantDigest)

	if !haveDigest.Equal(wantDigest) {
		return verifyStateStale, nil
	}

	return verifyStateCurrent, nil
}
