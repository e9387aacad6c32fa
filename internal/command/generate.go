package command

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/konvent-build/konvent/internal/log"
	"github.com/konvent-build/konvent/internal/set"
	"github.com/konvent-build/konvent/pkg/konvent"
)

// watchDebounceDuration is the time to wait after a catalog change event
// before regenerating, editors often produce multiple events per save.
const watchDebounceDuration = 250 * time.Millisecond

const generateLongHelp = `
Generate the version constants files of modules.
The constant values are read from the version catalog, the constants file of a
module is overwritten when it exists.

By default the constants files of all modules are generated.

Exit Codes:
  0 - Success
  1 - Error
`

const generateExample = `
konvent generate                   generate the constants files of all modules
konvent generate billing checkout  generate the constants files of the modules billing and checkout
konvent generate --watch           regenerate whenever a version catalog changes`

func init() {
	rootCmd.AddCommand(&newGenerateCmd().Command)
}

type generateCmd struct {
	cobra.Command

	watch bool
}

func newGenerateCmd() *generateCmd {
	cmd := generateCmd{
		Command: cobra.Command{
			Use:     "generate [<MODULE-NAME>|<PATH>]...",
			Short:   "generate the version constants files of modules",
			Long:    strings.TrimSpace(generateLongHelp),
			Example: strings.TrimSpace(generateExample),
			Args:    cobra.ArbitraryArgs,
		},
	}
	cmd.Run = cmd.run

	cmd.Flags().BoolVarP(&cmd.watch, "watch", "w", false,
		"keep running and regenerate whenever a version catalog changes")

	return &cmd
}

func (c *generateCmd) run(_ *cobra.Command, args []string) {
	repo := mustFindRepository()
	loader := mustNewLoader(repo)
	modules := mustLoadModules(loader, args)

	konvent.SortModulesByName(modules)

	err := generateModules(repo, loader, modules)
	if !c.watch {
		exitOnErr(err)
		return
	}

	if err != nil {
		// in watch mode a failed generation is not fatal, the next
		// catalog change can fix it
		stderr.ErrPrintln(err)
	}

	err = c.watchCatalogs(repo, loader, modules)
	exitOnErr(err)
}

func generateModules(repo *konvent.Repository, loader *konvent.Loader, modules []*konvent.Module) error {
	for _, module := range modules {
		cat, err := loader.CatalogFor(module)
		if err != nil {
			return err
		}

		err = konvent.NewGenerator(module, cat).Generate()
		if err != nil {
			return err
		}

		stdout.ModulePrintf(module, "%s written\n", relPath(repo.Path, module.OutputPath))
	}

	return nil
}

// watchCatalogs watches the version catalogs that the modules consume and
// regenerates the constants files whenever one changes.
// It blocks until the process receives SIGINT or SIGTERM.
func (c *generateCmd) watchCatalogs(repo *konvent.Repository, loader *konvent.Loader, modules []*konvent.Module) error {
	catalogPaths := set.Set[string]{}
	watchDirs := set.Set[string]{}

	for _, module := range modules {
		catalogPaths.Add(module.CatalogPath)
		// watching the containing directory also catches editors that
		// replace the file on save
		watchDirs.Add(filepath.Dir(module.CatalogPath))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range watchDirs.Slice() {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stdout.Printf("watching %s for changes, press %s to stop\n",
		highlight(strings.Join(catalogPaths.Slice(), ", ")), highlight("CTRL+C"))

	var debounce *time.Timer
	regenerate := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !catalogPaths.Contains(event.Name) {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			log.Debugf("catalog change detected: %s", event)

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounceDuration, func() {
				select {
				case regenerate <- struct{}{}:
				default:
				}
			})

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return watchErr

		case <-regenerate:
			loader.InvalidateCatalogs()

			if err := generateModules(repo, loader, modules); err != nil {
				stderr.ErrPrintln(err)
				continue
			}

			stdout.Printf("regenerated %d constants files at %s\n",
				len(modules), highlight(time.Now().Format(time.TimeOnly)))
		}
	}
}

func relPath(basePath, path string) string {
	rel, err := filepath.Rel(basePath, path)
	if err != nil {
		return path
	}

	return rel
}
