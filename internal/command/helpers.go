package command

import (
	"github.com/konvent-build/konvent/internal/command/term"
	"github.com/konvent-build/konvent/internal/format"
	"github.com/konvent-build/konvent/internal/log"
	"github.com/konvent-build/konvent/pkg/konvent"
)

var (
	greenHighlight  = term.GreenHighlight
	redHighlight    = term.RedHighlight
	yellowHighlight = term.YellowHighlight
	underline       = term.Underline

	// highlight is a function that highlights parts of strings in the cli output
	highlight = term.Highlight
)

func findRepository() (*konvent.Repository, error) {
	log.Debugln("searching for project config file...")

	cfgPath, err := konvent.FindProjectCfgCwd()
	if err != nil {
		return nil, err
	}

	repo, err := konvent.NewRepository(cfgPath)
	if err != nil {
		return nil, err
	}

	log.Debugf("project root found: %s", repo.Path)

	return repo, nil
}

func mustFindRepository() *konvent.Repository {
	repo, err := findRepository()
	if err != nil {
		stderr.Printf("could not find project config file %q in the current or a parent directory\n"+
			"Run '%s' to create a project config file.\n",
			konvent.ProjectCfgFile, cmdInitProject)

		log.Debugln(err)
		exitFunc(exitCodeError)
	}

	return repo
}

func mustNewLoader(repo *konvent.Repository) *konvent.Loader {
	loader, err := konvent.NewLoader(repo, log.StdLogger)
	exitOnErr(err, "discovering modules failed")

	return loader
}

// mustLoadModules loads the modules matching the given specifiers, or all
// modules of the repository when no specifier is passed.
func mustLoadModules(loader *konvent.Loader, specifiers []string) []*konvent.Module {
	modules, err := loader.LoadModules(specifiers...)
	exitOnErr(err)

	if len(modules) == 0 {
		stderr.Printf("could not find any modules\n"+
			"- ensure the [Discover] section in the project config is correct\n"+
			"- ensure that module directories contain a %s file\n",
			konvent.ModuleCfgFile)
		exitFunc(exitCodeError)
	}

	return modules
}

func mustWriteRow(formatter format.Formatter, row ...any) {
	err := formatter.WriteRow(row...)
	exitOnErr(err)
}

func exitOnErrf(err error, format string, v ...any) {
	if err == nil {
		return
	}

	stderr.ErrPrintf(err, format, v...)
	exitFunc(exitCodeError)
}

func exitOnErr(err error, msg ...any) {
	if err == nil {
		return
	}

	stderr.ErrPrintln(err, msg...)
	exitFunc(exitCodeError)
}
