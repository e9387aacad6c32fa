package konvent

import "fmt"

type ErrDuplicateModuleNames struct {
	ModuleName  string
	ModulePath1 string
	ModulePath2 string
}

func (e *ErrDuplicateModuleNames) Error() string {
	return fmt.Sprintf(
		"module names must be unique but the following module configs use the same module name %q: %s, %s",
		e.ModuleName, e.ModulePath1, e.ModulePath2,
	)
}
