package cfg

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
)

// Dialects lists the supported output dialects of generated constants files.
var Dialects = []string{DialectJava, DialectKotlin, DialectGo}

const (
	DialectJava   = "java"
	DialectKotlin = "kotlin"
	DialectGo     = "go"
)

// Module stores a consumer module configuration.
type Module struct {
	Name        string   `toml:"name" comment:"Module name"`
	Conventions []string `toml:"conventions" comment:"Convention sets that are applied to the module.\n Run 'konvent ls conventions' to list the available sets."`

	Generate Generate `toml:"Generate"`
	Catalog  Catalog  `toml:"Catalog"`
	Build    Build    `toml:"Build"`

	filepath string
}

// Generate stores the [Generate] section of a module configuration.
type Generate struct {
	Output    string `toml:"output" comment:"Path of the generated constants file, relative to the module directory"`
	Dialect   string `toml:"dialect" comment:"Dialect of the generated file, one of: java, kotlin, go"`
	Namespace string `toml:"namespace" comment:"Package/namespace declared in the generated file"`
}

// Build stores the [Build] section of a module configuration.
type Build struct {
	Command []string `toml:"command" comment:"Command that compiles the module, it is run after constants generation"`
}

// ModuleFromFile unmarshals a module configuration from a file and returns it.
func ModuleFromFile(path string) (*Module, error) {
	config := Module{}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = toml.Unmarshal(content, &config)
	if err != nil {
		return nil, err
	}

	config.filepath = path

	return &config, err
}

// ExampleModule returns an exemplary module cfg struct with the name set to
// the given value.
func ExampleModule(name string) *Module {
	return &Module{
		Name:        name,
		Conventions: []string{"java", "spotless"},
		Generate: Generate{
			Output:    "src/generated/java/Versions.java",
			Dialect:   DialectJava,
			Namespace: "com.example." + name,
		},
		Build: Build{
			Command: []string{"make", "compile"},
		},
	}
}

// ToFile marshals the Module into toml format and writes it to the given
// filepath.
func (m *Module) ToFile(filepath string, opts ...toFileOpt) error {
	m.filepath = filepath
	return toFile(m, filepath, opts...)
}

// FilePath returns the path of the module configuration file.
func (m *Module) FilePath() string {
	return m.filepath
}

// Validate validates the configuration.
func (m *Module) Validate() error {
	if err := validateName(m.Name); err != nil {
		return fieldErrorWrap(err, "name")
	}

	if len(m.Conventions) == 0 {
		return newFieldError("can not be empty", "conventions")
	}

	if err := m.Generate.validate(); err != nil {
		return fieldErrorWrap(err, "Generate")
	}

	return nil
}

func (g *Generate) validate() error {
	if g.Output == "" {
		return newFieldError("can not be empty", "output")
	}

	if !validDialect(g.Dialect) {
		return newFieldError(
			fmt.Sprintf("must be one of: %s", strings.Join(Dialects, ", ")),
			"dialect",
		)
	}

	if g.Namespace == "" {
		return newFieldError("can not be empty", "namespace")
	}

	return nil
}

func validDialect(dialect string) bool {
	for _, d := range Dialects {
		if dialect == d {
			return true
		}
	}

	return false
}

func validateName(name string) error {
	if name == "" {
		return newFieldError("can not be empty")
	}

	for _, r := range name {
		if r >= 'a' && r <= 'z' ||
			r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' ||
			r == '-' || r == '_' {
			continue
		}

		return newFieldError(fmt.Sprintf("contains illegal character %q", r))
	}

	return nil
}
