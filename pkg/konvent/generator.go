package konvent

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/konvent-build/konvent/internal/fs"
	"github.com/konvent-build/konvent/pkg/catalog"
	"github.com/konvent-build/konvent/pkg/cfg"
)

// Generator produces the generated constants file of a module.
//
// The emitted constants are the constant definitions of the module's composed
// build configuration, in definition order. Every constant value is looked up
// in the module's version catalog by exact key match, a missing key aborts
// the generation.
//
// Generation is a single-shot pure transformation: the rendering only depends
// on the catalog content and the module configuration, rendering the same
// inputs twice yields byte-identical output.
type Generator struct {
	module  *Module
	catalog *catalog.Catalog
}

// NewGenerator returns a Generator that generates the constants file of
// module with the versions of cat.
func NewGenerator(module *Module, cat *catalog.Catalog) *Generator {
	return &Generator{
		module:  module,
		catalog: cat,
	}
}

// Generate renders the constants file and writes it to the module's output
// path. An existing file is overwritten unconditionally, missing parent
// directories are created.
func (g *Generator) Generate() error {
	content, err := g.Render()
	if err != nil {
		return err
	}

	if err := fs.Mkdir(filepath.Dir(g.module.OutputPath)); err != nil {
		return fmt.Errorf("creating output directory failed: %w", err)
	}

	if err := os.WriteFile(g.module.OutputPath, content, 0o644); err != nil {
		return fmt.Errorf("writing %s failed: %w", g.module.OutputPath, err)
	}

	return nil
}

// Render renders the constants file of the module and returns its content.
func (g *Generator) Render() ([]byte, error) {
	values, err := g.lookupValues()
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", g.module.Name, err)
	}

	switch g.module.Dialect {
	case cfg.DialectJava:
		return g.renderJava(values), nil
	case cfg.DialectKotlin:
		return g.renderKotlin(values), nil
	case cfg.DialectGo:
		return g.renderGo(values), nil
	default:
		return nil, fmt.Errorf("module %s: unsupported dialect %q", g.module.Name, g.module.Dialect)
	}
}

// lookupValues resolves all constant definitions of the module against the
// catalog. The result preserves definition order.
func (g *Generator) lookupValues() ([]string, error) {
	values := make([]string, 0, len(g.module.Config.Constants))

	for _, def := range g.module.Config.Constants {
		version, err := g.catalog.Version(def.Key)
		if err != nil {
			return nil, fmt.Errorf("resolving constant %s failed: %w", def.Name, err)
		}

		values = append(values, version)
	}

	return values, nil
}

func (g *Generator) renderJava(values []string) []byte {
	var buf bytes.Buffer

	container := g.containerName()

	fmt.Fprintf(&buf, "// Generated by konvent. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "package %s;\n\n", g.module.Namespace)
	fmt.Fprintf(&buf, "public final class %s {\n", container)
	fmt.Fprintf(&buf, "    private %s() {}\n\n", container)

	for i, def := range g.module.Config.Constants {
		fmt.Fprintf(&buf, "    public static final String %s = %q;\n", def.Name, values[i])
	}

	fmt.Fprintf(&buf, "}\n")

	return buf.Bytes()
}

func (g *Generator) renderKotlin(values []string) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Generated by konvent. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.module.Namespace)
	fmt.Fprintf(&buf, "object %s {\n", g.containerName())

	for i, def := range g.module.Config.Constants {
		fmt.Fprintf(&buf, "    const val %s = %q\n", def.Name, values[i])
	}

	fmt.Fprintf(&buf, "}\n")

	return buf.Bytes()
}

func (g *Generator) renderGo(values []string) []byte {
	var buf bytes.Buffer

	maxNameLen := 0
	for _, def := range g.module.Config.Constants {
		maxNameLen = max(maxNameLen, len(def.Name))
	}

	fmt.Fprintf(&buf, "// Code generated by konvent. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.module.Namespace)
	fmt.Fprintf(&buf, "const (\n")

	for i, def := range g.module.Config.Constants {
		fmt.Fprintf(&buf, "\t%-*s = %q\n", maxNameLen, def.Name, values[i])
	}

	fmt.Fprintf(&buf, ")\n")

	return buf.Bytes()
}

// containerName returns the name of the class/object that holds the
// constants, derived from the base name of the output file.
func (g *Generator) containerName() string {
	base := filepath.Base(g.module.OutputPath)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
