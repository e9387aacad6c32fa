// Package catalog reads version catalog files.
//
// A version catalog is a section-delimited key/value text file. Only the
// [versions] section is consumed, it maps dependency keys to version strings:
//
//	[versions]
//	lombok = "1.18.42"
//	spotless = "8.1.0"
//
// The catalog is the single source of truth for dependency versions, it is
// read-only at generation time. Versions are treated as opaque strings, they
// are not validated or coerced.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Catalog is an ordered mapping from dependency keys to version strings.
type Catalog struct {
	filePath string
	versions map[string]string
	keys     []string
}

// FromFile reads a version catalog from a file.
// A missing or unreadable file is an error, callers are expected to treat it
// as fatal for the build step that depends on the catalog.
func FromFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading version catalog failed: %w", err)
	}

	c, err := FromReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.filePath = path

	return c, nil
}

// FromReader reads a version catalog from r.
func FromReader(r io.Reader) (*Catalog, error) {
	keys, versions, err := scanVersions(r)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		versions: versions,
		keys:     keys,
	}, nil
}

// FilePath returns the path the catalog was read from.
// It is empty when the catalog was not read from a file.
func (c *Catalog) FilePath() string {
	return c.filePath
}

// Version returns the version string recorded for key.
// Keys are matched exactly. If the key does not exist in the [versions]
// section a *MissingKeyError is returned.
func (c *Catalog) Version(key string) (string, error) {
	version, exist := c.versions[key]
	if !exist {
		return "", &MissingKeyError{Key: key, CatalogPath: c.filePath}
	}

	return version, nil
}

// HasKey returns true if key exists in the [versions] section.
func (c *Catalog) HasKey(key string) bool {
	_, exist := c.versions[key]
	return exist
}

// Keys returns the keys of the [versions] section in the order they occur in
// the catalog.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)

	return keys
}

// MissingKeyError is returned when a version lookup refers to a key that does
// not exist in the catalog.
type MissingKeyError struct {
	Key         string
	CatalogPath string
}

func (e *MissingKeyError) Error() string {
	if e.CatalogPath == "" {
		return fmt.Sprintf("key %q does not exist in the version catalog", e.Key)
	}

	return fmt.Sprintf("key %q does not exist in the version catalog %q", e.Key, e.CatalogPath)
}
