package catalog

import (
	"bufio"
	"io"
	"strings"
)

const versionsSection = "[versions]"

// scanVersions extracts the entries of the [versions] section from a catalog
// file in a single line-oriented pass.
//
// The scanner tracks whether the current line is inside the [versions]
// section. Inside it, each non-empty line is split on the first '=', both
// halves are trimmed and one layer of surrounding quote characters is
// stripped from the value. Lines outside the section and lines without a '='
// are ignored.
//
// This is not a general-purpose TOML parser: multi-line values, arrays,
// inline tables and comments are not handled specially.
func scanVersions(r io.Reader) ([]string, map[string]string, error) {
	var keys []string
	versions := map[string]string{}

	inVersions := false

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())

		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inVersions = line == versionsSection
			continue
		}

		if !inVersions {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		if _, exist := versions[key]; !exist {
			keys = append(keys, key)
		}

		versions[key] = value
	}

	if err := s.Err(); err != nil {
		return nil, nil, err
	}

	return keys, versions, nil
}

// unquote strips one layer of surrounding quote characters from s.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	first := s[0]
	last := s[len(s)-1]

	if first != last {
		return s
	}

	if first == '"' || first == '\'' {
		return s[1 : len(s)-1]
	}

	return s
}
