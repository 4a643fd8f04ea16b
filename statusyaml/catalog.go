// Package statusyaml loads error catalogs from YAML.
//
// File format:
//
//	errors:
//	  not_found:
//	    code: 404
//	    group: users
//	    message: "Entity {0} not found"
//	    user_message: "We could not find {0}."
//	  locked:
//	    code: 423
//	    message: "user {0} is locked"
//
// Each key is resolved to an enum value through the names table handed to
// LoadCatalog, so the mapping stays static and checked at load time.
package statusyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	xgxstatus "github.com/xgx-io/xgx-status"
)

var (
	// ErrUnknownName is returned when the file names an error the names table
	// does not know.
	ErrUnknownName = errors.New("statusyaml: unknown error name")
	// ErrMissingMessage is returned for an entry without a message.
	ErrMissingMessage = errors.New("statusyaml: entry has no message")
	// ErrDuplicateName is returned when two entries resolve to the same
	// enum value.
	ErrDuplicateName = errors.New("statusyaml: entries share an enum value")
)

type entry struct {
	Code        *int   `yaml:"code"`
	Group       string `yaml:"group"`
	Member      string `yaml:"member"`
	Message     string `yaml:"message"`
	UserMessage string `yaml:"user_message"`
}

type catalogFile struct {
	Errors map[string]entry `yaml:"errors"`
}

// LoadCatalog reads a catalog from r. Unknown top-level or entry keys are
// rejected, as are names missing from names and entries whose names map to
// the same value. An entry without a code gets
// xgxstatus.CodeUnset. Empty input yields an empty Catalog.
func LoadCatalog[E comparable](r io.Reader, names map[string]E) (*xgxstatus.Catalog[E], error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse error catalog: %w", err)
	}

	keys := make([]string, 0, len(f.Errors))
	for k := range f.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make(map[E]xgxstatus.Template, len(f.Errors))
	seen := make(map[E]string, len(f.Errors))
	for _, name := range keys {
		e := f.Errors[name]
		key, ok := names[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
		}
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateName, prev, name)
		}
		seen[key] = name
		if e.Message == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingMessage, name)
		}
		code := xgxstatus.CodeUnset
		if e.Code != nil {
			code = *e.Code
		}
		entries[key] = xgxstatus.Template{
			Code:        code,
			Group:       e.Group,
			Member:      e.Member,
			Message:     e.Message,
			UserMessage: e.UserMessage,
		}
	}
	return xgxstatus.NewCatalog(entries), nil
}

// LoadCatalogFile reads a catalog from the file at path.
func LoadCatalogFile[E comparable](path string, names map[string]E) (*xgxstatus.Catalog[E], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read error catalog %s: %w", path, err)
	}
	c, err := LoadCatalog(bytes.NewReader(data), names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
