// codes.go — error templates and static catalogs for xgx-status.
//
// Intent:
//   - Let projects declare canonical errors once (code, group, member, message
//     formats) and stamp out Error values from them.
//   - Keep the mapping static: an enum type either implements Templated or is
//     registered in a Catalog built in code. No reflection, no struct tags.
//
// Formatting:
//   - Message formats use positional placeholders: "{0}", "{1}", ...
//   - With no arguments the format is returned verbatim.
//   - Placeholders without a matching argument are left untouched; formatting
//     never fails.
package xgxstatus

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTemplate is returned when an enum value has no associated template.
var ErrInvalidTemplate = errors.New("xgxstatus: no error template for value")

// Template is the canonical description of an error kind.
type Template struct {
	Code        int
	Group       string
	Member      string
	Message     string
	UserMessage string
}

// FormatMessage substitutes args into the message format.
func (t Template) FormatMessage(args ...string) string {
	return formatPositional(t.Message, args)
}

// FormatUserMessage substitutes args into the user message format, falling
// back to the message format when no user message was declared.
func (t Template) FormatUserMessage(args ...string) string {
	if t.UserMessage == "" {
		return formatPositional(t.Message, args)
	}
	return formatPositional(t.UserMessage, args)
}

// New builds an Error from the template, formatting both messages with args.
func (t Template) New(args ...string) Error {
	return Error{
		code:    t.Code,
		group:   t.Group,
		member:  t.Member,
		message: t.FormatMessage(args...),
		userMsg: t.FormatUserMessage(args...),
	}
}

// NewWithMessage builds an Error from the template but uses the supplied
// messages instead of the template's formats.
func (t Template) NewWithMessage(message, userMessage string) Error {
	return Error{
		code:    t.Code,
		group:   t.Group,
		member:  t.Member,
		message: message,
		userMsg: userMessage,
	}
}

// Templated is implemented by enum-like types that map each value to a
// Template. The boolean reports whether the value has one.
//
// Usage
//
//	type UserErr int
//
//	const (
//	    UserNotFound UserErr = iota
//	    UserLocked
//	)
//
//	func (e UserErr) ErrorTemplate() (xgxstatus.Template, bool) {
//	    switch e {
//	    case UserNotFound:
//	        return xgxstatus.Template{Code: 404, Group: "users", Message: "Entity {0} not found"}, true
//	    case UserLocked:
//	        return xgxstatus.Template{Code: 423, Group: "users", Message: "user {0} is locked"}, true
//	    }
//	    return xgxstatus.Template{}, false
//	}
type Templated interface {
	ErrorTemplate() (Template, bool)
}

// FromTemplate builds an Error from the template associated with e.
// It returns ErrInvalidTemplate if e has none.
func FromTemplate[E Templated](e E, args ...string) (Error, error) {
	t, ok := e.ErrorTemplate()
	if !ok {
		return Error{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, e)
	}
	return t.New(args...), nil
}

// FromTemplateWithMessage is like FromTemplate but bypasses formatting and uses
// the supplied messages.
func FromTemplateWithMessage[E Templated](e E, message, userMessage string) (Error, error) {
	t, ok := e.ErrorTemplate()
	if !ok {
		return Error{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, e)
	}
	return t.NewWithMessage(message, userMessage), nil
}

// Catalog is a static table from enum values to templates. Build it once,
// typically at package level, and share it; it is read-only after NewCatalog.
type Catalog[E comparable] struct {
	entries map[E]Template
}

// NewCatalog copies entries into a new Catalog.
func NewCatalog[E comparable](entries map[E]Template) *Catalog[E] {
	m := make(map[E]Template, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &Catalog[E]{entries: m}
}

// Len returns the number of registered templates.
func (c *Catalog[E]) Len() int { return len(c.entries) }

// Lookup returns the template registered for e.
func (c *Catalog[E]) Lookup(e E) (Template, bool) {
	t, ok := c.entries[e]
	return t, ok
}

// Error builds an Error for e, formatting messages with args.
func (c *Catalog[E]) Error(e E, args ...string) (Error, error) {
	t, ok := c.entries[e]
	if !ok {
		return Error{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, e)
	}
	return t.New(args...), nil
}

// ErrorWithMessage builds an Error for e using the supplied messages.
func (c *Catalog[E]) ErrorWithMessage(e E, message, userMessage string) (Error, error) {
	t, ok := c.entries[e]
	if !ok {
		return Error{}, fmt.Errorf("%w: %v", ErrInvalidTemplate, e)
	}
	return t.NewWithMessage(message, userMessage), nil
}

// MustError is like Error but panics when e is not registered.
//
// Use sparingly. It is intended for tests and for catalogs whose coverage is
// checked at init, where a missing entry is a programming error.
func (c *Catalog[E]) MustError(e E, args ...string) Error {
	out, err := c.Error(e, args...)
	if err != nil {
		panic(err)
	}
	return out
}

// formatPositional replaces "{i}" with args[i]. It returns format unchanged
// when args is empty.
func formatPositional(format string, args []string) string {
	if len(args) == 0 || !strings.Contains(format, "{") {
		return format
	}
	pairs := make([]string, 0, 2*len(args))
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", a)
	}
	return strings.NewReplacer(pairs...).Replace(format)
}
