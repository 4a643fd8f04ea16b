// Package statusmap converts Result payloads between shapes with
// go-viper/mapstructure.
//
// Map is the mapping form of xgxstatus.ConvertWith: errors, faults and the
// message move across unchanged, the payload is decoded into the target
// type, and a decode failure is appended as an Error.
package statusmap

import (
	"github.com/go-viper/mapstructure/v2"

	xgxstatus "github.com/xgx-io/xgx-status"
)

// Option configures the decoder.
type Option func(*mapstructure.DecoderConfig)

// WeaklyTyped enables mapstructure's weak conversions ("42" → 42, etc.).
func WeaklyTyped() Option {
	return func(c *mapstructure.DecoderConfig) { c.WeaklyTypedInput = true }
}

// TagName sets the struct tag consulted for field names (default
// "mapstructure").
func TagName(name string) Option {
	return func(c *mapstructure.DecoderConfig) { c.TagName = name }
}

// ErrorUnused fails the decode when the input has keys the target ignores.
func ErrorUnused() Option {
	return func(c *mapstructure.DecoderConfig) { c.ErrorUnused = true }
}

// WithHook installs a mapstructure decode hook.
func WithHook(hook mapstructure.DecodeHookFunc) Option {
	return func(c *mapstructure.DecoderConfig) { c.DecodeHook = hook }
}

// Map returns a Result[To] whose payload is r's payload decoded into To.
// Without a payload the decoder is not run and the new Result carries To's
// zero value.
func Map[From, To any](r *xgxstatus.Result[From], opts ...Option) *xgxstatus.Result[To] {
	return xgxstatus.ConvertWith(r, func(from From) (To, error) {
		return Decode[To](from, opts...)
	})
}

// Decode decodes input into a new To.
func Decode[To any](input any, opts ...Option) (To, error) {
	var out To
	cfg := &mapstructure.DecoderConfig{Result: &out}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return out, err
	}
	if err := dec.Decode(input); err != nil {
		var zero To
		return zero, err
	}
	return out, nil
}
