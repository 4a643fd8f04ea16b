// Package statusvalidate records go-playground/validator failures as
// member-tagged Errors.
package statusvalidate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	xgxstatus "github.com/xgx-io/xgx-status"
)

// DefaultGroup is the group assigned to validation Errors.
const DefaultGroup = "validation"

// Validator wraps a *validator.Validate. Code and Group are stamped on every
// Error it produces.
type Validator struct {
	validate *validator.Validate
	Code     int
	Group    string
}

// New returns a Validator with a fresh validator.Validate.
func New() *Validator {
	return &Validator{
		validate: validator.New(),
		Code:     xgxstatus.CodeUnset,
		Group:    DefaultGroup,
	}
}

// Engine exposes the underlying validator, e.g. to register custom tags.
func (v *Validator) Engine() *validator.Validate { return v.validate }

// Struct validates obj and appends one Error per failing field to s.
func Struct[S xgxstatus.Accumulator[S]](v *Validator, s S, obj any) S {
	if err := v.validate.Struct(obj); err != nil {
		return s.AddErrors(v.Errors(err)...)
	}
	return s
}

// Var validates a single value against tag, tagging failures with member.
func Var[S xgxstatus.Accumulator[S]](v *Validator, s S, member string, value any, tag string) S {
	err := v.validate.Var(value, tag)
	if err == nil {
		return s
	}
	errs := v.Errors(err)
	for i, e := range errs {
		errs[i] = xgxstatus.NewError(e.Message(),
			xgxstatus.WithCode(e.Code()),
			xgxstatus.WithGroup(e.Group()),
			xgxstatus.WithMember(member),
			xgxstatus.WithUserMessage(fmt.Sprintf("%s is invalid", member)))
	}
	return s.AddErrors(errs...)
}

// Errors converts a validator error into Errors. Field failures carry the
// field name as member; any other error becomes a single Error.
func (v *Validator) Errors(err error) []xgxstatus.Error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []xgxstatus.Error{xgxstatus.NewError(err.Error(),
			xgxstatus.WithCode(v.Code),
			xgxstatus.WithGroup(v.Group))}
	}
	out := make([]xgxstatus.Error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, xgxstatus.NewError(fe.Error(),
			xgxstatus.WithCode(v.Code),
			xgxstatus.WithGroup(v.Group),
			xgxstatus.WithMember(fe.Field()),
			xgxstatus.WithUserMessage(fmt.Sprintf("%s is invalid", fe.Field()))))
	}
	return out
}
