// Package statuszap logs outcomes and contained faults with zap.
//
// The core package stays logging-free; this adapter turns a Status or Result
// into a structured zap object and offers an invoke option that logs every
// fault a wrapper contains.
package statuszap

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxstatus "github.com/xgx-io/xgx-status"
)

// Marshaler returns a zapcore.ObjectMarshaler for r. The object carries
// success, message, errors (code, group, member, message, user_message) and
// fault messages.
func Marshaler(r xgxstatus.Reader) zapcore.ObjectMarshaler {
	return outcome{r: r}
}

// Field returns a zap field holding r under key.
func Field(key string, r xgxstatus.Reader) zap.Field {
	return zap.Object(key, Marshaler(r))
}

// Log writes r to logger under msg. Level follows the outcome: Info on
// success, Warn with errors, Error when faults were retained. A nil logger
// or a nil r is a no-op.
func Log(logger *zap.SugaredLogger, msg string, r xgxstatus.Reader, keysAndValues ...any) {
	if logger == nil || xgxstatus.IsNil(r) {
		return
	}
	kv := append(keysAndValues[:len(keysAndValues):len(keysAndValues)], "outcome", Marshaler(r))
	switch {
	case r.HasFaults():
		logger.Errorw(msg, kv...)
	case r.HasErrors():
		logger.Warnw(msg, kv...)
	default:
		logger.Infow(msg, kv...)
	}
}

// LogFaults returns an invoke option that logs each contained fault at error
// level. Recovered panics also log the panic value and the stack.
func LogFaults(logger *zap.SugaredLogger, operation string) xgxstatus.InvokeOption {
	return xgxstatus.OnFault(func(err error) {
		if logger == nil {
			return
		}
		var p *xgxstatus.PanicError
		if errors.As(err, &p) {
			logger.Errorw("Panic contained",
				"operation", operation,
				"panic", fmt.Sprint(p.Value),
				"stack", stackString(p.Stack))
			return
		}
		logger.Errorw("Fault contained",
			"operation", operation,
			"error", err.Error())
	})
}

type outcome struct {
	r xgxstatus.Reader
}

func (o outcome) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if xgxstatus.IsNil(o.r) {
		return nil
	}
	enc.AddBool("success", o.r.Success())
	enc.AddString("message", o.r.Message())
	if errs := o.r.Errors(); len(errs) > 0 {
		if err := enc.AddArray("errors", errorArray(errs)); err != nil {
			return err
		}
	}
	if faults := o.r.Faults(); len(faults) > 0 {
		if err := enc.AddArray("faults", faultArray(faults)); err != nil {
			return err
		}
	}
	return nil
}

type errorArray []xgxstatus.Error

func (a errorArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range a {
		if err := enc.AppendObject(errorObject{e: e}); err != nil {
			return err
		}
	}
	return nil
}

type errorObject struct {
	e xgxstatus.Error
}

func (o errorObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if o.e.Code() != xgxstatus.CodeUnset {
		enc.AddInt("code", o.e.Code())
	}
	if g := o.e.Group(); g != "" {
		enc.AddString("group", g)
	}
	if m := o.e.Member(); m != "" {
		enc.AddString("member", m)
	}
	enc.AddString("message", o.e.Message())
	if u := o.e.UserMessage(); u != o.e.Message() {
		enc.AddString("user_message", u)
	}
	return nil
}

type faultArray []error

func (a faultArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range a {
		enc.AppendString(f.Error())
	}
	return nil
}

func stackString(st xgxstatus.Stack) string {
	var b strings.Builder
	for i, fr := range st {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n\t%s:%d", fr.Function, fr.File, fr.Line)
	}
	return b.String()
}
