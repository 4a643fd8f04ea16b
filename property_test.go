package xgxstatus

import (
	"errors"
	"reflect"
	"testing"
	"testing/quick"
)

func statusFrom(msgs []string, okMsg string) *Status {
	s := NewWithMessage(okMsg)
	for _, m := range msgs {
		s.AddError(m)
	}
	return s
}

func TestQuickMergeConcatenatesErrors(t *testing.T) {
	property := func(a, b []string) bool {
		sa, sb := statusFrom(a, "A"), statusFrom(b, "B")
		want := nilIfEmpty(append(sa.Errors(), sb.Errors()...))
		return reflect.DeepEqual(sa.Merge(sb).Errors(), want)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("merge should concatenate errors in order: %v", err)
	}
}

func TestQuickSuccessfulMergeAdoptsOtherMessage(t *testing.T) {
	property := func(ma, mb string) bool {
		a, b := NewWithMessage(ma), NewWithMessage(mb)
		want := b.Message()
		return a.Merge(b).Message() == want
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("successful merge should adopt the other message: %v", err)
	}
}

func TestQuickPayloadTieBreak(t *testing.T) {
	property := func(x, y int) bool {
		got := Ok(x).Merge(Ok(y)).Payload()
		if x != 0 {
			return got == x
		}
		return got == y
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("receiver payload should win, else adopt: %v", err)
	}
}

func TestQuickAddFaultVisibility(t *testing.T) {
	property := func(prior []string, msg string) bool {
		s := statusFrom(prior, "")
		e0, f0 := len(s.Errors()), len(s.Faults())
		s.AddFault(errors.New(msg))
		errs := s.Errors()
		return len(errs) == e0+1 && len(s.Faults()) == f0+1 && errs[len(errs)-1].Message() == msg
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("faults should surface as exactly one error: %v", err)
	}
}

func TestQuickAsTypedRoundTrip(t *testing.T) {
	property := func(msgs []string) bool {
		s := statusFrom(msgs, "ok")
		r := As[string](s)
		return reflect.DeepEqual(r.Errors(), s.Errors()) && !r.HasPayload()
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("As should carry errors and no payload: %v", err)
	}
}

func TestQuickErrorsOfRoundTrip(t *testing.T) {
	property := func(msgs []string, codes []int16) bool {
		s := New()
		for i, m := range msgs {
			code := CodeUnset
			if i < len(codes) {
				code = int(codes[i])
			}
			s.Add(NewError(m, WithCode(code)))
		}
		return reflect.DeepEqual(ErrorsOf(s.Err()), nilIfEmpty(s.Errors()))
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("ErrorsOf(Err()) should round-trip: %v", err)
	}
}

func TestQuickWrapperNeverPanics(t *testing.T) {
	property := func(msg string, keep bool) bool {
		var opts []InvokeOption
		if keep {
			opts = append(opts, KeepFault())
		}
		s := Invoke(func() error { panic(msg) }, opts...)
		return s.HasErrors() && s.HasFaults() == keep
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("wrappers should contain every panic: %v", err)
	}
}

func nilIfEmpty(errs []Error) []Error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}
