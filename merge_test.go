package xgxstatus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_SuccessAdoptsOtherMessage(t *testing.T) {
	a := NewWithMessage("A done")
	b := NewWithMessage("B done")
	a.Merge(b)
	assert.Equal(t, "B done", a.Message())
	assert.True(t, a.Success())

	// The other side's default message replaces a custom one too.
	c := NewWithMessage("C done").Merge(New())
	assert.Equal(t, DefaultSuccessMessage, c.Message())
}

func TestMerge_ErrorsThenFaults(t *testing.T) {
	f := errors.New("fault")
	a := Fail("a1")
	b := Fail("b1").AddFault(f)

	a.Merge(b)
	assert.Equal(t, []string{"a1", "b1", "fault"}, errorMessages(a))
	require.Len(t, a.Faults(), 1)
	assert.Same(t, f, a.Faults()[0])
	assert.Equal(t, "Failed with 3 error(s)", a.Message())
}

func TestMerge_FailingOtherKeepsReceiverMessage(t *testing.T) {
	a := NewWithMessage("A done").Merge(Fail("x"))
	assert.Equal(t, "Failed with 1 error(s)", a.Message())

	// Once the errors are gone from view the stored message is still A's.
	assert.Equal(t, "A done", a.successMsg)
}

func TestMerge_NotDeduplicated(t *testing.T) {
	b := Fail("b")
	a := New().Merge(b).Merge(b)
	assert.Equal(t, []string{"b", "b"}, errorMessages(a))
}

func TestMerge_NilIsNoop(t *testing.T) {
	var nilStatus *Status
	var nilResult *Result[int]
	a := NewWithMessage("keep").Merge(nil).Merge(nilStatus).Merge(nilResult)
	assert.Equal(t, "keep", a.Message())
	assert.True(t, a.Success())

	r := Ok(1).Merge(nilResult)
	assert.Equal(t, 1, r.Payload())
}

func TestMerge_CopiesEntries(t *testing.T) {
	b := Fail("b")
	a := New().Merge(b)
	b.AddError("later")
	assert.Len(t, a.Errors(), 1)
}

func TestMerge_PayloadTieBreak(t *testing.T) {
	r := Ok(5).Merge(Ok(7))
	assert.Equal(t, 5, r.Payload())
}

func TestMerge_PayloadAdoption(t *testing.T) {
	r := NewResult[int]().Merge(Ok(7))
	assert.Equal(t, 7, r.Payload())

	// Adoption also happens when the other side failed.
	r = NewResult[int]().Merge(Ok(7).AddError("x"))
	assert.Equal(t, 7, r.Payload())
	assert.True(t, r.HasErrors())
}

func TestMerge_StatusIntoResultKeepsPayload(t *testing.T) {
	r := Ok("v").Merge(Fail("x"))
	assert.Equal(t, "v", r.Payload())
	assert.Len(t, r.Errors(), 1)
}

func TestMerge_DifferentPayloadTypeNotAdopted(t *testing.T) {
	r := NewResult[int]().Merge(Ok("seven"))
	assert.False(t, r.HasPayload())
}

func TestMergeInto(t *testing.T) {
	dst := New()
	got := Fail("a").MergeInto(dst)
	assert.Same(t, dst, got)
	assert.Len(t, dst.Errors(), 1)

	rdst := NewResult[int]()
	Ok(3).MergeInto(rdst)
	assert.Equal(t, 3, rdst.Payload())

	sdst := New()
	assert.Equal(t, 4, Ok(4).AddError("e").MergeIntoStatus(sdst))
	assert.Len(t, sdst.Errors(), 1)

	generic := MergeInto(Fail("g"), NewResult[bool]())
	assert.Len(t, generic.Errors(), 1)
}

func TestAs_RoundTrip(t *testing.T) {
	s := Fail("a").AddFault(errors.New("f")).SetMessage("m")
	r := As[int](s)
	assert.Equal(t, s.Errors(), r.Errors())
	assert.Equal(t, s.Faults(), r.Faults())
	assert.False(t, r.HasPayload())

	back := r.ToStatus()
	assert.Equal(t, s.Errors(), back.Errors())
	assert.Equal(t, s.Message(), back.Message())
}

func TestAs_SuccessMessageCarried(t *testing.T) {
	r := As[string](NewWithMessage("created"))
	assert.Equal(t, "created", r.Message())
	assert.True(t, r.Success())
}

func TestWithPayload(t *testing.T) {
	r := WithPayload(NewWithMessage("ok"), 42)
	assert.Equal(t, 42, r.Payload())
	assert.Equal(t, "ok", r.Message())
}

func TestConvert_NewPayloadNeverDisplaced(t *testing.T) {
	src := Ok(5).AddError("warn")
	out := Convert(src, "five")
	assert.Equal(t, "five", out.Payload())
	assert.Equal(t, []string{"warn"}, errorMessages(out))
}

func TestConvertWith(t *testing.T) {
	out := ConvertWith(OkWithMessage(21, "fetched"), func(v int) (string, error) {
		return string(rune('A' + v%26)), nil
	})
	assert.Equal(t, "V", out.Payload())
	assert.Equal(t, "fetched", out.Message())

	called := false
	out = ConvertWith(Failed[int]("missing"), func(int) (string, error) {
		called = true
		return "x", nil
	})
	assert.False(t, called, "fn runs only with a payload")
	assert.False(t, out.HasPayload())

	out = ConvertWith(Ok(1), func(int) (string, error) { return "", errors.New("bad shape") })
	assert.Equal(t, []string{"bad shape"}, errorMessages(out))
}

func TestToStatus_DropsPayload(t *testing.T) {
	s := OkWithMessage(3, "three").ToStatus()
	assert.Equal(t, "three", s.Message())
	assert.True(t, s.Success())
}

func TestConvertWith_NilSource(t *testing.T) {
	var src *Result[int]
	called := false
	out := ConvertWith(src, func(int) (string, error) { called = true; return "x", nil })
	assert.False(t, called)
	assert.True(t, out.Success())
	assert.False(t, out.HasPayload())
}

func TestConvertWith_FailureDropsPayload(t *testing.T) {
	out := ConvertWith(OkWithMessage(5, "five"), func(int) (int, error) { return 0, errors.New("overflow") })
	assert.False(t, out.HasPayload())
	assert.Equal(t, []string{"overflow"}, errorMessages(out))

	same := ConvertWith(Ok(5), func(int) (int, error) { return 0, nil })
	assert.Zero(t, same.Payload(), "fn's result replaces the source payload")
}
