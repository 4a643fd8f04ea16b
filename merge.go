// merge.go — the merge protocol shared by Status and Result[T].
//
// Rules (normative):
//   - Errors then faults of the other side are appended, in their order.
//     Nothing is deduplicated; merging the same outcome twice doubles it.
//   - If the receiver has no errors after appending (neither side had any),
//     the receiver's success message becomes other.Message(). A successful
//     merge therefore always adopts the OTHER side's message; chain merges
//     left to right when message provenance matters.
//   - Payloads (Result[T] only): a receiver without a payload adopts the
//     other side's payload; a receiver that has one keeps it. The receiver
//     wins ties. This is the one asymmetry in the protocol.
//   - Entries are copied. No references into the other side are retained.
//   - Merging a nil Reader (or a typed nil pointer) is a no-op.
package xgxstatus

import "reflect"

// payloadHolder is implemented by *Result[T].
type payloadHolder[T any] interface {
	Payload() T
	HasPayload() bool
}

func (c *core) merge(other Reader) {
	if IsNil(other) {
		return
	}
	c.errs = append(c.errs, other.Errors()...)
	c.faults = append(c.faults, other.Faults()...)
	if len(c.errs) == 0 {
		c.successMsg = other.Message()
	}
}

// MergeInto merges src into dst and returns dst. It is the free-function
// form of src.MergeInto(dst) for any pairing of outcome kinds.
func MergeInto[S Accumulator[S]](src Reader, dst S) S {
	return dst.Merge(src)
}

// IsNil reports whether r is nil or a typed nil pointer such as
// (*Status)(nil). Merge and the predicates treat such a reader as absent.
func IsNil(r Reader) bool {
	if r == nil {
		return true
	}
	rv := reflect.ValueOf(r)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// isZero reports whether v equals the zero value of T. It works for every T,
// including non-comparable ones, by going through reflection.
func isZero[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}
