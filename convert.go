// convert.go — explicit conversions between outcome kinds and payload types.
//
// There are no implicit conversions. Each function below names the direction:
//
//	As[T](s)            Status/Result -> Result[T], no payload set
//	WithPayload(s, v)   Status/Result -> Result[T] carrying v
//	Convert(r, v)       Result[T]     -> Result[U] carrying v
//	ConvertWith(r, fn)  Result[T]     -> Result[U] carrying fn(payload)
//	r.ToStatus()        Result[T]     -> Status (payload dropped)
package xgxstatus

// As returns a new Result[T] with src merged into it. If src is itself a
// Result[T] with a payload, that payload is adopted by the merge; a Status
// source never sets one.
func As[T any](src Reader) *Result[T] {
	return NewResult[T]().Merge(src)
}

// WithPayload is As followed by SetPayload(v).
func WithPayload[T any](src Reader, v T) *Result[T] {
	return As[T](src).SetPayload(v)
}

// Convert returns a new Result[U] seeded with v and merges r into it. Errors,
// faults and message move across; v is kept because the fresh Result already
// holds a payload when the merge runs.
func Convert[T, U any](r *Result[T], v U) *Result[U] {
	return Ok(v).Merge(r)
}

// ConvertWith translates r's payload with fn and returns the Result[U].
// fn is only called when r has a payload; otherwise the new Result carries
// U's zero value. An error from fn is appended as an Error and the new
// Result has no payload. A nil r gives an empty Result[U].
//
// fn is typically a mapping function (see package statusmap).
func ConvertWith[T, U any](r *Result[T], fn func(T) (U, error)) *Result[U] {
	out := NewResult[U]()
	if r == nil {
		return out
	}
	// Only errors, faults and message move across; r's payload never does.
	out.merge(r)
	if !r.HasPayload() {
		return out
	}
	v, err := fn(r.payload)
	if err != nil {
		return out.AddError(err.Error())
	}
	return out.SetPayload(v)
}
