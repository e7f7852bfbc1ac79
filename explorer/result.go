package explorer

// Result is the outcome of a single explorer API call.
//
// A successful call carries the decoded JSON payload in Value, an object,
// an array, or a scalar, depending on the endpoint. The explorer API does
// not guarantee a stable shape, so Value is left untyped and consumers are
// expected to probe it defensively.
//
// A failed call carries the failure reason in Err instead of a payload.
// Formatters short-circuit on failed results and render the reason.
type Result struct {
	Value any
	Err   string
}

// Failed reports whether the call behind this result failed
func (r *Result) Failed() bool {
	return r.Err != ""
}

// Object returns the payload as a JSON object, if it is one
func (r *Result) Object() (map[string]any, bool) {
	obj, ok := r.Value.(map[string]any)

	return obj, ok
}

// failedResult wraps an encountered error into a failed result
func failedResult(err error) *Result {
	return &Result{Err: err.Error()}
}
