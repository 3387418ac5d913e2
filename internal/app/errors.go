package app

// InitError reports a failure to set up configuration or a presenter. It is
// always returned before the first generation runs.
type InitError struct {
	Op  string
	Err error
}

func (e *InitError) Error() string {
	if e.Err == nil {
		return e.Op + ": initialization failed"
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap exposes the underlying cause.
func (e *InitError) Unwrap() error { return e.Err }
