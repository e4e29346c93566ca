package util

// Unwrap strips stack trace wrappers like github.com/facebookgo/stackerr.Error.
func Unwrap(err error) error {
	type hasUnderlying interface {
		Underlying() error
	}
	for {
		eh, ok := err.(hasUnderlying)
		if !ok {
			return err
		}
		err = eh.Underlying()
	}
}
