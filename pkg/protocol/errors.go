package protocol

// ValidationError reports a PATCH body that breaks the write rules. Its
// message is returned to the client unchanged.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
