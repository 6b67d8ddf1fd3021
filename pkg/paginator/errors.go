package paginator

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidArgument is returned when a setter receives a value outside its
// accepted range. It is wrapped with the offending value; compare with errors.Is.
const ErrInvalidArgument = constError("invalid argument")
