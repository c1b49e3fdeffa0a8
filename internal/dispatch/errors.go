package dispatch

// ErrorCode classifies errors returned by the synchronous send entry points.
type ErrorCode string

const (
	CodeInvalidArgument ErrorCode = "invalid-argument"
	CodeNotFound        ErrorCode = "not-found"
	CodeInternal        ErrorCode = "internal"
)

// DispatchError is a classified error for callers of the direct send API.
type DispatchError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DispatchError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DispatchError) Unwrap() error { return e.Err }

func invalidArgument(msg string) *DispatchError {
	return &DispatchError{Code: CodeInvalidArgument, Message: msg}
}

func notFound(msg string) *DispatchError {
	return &DispatchError{Code: CodeNotFound, Message: msg}
}

func internalError(msg string, err error) *DispatchError {
	return &DispatchError{Code: CodeInternal, Message: msg, Err: err}
}
