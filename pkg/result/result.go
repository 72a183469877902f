package result

import "net/http"

// Type classifies the outcome of a repository or adapter operation.
type Type string

const (
	Success       Type = "success"
	NotFound      Type = "notFound"
	InvalidData   Type = "invalidData"
	InternalError Type = "internalError"
)

// Result wraps an operation outcome together with its data. Expected,
// recoverable failures (missing id, invalid input) travel through Result
// instead of error so every entity shares one failure taxonomy.
type Result[T any] struct {
	Type    Type
	Data    T
	Message string
}

// Ok returns a successful Result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{Type: Success, Data: data}
}

// Fail returns a non-success Result of the given type. Data is left zero.
func Fail[T any](t Type, message string) Result[T] {
	return Result[T]{Type: t, Message: message}
}

func (r Result[T]) OK() bool {
	return r.Type == Success
}

// AsError converts a non-success Result to the user-facing error carrying
// the same classification. Returns nil for Success.
func (r Result[T]) AsError() error {
	if r.Type == Success {
		return nil
	}
	return &Error{Type: r.Type, Message: r.Message}
}

// Status is the outcome of a void operation (soft-remove, remove, grant).
type Status struct {
	Type    Type
	Message string
}

// Done returns a successful Status.
func Done() Status {
	return Status{Type: Success}
}

// FailStatus returns a non-success Status of the given type.
func FailStatus(t Type, message string) Status {
	return Status{Type: t, Message: message}
}

func (s Status) OK() bool {
	return s.Type == Success
}

func (s Status) AsError() error {
	if s.Type == Success {
		return nil
	}
	return &Error{Type: s.Type, Message: s.Message}
}

// Error is the single user-facing error kind raised by the service layer
// whenever an adapter outcome is not Success. It is caught exactly once, at
// the HTTP boundary, and translated to a status code and body.
type Error struct {
	Type    Type
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Type)
}

// HTTPStatus maps an outcome type to the HTTP status written by the error
// filter. Unrecognized types map to 500.
func HTTPStatus(t Type) int {
	switch t {
	case InvalidData:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
