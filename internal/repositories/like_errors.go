package repositories

import "fmt"

// LikeErrorCode enumerates failure reasons for like counter operations.
type LikeErrorCode string

const (
	// LikeErrorUnknown represents an unspecified failure.
	LikeErrorUnknown LikeErrorCode = "like_unknown"
	// LikeErrorInvalidInput indicates the caller supplied invalid arguments.
	LikeErrorInvalidInput LikeErrorCode = "like_invalid_input"
	// LikeErrorUnavailable indicates the backing store could not be reached.
	LikeErrorUnavailable LikeErrorCode = "like_unavailable"
)

// LikeError wraps counter failures with machine readable codes.
type LikeError struct {
	Op      string
	Code    LikeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LikeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap exposes the underlying error, if any.
func (e *LikeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewLikeError constructs a typed like counter error.
func NewLikeError(code LikeErrorCode, message string, err error) *LikeError {
	if message == "" {
		message = string(code)
	}
	return &LikeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
