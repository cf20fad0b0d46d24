package errs

import (
	"errors"
	"fmt"
	"os"
)

// Kind classifies an error into one of the failure kinds the exercises handle.
type Kind int

const (
	KindUnknown Kind = iota
	KindArgumentCount
	KindFileNotFound
	KindDecode
	KindHTTPStatus
	KindInput
)

func (k Kind) String() string {
	switch k {
	case KindArgumentCount:
		return "argument-count"
	case KindFileNotFound:
		return "file-not-found"
	case KindDecode:
		return "decode"
	case KindHTTPStatus:
		return "http-status"
	case KindInput:
		return "input"
	default:
		return "unknown"
	}
}

// ArgumentCountError reports a wrong number of positional arguments.
type ArgumentCountError struct {
	Want  int
	Got   int
	Usage string
}

func (e *ArgumentCountError) Error() string {
	if e.Usage != "" {
		return e.Usage
	}
	return fmt.Sprintf("expected %d argument(s), got %d", e.Want, e.Got)
}

// FileNotFoundError reports a file that does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// Unwrap lets errors.Is(err, os.ErrNotExist) keep working.
func (e *FileNotFoundError) Unwrap() error {
	return os.ErrNotExist
}

// DecodeError reports a payload or file that could not be decoded.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("decode %s", e.Source)
	}
	return fmt.Sprintf("decode %s: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a response whose status was not 200.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// InputError reports user input that is malformed or out of range.
type InputError struct {
	Field  string
	Input  string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Input)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first typed error in err's chain.
func KindOf(err error) Kind {
	var (
		argErr    *ArgumentCountError
		fileErr   *FileNotFoundError
		decodeErr *DecodeError
		statusErr *HTTPStatusError
		inputErr  *InputError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &argErr):
		return KindArgumentCount
	case errors.As(err, &fileErr):
		return KindFileNotFound
	case errors.As(err, &statusErr):
		return KindHTTPStatus
	case errors.As(err, &decodeErr):
		return KindDecode
	case errors.As(err, &inputErr):
		return KindInput
	default:
		return KindUnknown
	}
}

// NotFound converts an os.ErrNotExist into a FileNotFoundError and returns
// any other error unchanged.
func NotFound(path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return &FileNotFoundError{Path: path}
	}
	return err
}
