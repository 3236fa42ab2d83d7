package response

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/creativeprojects/imapresp/record"
)

var (
	ErrInvalid           = errors.New("invalid response")
	ErrUnexpected        = errors.New("unexpected response")
	ErrAuthentication    = errors.New("invalid authentication response")
	ErrProtocolViolation = errors.New("protocol violation")
)

const excerptLength = 64

// InvalidError is returned when the bytes cannot be read as a server response.
type InvalidError struct {
	// Data is a copy of the bytes that could not be parsed.
	Data []byte
	Err  error
}

func newInvalidError(data []byte, err error) *InvalidError {
	return &InvalidError{
		Data: append([]byte(nil), data...),
		Err:  err,
	}
}

func (e *InvalidError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", ErrInvalid, excerpt(e.Data))
	}
	return fmt.Sprintf("%s: %q: %s", ErrInvalid, excerpt(e.Data), e.Err)
}

func (e *InvalidError) Unwrap() error {
	return e.Err
}

func (e *InvalidError) Is(target error) bool {
	return target == ErrInvalid
}

// UnexpectedError is returned for a well-formed response that has no place
// in what is being parsed.
type UnexpectedError struct {
	Record record.Record
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnexpected, excerpt(e.Record.Raw()))
}

func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}

// AuthenticationError is returned when a line is not a continuation request.
type AuthenticationError struct {
	Line string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s: %q", ErrAuthentication, excerpt([]byte(e.Line)))
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// ProtocolError is returned when the server answered a mailbox selection with
// an untagged status other than OK. The mailbox state cannot be trusted:
// the operation must be aborted, not retried.
type ProtocolError struct {
	Status *record.Status
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: untagged %s in mailbox status: %q", ErrProtocolViolation, e.Status.Type, excerpt(e.Status.Raw()))
}

func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocolViolation
}

func excerpt(data []byte) string {
	data = bytes.TrimRight(data, "\r\n")
	if len(data) > excerptLength {
		return string(data[:excerptLength]) + "..."
	}
	return string(data)
}
