package http

import "fmt"

// StatusError reports that the transport returned a non-2xx status. It is
// raised before any body read, so no Response exists for the failed
// exchange.
type StatusError struct {
	Status int
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.Status, e.Reason)
}

// MissingFieldError reports a required response field that was never set
// on the builder when Build was called.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response builder: missing required field %q", e.Field)
}

// InvalidSchemeError reports an authorization scheme outside the closed
// set accepted by Authorization.Header.
type InvalidSchemeError struct {
	Scheme string
}

func (e *InvalidSchemeError) Error() string {
	return fmt.Sprintf("authorization: invalid scheme %q", e.Scheme)
}
