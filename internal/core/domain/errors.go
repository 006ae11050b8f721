package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUpstreamUnavailable = errors.New("gym api unreachable")
var ErrSessionNotFound = errors.New("session not found")
var ErrForbidden = errors.New("access forbidden")
var ErrResourceNotFound = errors.New("resource not found")
var ErrCartEmpty = errors.New("cart is empty")
var ErrUnknownMembership = errors.New("unknown membership type")

// CredentialsError carries the upstream-provided rejection message, when any.
// It matches ErrInvalidCredentials under errors.Is.
type CredentialsError struct {
	Message string
}

func (e *CredentialsError) Error() string {
	if e.Message == "" {
		return ErrInvalidCredentials.Error()
	}
	return e.Message
}

func (e *CredentialsError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// UpstreamError wraps a non-2xx response from the gym API gateway.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gym api returned status %d", e.Status)
	}
	return e.Message
}

// Is lets a 404 response match ErrResourceNotFound, so callers keep the
// sentinel check while errors.As still reaches the status and message.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrResourceNotFound && e.Status == http.StatusNotFound
}
