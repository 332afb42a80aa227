package akapi

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the entity does not exist in Authentik.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// AlreadyExistsError indicates the entity already exists in Authentik.
// Most call sites treat this as success since creates are idempotent.
type AlreadyExistsError struct {
	Resource string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Resource)
}

// ForbiddenError indicates the bearer token was rejected. This drives the
// token fallback in the auth resolver.
type ForbiddenError struct {
	Resource string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("access to %s denied", e.Resource)
}

// UnexpectedStatusError covers every status code not mapped to a more
// specific error kind.
type UnexpectedStatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s %s: %s", e.Status, e.Method, e.Path, e.Body)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}

func IsForbidden(err error) bool {
	var f *ForbiddenError
	return errors.As(err, &f)
}
