package vo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration       = errors.New("configuration error")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrCategoryResolution  = errors.New("category resolution failed")
	ErrRemoteAPI           = errors.New("remote api error")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMassiveLoadNotFound = errors.New("massive load not found")
	ErrMassiveLoadClosed   = errors.New("massive load is closed")
)

// ConfigurationError reports a required configuration field that is missing
// or unusable. Client construction never succeeds past one of these.
type ConfigurationError struct {
	Field  string
	Reason string
}

func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("configuration: %s is required", e.Field)
	}
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// InvalidArgumentError reports an empty or malformed caller-supplied parameter.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func NewInvalidArgumentError(argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Reason: reason}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// CategoryResolutionError lists the category names that did not match the
// community thesaurus.
type CategoryResolutionError struct {
	Community string
	Names     []string
}

func NewCategoryResolutionError(community string, names ...string) *CategoryResolutionError {
	return &CategoryResolutionError{Community: community, Names: names}
}

func (e *CategoryResolutionError) Error() string {
	return fmt.Sprintf(
		"category resolution: %d categories do not belong to the thesaurus of %q: %s",
		len(e.Names), e.Community, strings.Join(e.Names, ", "),
	)
}

func (e *CategoryResolutionError) Unwrap() error { return ErrCategoryResolution }

// RemoteAPIError carries the error text returned by the GNOSS API on a
// non-success response.
type RemoteAPIError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
}

func (e *RemoteAPIError) Error() string {
	return e.Message
}

func (e *RemoteAPIError) Unwrap() error { return ErrRemoteAPI }
