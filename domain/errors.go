package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput      = errors.New("Given Param is not valid")
	ErrUnsupportedSchema  = errors.New("Unsupported schema")
	ErrUnsupportedNetwork = errors.New("unsupported network")
	ErrInvalidAddress     = errors.New("Invalid address")

	// resolution errors
	ErrNoAddress    = errors.New("no address provided")
	ErrFetch        = errors.New("failed to fetch metadata")
	ErrDecode       = errors.New("invalid JSON format")
	ErrContractRead = errors.New("failed to read contract")
)

// HttpStatusError is returned by readers for any non-2xx response
type HttpStatusError struct {
	Url        string
	StatusCode int
}

func (e *HttpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.Url)
}

// FetchError wraps every failure to retrieve a resource. errors.Is(err, ErrFetch) holds for it.
type FetchError struct {
	Url string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFetch.Error(), e.Url, e.Err)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusCode of the underlying response, 0 for network level failures
func (e *FetchError) StatusCode() int {
	var statusErr *HttpStatusError
	if errors.As(e.Err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}
