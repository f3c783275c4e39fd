package llm

import "fmt"

// APIError is a typed failure from a generation backend. The upstream
// message is carried verbatim and qualified with the provider name, so the
// operator can tell an auth failure from a quota failure from an outage.
type APIError struct {
	Provider   Provider
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s API error (status %d): %s", Name(e.Provider), e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", Name(e.Provider), e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
