package contracts

import "fmt"

// TransportError reports a request that never produced an HTTP response:
// dial failures, broken connections, cancelled contexts. The underlying
// cause is available through errors.Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lancedb: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError reports a non-success response from the LanceDB Cloud API
// that does not map to a more specific error. Body holds the raw response
// payload so nothing the server said is lost.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("lancedb: server error (status %d): %s", e.StatusCode, e.Body)
}

// TableAlreadyExistsError is returned by CreateTable when the named table
// already exists in the database.
type TableAlreadyExistsError struct {
	Name string
}

func (e *TableAlreadyExistsError) Error() string {
	return fmt.Sprintf("lancedb: table %q already exists", e.Name)
}

// TableNotFoundError is returned by OpenTable when the named table does not
// exist in the database.
type TableNotFoundError struct {
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("lancedb: table %q not found", e.Name)
}

// InvalidInputError reports a request the server rejected as malformed, or
// arguments rejected before any request was sent.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("lancedb: invalid input: %s", e.Message)
}

// NotSupportedError reports an operation the remote API does not offer.
type NotSupportedError struct {
	Message string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("lancedb: not supported: %s", e.Message)
}
