package graph

import (
	"fmt"

	"github.com/garagehq/garage/internal/ident"
)

// Error codes reported in the extensions of a GraphQL error.
const (
	CodeInvalidIdentifier     = "INVALID_IDENTIFIER"
	CodeInvalidRange          = "INVALID_RANGE"
	CodeEnrichmentUnavailable = "ENRICHMENT_UNAVAILABLE"
)

// requestError is a resolver failure carrying a machine-readable code. It
// surfaces in the response's errors list with an extensions.code entry.
type requestError struct {
	code string
	err  error
}

func (e *requestError) Error() string {
	return e.err.Error()
}

func (e *requestError) Unwrap() error {
	return e.err
}

// Extensions implements the ResolverError extension hook of graphql-go.
func (e *requestError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func errInvalidID(id string) error {
	return &requestError{
		code: CodeInvalidIdentifier,
		err:  fmt.Errorf("%w: %q", ident.ErrInvalidID, id),
	}
}

func errInvalidRange(startYear, endYear int32) error {
	return &requestError{
		code: CodeInvalidRange,
		err:  fmt.Errorf("invalid year range: start %d is after end %d", startYear, endYear),
	}
}

func errEnrichment(err error) error {
	return &requestError{code: CodeEnrichmentUnavailable, err: err}
}
