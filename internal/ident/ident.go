// Package ident converts between the external string form of record
// identifiers and the ObjectID form the document store uses. Every id that
// crosses the resolver boundary goes through this package, in both directions.
package ident

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID indicates a string that is not a well-formed storage identifier.
var ErrInvalidID = errors.New("invalid identifier")

// Decode parses the external string form of an identifier into its storage
// representation. Fails with ErrInvalidID for anything that is not a
// 24-character hex ObjectID.
func Decode(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// Encode returns the external string form of a storage identifier.
func Encode(id primitive.ObjectID) string {
	return id.Hex()
}
