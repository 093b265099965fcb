package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/garagehq/garage/internal/ident"
	"github.com/garagehq/garage/internal/storage"
)

// PartResolver maps a stored part document to the schema's Part type.
// Parts carry no derived fields.
type PartResolver struct {
	doc storage.Part
}

func newPart(doc storage.Part) *PartResolver {
	return &PartResolver{doc: doc}
}

func (r *PartResolver) ID() graphql.ID {
	return graphql.ID(ident.Encode(r.doc.ID))
}

func (r *PartResolver) Name() string {
	return r.doc.Name
}

func (r *PartResolver) Price() float64 {
	return r.doc.Price
}

func (r *PartResolver) VehicleID() graphql.ID {
	return graphql.ID(r.doc.VehicleID)
}
