package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/garagehq/garage/internal/ident"
	"github.com/garagehq/garage/internal/storage"
)

// VehicleResolver maps a stored vehicle document to the schema's Vehicle
// type. Every exposed field is enumerated here; nothing else in the document
// leaks through. Parts and joke are attached at construction time by the
// query that produced the vehicle — field methods never touch storage.
type VehicleResolver struct {
	doc   storage.Vehicle
	parts *[]*PartResolver
	joke  *string
}

// newVehicle maps a document to a bare vehicle: parts and joke resolve to
// null. Used by queries that intentionally return a narrower projection.
func newVehicle(doc storage.Vehicle) *VehicleResolver {
	return &VehicleResolver{doc: doc}
}

// newVehicleWithParts maps a document plus its stitched parts. A nil parts
// slice still yields an empty list, not null.
func newVehicleWithParts(doc storage.Vehicle, parts []storage.Part) *VehicleResolver {
	mapped := make([]*PartResolver, 0, len(parts))
	for _, p := range parts {
		mapped = append(mapped, newPart(p))
	}
	return &VehicleResolver{doc: doc, parts: &mapped}
}

// newEnrichedVehicle maps a document with stitched parts and a joke.
func newEnrichedVehicle(doc storage.Vehicle, parts []storage.Part, joke string) *VehicleResolver {
	v := newVehicleWithParts(doc, parts)
	v.joke = &joke
	return v
}

func (r *VehicleResolver) ID() graphql.ID {
	return graphql.ID(ident.Encode(r.doc.ID))
}

func (r *VehicleResolver) Name() string {
	return r.doc.Name
}

func (r *VehicleResolver) Manufacturer() string {
	return r.doc.Manufacturer
}

func (r *VehicleResolver) Year() int32 {
	return r.doc.Year
}

func (r *VehicleResolver) Joke() *string {
	return r.joke
}

func (r *VehicleResolver) Parts() *[]*PartResolver {
	return r.parts
}
