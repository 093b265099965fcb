// Package storage defines the document store the resolvers read and write,
// and provides two implementations: MongoDB for real deployments and an in-memory
// store for tests and demo mode.
package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle is the stored shape of a vehicle document. The parts list and the
// joke are derived at read time and never persisted.
type Vehicle struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Manufacturer string             `bson:"manufacturer"`
	Year         int32              `bson:"year"`
}

// Part is the stored shape of a part document. VehicleID holds the external
// string form of the referenced vehicle's identifier; nothing enforces that
// the vehicle exists.
type Part struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Price     float64            `bson:"price"`
	VehicleID string             `bson:"vehicleId"`
}

// Store is the document store contract the resolver layer depends on.
// Single-entity lookups return (nil, nil) when no document matches; absence
// is not an error. Individual operations are atomic, composites are not.
type Store interface {
	Vehicles(ctx context.Context) ([]Vehicle, error)
	VehicleByID(ctx context.Context, id primitive.ObjectID) (*Vehicle, error)
	VehiclesByManufacturer(ctx context.Context, manufacturer string) ([]Vehicle, error)
	VehiclesByYearRange(ctx context.Context, startYear, endYear int32) ([]Vehicle, error)
	InsertVehicle(ctx context.Context, v Vehicle) (primitive.ObjectID, error)

	// UpdateVehicle overwrites name/manufacturer/year on the matching document
	// and reports whether any document was modified. A miss and a no-op write
	// of identical values both report false.
	UpdateVehicle(ctx context.Context, id primitive.ObjectID, name, manufacturer string, year int32) (bool, error)

	Parts(ctx context.Context) ([]Part, error)
	PartByID(ctx context.Context, id primitive.ObjectID) (*Part, error)
	PartsByVehicle(ctx context.Context, vehicleID string) ([]Part, error)
	InsertPart(ctx context.Context, p Part) (primitive.ObjectID, error)

	// DeletePart removes the matching document. Deleting an already-removed
	// document is a successful no-op.
	DeletePart(ctx context.Context, id primitive.ObjectID) error

	Close(ctx context.Context) error
}
