package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	vehiclesCollection = "vehicles"
	partsCollection    = "parts"
)

// Mongo is the MongoDB-backed Store. One Mongo value is created at startup
// and shared by every resolver for the life of the process.
type Mongo struct {
	client   *mongo.Client
	vehicles *mongo.Collection
	parts    *mongo.Collection
}

// Connect establishes the shared connection and verifies it with a ping.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	db := client.Database(database)
	return &Mongo{
		client:   client,
		vehicles: db.Collection(vehiclesCollection),
		parts:    db.Collection(partsCollection),
	}, nil
}

// Close releases the shared connection. Called once at shutdown.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Vehicles(ctx context.Context) ([]Vehicle, error) {
	return m.findVehicles(ctx, bson.M{})
}

func (m *Mongo) VehicleByID(ctx context.Context, id primitive.ObjectID) (*Vehicle, error) {
	var v Vehicle
	err := m.vehicles.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding vehicle: %w", err)
	}
	return &v, nil
}

func (m *Mongo) VehiclesByManufacturer(ctx context.Context, manufacturer string) ([]Vehicle, error) {
	return m.findVehicles(ctx, bson.M{"manufacturer": manufacturer})
}

func (m *Mongo) VehiclesByYearRange(ctx context.Context, startYear, endYear int32) ([]Vehicle, error) {
	return m.findVehicles(ctx, bson.M{"year": bson.M{"$gte": startYear, "$lte": endYear}})
}

func (m *Mongo) findVehicles(ctx context.Context, filter bson.M) ([]Vehicle, error) {
	cursor, err := m.vehicles.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("finding vehicles: %w", err)
	}
	var docs []Vehicle
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("reading vehicles: %w", err)
	}
	return docs, nil
}

func (m *Mongo) InsertVehicle(ctx context.Context, v Vehicle) (primitive.ObjectID, error) {
	// The store assigns the identifier; never insert one from the caller.
	v.ID = primitive.NilObjectID
	res, err := m.vehicles.InsertOne(ctx, v)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting vehicle: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *Mongo) UpdateVehicle(ctx context.Context, id primitive.ObjectID, name, manufacturer string, year int32) (bool, error) {
	res, err := m.vehicles.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":         name,
		"manufacturer": manufacturer,
		"year":         year,
	}})
	if err != nil {
		return false, fmt.Errorf("updating vehicle: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (m *Mongo) Parts(ctx context.Context) ([]Part, error) {
	return m.findParts(ctx, bson.M{})
}

func (m *Mongo) PartByID(ctx context.Context, id primitive.ObjectID) (*Part, error) {
	var p Part
	err := m.parts.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding part: %w", err)
	}
	return &p, nil
}

func (m *Mongo) PartsByVehicle(ctx context.Context, vehicleID string) ([]Part, error) {
	return m.findParts(ctx, bson.M{"vehicleId": vehicleID})
}

func (m *Mongo) findParts(ctx context.Context, filter bson.M) ([]Part, error) {
	cursor, err := m.parts.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("finding parts: %w", err)
	}
	var docs []Part
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("reading parts: %w", err)
	}
	return docs, nil
}

func (m *Mongo) InsertPart(ctx context.Context, p Part) (primitive.ObjectID, error) {
	p.ID = primitive.NilObjectID
	res, err := m.parts.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting part: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *Mongo) DeletePart(ctx context.Context, id primitive.ObjectID) error {
	// A zero DeletedCount means a concurrent delete got there first; that is
	// not an error.
	if _, err := m.parts.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("deleting part: %w", err)
	}
	return nil
}
