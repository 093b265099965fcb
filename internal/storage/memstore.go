package storage

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is an in-memory Store. It backs the test suite and the --memory
// demo mode. Iteration order is insertion order, mirroring the natural-order
// scans the Mongo implementation performs.
type MemStore struct {
	mu       sync.RWMutex
	vehicles []Vehicle
	parts    []Part
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Close(ctx context.Context) error {
	return nil
}

func (s *MemStore) Vehicles(ctx context.Context) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

func (s *MemStore) VehicleByID(ctx context.Context, id primitive.ObjectID) (*Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vehicles {
		if v.ID == id {
			v := v
			return &v, nil
		}
	}
	return nil, nil
}

func (s *MemStore) VehiclesByManufacturer(ctx context.Context, manufacturer string) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Vehicle
	for _, v := range s.vehicles {
		if v.Manufacturer == manufacturer {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *MemStore) VehiclesByYearRange(ctx context.Context, startYear, endYear int32) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Vehicle
	for _, v := range s.vehicles {
		if v.Year >= startYear && v.Year <= endYear {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *MemStore) InsertVehicle(ctx context.Context, v Vehicle) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = primitive.NewObjectID()
	s.vehicles = append(s.vehicles, v)
	return v.ID, nil
}

func (s *MemStore) UpdateVehicle(ctx context.Context, id primitive.ObjectID, name, manufacturer string, year int32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.vehicles {
		if v.ID != id {
			continue
		}
		// Writing identical values counts as unmodified, matching the
		// driver's ModifiedCount.
		if v.Name == name && v.Manufacturer == manufacturer && v.Year == year {
			return false, nil
		}
		s.vehicles[i].Name = name
		s.vehicles[i].Manufacturer = manufacturer
		s.vehicles[i].Year = year
		return true, nil
	}
	return false, nil
}

func (s *MemStore) Parts(ctx context.Context) ([]Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Part, len(s.parts))
	copy(out, s.parts)
	return out, nil
}

func (s *MemStore) PartByID(ctx context.Context, id primitive.ObjectID) (*Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.parts {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *MemStore) PartsByVehicle(ctx context.Context, vehicleID string) ([]Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Part
	for _, p := range s.parts {
		if p.VehicleID == vehicleID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) InsertPart(ctx context.Context, p Part) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = primitive.NewObjectID()
	s.parts = append(s.parts, p)
	return p.ID, nil
}

func (s *MemStore) DeletePart(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.parts {
		if p.ID == id {
			s.parts = append(s.parts[:i], s.parts[i+1:]...)
			return nil
		}
	}
	// Already gone; deletion is a no-op, not an error.
	return nil
}
