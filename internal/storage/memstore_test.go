package storage

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemStoreVehicleLifecycle(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	id, err := s.InsertVehicle(ctx, Vehicle{Name: "Model T", Manufacturer: "Ford", Year: 1908})
	if err != nil {
		t.Fatalf("InsertVehicle() error = %v", err)
	}
	if id.IsZero() {
		t.Fatal("InsertVehicle() assigned a zero identifier")
	}

	t.Run("lookup by id", func(t *testing.T) {
		v, err := s.VehicleByID(ctx, id)
		if err != nil {
			t.Fatalf("VehicleByID() error = %v", err)
		}
		if v == nil {
			t.Fatal("VehicleByID() = nil, want vehicle")
		}
		if v.Name != "Model T" || v.Manufacturer != "Ford" || v.Year != 1908 {
			t.Errorf("VehicleByID() = %+v, want stored fields", v)
		}
	})

	t.Run("lookup miss is nil not error", func(t *testing.T) {
		v, err := s.VehicleByID(ctx, primitive.NewObjectID())
		if err != nil {
			t.Fatalf("VehicleByID() error = %v", err)
		}
		if v != nil {
			t.Errorf("VehicleByID() = %+v, want nil", v)
		}
	})

	t.Run("update overwrites all fields", func(t *testing.T) {
		modified, err := s.UpdateVehicle(ctx, id, "Model A", "Ford", 1927)
		if err != nil {
			t.Fatalf("UpdateVehicle() error = %v", err)
		}
		if !modified {
			t.Error("UpdateVehicle() modified = false, want true")
		}

		v, _ := s.VehicleByID(ctx, id)
		if v.Name != "Model A" || v.Year != 1927 {
			t.Errorf("vehicle after update = %+v", v)
		}
	})

	t.Run("identical values report unmodified", func(t *testing.T) {
		modified, err := s.UpdateVehicle(ctx, id, "Model A", "Ford", 1927)
		if err != nil {
			t.Fatalf("UpdateVehicle() error = %v", err)
		}
		if modified {
			t.Error("UpdateVehicle() modified = true for identical values, want false")
		}
	})

	t.Run("update miss reports unmodified", func(t *testing.T) {
		modified, err := s.UpdateVehicle(ctx, primitive.NewObjectID(), "X", "Y", 2000)
		if err != nil {
			t.Fatalf("UpdateVehicle() error = %v", err)
		}
		if modified {
			t.Error("UpdateVehicle() modified = true for unknown id, want false")
		}
	})
}

func TestMemStoreIterationOrder(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		if _, err := s.InsertVehicle(ctx, Vehicle{Name: n, Manufacturer: "m", Year: 2020}); err != nil {
			t.Fatalf("InsertVehicle() error = %v", err)
		}
	}

	vehicles, err := s.Vehicles(ctx)
	if err != nil {
		t.Fatalf("Vehicles() error = %v", err)
	}
	if len(vehicles) != len(names) {
		t.Fatalf("Vehicles() count = %d, want %d", len(vehicles), len(names))
	}
	for i, v := range vehicles {
		if v.Name != names[i] {
			t.Errorf("Vehicles()[%d].Name = %q, want %q", i, v.Name, names[i])
		}
	}
}

func TestMemStoreParts(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	vid, _ := s.InsertVehicle(ctx, Vehicle{Name: "Corolla", Manufacturer: "Toyota", Year: 2015})
	vehicleID := vid.Hex()

	pid, err := s.InsertPart(ctx, Part{Name: "Brake", Price: 49.99, VehicleID: vehicleID})
	if err != nil {
		t.Fatalf("InsertPart() error = %v", err)
	}
	if _, err := s.InsertPart(ctx, Part{Name: "Mirror", Price: 12.50, VehicleID: "orphaned"}); err != nil {
		t.Fatalf("InsertPart() error = %v", err)
	}

	t.Run("filter by vehicle id string", func(t *testing.T) {
		parts, err := s.PartsByVehicle(ctx, vehicleID)
		if err != nil {
			t.Fatalf("PartsByVehicle() error = %v", err)
		}
		if len(parts) != 1 {
			t.Fatalf("PartsByVehicle() count = %d, want 1", len(parts))
		}
		if parts[0].Name != "Brake" || parts[0].Price != 49.99 {
			t.Errorf("PartsByVehicle()[0] = %+v", parts[0])
		}
	})

	t.Run("delete twice is a no-op", func(t *testing.T) {
		if err := s.DeletePart(ctx, pid); err != nil {
			t.Fatalf("DeletePart() error = %v", err)
		}
		if err := s.DeletePart(ctx, pid); err != nil {
			t.Errorf("DeletePart() second call error = %v, want nil", err)
		}

		p, err := s.PartByID(ctx, pid)
		if err != nil {
			t.Fatalf("PartByID() error = %v", err)
		}
		if p != nil {
			t.Errorf("PartByID() after delete = %+v, want nil", p)
		}
	})
}
