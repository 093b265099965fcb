// Package graph implements the resolver layer: the translation between the
// GraphQL schema's fields and arguments and the underlying document store,
// including identifier normalization, vehicle-to-parts stitching, and joke
// enrichment.
package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/garagehq/garage/internal/ident"
	"github.com/garagehq/garage/internal/jokes"
	"github.com/garagehq/garage/internal/search"
	"github.com/garagehq/garage/internal/storage"
)

// Resolver is the root resolver for the GraphQL schema. It holds the shared
// store handle and the joke service; both are created once at startup and
// used by every request. Resolvers keep no per-request state.
type Resolver struct {
	store  storage.Store
	jokes  jokes.Service
	logger *zap.Logger
}

// NewResolver creates the root resolver. A nil logger disables logging.
func NewResolver(store storage.Store, jokeSvc jokes.Service, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, jokes: jokeSvc, logger: logger}
}

// enrich stitches a vehicle's parts onto it and fetches one joke. The two
// reads are independent and run concurrently. Enrichment failure fails the
// enclosing request; no partially-mapped vehicle is ever returned.
func (r *Resolver) enrich(ctx context.Context, doc storage.Vehicle) (*VehicleResolver, error) {
	var (
		parts []storage.Part
		joke  string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		parts, err = r.store.PartsByVehicle(gctx, ident.Encode(doc.ID))
		return err
	})
	g.Go(func() error {
		var err error
		joke, err = r.jokes.Random(gctx)
		if err != nil {
			r.logger.Error("joke fetch failed", zap.String("vehicle", ident.Encode(doc.ID)), zap.Error(err))
			return errEnrichment(err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newEnrichedVehicle(doc, parts, joke), nil
}

// --- Queries ---

// Vehicles returns every vehicle with its parts and a joke. Per-vehicle
// enrichment runs concurrently; result order is storage iteration order, not
// completion order.
func (r *Resolver) Vehicles(ctx context.Context) ([]*VehicleResolver, error) {
	docs, err := r.store.Vehicles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*VehicleResolver, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			v, err := r.enrich(gctx, doc)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Vehicle looks up one vehicle by id, enriched. Returns null when absent.
func (r *Resolver) Vehicle(ctx context.Context, args struct{ ID graphql.ID }) (*VehicleResolver, error) {
	id, err := ident.Decode(string(args.ID))
	if err != nil {
		return nil, errInvalidID(string(args.ID))
	}

	doc, err := r.store.VehicleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	return r.enrich(ctx, *doc)
}

// Parts returns every part, bare.
func (r *Resolver) Parts(ctx context.Context) ([]*PartResolver, error) {
	docs, err := r.store.Parts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*PartResolver, 0, len(docs))
	for _, doc := range docs {
		out = append(out, newPart(doc))
	}
	return out, nil
}

// VehiclesByManufacturer returns bare vehicles matching the manufacturer
// exactly. No parts or joke are stitched; this is a narrower projection than
// Vehicles by design.
func (r *Resolver) VehiclesByManufacturer(ctx context.Context, args struct{ Manufacturer string }) ([]*VehicleResolver, error) {
	docs, err := r.store.VehiclesByManufacturer(ctx, args.Manufacturer)
	if err != nil {
		return nil, err
	}
	return mapBareVehicles(docs), nil
}

// PartsByVehicle returns parts whose stored vehicleId equals the given
// external id string. The comparison is on the string form; the id is not
// decoded.
func (r *Resolver) PartsByVehicle(ctx context.Context, args struct{ VehicleID graphql.ID }) ([]*PartResolver, error) {
	docs, err := r.store.PartsByVehicle(ctx, string(args.VehicleID))
	if err != nil {
		return nil, err
	}

	out := make([]*PartResolver, 0, len(docs))
	for _, doc := range docs {
		out = append(out, newPart(doc))
	}
	return out, nil
}

// VehiclesByYearRange returns bare vehicles with startYear <= year <= endYear,
// inclusive at both bounds. An inverted range is rejected before storage is
// touched.
func (r *Resolver) VehiclesByYearRange(ctx context.Context, args struct{ StartYear, EndYear int32 }) ([]*VehicleResolver, error) {
	if args.StartYear > args.EndYear {
		return nil, errInvalidRange(args.StartYear, args.EndYear)
	}

	docs, err := r.store.VehiclesByYearRange(ctx, args.StartYear, args.EndYear)
	if err != nil {
		return nil, err
	}
	return mapBareVehicles(docs), nil
}

// SearchVehicles runs a full-text query over vehicle names and manufacturers
// and returns bare vehicles ordered by relevance.
func (r *Resolver) SearchVehicles(ctx context.Context, args struct{ Query string }) ([]*VehicleResolver, error) {
	docs, err := r.store.Vehicles(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := search.NewIndex()
	if err != nil {
		return nil, err
	}
	defer idx.Close()

	if err := idx.IndexVehicles(docs); err != nil {
		return nil, err
	}
	ids, err := idx.Search(args.Query, 0)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]storage.Vehicle, len(docs))
	for _, doc := range docs {
		byID[ident.Encode(doc.ID)] = doc
	}

	out := make([]*VehicleResolver, 0, len(ids))
	for _, id := range ids {
		if doc, ok := byID[id]; ok {
			out = append(out, newVehicle(doc))
		}
	}
	return out, nil
}

func mapBareVehicles(docs []storage.Vehicle) []*VehicleResolver {
	out := make([]*VehicleResolver, 0, len(docs))
	for _, doc := range docs {
		out = append(out, newVehicle(doc))
	}
	return out
}

// --- Mutations ---

// AddVehicle inserts a vehicle with exactly name/manufacturer/year and
// returns the mapped entity under its storage-assigned id. Parts are empty by
// construction, not fetched; no joke is attached.
func (r *Resolver) AddVehicle(ctx context.Context, args struct {
	Name         string
	Manufacturer string
	Year         int32
}) (*VehicleResolver, error) {
	doc := storage.Vehicle{
		Name:         args.Name,
		Manufacturer: args.Manufacturer,
		Year:         args.Year,
	}
	id, err := r.store.InsertVehicle(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id

	r.logger.Info("vehicle added", zap.String("id", ident.Encode(id)), zap.String("name", doc.Name))
	return newVehicleWithParts(doc, nil), nil
}

// AddPart inserts a part. The referenced vehicleId is stored as given; no
// existence check is performed, so dangling references are possible.
func (r *Resolver) AddPart(ctx context.Context, args struct {
	Name      string
	Price     float64
	VehicleID graphql.ID
}) (*PartResolver, error) {
	doc := storage.Part{
		Name:      args.Name,
		Price:     args.Price,
		VehicleID: string(args.VehicleID),
	}
	id, err := r.store.InsertPart(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id

	r.logger.Info("part added", zap.String("id", ident.Encode(id)), zap.String("vehicleId", doc.VehicleID))
	return newPart(doc), nil
}

// UpdateVehicle overwrites name/manufacturer/year on the matching vehicle.
// Returns null when nothing was modified, which covers both a missing vehicle
// and a write of identical values. On success the result is built from the
// input arguments rather than a re-read, so it does not reflect concurrent
// writes that land after ours.
func (r *Resolver) UpdateVehicle(ctx context.Context, args struct {
	ID           graphql.ID
	Name         string
	Manufacturer string
	Year         int32
}) (*VehicleResolver, error) {
	id, err := ident.Decode(string(args.ID))
	if err != nil {
		return nil, errInvalidID(string(args.ID))
	}

	modified, err := r.store.UpdateVehicle(ctx, id, args.Name, args.Manufacturer, args.Year)
	if err != nil {
		return nil, err
	}
	if !modified {
		return nil, nil
	}

	r.logger.Info("vehicle updated", zap.String("id", ident.Encode(id)))
	return newVehicle(storage.Vehicle{
		ID:           id,
		Name:         args.Name,
		Manufacturer: args.Manufacturer,
		Year:         args.Year,
	}), nil
}

// DeletePart reads the part to build the return value, then removes it.
// Returns null when absent. A concurrent delete that wins the race between
// our read and our delete leaves nothing to remove; that is treated as
// success, and the caller still gets the pre-delete snapshot.
func (r *Resolver) DeletePart(ctx context.Context, args struct{ ID graphql.ID }) (*PartResolver, error) {
	id, err := ident.Decode(string(args.ID))
	if err != nil {
		return nil, errInvalidID(string(args.ID))
	}

	doc, err := r.store.PartByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	if err := r.store.DeletePart(ctx, id); err != nil {
		return nil, err
	}

	r.logger.Info("part deleted", zap.String("id", ident.Encode(id)))
	return newPart(*doc), nil
}
