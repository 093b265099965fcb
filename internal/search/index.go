// Package search provides full-text search over vehicles using Bleve.
package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/garagehq/garage/internal/ident"
	"github.com/garagehq/garage/internal/storage"
)

// Index wraps a Bleve in-memory index over the vehicle collection.
type Index struct {
	index bleve.Index
}

// vehicleDocument is the structure stored in the Bleve index.
type vehicleDocument struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
}

// NewIndex creates a new in-memory Bleve index.
func NewIndex() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}
	return &Index{index: idx}, nil
}

// buildIndexMapping creates the Bleve index mapping for vehicle documents.
func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = "standard"

	// ID is stored but not analyzed
	keywordFieldMapping := bleve.NewKeywordFieldMapping()

	vehicleMapping := bleve.NewDocumentMapping()
	vehicleMapping.AddFieldMappingsAt("id", keywordFieldMapping)
	vehicleMapping.AddFieldMappingsAt("name", textFieldMapping)
	vehicleMapping.AddFieldMappingsAt("manufacturer", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = vehicleMapping
	indexMapping.DefaultAnalyzer = "standard"
	indexMapping.IndexDynamic = false
	indexMapping.StoreDynamic = false

	return indexMapping
}

// Close closes the index.
func (idx *Index) Close() error {
	return idx.index.Close()
}

// IndexVehicles indexes the given vehicles in a batch.
func (idx *Index) IndexVehicles(vehicles []storage.Vehicle) error {
	batch := idx.index.NewBatch()
	for _, v := range vehicles {
		id := ident.Encode(v.ID)
		doc := vehicleDocument{
			ID:           id,
			Name:         v.Name,
			Manufacturer: v.Manufacturer,
		}
		if err := batch.Index(id, doc); err != nil {
			return err
		}
	}
	return idx.index.Batch(batch)
}

// DefaultSearchLimit is the default maximum number of search results.
const DefaultSearchLimit = 1000

// Search executes a query and returns matching vehicle IDs ordered by score.
// The limit parameter controls the maximum number of results (0 uses
// DefaultSearchLimit). Query string syntax applies, so "manufacturer:Ford"
// and wildcards like "mod*" both work.
func (idx *Index) Search(queryStr string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	query := bleve.NewQueryStringQuery(queryStr)
	searchRequest := bleve.NewSearchRequest(query)
	searchRequest.Size = limit

	result, err := idx.index.Search(searchRequest)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}
