package storage

import (
	"context"
	"fmt"
)

const amenitiesTable = "amenities"

// GetOrCreateAmenity resolves an amenity name against the global
// vocabulary table, creating the row on first sighting. Same
// insert-if-absent then read-by-key shape as host resolution.
func (s *Store) GetOrCreateAmenity(ctx context.Context, name string) (int64, error) {
	ib := s.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto(amenitiesTable)
	ib.Cols("name")
	ib.Values(name)

	query, args := ib.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert amenity %q: %w", name, err)
	}

	sb := s.flavor.NewSelectBuilder()
	sb.Select("amenity_id")
	sb.From(amenitiesTable)
	sb.Where(sb.Equal("name", name))

	query, args = sb.Build()
	var id int64
	if err := s.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to read back amenity %q: %w", name, err)
	}
	return id, nil
}

// CountAmenities returns the size of the amenity vocabulary so far.
func (s *Store) CountAmenities(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM amenities"); err != nil {
		return 0, fmt.Errorf("failed to count amenities: %w", err)
	}
	return n, nil
}
