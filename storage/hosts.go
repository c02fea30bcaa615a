package storage

import (
	"context"
	"fmt"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

const hostsTable = "hosts"

// GetOrCreateHost resolves the canonical host row for an extracted host.
// Hosts are keyed by (name, joined_year): the insert is ignored when the
// key already exists, and the identity is always re-read by key so every
// listing of the same host shares one row. A record whose hosted-by
// phrase never matched resolves to no host at all, not a placeholder.
func (s *Store) GetOrCreateHost(ctx context.Context, host models.HostInfo) (*int64, error) {
	if host.Name == nil || host.JoinedYear == nil {
		return nil, nil
	}

	ib := s.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto(hostsTable)
	ib.Cols("name", "joined_year", "response_rate", "is_superhost")
	ib.Values(*host.Name, *host.JoinedYear, host.ResponseRate, host.IsSuperhost)

	query, args := ib.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert host %q: %w", *host.Name, err)
	}

	sb := s.flavor.NewSelectBuilder()
	sb.Select("host_id")
	sb.From(hostsTable)
	sb.Where(
		sb.Equal("name", *host.Name),
		sb.Equal("joined_year", *host.JoinedYear),
	)

	query, args = sb.Build()
	var id int64
	if err := s.db.GetContext(ctx, &id, query, args...); err != nil {
		return nil, fmt.Errorf("failed to read back host %q: %w", *host.Name, err)
	}
	return &id, nil
}

// CountHosts returns the total number of host rows.
func (s *Store) CountHosts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM hosts"); err != nil {
		return 0, fmt.Errorf("failed to count hosts: %w", err)
	}
	return n, nil
}
