package ledgerservice

import (
	"context"

	"github.com/dmunera/cajero/internal/domain"
)

// HistoryPage is one fixed-size page of a filtered history view.
type HistoryPage struct {
	Operations domain.Operations
	HasMore    bool
}

// History returns the account's full operation log, most recent first.
func (s *Service) History(ctx context.Context, id string) (domain.Operations, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return a.Operations.SortedDesc(), nil
}

// HistoryByType returns the zero-based page of the operations carrying the
// given type tag, most recent first.
func (s *Service) HistoryByType(ctx context.Context, id, tag string, page int) (HistoryPage, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return HistoryPage{}, err
	}

	ops := a.Operations.FilterByType(tag).SortedDesc()

	start := page * s.pageSize
	if page < 0 || start >= len(ops) {
		return HistoryPage{}, nil
	}

	end := start + s.pageSize
	if end > len(ops) {
		end = len(ops)
	}

	return HistoryPage{
		Operations: ops[start:end],
		HasMore:    end < len(ops),
	}, nil
}
