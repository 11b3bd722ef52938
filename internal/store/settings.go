package store

import (
	"context"

	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// UpdateSettings replaces the shop contact card wholesale.
func (s *Store) UpdateSettings(ctx context.Context, settings models.ShopSettings) {
	s.mu.Lock()
	s.state.Settings = &settings
	s.mu.Unlock()

	s.commit(ctx, "updateSettings")
}
