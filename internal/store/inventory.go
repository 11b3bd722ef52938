package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// ItemInput carries the caller-supplied fields for a new inventory item.
// The factory fills every default; zero values fall back explicitly.
type ItemInput struct {
	Slug          string
	Title         string
	Brand         string
	Model         string
	Year          string
	CC            int
	MileageKM     int
	Price         decimal.Decimal
	Status        enums.ItemStatus
	Documents     string
	LocationText  string
	Description   string
	CoverPhotoURL string
	PhotoURLs     []string
	SourceType    enums.SourceType
	SourceLeadID  string
}

func (s *Store) buildItem(input ItemInput) models.InventoryItem {
	status := input.Status
	if status == "" {
		status = enums.ItemStatusAvailable
	}
	sourceType := input.SourceType
	if sourceType == "" {
		sourceType = enums.SourceTypeManual
	}
	photos := input.PhotoURLs
	if photos == nil {
		photos = []string{}
	}
	return models.InventoryItem{
		ID:            s.newID(),
		Slug:          input.Slug,
		Title:         input.Title,
		Brand:         input.Brand,
		Model:         input.Model,
		Year:          input.Year,
		CC:            input.CC,
		MileageKM:     input.MileageKM,
		Price:         input.Price,
		Status:        status,
		Documents:     input.Documents,
		LocationText:  input.LocationText,
		Description:   input.Description,
		CoverPhotoURL: input.CoverPhotoURL,
		PhotoURLs:     photos,
		SourceType:    sourceType,
		SourceLeadID:  input.SourceLeadID,
		CreatedAt:     s.now(),
	}
}

// AddInventoryItem prepends a new catalog entry. Slugs are unique within the
// session.
func (s *Store) AddInventoryItem(ctx context.Context, input ItemInput) (*models.InventoryItem, error) {
	s.mu.Lock()
	for _, existing := range s.state.Motos {
		if existing.Slug == input.Slug {
			s.mu.Unlock()
			return nil, apperrors.New(apperrors.CodeConflict, "slug already in use").WithDetails(map[string]string{"slug": input.Slug})
		}
	}
	item := s.buildItem(input)
	s.state.Motos = append([]models.InventoryItem{item}, s.state.Motos...)
	s.mu.Unlock()

	s.commit(ctx, "addInventoryItem")
	return &item, nil
}

// DeleteInventoryItem removes the matching item. Deleting an unknown id is a
// no-op, not an error.
func (s *Store) DeleteInventoryItem(ctx context.Context, id string) {
	s.mu.Lock()
	kept := s.state.Motos[:0:0]
	removed := false
	for _, item := range s.state.Motos {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.state.Motos = kept
	s.mu.Unlock()

	if removed {
		s.commit(ctx, "deleteInventoryItem")
	}
}
