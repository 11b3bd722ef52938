package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

const (
	importedCoverPhotoURL = "https://images.unsplash.com/photo-1558981403-c5f9899a28bc?auto=format&fit=crop&w=400&q=80"
	importedDocumentsNote = "Pending verification"
	importedPlaceholder   = "Unknown"
	defaultTrustScore     = 50
)

// LeadInput carries the caller-supplied fields for a new lead.
type LeadInput struct {
	URL           string
	Platform      string
	Type          enums.LeadType
	TitleText     string
	PriceText     string
	LocationText  string
	SellerName    string
	PhoneText     string
	Notes         string
	CuratedPublic bool
}

// ScoreResult is the normalized outcome of an external scoring call.
type ScoreResult struct {
	PriceEstimate decimal.Decimal
	TrustScore    int
	Notes         string
}

func (s *Store) buildLead(input LeadInput) models.Lead {
	leadType := input.Type
	if leadType == "" {
		leadType = enums.LeadTypeMoto
	}
	return models.Lead{
		ID:            s.newID(),
		URL:           input.URL,
		Platform:      input.Platform,
		Type:          leadType,
		TitleText:     input.TitleText,
		PriceText:     input.PriceText,
		PriceEstimate: decimal.Zero,
		LocationText:  input.LocationText,
		SellerName:    input.SellerName,
		PhoneText:     input.PhoneText,
		Notes:         input.Notes,
		TrustScore:    0,
		TrustLevel:    enums.TrustLevelForScore(0),
		Status:        enums.LeadStatusNew,
		CuratedPublic: input.CuratedPublic,
		DateAdded:     s.now(),
	}
}

// AddLead prepends a new triage candidate.
func (s *Store) AddLead(ctx context.Context, input LeadInput) (*models.Lead, error) {
	s.mu.Lock()
	lead := s.buildLead(input)
	s.state.FBPosts = append([]models.Lead{lead}, s.state.FBPosts...)
	s.mu.Unlock()

	s.commit(ctx, "addLead")
	return &lead, nil
}

// RequestScorePrompt is phase one of the scoring flow: it resolves the lead
// and returns the prompt for the external collaborator without mutating
// anything.
func (s *Store) RequestScorePrompt(leadID string) (string, error) {
	lead, ok := s.LeadByID(leadID)
	if !ok {
		return "", apperrors.New(apperrors.CodeNotFound, "lead not found")
	}
	prompt := fmt.Sprintf(
		"Analyze this motorcycle sales lead. Title: %q, URL: %s. Provide market price (number), trust score (0-100), and short note.",
		lead.TitleText, lead.URL,
	)
	return prompt, nil
}

// ApplyScoreResult is phase two: the lead may have been deleted, imported,
// or ignored while the external call was in flight, so existence and status
// are re-checked before writing. A stale target is a silent no-op. Missing
// result fields fall back to defaults rather than failing the operation.
func (s *Store) ApplyScoreResult(ctx context.Context, leadID string, result ScoreResult) {
	score := result.TrustScore
	if score <= 0 {
		score = defaultTrustScore
	}

	s.mu.Lock()
	applied := false
	for i, lead := range s.state.FBPosts {
		if lead.ID != leadID {
			continue
		}
		if lead.Status == enums.LeadStatusImported || lead.Status == enums.LeadStatusIgnored {
			break
		}
		lead.PriceEstimate = result.PriceEstimate
		lead.TrustScore = score
		lead.TrustLevel = enums.TrustLevelForScore(score)
		lead.Notes = result.Notes
		lead.Status = enums.LeadStatusChecked
		s.state.FBPosts[i] = lead
		applied = true
		break
	}
	s.mu.Unlock()

	if applied {
		s.commit(ctx, "applyScoreResult")
	}
}

// ImportLead synthesizes an inventory item from the lead and marks the lead
// imported with a back-reference. Re-importing an already-imported lead
// returns the existing item in permissive mode and CONFLICT in strict mode.
// An unknown lead is NOT_FOUND.
func (s *Store) ImportLead(ctx context.Context, leadID string) (*models.InventoryItem, error) {
	s.mu.Lock()
	idx := -1
	for i, lead := range s.state.FBPosts {
		if lead.ID == leadID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, apperrors.New(apperrors.CodeNotFound, "lead not found")
	}

	lead := s.state.FBPosts[idx]
	if lead.Status == enums.LeadStatusImported {
		if s.guards.RejectReimport {
			s.mu.Unlock()
			return nil, apperrors.New(apperrors.CodeConflict, "lead already imported").
				WithDetails(map[string]string{"imported_item_id": lead.ImportedItemID})
		}
		for _, existing := range s.state.Motos {
			if existing.ID == lead.ImportedItemID {
				s.mu.Unlock()
				return &existing, nil
			}
		}
		s.mu.Unlock()
		return nil, nil
	}

	location := lead.LocationText
	if location == "" {
		location = "Imported Source"
	}
	item := models.InventoryItem{
		ID:            s.newID(),
		Slug:          "imported-" + s.newID(),
		Title:         lead.TitleText,
		Brand:         importedPlaceholder,
		Model:         importedPlaceholder,
		Price:         lead.PriceEstimate,
		Status:        enums.ItemStatusAvailable,
		Documents:     importedDocumentsNote,
		LocationText:  location,
		Description:   fmt.Sprintf("Imported from %s\n\nNotes: %s", lead.URL, lead.Notes),
		CoverPhotoURL: importedCoverPhotoURL,
		PhotoURLs:     []string{},
		SourceType:    enums.SourceTypeFacebook,
		SourceLeadID:  lead.ID,
		CreatedAt:     s.now(),
	}

	s.state.Motos = append([]models.InventoryItem{item}, s.state.Motos...)
	lead.Status = enums.LeadStatusImported
	lead.ImportedItemID = item.ID
	s.state.FBPosts[idx] = lead
	s.mu.Unlock()

	s.commit(ctx, "importLead")
	return &item, nil
}

// IgnoreLead moves a lead to the ignored status from any state. Unknown
// leads no-op.
func (s *Store) IgnoreLead(ctx context.Context, leadID string) {
	s.mu.Lock()
	applied := false
	for i, lead := range s.state.FBPosts {
		if lead.ID == leadID {
			lead.Status = enums.LeadStatusIgnored
			s.state.FBPosts[i] = lead
			applied = true
			break
		}
	}
	s.mu.Unlock()

	if applied {
		s.commit(ctx, "ignoreLead")
	}
}
