package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akomcomputer/shopsuite-backend/pkg/config"
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
)

func TestAddLeadDefaults(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	lead, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/post/1", TitleText: "Honda Wave 110i"})
	require.NoError(t, err)
	require.Equal(t, enums.LeadStatusNew, lead.Status)
	require.Equal(t, enums.LeadTypeMoto, lead.Type)
	require.Equal(t, 0, lead.TrustScore)
	require.Equal(t, enums.TrustLevelLow, lead.TrustLevel)
}

func TestRequestScorePrompt(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	lead, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/post/1", TitleText: "Honda Wave 110i"})
	require.NoError(t, err)

	prompt, err := st.RequestScorePrompt(lead.ID)
	require.NoError(t, err)
	require.Contains(t, prompt, "Honda Wave 110i")
	require.Contains(t, prompt, "https://example.com/post/1")

	_, err = st.RequestScorePrompt("missing")
	requireCode(t, err, apperrors.CodeNotFound)
}

func TestApplyScoreResultBanding(t *testing.T) {
	cases := []struct {
		score int
		level enums.TrustLevel
	}{
		{80, enums.TrustLevelHigh},
		{75, enums.TrustLevelHigh},
		{74, enums.TrustLevelMedium},
		{50, enums.TrustLevelMedium},
		{41, enums.TrustLevelMedium},
		{40, enums.TrustLevelLow},
		{30, enums.TrustLevelLow},
	}
	for _, tc := range cases {
		st, _ := newTestStore(t, config.GuardsConfig{})
		ctx := context.Background()

		lead, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/p", TitleText: "t"})
		require.NoError(t, err)

		st.ApplyScoreResult(ctx, lead.ID, ScoreResult{TrustScore: tc.score, PriceEstimate: decimalFromInt(20000), Notes: "clean"})

		scored, ok := st.LeadByID(lead.ID)
		require.True(t, ok)
		require.Equal(t, tc.score, scored.TrustScore)
		require.Equal(t, tc.level, scored.TrustLevel, "score %d", tc.score)
		require.Equal(t, enums.LeadStatusChecked, scored.Status)
		require.True(t, scored.PriceEstimate.Equal(decimalFromInt(20000)))
		require.Equal(t, "clean", scored.Notes)
	}
}

func TestApplyScoreResultMissingFieldsDefault(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	lead, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/p", TitleText: "t"})
	require.NoError(t, err)

	st.ApplyScoreResult(ctx, lead.ID, ScoreResult{})

	scored, ok := st.LeadByID(lead.ID)
	require.True(t, ok)
	require.Equal(t, 50, scored.TrustScore, "missing score falls back to 50")
	require.Equal(t, enums.TrustLevelMedium, scored.TrustLevel)
	require.Empty(t, scored.Notes)
	require.Equal(t, enums.LeadStatusChecked, scored.Status)
}

func TestApplyScoreResultOverwritesIntakeNotes(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	lead, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/p", TitleText: "t", Notes: "intake notes"})
	require.NoError(t, err)

	st.ApplyScoreResult(ctx, lead.ID, ScoreResult{TrustScore: 60})

	scored, ok := st.LeadByID(lead.ID)
	require.True(t, ok)
	require.Empty(t, scored.Notes, "result notes replace intake notes even when empty")
}

func TestApplyScoreResultStaleTargetNoOp(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	lead, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/p", TitleText: "t"})
	require.NoError(t, err)

	// Imported between the two phases: the late result must not overwrite.
	item, err := st.ImportLead(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, item)

	st.ApplyScoreResult(ctx, lead.ID, ScoreResult{TrustScore: 90})

	current, ok := st.LeadByID(lead.ID)
	require.True(t, ok)
	require.Equal(t, enums.LeadStatusImported, current.Status)
	require.Equal(t, 0, current.TrustScore)

	// Unknown lead: silent no-op.
	st.ApplyScoreResult(ctx, "missing", ScoreResult{TrustScore: 90})
}

func TestImportLeadSynthesizesItem(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	lead, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/post/7", TitleText: "Yamaha Fino 2019", Notes: "one owner"})
	require.NoError(t, err)

	// Scoring overwrites the lead's notes wholesale, so the import
	// description carries the scored notes, not the intake ones.
	st.ApplyScoreResult(ctx, lead.ID, ScoreResult{TrustScore: 80, PriceEstimate: decimalFromInt(18500), Notes: "one owner"})

	item, err := st.ImportLead(ctx, lead.ID)
	require.NoError(t, err)
	require.Equal(t, "Yamaha Fino 2019", item.Title)
	require.Equal(t, "Unknown", item.Brand)
	require.Equal(t, "Unknown", item.Model)
	require.True(t, item.Price.Equal(decimalFromInt(18500)))
	require.Equal(t, enums.SourceTypeFacebook, item.SourceType)
	require.Equal(t, lead.ID, item.SourceLeadID)
	require.Contains(t, item.Description, "https://example.com/post/7")
	require.Contains(t, item.Description, "one owner")

	imported, ok := st.LeadByID(lead.ID)
	require.True(t, ok)
	require.Equal(t, enums.LeadStatusImported, imported.Status)
	require.Equal(t, item.ID, imported.ImportedItemID)
}

func TestImportLeadTwicePermissiveReturnsExisting(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	lead, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/p", TitleText: "t"})
	require.NoError(t, err)

	first, err := st.ImportLead(ctx, lead.ID)
	require.NoError(t, err)

	second, err := st.ImportLead(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, second)
	require.Equal(t, first.ID, second.ID)
	require.Len(t, st.Items(), 1, "re-import must not create a second item")
}

func TestImportLeadTwiceStrictConflicts(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{RejectReimport: true})
	ctx := context.Background()

	lead, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/p", TitleText: "t"})
	require.NoError(t, err)

	_, err = st.ImportLead(ctx, lead.ID)
	require.NoError(t, err)

	_, err = st.ImportLead(ctx, lead.ID)
	requireCode(t, err, apperrors.CodeConflict)
	require.Len(t, st.Items(), 1)
}

func TestImportLeadUnknown(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})

	_, err := st.ImportLead(context.Background(), "missing")
	requireCode(t, err, apperrors.CodeNotFound)
}

func TestIgnoreLeadAndCuratedLeads(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	visible, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/a", TitleText: "a", CuratedPublic: true})
	require.NoError(t, err)
	hidden, err := st.AddLead(ctx, LeadInput{URL: "https://example.com/b", TitleText: "b", CuratedPublic: true})
	require.NoError(t, err)
	_, err = st.AddLead(ctx, LeadInput{URL: "https://example.com/c", TitleText: "c"})
	require.NoError(t, err)

	st.IgnoreLead(ctx, hidden.ID)

	curated := st.CuratedLeads()
	require.Len(t, curated, 1)
	require.Equal(t, visible.ID, curated[0].ID)
}
