package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// ErrEmpty signals that the slot holds no snapshot yet.
var ErrEmpty = errors.New("snapshot slot is empty")

// Backend is a durable single-slot byte store.
type Backend interface {
	Write(ctx context.Context, key string, payload []byte) error
	Read(ctx context.Context, key string) ([]byte, error)
	Clear(ctx context.Context, key string) error
}

// Codec serializes the store state into one durable slot.
type Codec struct {
	backend Backend
	key     string
	log     *logger.Logger
}

// NewCodec wires a codec over the given backend and slot key.
func NewCodec(backend Backend, key string, log *logger.Logger) (*Codec, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	if key == "" {
		return nil, fmt.Errorf("slot key is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Codec{backend: backend, key: key, log: log}, nil
}

// Save marshals the state and overwrites the slot.
func (c *Codec) Save(ctx context.Context, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return apperrors.Wrap(apperrors.CodePersistence, err, "encoding snapshot")
	}
	if err := c.backend.Write(ctx, c.key, payload); err != nil {
		return apperrors.Wrap(apperrors.CodePersistence, err, "writing snapshot slot")
	}
	return nil
}

// Load reads the slot and returns the decoded state. A missing slot or an
// unreadable payload yields the seeds; an unreadable payload also clears the
// slot so the next save starts clean. Individual collections fall back to
// their seed when absent or malformed without failing the whole load.
func (c *Codec) Load(ctx context.Context, seeds State) (*State, error) {
	payload, err := c.backend.Read(ctx, c.key)
	if err != nil {
		if errors.Is(err, ErrEmpty) {
			c.log.Info(ctx, "snapshot slot empty, seeding defaults")
			return cloneSeeds(seeds), nil
		}
		return nil, apperrors.Wrap(apperrors.CodePersistence, err, "reading snapshot slot")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		c.log.Error(ctx, "snapshot payload unreadable, clearing slot", err)
		if clearErr := c.backend.Clear(ctx, c.key); clearErr != nil {
			c.log.Error(ctx, "clearing corrupt snapshot slot", clearErr)
		}
		return cloneSeeds(seeds), nil
	}

	state := &State{}
	var warnings error
	warnings = multierr.Append(warnings, decodeList(raw, "motos", &state.Motos, seeds.Motos))
	warnings = multierr.Append(warnings, decodeList(raw, "fbPosts", &state.FBPosts, seeds.FBPosts))
	warnings = multierr.Append(warnings, decodeList(raw, "customers", &state.Customers, seeds.Customers))
	warnings = multierr.Append(warnings, decodeList(raw, "products", &state.Products, seeds.Products))
	warnings = multierr.Append(warnings, decodeList(raw, "repairs", &state.Repairs, seeds.Repairs))
	warnings = multierr.Append(warnings, decodeList(raw, "repairLogs", &state.RepairLogs, seeds.RepairLogs))
	warnings = multierr.Append(warnings, decodeList(raw, "sales", &state.Sales, seeds.Sales))
	warnings = multierr.Append(warnings, decodeList(raw, "stockMovements", &state.StockMovements, seeds.StockMovements))
	warnings = multierr.Append(warnings, decodeList(raw, "supportTickets", &state.SupportTickets, seeds.SupportTickets))
	warnings = multierr.Append(warnings, decodeList(raw, "messages", &state.Messages, seeds.Messages))

	state.Settings = decodeSettings(raw, seeds.Settings)

	if warnings != nil {
		ctx = c.log.WithField(ctx, "fallbacks", warnings.Error())
		c.log.Warn(ctx, "snapshot collections missing or malformed, seeded defaults")
	}
	return state, nil
}

// Clear drops the slot entirely.
func (c *Codec) Clear(ctx context.Context) error {
	if err := c.backend.Clear(ctx, c.key); err != nil {
		return apperrors.Wrap(apperrors.CodePersistence, err, "clearing snapshot slot")
	}
	return nil
}

func decodeList[T any](raw map[string]json.RawMessage, field string, target *[]T, seed []T) error {
	blob, ok := raw[field]
	if !ok {
		*target = append([]T(nil), seed...)
		return fmt.Errorf("%s: absent", field)
	}
	var decoded []T
	if err := json.Unmarshal(blob, &decoded); err != nil {
		*target = append([]T(nil), seed...)
		return fmt.Errorf("%s: %w", field, err)
	}
	if decoded == nil {
		decoded = []T{}
	}
	*target = decoded
	return nil
}

func decodeSettings(raw map[string]json.RawMessage, seed *models.ShopSettings) *models.ShopSettings {
	blob, ok := raw["settings"]
	if !ok {
		return cloneSettings(seed)
	}
	var decoded models.ShopSettings
	if err := json.Unmarshal(blob, &decoded); err != nil {
		return cloneSettings(seed)
	}
	return &decoded
}

func cloneSeeds(seeds State) *State {
	state := &State{
		Motos:          append([]models.InventoryItem(nil), seeds.Motos...),
		FBPosts:        append([]models.Lead(nil), seeds.FBPosts...),
		Customers:      append([]models.Customer(nil), seeds.Customers...),
		Products:       append([]models.Product(nil), seeds.Products...),
		Repairs:        append([]models.RepairTicket(nil), seeds.Repairs...),
		RepairLogs:     append([]models.RepairLog(nil), seeds.RepairLogs...),
		Sales:          append([]models.Sale(nil), seeds.Sales...),
		StockMovements: append([]models.StockMovement(nil), seeds.StockMovements...),
		SupportTickets: append([]models.SupportTicket(nil), seeds.SupportTickets...),
		Messages:       append([]models.Message(nil), seeds.Messages...),
		Settings:       cloneSettings(seeds.Settings),
	}
	return state
}

func cloneSettings(settings *models.ShopSettings) *models.ShopSettings {
	if settings == nil {
		return nil
	}
	copied := *settings
	return &copied
}
