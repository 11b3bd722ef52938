package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akomcomputer/shopsuite-backend/pkg/db"
)

// SnapshotSlot is the single-row-per-key table backing the db backend.
type SnapshotSlot struct {
	Key       string    `gorm:"column:key;primaryKey;size:255"`
	Payload   []byte    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (SnapshotSlot) TableName() string {
	return "snapshot_slots"
}

// DBBackend stores the snapshot as one row per slot key.
type DBBackend struct {
	conn *gorm.DB
}

// NewDBBackend migrates the slot table and returns the backend.
func NewDBBackend(client *db.Client) (*DBBackend, error) {
	if client == nil {
		return nil, fmt.Errorf("db client is required")
	}
	conn := client.DB()
	if err := conn.AutoMigrate(&SnapshotSlot{}); err != nil {
		return nil, fmt.Errorf("migrating snapshot_slots: %w", err)
	}
	return &DBBackend{conn: conn}, nil
}

func (b *DBBackend) Write(ctx context.Context, key string, payload []byte) error {
	slot := SnapshotSlot{Key: key, Payload: payload, UpdatedAt: time.Now().UTC()}
	return b.conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&slot).Error
}

func (b *DBBackend) Read(ctx context.Context, key string) ([]byte, error) {
	var slot SnapshotSlot
	err := b.conn.WithContext(ctx).First(&slot, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	return slot.Payload, nil
}

func (b *DBBackend) Clear(ctx context.Context, key string) error {
	return b.conn.WithContext(ctx).Delete(&SnapshotSlot{}, "key = ?", key).Error
}
