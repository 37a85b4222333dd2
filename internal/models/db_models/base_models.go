package db_models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BaseModel carries unix-second timestamps for rows the postgres store
// backend writes.
type BaseModel struct {
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// StoreSnapshot holds one whole persisted client store, keyed by the store name.
type StoreSnapshot struct {
	BaseModel
	Key     string         `gorm:"primaryKey;size:128"`
	Payload datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (StoreSnapshot) TableName() string {
	return "store_snapshots"
}
