package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"journeys/internal/models/db_models"
	mem "journeys/pkg/memcache"
	"journeys/pkg/utils"
)

// SnapshotRepository persists opaque blobs under a key. Load returns nil
// without error when nothing was saved yet.
type SnapshotRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

type memorySnapshotRepository struct {
	blobs mem.BlobStore
}

func NewMemorySnapshotRepository(blobs mem.BlobStore) SnapshotRepository {
	return &memorySnapshotRepository{blobs: blobs}
}

func (r *memorySnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blob, ok := r.blobs.Get(key)
	if !ok {
		return nil, nil
	}
	return blob, nil
}

func (r *memorySnapshotRepository) Save(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.blobs.Set(key, blob, 0)
	return nil
}

type redisSnapshotRepository struct {
	client *redis.Client
}

func NewRedisSnapshotRepository(client *redis.Client) SnapshotRepository {
	return &redisSnapshotRepository{client: client}
}

func (r *redisSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get %s: %v", utils.ErrStorageError, key, err)
	}
	return blob, nil
}

func (r *redisSnapshotRepository) Save(ctx context.Context, key string, blob []byte) error {
	if err := r.client.Set(ctx, key, blob, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", utils.ErrStorageError, key, err)
	}
	return nil
}

type postgresSnapshotRepository struct {
	db *gorm.DB
}

func NewPostgresSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &postgresSnapshotRepository{db: db}
}

func (r *postgresSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var row db_models.StoreSnapshot
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load snapshot %s: %v", utils.ErrStorageError, key, err)
	}
	return []byte(row.Payload), nil
}

// Save upserts the row for key, replacing the payload.
func (r *postgresSnapshotRepository) Save(ctx context.Context, key string, blob []byte) error {
	row := db_models.StoreSnapshot{Key: key, Payload: blob}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: save snapshot %s: %v", utils.ErrStorageError, key, err)
	}
	return nil
}
