package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ErrResumeNotFound is returned when no saved resume exists for an ID.
var ErrResumeNotFound = errors.New("resume not found")

const resumeIndexKey = "resumes:index"

// ResumeStore persists saved resumes in Redis.
type ResumeStore struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// NewResumeStore creates a new Redis-backed resume store.
func NewResumeStore(cfg *config.Config) *ResumeStore {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}

	return &ResumeStore{
		client: redis.NewClient(opts),
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (s *ResumeStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *ResumeStore) Close() error {
	return s.client.Close()
}

// IsHealthy checks if Redis is connected and healthy
func (s *ResumeStore) IsHealthy(ctx context.Context) error {
	return s.Ping(ctx)
}

// Save stores a resume document and indexes it for listing. A new ID is
// assigned when the record has none.
func (s *ResumeStore) Save(ctx context.Context, record *models.SavedResume) error {
	now := time.Now()
	if record.ID == "" {
		record.ID = utils.GenerateResumeID()
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal resume %s: %w", record.ID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.resumeKey(record.ID), data, 0)
	pipe.ZAdd(ctx, resumeIndexKey, redis.Z{
		Score:  float64(record.UpdatedAt.UnixMilli()),
		Member: record.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error("Failed to save resume", map[string]interface{}{
			"resume_id": record.ID,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to save resume %s: %w", record.ID, err)
	}

	return nil
}

// Get retrieves a saved resume by ID.
func (s *ResumeStore) Get(ctx context.Context, id string) (*models.SavedResume, error) {
	data, err := s.client.Get(ctx, s.resumeKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, id)
		}
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}

	var record models.SavedResume
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", id, err)
	}

	return &record, nil
}

// List returns saved resumes ordered by most recently updated.
func (s *ResumeStore) List(ctx context.Context) ([]*models.SavedResume, error) {
	ids, err := s.client.ZRevRange(ctx, resumeIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	records := make([]*models.SavedResume, 0, len(ids))
	for _, id := range ids {
		record, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ErrResumeNotFound) {
				// Index entry outlived the record; drop it
				s.client.ZRem(ctx, resumeIndexKey, id)
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Delete removes a saved resume and its index entry.
func (s *ResumeStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, s.resumeKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	if removed == 0 {
		return fmt.Errorf("%w: %s", ErrResumeNotFound, id)
	}
	return s.client.ZRem(ctx, resumeIndexKey, id).Err()
}

func (s *ResumeStore) resumeKey(id string) string {
	return fmt.Sprintf("resume:%s", id)
}
