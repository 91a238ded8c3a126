package pgvec

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AlexisChartier/shopyverse-chatbot-service/pkg/vectorstore"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Store keeps vectors in Postgres with the pgvector extension. Collections
// share one table, discriminated by the collection column.
type Store struct {
	db *gorm.DB
}

var _ vectorstore.Store = &Store{}

type vectorRecord struct {
	Collection string          `gorm:"type:varchar(100);not null;primaryKey"`
	PointId    string          `gorm:"type:varchar(100);not null;primaryKey"`
	Embedding  pgvector.Vector `gorm:"type:vector(384)"`
	Payload    datatypes.JSON  `gorm:"type:jsonb"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`
}

func (vectorRecord) TableName() string {
	return "vector_records"
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate enables the pgvector extension and creates the records table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("enable pgvector extension: %w", err)
	}
	return s.db.WithContext(ctx).AutoMigrate(&vectorRecord{})
}

func (s *Store) EnsureCollection(ctx context.Context, collection string, dimension int) error {
	// Single shared table; nothing to create per collection.
	return nil
}

func (s *Store) Upsert(ctx context.Context, collection string, points []vectorstore.Point) error {
	if len(points) == 0 {
		return nil
	}
	records := make([]vectorRecord, len(points))
	for i, p := range points {
		payload, err := json.Marshal(p.Payload)
		if err != nil {
			return fmt.Errorf("marshal payload for point %s: %w", p.ID, err)
		}
		records[i] = vectorRecord{
			Collection: collection,
			PointId:    p.ID,
			Embedding:  pgvector.NewVector(p.Vector),
			Payload:    datatypes.JSON(payload),
		}
	}
	return s.db.WithContext(ctx).Save(&records).Error
}

func (s *Store) Search(ctx context.Context, collection string, vector []float32, limit int) ([]vectorstore.Hit, error) {
	if limit <= 0 {
		limit = 5
	}

	type scoredRecord struct {
		PointId    string
		Payload    datatypes.JSON
		Similarity float64
	}

	var rows []scoredRecord
	// <=> is cosine distance; similarity = 1 - distance
	err := s.db.WithContext(ctx).Raw(`
		SELECT point_id, payload, 1 - (embedding <=> ?) AS similarity
		FROM vector_records
		WHERE collection = ?
		ORDER BY embedding <=> ?
		LIMIT ?`,
		pgvector.NewVector(vector), collection, pgvector.NewVector(vector), limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("pgvector search failed: %w", err)
	}

	hits := make([]vectorstore.Hit, 0, len(rows))
	for _, row := range rows {
		payload := map[string]interface{}{}
		if len(row.Payload) > 0 {
			if err := json.Unmarshal(row.Payload, &payload); err != nil {
				return nil, fmt.Errorf("unmarshal payload for point %s: %w", row.PointId, err)
			}
		}
		hits = append(hits, vectorstore.Hit{
			ID:      row.PointId,
			Score:   row.Similarity,
			Payload: payload,
		})
	}
	return hits, nil
}

func (s *Store) Delete(ctx context.Context, collection string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("collection = ? AND point_id IN ?", collection, ids).
		Delete(&vectorRecord{}).Error
}
