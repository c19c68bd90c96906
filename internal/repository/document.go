package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/pkg/xcontext"
	"github.com/questx-lab/questlog/pkg/xredis"
)

const documentCacheTTL = 5 * time.Minute

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
}

type documentRepository struct {
	redisClient xredis.Client
}

// NewDocumentRepository returns a repository reading documents from the database. When
// redisClient is not nil, documents are cached for a few minutes.
func NewDocumentRepository(redisClient xredis.Client) *documentRepository {
	return &documentRepository{redisClient: redisClient}
}

func (r *documentRepository) cacheKey(id string) string {
	return fmt.Sprintf("cache:document:%s", id)
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	if err := xcontext.DB(ctx).Create(doc).Error; err != nil {
		return err
	}

	if r.redisClient != nil {
		if err := r.redisClient.Del(ctx, r.cacheKey(doc.ID)); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot invalidate document cache: %v", err)
		}
	}

	return nil
}

// GetByID returns gorm.ErrRecordNotFound when no document has the id.
func (r *documentRepository) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	if r.redisClient != nil {
		var cached entity.Document
		if err := r.redisClient.GetObj(ctx, r.cacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	result := &entity.Document{}
	if err := xcontext.DB(ctx).Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	if r.redisClient != nil {
		if err := r.redisClient.SetObj(ctx, r.cacheKey(id), result, documentCacheTTL); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache document %s: %v", id, err)
		}
	}

	return result, nil
}
