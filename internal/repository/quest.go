package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/pkg/xcontext"
)

type QuestRepository interface {
	Create(ctx context.Context, quest *entity.Quest) error
	GetByID(ctx context.Context, id string) (*entity.Quest, error)
	GetList(ctx context.Context) ([]entity.Quest, error)
}

type questRepository struct{}

func NewQuestRepository() *questRepository {
	return &questRepository{}
}

func (r *questRepository) Create(ctx context.Context, quest *entity.Quest) error {
	if quest.ID == "" {
		quest.ID = uuid.NewString()
	}

	return xcontext.DB(ctx).Create(quest).Error
}

// GetByID returns gorm.ErrRecordNotFound when no quest has the id.
func (r *questRepository) GetByID(ctx context.Context, id string) (*entity.Quest, error) {
	result := &entity.Quest{}
	if err := xcontext.DB(ctx).Take(result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *questRepository) GetList(ctx context.Context) ([]entity.Quest, error) {
	var result []entity.Quest
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
