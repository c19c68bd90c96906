package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"
	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/internal/model"
	"gorm.io/gorm"
)

// memoryQuestRepository keeps quests in memory. It backs the CLI when quests come from a JSON
// export instead of a database.
type memoryQuestRepository struct {
	quests *xsync.MapOf[string, entity.Quest]
}

func NewMemoryQuestRepository(quests ...entity.Quest) *memoryQuestRepository {
	r := &memoryQuestRepository{quests: xsync.NewMapOf[entity.Quest]()}
	for _, q := range quests {
		r.quests.Store(q.ID, q)
	}

	return r
}

// LoadQuests reads a JSON array of quest records from path.
func LoadQuests(path string) ([]entity.Quest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []model.QuestRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("cannot decode quests from %s: %w", path, err)
	}

	quests := make([]entity.Quest, 0, len(records))
	for _, r := range records {
		quests = append(quests, convertQuestRecord(r))
	}

	return quests, nil
}

func convertQuestRecord(record model.QuestRecord) entity.Quest {
	tasks := entity.Array[entity.Task]{}
	for _, t := range record.Tasks {
		tasks = append(tasks, entity.Task{Name: t.Name, Completed: t.Completed, Hidden: t.Hidden})
	}

	rewards := entity.Array[entity.Reward]{}
	for _, r := range record.Rewards {
		rewards = append(rewards, entity.Reward{
			Type:        r.Type,
			Hidden:      r.Hidden,
			Locked:      r.Locked,
			UUIDVariant: r.UUIDVariant,
			Data:        r.Data,
		})
	}

	var personalActors entity.Array[entity.PersonalActor]
	for _, a := range record.PersonalActors {
		personalActors = append(personalActors, entity.PersonalActor{UUID: a.UUID, Name: a.Name})
	}

	var parent sql.NullString
	if record.Parent != nil && *record.Parent != "" {
		parent = sql.NullString{String: *record.Parent, Valid: true}
	}

	var ownership entity.Map
	if len(record.Ownership) > 0 {
		ownership = entity.Map{}
		for userID, level := range record.Ownership {
			ownership[userID] = level
		}
	}

	return entity.Quest{
		Base:              entity.Base{ID: record.ID},
		Name:              record.Name,
		Status:            entity.QuestStatusType(record.Status),
		Description:       record.Description,
		Giver:             record.Giver,
		GiverName:         record.GiverName,
		Image:             record.Image,
		Tasks:             tasks,
		Rewards:           rewards,
		Parent:            parent,
		Subquests:         record.Subquests,
		PersonalActors:    personalActors,
		Hidden:            record.IsHidden,
		Ownership:         ownership,
		DefaultPermission: entity.PermissionLevel(record.DefaultPermission),
	}
}

func (r *memoryQuestRepository) Create(ctx context.Context, quest *entity.Quest) error {
	if quest.ID == "" {
		quest.ID = uuid.NewString()
	}

	if _, loaded := r.quests.LoadOrStore(quest.ID, *quest); loaded {
		return fmt.Errorf("quest %s already exists", quest.ID)
	}

	return nil
}

func (r *memoryQuestRepository) GetByID(ctx context.Context, id string) (*entity.Quest, error) {
	quest, ok := r.quests.Load(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	return &quest, nil
}

func (r *memoryQuestRepository) GetList(ctx context.Context) ([]entity.Quest, error) {
	result := []entity.Quest{}
	r.quests.Range(func(_ string, quest entity.Quest) bool {
		result = append(result, quest)
		return true
	})

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}
