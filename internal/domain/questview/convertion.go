package questview

import (
	"encoding/json"

	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/internal/model"
)

func ConvertQuest(quest *entity.Quest) model.Quest {
	if quest == nil {
		return model.Quest{}
	}

	tasks := []model.Task{}
	for _, t := range quest.Tasks {
		tasks = append(tasks, model.Task{Name: t.Name, Completed: t.Completed, Hidden: t.Hidden})
	}

	rewards := []model.Reward{}
	for _, r := range quest.Rewards {
		rewards = append(rewards, model.Reward{
			Type:        r.Type,
			Hidden:      r.Hidden,
			Locked:      r.Locked,
			UUIDVariant: r.UUIDVariant,
			Data:        r.Data,
		})
	}

	var personalActors []model.PersonalActor
	for _, a := range quest.PersonalActors {
		personalActors = append(personalActors, model.PersonalActor{UUID: a.UUID, Name: a.Name})
	}

	var parent *string
	if quest.Parent.Valid {
		p := quest.Parent.String
		parent = &p
	}

	return model.Quest{
		ID:             quest.ID,
		Name:           quest.Name,
		Status:         string(quest.Status),
		Description:    quest.Description,
		Giver:          quest.Giver,
		GiverName:      quest.GiverName,
		Image:          quest.Image,
		Tasks:          tasks,
		Rewards:        rewards,
		Parent:         parent,
		Subquests:      quest.Subquests,
		PersonalActors: personalActors,
		IsHidden:       quest.Hidden,
	}
}

// copyQuest deep copies the serializable state so later changes to the source record, including
// its reward data maps, never reach a built view.
func copyQuest(quest model.Quest) (model.Quest, error) {
	b, err := json.Marshal(quest)
	if err != nil {
		return model.Quest{}, err
	}

	var result model.Quest
	if err := json.Unmarshal(b, &result); err != nil {
		return model.Quest{}, err
	}

	if result.Tasks == nil {
		result.Tasks = []model.Task{}
	}

	if result.Rewards == nil {
		result.Rewards = []model.Reward{}
	}

	return result, nil
}
