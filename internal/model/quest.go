package model

type Task struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Hidden    bool   `json:"hidden"`
}

type Reward struct {
	Type        string         `json:"type"`
	Hidden      bool           `json:"hidden"`
	Locked      bool           `json:"locked"`
	UUIDVariant string         `json:"uuidv4"`
	Data        map[string]any `json:"data"`
}

type PersonalActor struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// Quest is the serializable state of a quest record.
type Quest struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	Description    string          `json:"description"`
	Giver          string          `json:"giver,omitempty"`
	GiverName      string          `json:"giverName,omitempty"`
	Image          string          `json:"image,omitempty"`
	Tasks          []Task          `json:"tasks"`
	Rewards        []Reward        `json:"rewards"`
	Parent         *string         `json:"parent"`
	Subquests      []string        `json:"subquests,omitempty"`
	PersonalActors []PersonalActor `json:"personalActors,omitempty"`
	IsHidden       bool            `json:"isHidden"`
}

// QuestRecord is a quest as exported to a JSON file. It adds the permissions, which views never
// expose, to the quest state.
type QuestRecord struct {
	Quest

	Ownership         map[string]string `json:"ownership,omitempty"`
	DefaultPermission string            `json:"defaultPermission,omitempty"`
}

type GetQuestViewRequest struct {
	ID string `json:"id"`
}

type GetQuestViewResponse struct {
	Quest *QuestView `json:"quest"`
}

type GetSortedQuestViewsRequest struct{}

type GetSortedQuestViewsResponse struct {
	Quests SortedQuestViews `json:"quests"`
}
