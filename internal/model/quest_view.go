package model

type GiverView struct {
	UUID          string `json:"uuid,omitempty"`
	Name          string `json:"name"`
	Image         string `json:"img"`
	HasTokenImage bool   `json:"hasTokenImg"`
}

type ParentSummary struct {
	ID     string `json:"id,omitempty"`
	Giver  string `json:"giver,omitempty"`
	Name   string `json:"name,omitempty"`
	Status string `json:"status,omitempty"`
}

type SubquestSummary struct {
	ID                  string `json:"id"`
	Giver               string `json:"giver"`
	Name                string `json:"name"`
	Status              string `json:"status"`
	StateToken          string `json:"state"`
	IsHidden            bool   `json:"isHidden"`
	IsPersonal          bool   `json:"isPersonal"`
	PersonalActorsLabel string `json:"personalActors"`
}

type TaskView struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Hidden    bool   `json:"hidden"`
}

type RewardView struct {
	Name         string  `json:"name"`
	Image        string  `json:"img"`
	Type         string  `json:"type"`
	Hidden       bool    `json:"hidden"`
	Locked       bool    `json:"locked"`
	IsPlayerLink bool    `json:"isPlayerLink"`
	Draggable    bool    `json:"draggable"`
	Transfer     *string `json:"transfer,omitempty"`
	UUIDVariant  string  `json:"uuidv4"`
}

// RewardTransfer is the drag payload of a transferable reward.
type RewardTransfer struct {
	UUID        string `json:"uuid"`
	UUIDVariant string `json:"uuidv4"`
	Name        string `json:"name"`
}

// QuestView is the render projection of a quest for one viewer.
type QuestView struct {
	Quest

	IsPersonal          bool              `json:"isPersonal"`
	PersonalActorsLabel string            `json:"personalActorsLabel"`
	GiverView           *GiverView        `json:"data_giver"`
	StatusLabel         string            `json:"statusLabel"`
	IsSubquest          bool              `json:"isSubquest"`
	ParentSummary       ParentSummary     `json:"data_parent"`
	SubquestSummaries   []SubquestSummary `json:"data_subquest"`
	CheckedTaskCount    int               `json:"checkedTasks"`
	TotalTaskCount      int               `json:"totalTasks"`
	TaskCountLabel      string            `json:"taskCountLabel"`
	TaskViews           []TaskView        `json:"data_tasks"`
	RewardViews         []RewardView      `json:"data_rewards"`
}

// SortedQuests groups quests by a key, usually their status.
type SortedQuests[T any] map[string][]T

type SortedQuestViews = SortedQuests[*QuestView]
