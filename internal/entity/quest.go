package entity

import (
	"database/sql"

	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/pkg/enum"
)

type QuestStatusType string

var (
	QuestInactive  = enum.New(QuestStatusType("inactive"))
	QuestAvailable = enum.New(QuestStatusType("available"))
	QuestActive    = enum.New(QuestStatusType("active"))
	QuestCompleted = enum.New(QuestStatusType("completed"))
	QuestFailed    = enum.New(QuestStatusType("failed"))
)

type PermissionLevel string

var (
	PermissionNone     = enum.New(PermissionLevel("NONE"))
	PermissionObserver = enum.New(PermissionLevel("OBSERVER"))
	PermissionOwner    = enum.New(PermissionLevel("OWNER"))
)

func (p PermissionLevel) rank() int {
	switch p {
	case PermissionObserver:
		return 1
	case PermissionOwner:
		return 2
	default:
		return 0
	}
}

// AbstractGiverValue marks a giver that is described by the quest itself.
const AbstractGiverValue = "abstract"

type Task struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Hidden    bool   `json:"hidden"`
}

type Reward struct {
	Type        string `json:"type"`
	Hidden      bool   `json:"hidden"`
	Locked      bool   `json:"locked"`
	UUIDVariant string `json:"uuidv4"`
	Data        Map    `json:"data"`
}

type PersonalActor struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type Quest struct {
	Base

	Name        string
	Status      QuestStatusType
	Description string `gorm:"type:text"`

	// Giver is either AbstractGiverValue, a document reference or empty. For a referenced giver
	// Image holds the preferred image kind ("actor" or "token"), otherwise the giver image.
	Giver     string
	GiverName string
	Image     string

	Tasks          Array[Task]
	Rewards        Array[Reward]
	Parent         sql.NullString
	Subquests      Array[string]
	PersonalActors Array[PersonalActor]
	Hidden         bool

	Ownership         Map
	DefaultPermission PermissionLevel
}

// GiverRef converts the stored giver columns into a tagged variant. It returns nil when the
// quest has no giver.
func (q *Quest) GiverRef() GiverRef {
	switch q.Giver {
	case "":
		return nil
	case AbstractGiverValue:
		return AbstractGiver{Name: q.GiverName, Image: q.Image}
	default:
		return ReferenceGiver{UUID: q.Giver, ImageKind: q.Image}
	}
}

// IsObservable reports whether the viewer may see the quest at all. GMs observe every quest,
// players need at least observer permission, either granted to them or by default.
func (q *Quest) IsObservable(viewer model.Viewer) bool {
	if viewer.IsGM {
		return true
	}

	level := q.DefaultPermission
	if viewer.UserID != "" {
		if v, ok := q.Ownership[viewer.UserID].(string); ok {
			level = PermissionLevel(v)
		}
	}

	return level.rank() >= PermissionObserver.rank()
}

// GiverRef is implemented by AbstractGiver and ReferenceGiver only.
type GiverRef interface {
	giverRef()
}

type AbstractGiver struct {
	Name  string
	Image string
}

type ReferenceGiver struct {
	UUID      string
	ImageKind string
}

func (AbstractGiver) giverRef()  {}
func (ReferenceGiver) giverRef() {}
