package testutil

import (
	"context"
	"database/sql"

	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/pkg/xcontext"
)

var (
	ActorMira = &entity.Document{
		Base:       entity.Base{ID: "Actor.mira"},
		Kind:       entity.ActorDocument,
		Name:       "Mira",
		Image:      "mira.png",
		TokenImage: "mira-token.png",
	}
	ActorBoris = &entity.Document{
		Base:       entity.Base{ID: "Actor.boris"},
		Kind:       entity.ActorDocument,
		Name:       "Boris",
		Image:      "boris.png",
		TokenImage: "boris.png",
	}
	ItemSword = &entity.Document{
		Base:  entity.Base{ID: "Item.sword"},
		Kind:  entity.ItemDocument,
		Name:  "Sword",
		Image: "sword.png",
	}
	JournalNotes = &entity.Document{
		Base:  entity.Base{ID: "JournalEntry.notes"},
		Kind:  entity.JournalEntryDocument,
		Name:  "Notes",
		Image: "notes.png",
	}
	SceneTavern = &entity.Document{
		Base:  entity.Base{ID: "Scene.tavern"},
		Kind:  entity.DocumentKind("Scene"),
		Name:  "Tavern",
		Image: "tavern.png",
	}

	Documents = []*entity.Document{ActorMira, ActorBoris, ItemSword, JournalNotes, SceneTavern}
)

const (
	GMUser      = "gm1"
	PlayerUser  = "player1"
	PlayerUser2 = "player2"
)

var (
	QuestMain = &entity.Quest{
		Base:        entity.Base{ID: "quest-main"},
		Name:        "The Lost Sword",
		Status:      entity.QuestActive,
		Description: "Ask @Actor[mira]{Mira} about the sword.",
		Giver:       ActorMira.ID,
		Image:       "token",
		Tasks: entity.Array[entity.Task]{
			{Name: "Find the cave", Completed: true},
			{Name: "Enter the cave", Completed: false},
			{Name: "Secret passage", Completed: true, Hidden: true},
		},
		Rewards: entity.Array[entity.Reward]{
			{
				Type:        "Weapon",
				UUIDVariant: "reward-1",
				Data:        entity.Map{"name": "Sword", "img": "sword.png", "uuid": ItemSword.ID},
			},
			{
				Type:        "Abstract",
				UUIDVariant: "reward-2",
				Data:        entity.Map{"name": "Gratitude", "img": "heart.png"},
			},
			{
				Type:        "Loot",
				Locked:      true,
				UUIDVariant: "reward-3",
				Data:        entity.Map{"name": "Gold", "img": "gold.png", "uuid": "Item.gold"},
			},
			{
				Type:        "Weapon",
				Hidden:      true,
				UUIDVariant: "reward-4",
				Data:        entity.Map{"name": "Dagger", "img": "dagger.png", "uuid": "Item.dagger"},
			},
		},
		Subquests: entity.Array[string]{"quest-sub1", "quest-sub2", "quest-missing", "quest-secret"},
		PersonalActors: entity.Array[entity.PersonalActor]{
			{UUID: "Actor.zed", Name: "Zed"},
			{UUID: "Actor.anna", Name: "anna"},
		},
		DefaultPermission: entity.PermissionObserver,
	}

	QuestSub1 = &entity.Quest{
		Base:              entity.Base{ID: "quest-sub1"},
		Name:              "Cave map",
		Status:            entity.QuestCompleted,
		Giver:             ActorBoris.ID,
		Parent:            sql.NullString{Valid: true, String: "quest-main"},
		DefaultPermission: entity.PermissionObserver,
	}

	QuestSub2 = &entity.Quest{
		Base:              entity.Base{ID: "quest-sub2"},
		Name:              "Bandits",
		Status:            entity.QuestFailed,
		Parent:            sql.NullString{Valid: true, String: "quest-main"},
		Hidden:            true,
		PersonalActors:    entity.Array[entity.PersonalActor]{{UUID: "Actor.zed", Name: "Zed"}},
		DefaultPermission: entity.PermissionObserver,
	}

	QuestSecret = &entity.Quest{
		Base:              entity.Base{ID: "quest-secret"},
		Name:              "Secret",
		Status:            entity.QuestCompleted,
		Parent:            sql.NullString{Valid: true, String: "quest-main"},
		Ownership:         entity.Map{PlayerUser2: "OBSERVER"},
		DefaultPermission: entity.PermissionNone,
	}

	QuestAbstract = &entity.Quest{
		Base:              entity.Base{ID: "quest-abstract"},
		Name:              "A favor",
		Status:            entity.QuestInactive,
		Giver:             entity.AbstractGiverValue,
		GiverName:         "Mira",
		Image:             "mira.png",
		DefaultPermission: entity.PermissionObserver,
	}

	QuestOrphan = &entity.Quest{
		Base:              entity.Base{ID: "quest-orphan"},
		Name:              "Orphan",
		Status:            entity.QuestAvailable,
		Giver:             SceneTavern.ID,
		Parent:            sql.NullString{Valid: true, String: "quest-gone"},
		DefaultPermission: entity.PermissionObserver,
	}

	Quests = []*entity.Quest{QuestMain, QuestSub1, QuestSub2, QuestSecret, QuestAbstract, QuestOrphan}
)

// CreateFixtureDb inserts every fixture document and quest into the database of ctx.
func CreateFixtureDb(ctx context.Context) {
	db := xcontext.DB(ctx)
	for _, doc := range Documents {
		d := *doc
		if err := db.Create(&d).Error; err != nil {
			panic(err)
		}
	}

	for _, quest := range Quests {
		q := *quest
		if err := db.Create(&q).Error; err != nil {
			panic(err)
		}
	}
}

// QuestValues copies the fixture quests, for repositories taking values.
func QuestValues() []entity.Quest {
	result := make([]entity.Quest, 0, len(Quests))
	for _, q := range Quests {
		result = append(result, *q)
	}

	return result
}
