package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/internal/repository"
	"github.com/questx-lab/questlog/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

// loadViewer prepares the dependencies of the view commands. Quests come from the JSON file given
// by --quests, or from the database.
func (s *srv) loadViewer(cctx *cli.Context) error {
	var quests []entity.Quest
	var questRepo repository.QuestRepository
	if path := cctx.String("quests"); path != "" {
		var err error
		quests, err = repository.LoadQuests(path)
		if err != nil {
			return err
		}

		questRepo = repository.NewMemoryQuestRepository()
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadRepos(questRepo)
	s.loadDomains()

	for i := range quests {
		if err := s.questLogDomain.CreateQuest(s.ctx, &quests[i]); err != nil {
			return fmt.Errorf("cannot load quest %s: %w", quests[i].ID, err)
		}
	}

	s.ctx = xcontext.WithViewer(s.ctx, model.Viewer{
		UserID: cctx.String("user"),
		IsGM:   cctx.Bool("gm"),
	})

	return nil
}

func (s *srv) startView(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return fmt.Errorf("require exactly one quest id")
	}

	if err := s.loadViewer(cctx); err != nil {
		return err
	}

	resp, err := s.questLogDomain.GetQuestView(s.ctx, &model.GetQuestViewRequest{ID: cctx.Args().First()})
	if err != nil {
		return err
	}

	return printJSON(resp.Quest)
}

func (s *srv) startSorted(cctx *cli.Context) error {
	if err := s.loadViewer(cctx); err != nil {
		return err
	}

	resp, err := s.questLogDomain.GetSortedQuestViews(s.ctx, &model.GetSortedQuestViewsRequest{})
	if err != nil {
		return err
	}

	return printJSON(resp.Quests)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
