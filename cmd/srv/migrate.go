package main

import (
	"fmt"

	"github.com/questx-lab/questlog/internal/repository"
	"github.com/questx-lab/questlog/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	xcontext.Logger(s.ctx).Infof("Migrate database successfully")
	return nil
}

func (s *srv) startImport(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return fmt.Errorf("require exactly one quest file")
	}

	quests, err := repository.LoadQuests(cctx.Args().First())
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadRepos(nil)
	s.loadDomains()

	for i := range quests {
		if err := s.questLogDomain.CreateQuest(s.ctx, &quests[i]); err != nil {
			return fmt.Errorf("cannot import quest %s: %w", quests[i].ID, err)
		}
	}

	xcontext.Logger(s.ctx).Infof("Imported %d quests", len(quests))
	return nil
}
