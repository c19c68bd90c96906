package main

import (
	"fmt"

	"github.com/questx-lab/questlog/internal/model"

	"github.com/urfave/cli/v2"
)

func (s *srv) startToken(cctx *cli.Context) error {
	userID := cctx.String("user")
	if userID == "" {
		return fmt.Errorf("require --user")
	}

	s.loadAccessTokenEngine()
	token, err := s.accessTokenEngine.Generate(userID, model.AccessToken{
		ID:   userID,
		IsGM: cctx.Bool("gm"),
	})
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
