package main

import (
	"net/http"

	"github.com/questx-lab/questlog/internal/middleware"
	"github.com/questx-lab/questlog/pkg/router"
	"github.com/questx-lab/questlog/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	cfg := xcontext.Configs(s.ctx)
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadRepos(nil)
	s.loadDomains()
	s.loadAccessTokenEngine()
	s.loadRouter()

	httpSrv := &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(cfg.ApiServer.AllowedOrigins),
	}
	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
	if err := httpSrv.ListenAndServe(); err != nil {
		return err
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Anonymous requests are served as a player without ownership.
	publicRouter := s.router.Branch()
	publicRouter.Before(middleware.NewAuthVerifier(s.accessTokenEngine).Middleware())
	{
		router.GET(publicRouter, "/getQuestView", s.questLogDomain.GetQuestView)
		router.GET(publicRouter, "/getSortedQuestViews", s.questLogDomain.GetSortedQuestViews)
		router.GET(publicRouter, "/getSetting", s.settingDomain.Get)
		router.GET(publicRouter, "/getListSetting", s.settingDomain.GetList)
	}

	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier(s.accessTokenEngine).Required().Middleware())
	{
		router.POST(authRouter, "/updateSetting", s.settingDomain.Update)
	}
}
