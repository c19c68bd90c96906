package main

import (
	"context"
	"strings"

	"github.com/questx-lab/questlog/config"
	"github.com/questx-lab/questlog/internal/domain"
	"github.com/questx-lab/questlog/internal/entity"
	"github.com/questx-lab/questlog/internal/model"
	"github.com/questx-lab/questlog/internal/repository"
	"github.com/questx-lab/questlog/pkg/authenticator"
	"github.com/questx-lab/questlog/pkg/kafka"
	"github.com/questx-lab/questlog/pkg/logger"
	"github.com/questx-lab/questlog/pkg/pubsub"
	"github.com/questx-lab/questlog/pkg/router"
	"github.com/questx-lab/questlog/pkg/xcontext"
	"github.com/questx-lab/questlog/pkg/xredis"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	redisClient xredis.Client
	publisher   pubsub.Publisher

	questRepo    repository.QuestRepository
	documentRepo repository.DocumentRepository
	settingRepo  repository.SettingRepository

	settingDomain  domain.SettingDomain
	questLogDomain domain.QuestLogDomain

	accessTokenEngine authenticator.TokenEngine[model.AccessToken]
	router            *router.Router
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	return nil
}

func (s *srv) loadLogger() {
	cfg := xcontext.Configs(s.ctx)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewZapLogger(cfg.Log.Level, cfg.Log.JSON))
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.ConnectionString())
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.ConnectionString(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	default:
		panic("unsupported database driver " + cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(parseGormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		panic(err)
	}

	return db
}

func parseGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Silent
	}
}

func (s *srv) migrateDB() {
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

// loadRedisClient leaves the client nil when no address is configured, settings then keep their
// configured defaults.
func (s *srv) loadRedisClient() {
	if xcontext.Configs(s.ctx).Redis.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("Redis is not configured, settings are read only")
		return
	}

	client, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = client
}

func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx).Kafka
	if cfg.Addr == "" {
		s.publisher = kafka.NewNoopPublisher()
		return
	}

	publisher, err := kafka.NewPublisher(cfg.ClientID, []string{cfg.Addr})
	if err != nil {
		panic(err)
	}

	s.publisher = publisher
}

func (s *srv) loadRepos(questRepo repository.QuestRepository) {
	if questRepo == nil {
		questRepo = repository.NewQuestRepository()
	}

	s.questRepo = questRepo
	s.documentRepo = repository.NewDocumentRepository(s.redisClient)
	s.settingRepo = repository.NewSettingRepository(s.redisClient)
}

func (s *srv) loadDomains() {
	s.settingDomain = domain.NewSettingDomain(s.settingRepo, s.publisher)
	s.questLogDomain = domain.NewQuestLogDomain(s.questRepo, s.documentRepo, s.settingDomain)
}

func (s *srv) loadAccessTokenEngine() {
	cfg := xcontext.Configs(s.ctx).Auth
	s.accessTokenEngine = authenticator.NewTokenEngine[model.AccessToken](
		cfg.TokenSecret, cfg.AccessToken.Expiration)
}
