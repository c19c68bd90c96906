package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs  `toml:"database"`
	ApiServer APIServerConfigs `toml:"api_server"`
	Auth      AuthConfigs      `toml:"auth"`
	Redis     RedisConfigs     `toml:"redis"`
	Kafka     KafkaConfigs     `toml:"kafka"`
	Log       LogConfigs       `toml:"log"`
	QuestLog  QuestLogConfigs  `toml:"quest_log"`
	View      ViewConfigs      `toml:"view"`
}

type DatabaseConfigs struct {
	// Driver is either "sqlite" or "mysql".
	Driver   string `toml:"driver"`
	File     string `toml:"file"`
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	LogLevel string `toml:"log_level"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	if d.Driver == "sqlite" {
		return d.File
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type APIServerConfigs struct {
	Host           string   `toml:"host"`
	Port           string   `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

func (s APIServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type KafkaConfigs struct {
	Addr     string `toml:"addr"`
	ClientID string `toml:"client_id"`
}

type LogConfigs struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// QuestLogConfigs holds the default value of every registered module setting. Values stored
// through the setting API take precedence over these.
type QuestLogConfigs struct {
	AvailableQuests           bool   `toml:"available_quests" structs:"availableQuests"`
	AllowPlayersDrag          bool   `toml:"allow_players_drag" structs:"allowPlayersDrag"`
	AllowPlayersCreate        bool   `toml:"allow_players_create" structs:"allowPlayersCreate"`
	AllowPlayersAccept        bool   `toml:"allow_players_accept" structs:"allowPlayersAccept"`
	CountHidden               bool   `toml:"count_hidden" structs:"countHidden"`
	DynamicBookmarkBackground bool   `toml:"dynamic_bookmark_background" structs:"dynamicBookmarkBackground"`
	NavStyle                  string `toml:"nav_style" structs:"navStyle"`
	ShowTasks                 string `toml:"show_tasks" structs:"showTasks"`
	DefaultPermission         string `toml:"default_permission" structs:"defaultPermission"`
	HideFromPlayers           bool   `toml:"hide_from_players" structs:"hideFQLFromPlayers"`
	NotifyRewardDrop          bool   `toml:"notify_reward_drop" structs:"notifyRewardDrop"`
	ShowFolder                bool   `toml:"show_folder" structs:"showFolder"`
	EnableQuestTracker        bool   `toml:"enable_quest_tracker" structs:"enableQuestTracker"`
	QuestTrackerBackground    bool   `toml:"quest_tracker_background" structs:"questTrackerBackground"`
	QuestTrackerTasks         bool   `toml:"quest_tracker_tasks" structs:"questTrackerTasks"`
}

type ViewConfigs struct {
	Locale      string `toml:"locale"`
	Concurrency int    `toml:"concurrency"`
}

// Default returns the configuration used when no file is given. It mirrors the defaults the
// settings are registered with.
func Default() Configs {
	return Configs{
		Env: "local",
		Database: DatabaseConfigs{
			Driver:   "sqlite",
			File:     "questlog.db",
			LogLevel: "silent",
		},
		ApiServer: APIServerConfigs{
			Host:           "",
			Port:           "8080",
			AllowedOrigins: []string{"*"},
		},
		Auth: AuthConfigs{
			TokenSecret: "change-me",
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
		},
		Kafka: KafkaConfigs{
			ClientID: "questlog",
		},
		Log: LogConfigs{
			Level: "INFO",
		},
		QuestLog: QuestLogConfigs{
			CountHidden:               true,
			DynamicBookmarkBackground: true,
			NavStyle:                  "bookmarks",
			ShowTasks:                 "default",
			DefaultPermission:         "OBSERVER",
			QuestTrackerBackground:    true,
			QuestTrackerTasks:         true,
		},
		View: ViewConfigs{
			Locale:      "en",
			Concurrency: 8,
		},
	}
}

// Load decodes the TOML file at path on top of Default. An empty path returns the defaults.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	return cfg, nil
}
