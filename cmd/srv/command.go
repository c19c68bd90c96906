package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Usage:   "Path of the TOML config file",
		EnvVars: []string{"QUESTLOG_CONFIG"},
	}

	gmFlag := &cli.BoolFlag{
		Name:  "gm",
		Usage: "Build the views for a GM",
	}

	userFlag := &cli.StringFlag{
		Name:  "user",
		Usage: "User id of the viewer",
	}

	questsFlag := &cli.StringFlag{
		Name:  "quests",
		Usage: "Read quests from a JSON file instead of the database",
	}

	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "questlog"
	s.app.Usage = "Quest log view service"
	s.app.Flags = []cli.Flag{configFlag}
	s.app.Before = func(cctx *cli.Context) error {
		if err := s.loadConfig(cctx); err != nil {
			return err
		}

		s.loadLogger()
		return nil
	}
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Serve quest views and settings over HTTP.`,
		},
		{
			Action:      s.startView,
			Name:        "view",
			Usage:       "Print the view of a quest",
			ArgsUsage:   "<quest-id>",
			Flags:       []cli.Flag{gmFlag, userFlag, questsFlag},
			Category:    "Tool",
			Description: `Build the view of one quest and print it as JSON.`,
		},
		{
			Action:      s.startSorted,
			Name:        "sorted",
			Usage:       "Print the quest log",
			Flags:       []cli.Flag{gmFlag, userFlag, questsFlag},
			Category:    "Tool",
			Description: `Build the views of every observable quest grouped by status and print them as JSON.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate the database",
			Category:    "Tool",
			Description: `Create or update the quest and document tables.`,
		},
		{
			Action:      s.startImport,
			Name:        "import",
			Usage:       "Import quests into the database",
			ArgsUsage:   "<quests.json>",
			Category:    "Tool",
			Description: `Insert every quest of a JSON export into the database.`,
		},
		{
			Action:      s.startToken,
			Name:        "token",
			Usage:       "Generate an access token",
			Flags:       []cli.Flag{gmFlag, userFlag},
			Category:    "Tool",
			Description: `Sign an access token for the api.`,
		},
	}
}
