package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"gigbook/internal/config"
	"gigbook/internal/logging"
	"gigbook/migrations"
)

func main() {
	if len(os.Args) != 2 {
		usage()
	}

	logging.SetGlobalLogger(logging.New(logging.Config{Level: "info", Format: "text"}))

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer db.Close()

	switch os.Args[1] {
	case "up":
		if err := migrations.Up(db); err != nil {
			log.Fatal().Err(err).Msg("apply migrations")
		}
		log.Info().Msg("migrations applied")
	case "down":
		if err := migrations.Down(db); err != nil {
			log.Fatal().Err(err).Msg("roll back migrations")
		}
		log.Info().Msg("migrations rolled back")
	case "version":
		version, dirty, err := migrations.Version(db)
		if err != nil {
			log.Fatal().Err(err).Msg("read schema version")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema version")
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate [up|down|version]")
	os.Exit(2)
}
