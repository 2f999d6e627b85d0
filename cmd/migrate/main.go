package main

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/pkg/db/postgres"
)

// Applies every migrations/*.up.sql file in lexical order. The schema
// statements are idempotent (CREATE TABLE IF NOT EXISTS), so re-running
// the tool against an initialized database is safe.
func main() {
	configFile := "config.yml"
	if v := os.Getenv("CONFIG_FILE"); v != "" {
		configFile = v
	}
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}

	psqlDB, err := postgres.NewPsqlDB(cfg)
	if err != nil {
		log.Fatalf("could not connect to db: %v", err)
	}
	defer psqlDB.Close()

	files, err := filepath.Glob("migrations/*.up.sql")
	if err != nil {
		log.Fatalf("glob migrations: %v", err)
	}
	sort.Strings(files)

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("read %s: %v", file, err)
		}
		if strings.TrimSpace(string(data)) == "" {
			continue
		}
		if _, err := psqlDB.Exec(string(data)); err != nil {
			log.Fatalf("apply %s: %v", file, err)
		}
		log.Printf("applied %s", file)
	}
	log.Println("migrations complete")
}
