package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/L-alam/amongyall-sub001/internal/config"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Usage: migrations [flags] <name> [up|down]
// e.g. migrations 000001_init up
func main() {
	cfg, err := config.Load("migrations", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg.SetupLogging()

	if len(cfg.Args) < 1 {
		log.Fatal().Msg("a migration name is required")
	}
	migrationName := cfg.Args[0]
	direction := "up"
	if len(cfg.Args) > 1 {
		direction = cfg.Args[1]
	}
	if direction != "up" && direction != "down" {
		log.Fatal().Str("direction", direction).Msg("direction must be up or down")
	}

	db, err := sql.Open("postgres", cfg.DB.ConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	basePath := filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")
	fileName, fileContent, err := migrationFileContent(basePath, migrationName, direction)
	if err != nil {
		log.Fatal().Err(err).Str("migration", migrationName).Msg("failed to read migration")
	}

	if _, err := db.Exec(string(fileContent)); err != nil {
		log.Fatal().Err(err).Str("file", fileName).Msg("failed to execute migration")
	}

	log.Info().Str("file", fileName).Msg("migration executed")
}

func migrationFileContent(basePath, migrationName, direction string) (string, []byte, error) {
	fileName, err := migrationFilePath(basePath, migrationName, direction)
	if err != nil {
		return "", nil, err
	}

	fileContent, err := os.ReadFile(filepath.Join(basePath, fileName))
	if err != nil {
		return "", nil, err
	}
	return fileName, fileContent, nil
}

func migrationFilePath(basePath, migrationName, direction string) (string, error) {
	regex, err := regexp.Compile(fmt.Sprintf(`^.*%s\.%s\.sql$`, regexp.QuoteMeta(migrationName), direction))
	if err != nil {
		return "", fmt.Errorf("invalid pattern: %w", err)
	}

	files, err := os.ReadDir(basePath)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if regex.MatchString(f.Name()) {
			return f.Name(), nil
		}
	}

	return "", fmt.Errorf("migration file not found")
}
