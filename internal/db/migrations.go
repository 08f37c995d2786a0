package db

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	embeddedmigrations "github.com/terraincognita07/furrow/migrations"
	"gorm.io/gorm"
)

// Migration files are named NNNN_description.sql and run in numeric order.
var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type embeddedMigration struct {
	Version string
	Order   int
	Name    string
	SQL     string
}

// applyEmbeddedMigrations brings the schema up to date on every open. Each
// migration runs once, inside its own transaction, and is recorded in
// schema_migrations.
func applyEmbeddedMigrations(database *gorm.DB) error {
	if err := ensureSchemaMigrationsTable(database); err != nil {
		return err
	}

	migrations, err := loadEmbeddedMigrations()
	if err != nil {
		return err
	}

	appliedVersions, err := loadAppliedMigrationVersions(database)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if _, alreadyApplied := appliedVersions[migration.Version]; alreadyApplied {
			continue
		}
		log.Printf("furrow/db: applying migration %s", migration.Name)
		if err := runMigration(database, migration); err != nil {
			return err
		}
	}

	return nil
}

func ensureSchemaMigrationsTable(database *gorm.DB) error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}
	return nil
}

func loadEmbeddedMigrations() ([]embeddedMigration, error) {
	entries, err := fs.ReadDir(embeddedmigrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]embeddedMigration, 0, len(entries))
	seenVersions := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		migration, ok, err := parseMigrationEntry(entry.Name())
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if earlier, duplicate := seenVersions[migration.Version]; duplicate {
			return nil, fmt.Errorf("migration version %s appears in both %s and %s", migration.Version, earlier, migration.Name)
		}
		seenVersions[migration.Version] = migration.Name
		migrations = append(migrations, migration)
	}

	sort.Slice(migrations, func(i, j int) bool {
		if migrations[i].Order == migrations[j].Order {
			return migrations[i].Name < migrations[j].Name
		}
		return migrations[i].Order < migrations[j].Order
	})

	return migrations, nil
}

func parseMigrationEntry(rawName string) (embeddedMigration, bool, error) {
	fileName := strings.TrimSpace(rawName)
	matches := migrationFilePattern.FindStringSubmatch(fileName)
	if len(matches) != 2 {
		return embeddedMigration{}, false, nil
	}

	version := matches[1]
	order, err := strconv.Atoi(version)
	if err != nil {
		return embeddedMigration{}, false, fmt.Errorf("parse migration version from %s: %w", fileName, err)
	}

	rawSQL, err := fs.ReadFile(embeddedmigrations.Files, fileName)
	if err != nil {
		return embeddedMigration{}, false, fmt.Errorf("read migration %s: %w", fileName, err)
	}

	return embeddedMigration{
		Version: version,
		Order:   order,
		Name:    fileName,
		SQL:     string(rawSQL),
	}, true, nil
}

type appliedVersionRow struct {
	Version string `gorm:"column:version"`
}

func loadAppliedMigrationVersions(database *gorm.DB) (map[string]struct{}, error) {
	rows := make([]appliedVersionRow, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	versions := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		versions[row.Version] = struct{}{}
	}
	return versions, nil
}

func runMigration(database *gorm.DB, migration embeddedMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		statements := splitSQLStatements(migration.SQL)
		if len(statements) == 0 {
			return errors.New("migration has no SQL statements")
		}

		for _, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", migration.Name, statement, err)
			}
		}

		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			migration.Version,
			migration.Name,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.Name, err)
		}

		return nil
	})
}

// splitSQLStatements drops `--` comment lines, then splits on semicolons.
// Good enough for DDL; none of the embedded files embed semicolons or
// comment markers inside literals.
func splitSQLStatements(sqlText string) []string {
	lines := strings.Split(sqlText, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	rawParts := strings.Split(strings.Join(kept, "\n"), ";")
	statements := make([]string, 0, len(rawParts))
	for _, rawPart := range rawParts {
		statement := strings.TrimSpace(rawPart)
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}
	return statements
}
