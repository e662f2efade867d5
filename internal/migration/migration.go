package migration

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed *.sql
var files embed.FS

func Source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: files,
		Root:       ".",
	}
}

// Up applies pending migrations and returns how many ran.
func Up(db *sql.DB) (int, error) {
	return migrate.Exec(db, "postgres", Source(), migrate.Up)
}

// Down rolls back at most steps migrations; zero means all of them.
func Down(db *sql.DB, steps int) (int, error) {
	return migrate.ExecMax(db, "postgres", Source(), migrate.Down, steps)
}
