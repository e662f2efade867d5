package database

import (
	"backoffice-service/internal/app/config"
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func PostgresConnectionString(driverConfig *config.DriverConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.Postgres.Host,
		driverConfig.Postgres.Port,
		driverConfig.Postgres.Username,
		driverConfig.Postgres.Password,
		driverConfig.Postgres.DBName,
		driverConfig.Postgres.SSLMode,
	)
}

func NewPostgresDB(driverConfig *config.DriverConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", PostgresConnectionString(driverConfig))
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres database: %w", err)
	}

	log.Println("Successfully connected to postgres database")
	return db, nil
}
