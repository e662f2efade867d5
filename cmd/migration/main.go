package main

import (
	"backoffice-service/internal/app/config"
	"backoffice-service/internal/app/drivers/database"
	"backoffice-service/internal/app/drivers/logger"
	"backoffice-service/internal/migration"
	"flag"

	"github.com/sirupsen/logrus"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 1, "number of migrations to roll back when direction is down, 0 for all")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	db, err := database.NewPostgresDB(driverConfig)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to postgres")
	}
	defer db.Close()

	var applied int
	switch *direction {
	case "up":
		applied, err = migration.Up(db)
	case "down":
		applied, err = migration.Down(db, *steps)
	default:
		log.WithField("direction", *direction).Fatal("Unknown migration direction")
	}
	if err != nil {
		log.WithError(err).WithField("direction", *direction).Fatal("Error executing migration")
	}

	log.WithFields(logrus.Fields{
		"direction": *direction,
		"applied":   applied,
	}).Info("Migrations finished")
}
