package main

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"space_fleet/internal/app/config"
	"space_fleet/internal/app/ds"
	"space_fleet/internal/app/dsn"
)

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()
	db, err := gorm.Open(postgres.Open(postgresString), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	err = db.AutoMigrate(&ds.User{})
	if err != nil {
		logrus.Fatalf("error migrating users: %v", err)
	}
	err = db.AutoMigrate(&ds.Ship{})
	if err != nil {
		logrus.Fatalf("error migrating ships: %v", err)
	}

	logrus.Info("Database migration completed")
}
