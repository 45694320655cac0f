package main

import (
	"fmt"
	"os"
	"strconv"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"lineblocs.com/billing/internal/database"
	"lineblocs.com/billing/utils"
)

func main() {
	helpers.InitLogrus(utils.Config("LOG_DESTINATIONS"))

	args := os.Args[1:]
	if len(args) == 0 {
		helpers.Log(logrus.InfoLevel, "Please provide command: up, down [n], version")
		return
	}

	m, err := database.NewMigrator(database.MySQLURL(utils.MigrationDatabaseParts()))
	if err != nil {
		helpers.Log(logrus.ErrorLevel, err.Error())
		os.Exit(1)
	}
	defer m.Close()

	if err := run(m, args); err != nil {
		helpers.Log(logrus.ErrorLevel, err.Error())
		os.Exit(1)
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		helpers.Log(logrus.InfoLevel, "migrations applied")
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return errors.Errorf("invalid step count %q", args[1])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil {
			return err
		}
		helpers.Log(logrus.InfoLevel, fmt.Sprintf("rolled back %d migration(s)", steps))
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			helpers.Log(logrus.InfoLevel, "no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		helpers.Log(logrus.InfoLevel, fmt.Sprintf("schema version %d (dirty=%t)", version, dirty))
	default:
		return errors.Errorf("unknown command %q", args[0])
	}
	return nil
}
