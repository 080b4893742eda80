package hdb

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/huddleapp/huddle/pkg/config"
	"github.com/huddleapp/huddle/pkg/hdb/model"
)

// The server gives the database this long to come up before it commits to
// transient in-memory storage for the life of the process.
const (
	connectTimeout = 10 * time.Second
	retryDelay     = 2 * time.Second
)

func MakeMysqlDSNFromConfig() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.GetKey("HUDDLE_DB_USERNAME"),
		config.GetKey("HUDDLE_DB_PASSWORD"),
		config.GetKeyWithDefault("HUDDLE_DB_HOST", "localhost"),
		config.GetKeyWithDefault("HUDDLE_DB_PORT", "3306"),
		config.GetKey("HUDDLE_DB_DATABASE"))
}

func openDialector() gorm.Dialector {
	switch config.GetKeyWithDefault("HUDDLE_DB_DRIVER", "sqlite") {
	case "mysql":
		return mysql.Open(MakeMysqlDSNFromConfig())
	default:
		return sqlite.Open(config.GetKeyWithDefault("HUDDLE_DB_PATH", "huddle.db"))
	}
}

// ConnectToDB attempts to open the configured database, retrying until the
// connection budget is spent. A nil error means durable mode; callers fall
// back to the in-memory stores otherwise.
func ConnectToDB() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err := gorm.Open(openDialector(), gormConfig)
		if err == nil {
			if err := migrate(db); err != nil {
				return nil, err
			}
			return db, nil
		}

		if time.Now().Add(retryDelay).After(deadline) {
			return nil, errors.Wrap(err, "database unreachable within connection budget")
		}

		time.Sleep(retryDelay)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.Task{},
		&model.Message{},
	)
}
