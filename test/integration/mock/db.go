package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps the shared in-memory SQLite database backing the test server.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the given models.
// Models must be listed parents first so migration and reset order is valid.
func NewDb(models ...any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every query on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	return &Db{DbConn: dbConn, models: models}
}

// Reset deletes every row so each scenario starts from a clean slate.
// Tables are cleared children first, the reverse of the migration order.
func (d *Db) Reset() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		session := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(d.models[i]).Error; err != nil {
			return fmt.Errorf("failed to reset table for %T: %w", d.models[i], err)
		}
	}
	return nil
}
