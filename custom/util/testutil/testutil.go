package testutil

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"reflect"
	"sync"
	"testing"

	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"order_management/custom/util"
)

// DbMock For unit test usage
func DbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: util.NewGormLogger(logger.Info),
	})
	if err != nil {
		t.Fatal(err)
	}

	return sqldb, gormdb, mock
}

// SqliteDB For unit test usage, an in-memory database with foreign keys enforced and all tables migrated
func SqliteDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         util.NewGormLogger(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err = util.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate sqlite database: %v", err)
	}
	return db
}

// ObjectToRows For unit test usage, one row keyed by the gorm column names of object
func ObjectToRows(object interface{}) (*sqlmock.Rows, error) {
	s, err := schema.Parse(object, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}
	value := reflect.Indirect(reflect.ValueOf(object))
	columns := make([]string, 0)
	values := make([]driver.Value, 0)
	for _, field := range s.Fields {
		if field.DBName == "" {
			continue
		}
		fieldValue, _ := field.ValueOf(context.Background(), value)
		converted, err := driver.DefaultParameterConverter.ConvertValue(fieldValue)
		if err != nil {
			return nil, err
		}
		columns = append(columns, field.DBName)
		values = append(values, converted)
	}
	return sqlmock.NewRows(columns).AddRow(values...), nil
}
