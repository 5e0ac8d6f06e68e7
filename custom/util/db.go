package util

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/romana/rlog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
	"order_management/model"
)

// rlogWriter routes gorm's SQL logger through rlog.
type rlogWriter struct{}

func (rlogWriter) Printf(format string, args ...interface{}) {
	rlog.Debugf(format, args...)
}

func NewGormLogger(level logger.LogLevel) logger.Interface {
	return logger.New(rlogWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

// OpenDatabase opens the single database handle shared by every service.
// Connections go through lib/pq; replicas, when configured, serve reads.
func OpenDatabase(cfg DbConfig) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: NewGormLogger(logger.Warn),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if len(cfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(cfg.Replicas))
		for _, dsn := range cfg.Replicas {
			replicas = append(replicas, postgres.Open(dsn))
		}
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}).
			SetMaxIdleConns(cfg.MaxIdleConns).
			SetMaxOpenConns(cfg.MaxOpenConns).
			SetConnMaxLifetime(cfg.ConnMaxLifetime))
		if err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("register read replicas: %w", err)
		}
		rlog.Infof("Registered %d read replica(s)", len(replicas))
	}

	return db, nil
}

// Migrate creates or updates the table schemas.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.AllTables...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// CloseDatabase releases the pool behind db.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
