package repository

import (
	"context"
	"fmt"
	"time"

	"maritime_registry/internal/app/ds"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

type Options struct {
	SlowThreshold time.Duration
	MaxOpenConns  int
	MaxIdleConns  int
}

// New opens the database behind dialector with GORM logging routed to logrus.
func New(dialector gorm.Dialector, opts Options) (*Repository, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             opts.SlowThreshold,
			LogLevel:                  gormLogLevel(),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}

	return &Repository{db: db, now: time.Now}, nil
}

// NewFromDB wraps an already opened connection.
func NewFromDB(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Models lists the tables in dependency order: lookups and owners first,
// then users, ships and the per-ship records.
func Models() []interface{} {
	return []interface{}{
		&ds.ShipType{},
		&ds.Flag{},
		&ds.Port{},
		&ds.Owner{},
		&ds.User{},
		&ds.Ship{},
		&ds.Certificate{},
		&ds.Inspection{},
		&ds.Mutation{},
		&ds.Immatriculation{},
		&ds.Radiation{},
	}
}

func (r *Repository) AutoMigrate(ctx context.Context) error {
	for _, model := range Models() {
		if err := r.db.WithContext(ctx).AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}
	return nil
}

func gormLogLevel() logger.LogLevel {
	switch logrus.GetLevel() {
	case logrus.TraceLevel, logrus.DebugLevel:
		return logger.Info
	case logrus.InfoLevel, logrus.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}
