package repository

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"maritime_registry/internal/app/ds"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxLookupLength = 100

// normalizeLookup rejects blank or oversized values and returns the trimmed,
// lower-cased form used for storage and uniqueness.
func normalizeLookup(value, message string) (string, error) {
	if strings.TrimSpace(value) == "" || utf8.RuneCountInString(value) > maxLookupLength {
		return "", newError(ErrValidation, "%s", message)
	}
	return strings.ToLower(strings.TrimSpace(value)), nil
}

// createOrFetch inserts row unless its natural key already exists, in which
// case row is overwritten with the stored one. The insert is a single
// INSERT ... ON CONFLICT DO NOTHING so concurrent creates cannot both win.
func createOrFetch[T any](ctx context.Context, db *gorm.DB, row *T, query string, args ...interface{}) (bool, error) {
	res := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	var existing T
	if err := db.WithContext(ctx).Where(query, args...).First(&existing).Error; err != nil {
		return false, translate(err)
	}
	*row = existing
	return false, nil
}

func first[T any](ctx context.Context, db *gorm.DB, what string, query string, args ...interface{}) (T, error) {
	var row T
	err := db.WithContext(ctx).Where(query, args...).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, newError(ErrNotFound, "%s not found.", what)
	}
	return row, translate(err)
}

func list[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	rows := []T{}
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Flags

func (r *Repository) GetFlags(ctx context.Context) ([]ds.Flag, error) {
	return list[ds.Flag](ctx, r.db)
}

func (r *Repository) GetFlag(ctx context.Context, id int) (ds.Flag, error) {
	return first[ds.Flag](ctx, r.db, "Flag", "pavillon_id = ?", id)
}

func (r *Repository) GetFlagByName(ctx context.Context, name string) (ds.Flag, error) {
	return first[ds.Flag](ctx, r.db, "Flag", "LOWER(pays) = ?", strings.ToLower(strings.TrimSpace(name)))
}

// CreateFlag returns the stored flag and whether it was inserted by this call.
func (r *Repository) CreateFlag(ctx context.Context, country string) (ds.Flag, bool, error) {
	country, err := normalizeLookup(country, "Flag state must be non-empty and at most 100 characters.")
	if err != nil {
		return ds.Flag{}, false, err
	}
	flag := ds.Flag{Country: country}
	created, err := createOrFetch(ctx, r.db, &flag, "pays = ?", country)
	return flag, created, err
}

// Ports

func (r *Repository) GetPorts(ctx context.Context) ([]ds.Port, error) {
	return list[ds.Port](ctx, r.db)
}

func (r *Repository) GetPort(ctx context.Context, id int) (ds.Port, error) {
	return first[ds.Port](ctx, r.db, "Port", "port_id = ?", id)
}

func (r *Repository) GetPortByName(ctx context.Context, name string) (ds.Port, error) {
	return first[ds.Port](ctx, r.db, "Port", "LOWER(nom_port) = ?", strings.ToLower(strings.TrimSpace(name)))
}

func (r *Repository) CreatePort(ctx context.Context, name, country string) (ds.Port, bool, error) {
	name, err := normalizeLookup(name, "Port name must be non-empty and at most 100 characters.")
	if err != nil {
		return ds.Port{}, false, err
	}
	country, err = normalizeLookup(country, "Port country must be non-empty and at most 100 characters.")
	if err != nil {
		return ds.Port{}, false, err
	}
	port := ds.Port{Name: name, Country: country}
	created, err := createOrFetch(ctx, r.db, &port, "nom_port = ? AND pays = ?", name, country)
	return port, created, err
}

// Ship types

func (r *Repository) GetShipTypes(ctx context.Context) ([]ds.ShipType, error) {
	return list[ds.ShipType](ctx, r.db)
}

func (r *Repository) GetShipType(ctx context.Context, id int) (ds.ShipType, error) {
	return first[ds.ShipType](ctx, r.db, "Ship type", "type_navire_id = ?", id)
}

func (r *Repository) GetShipTypeByName(ctx context.Context, name string) (ds.ShipType, error) {
	return first[ds.ShipType](ctx, r.db, "Ship type", "LOWER(type) = ?", strings.ToLower(strings.TrimSpace(name)))
}

func (r *Repository) CreateShipType(ctx context.Context, name string) (ds.ShipType, bool, error) {
	name, err := normalizeLookup(name, "Ship type must be non-empty and at most 100 characters.")
	if err != nil {
		return ds.ShipType{}, false, err
	}
	shipType := ds.ShipType{Name: name}
	created, err := createOrFetch(ctx, r.db, &shipType, "type = ?", name)
	return shipType, created, err
}
