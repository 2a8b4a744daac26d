package repository

import (
	"context"

	"maritime_registry/internal/app/ds"

	"gorm.io/gorm"
)

// Generic storage for the rows hanging off a ship (certificates, inspections,
// mutations, immatriculations, radiations).

func listByShip[T any](ctx context.Context, db *gorm.DB, imo int) ([]T, error) {
	rows := []T{}
	query := db.WithContext(ctx)
	if imo != 0 {
		query = query.Where("imo = ?", imo)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func requireShip(tx *gorm.DB, imo int) error {
	found, err := exists(tx, &ds.Ship{}, "imo = ?", imo)
	if err != nil {
		return err
	}
	if !found {
		return newError(ErrValidation, "Ship with IMO %d does not exist.", imo)
	}
	return nil
}

func createRecord[T any](ctx context.Context, db *gorm.DB, row *T, imo int) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireShip(tx, imo); err != nil {
			return err
		}
		return translate(tx.Create(row).Error)
	})
}

func updateRecord[T any](ctx context.Context, db *gorm.DB, row *T, what, idColumn string, id, imo int) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, new(T), idColumn+" = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return newError(ErrNotFound, "%s with ID %d not found.", what, id)
		}
		if err := requireShip(tx, imo); err != nil {
			return err
		}
		return translate(tx.Save(row).Error)
	})
}

func deleteRecord[T any](ctx context.Context, db *gorm.DB, what, idColumn string, id int) error {
	res := db.WithContext(ctx).Where(idColumn+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return newError(ErrNotFound, "%s with ID %d not found.", what, id)
	}
	return nil
}
