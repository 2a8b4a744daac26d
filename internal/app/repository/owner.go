package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"maritime_registry/internal/app/ds"

	"gorm.io/gorm"
)

func validateOwner(owner ds.Owner) error {
	if strings.TrimSpace(owner.Name) == "" || utf8.RuneCountInString(owner.Name) > 100 {
		return newError(ErrValidation, "Nom_Armateur is required and must be at most 100 characters.")
	}
	if strings.TrimSpace(owner.Contact) == "" || utf8.RuneCountInString(owner.Contact) > 255 {
		return newError(ErrValidation, "Contact is required and must be at most 255 characters.")
	}
	return nil
}

func ownerNotFound(id int) error {
	return newError(ErrNotFound, "Armateur with ID %d not found.", id)
}

func (r *Repository) GetOwners(ctx context.Context) ([]ds.Owner, error) {
	return list[ds.Owner](ctx, r.db)
}

func (r *Repository) GetOwner(ctx context.Context, id int) (ds.Owner, error) {
	owner := ds.Owner{}
	err := r.db.WithContext(ctx).Where("armateur_id = ?", id).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Owner{}, ownerNotFound(id)
	}
	return owner, translate(err)
}

// GetOwnerShips lists the ships operated by owner id.
func (r *Repository) GetOwnerShips(ctx context.Context, id int) ([]ds.OwnerShip, error) {
	if _, err := r.GetOwner(ctx, id); err != nil {
		return nil, err
	}

	var ships []ds.Ship
	err := r.db.WithContext(ctx).Preload("ShipType").Where("armateur_id = ?", id).Find(&ships).Error
	if err != nil {
		return nil, err
	}

	result := make([]ds.OwnerShip, 0, len(ships))
	for _, ship := range ships {
		shipType := strconv.Itoa(ship.TypeNavireID)
		if ship.ShipType != nil {
			shipType = ship.ShipType.Name
		}
		result = append(result, ds.OwnerShip{
			IMO:      ship.IMO,
			Name:     ship.Name,
			ShipType: shipType,
			Status:   ship.Status,
		})
	}
	return result, nil
}

// CreateOwner rejects a name already held by another owner. The match is exact.
func (r *Repository) CreateOwner(ctx context.Context, owner ds.Owner) (ds.Owner, error) {
	if err := validateOwner(owner); err != nil {
		return ds.Owner{}, err
	}
	owner.ID = 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := exists(tx, &ds.Owner{}, "nom_armateur = ?", owner.Name)
		if err != nil {
			return err
		}
		if taken {
			return newError(ErrConflict, "Armateur with name '%s' already exists.", owner.Name)
		}
		return translate(tx.Create(&owner).Error)
	})
	if err != nil {
		return ds.Owner{}, err
	}
	return owner, nil
}

func (r *Repository) UpdateOwner(ctx context.Context, id int, owner ds.Owner) error {
	if owner.ID != id {
		return newError(ErrValidation, "ID mismatch.")
	}
	if err := validateOwner(owner); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &ds.Owner{}, "armateur_id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return ownerNotFound(id)
		}
		taken, err := exists(tx, &ds.Owner{}, "nom_armateur = ? AND armateur_id <> ?", owner.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return newError(ErrConflict, "Armateur with name '%s' already exists.", owner.Name)
		}
		return translate(tx.Model(&ds.Owner{}).Where("armateur_id = ?", id).Updates(map[string]interface{}{
			"nom_armateur": owner.Name,
			"contact":      owner.Contact,
		}).Error)
	})
}

// DeleteOwner fails with ErrConflict while ships still reference the owner.
func (r *Repository) DeleteOwner(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &ds.Owner{}, "armateur_id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return ownerNotFound(id)
		}
		referenced, err := exists(tx, &ds.Ship{}, "armateur_id = ?", id)
		if err != nil {
			return err
		}
		if referenced {
			return newError(ErrConflict, "Armateur with ID %d is still referenced by ships.", id)
		}
		return translate(tx.Where("armateur_id = ?", id).Delete(&ds.Owner{}).Error)
	})
}

func exists(tx *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
