package repository

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"maritime_registry/internal/app/ds"

	"gorm.io/gorm"
)

const dependentsMessage = "Cannot delete ship. It has related records (certificates, inspections, mutations, immatriculations, or radiations)."

func shipNotFound(imo int) error {
	return newError(ErrNotFound, "Ship with IMO %d not found.", imo)
}

func validateShip(ship ds.Ship) error {
	if ship.IMO < ds.MinIMO || ship.IMO > ds.MaxIMO {
		return newError(ErrValidation, "Imo must be a 7-digit number.")
	}
	if strings.TrimSpace(ship.Name) == "" || utf8.RuneCountInString(ship.Name) > 100 {
		return newError(ErrValidation, "Nom_Navire is required and must be at most 100 characters.")
	}
	if strings.TrimSpace(ship.Status) == "" || utf8.RuneCountInString(ship.Status) > 50 {
		return newError(ErrValidation, "Statut is required and must be at most 50 characters.")
	}
	return nil
}

// validateShipRefs checks that every lookup the ship points at exists.
func validateShipRefs(tx *gorm.DB, ship ds.Ship) error {
	refs := []struct {
		model  interface{}
		column string
		field  string
		id     int
	}{
		{&ds.ShipType{}, "type_navire_id", "Type_Navire_Id", ship.TypeNavireID},
		{&ds.Flag{}, "pavillon_id", "Pavillon_Id", ship.PavillonID},
		{&ds.Owner{}, "armateur_id", "Armateur_Id", ship.ArmateurID},
		{&ds.Port{}, "port_id", "Port_Id", ship.PortID},
	}
	for _, ref := range refs {
		found, err := exists(tx, ref.model, ref.column+" = ?", ref.id)
		if err != nil {
			return err
		}
		if !found {
			return newError(ErrValidation, "Invalid %s %d.", ref.field, ref.id)
		}
	}
	return nil
}

func withLookups(db *gorm.DB) *gorm.DB {
	return db.Preload("ShipType").Preload("Flag").Preload("Owner").Preload("Port")
}

func (r *Repository) GetShips(ctx context.Context) ([]ds.ShipView, error) {
	var ships []ds.Ship
	if err := withLookups(r.db.WithContext(ctx)).Order("imo").Find(&ships).Error; err != nil {
		return nil, err
	}
	views := make([]ds.ShipView, 0, len(ships))
	for _, ship := range ships {
		views = append(views, ship.View())
	}
	return views, nil
}

func (r *Repository) GetShip(ctx context.Context, imo int) (ds.ShipView, error) {
	ship := ds.Ship{}
	err := withLookups(r.db.WithContext(ctx)).Where("imo = ?", imo).First(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.ShipView{}, shipNotFound(imo)
	}
	if err != nil {
		return ds.ShipView{}, err
	}
	return ship.View(), nil
}

// CreateShip inserts a new ship. The returned view carries the raw lookup ids.
func (r *Repository) CreateShip(ctx context.Context, ship ds.Ship) (ds.ShipView, error) {
	if err := validateShip(ship); err != nil {
		return ds.ShipView{}, err
	}
	ship.PhotoURL = ""
	ship.ShipType, ship.Flag, ship.Owner, ship.Port = nil, nil, nil, nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := exists(tx, &ds.Ship{}, "imo = ?", ship.IMO)
		if err != nil {
			return err
		}
		if taken {
			return newError(ErrConflict, "Ship with IMO %d already exists.", ship.IMO)
		}
		if err := validateShipRefs(tx, ship); err != nil {
			return err
		}
		return translate(tx.Create(&ship).Error)
	})
	if err != nil {
		return ds.ShipView{}, err
	}
	return ship.View(), nil
}

// UpdateShip overwrites name, status and the four lookup references, then
// returns the re-joined projection.
func (r *Repository) UpdateShip(ctx context.Context, imo int, ship ds.Ship) (ds.ShipView, error) {
	if ship.IMO != imo {
		return ds.ShipView{}, newError(ErrValidation, "IMO mismatch")
	}
	if err := validateShip(ship); err != nil {
		return ds.ShipView{}, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &ds.Ship{}, "imo = ?", imo)
		if err != nil {
			return err
		}
		if !found {
			return shipNotFound(imo)
		}
		if err := validateShipRefs(tx, ship); err != nil {
			return err
		}
		return translate(tx.Model(&ds.Ship{}).Where("imo = ?", imo).Updates(map[string]interface{}{
			"nom_navire":     ship.Name,
			"statut":         ship.Status,
			"type_navire_id": ship.TypeNavireID,
			"pavillon_id":    ship.PavillonID,
			"armateur_id":    ship.ArmateurID,
			"port_id":        ship.PortID,
		}).Error)
	})
	if err != nil {
		return ds.ShipView{}, err
	}
	return r.GetShip(ctx, imo)
}

// DeleteShip removes a ship that has no certificates, inspections, mutations,
// immatriculations or radiations. The check and the delete share a transaction.
func (r *Repository) DeleteShip(ctx context.Context, imo int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &ds.Ship{}, "imo = ?", imo)
		if err != nil {
			return err
		}
		if !found {
			return shipNotFound(imo)
		}

		dependents := []interface{}{
			&ds.Certificate{}, &ds.Inspection{}, &ds.Mutation{}, &ds.Immatriculation{}, &ds.Radiation{},
		}
		for _, model := range dependents {
			has, err := exists(tx, model, "imo = ?", imo)
			if err != nil {
				return err
			}
			if has {
				return newError(ErrDependents, dependentsMessage)
			}
		}

		return translate(tx.Where("imo = ?", imo).Delete(&ds.Ship{}).Error)
	})
}

// GetShipStats counts ships by the English status vocabulary.
func (r *Repository) GetShipStats(ctx context.Context) (ds.ShipStats, error) {
	var rows []struct {
		Statut string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&ds.Ship{}).
		Select("statut, COUNT(*) AS total").
		Group("statut").
		Scan(&rows).Error
	if err != nil {
		return ds.ShipStats{}, err
	}

	stats := ds.ShipStats{}
	for _, row := range rows {
		stats.TotalShips += row.Total
		switch row.Statut {
		case ds.StatusActive:
			stats.ActiveShips = row.Total
		case ds.StatusInactive:
			stats.InactiveShips = row.Total
		case ds.StatusUnderRepair:
			stats.UnderRepairShips = row.Total
		}
	}
	return stats, nil
}

// SetShipPhoto stores objectName as the ship photo and returns the previous one.
func (r *Repository) SetShipPhoto(ctx context.Context, imo int, objectName string) (string, error) {
	var previous string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ship := ds.Ship{}
		err := tx.Where("imo = ?", imo).First(&ship).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shipNotFound(imo)
		}
		if err != nil {
			return err
		}
		previous = ship.PhotoURL
		return tx.Model(&ds.Ship{}).Where("imo = ?", imo).Update("photo_url", objectName).Error
	})
	return previous, err
}

// ShipExists reports whether imo is registered.
func (r *Repository) ShipExists(ctx context.Context, imo int) (bool, error) {
	return exists(r.db.WithContext(ctx), &ds.Ship{}, "imo = ?", imo)
}
