package repository

import (
	"context"

	"maritime_registry/internal/app/ds"
)

func (r *Repository) prepareImmatriculation(in *ds.Immatriculation) error {
	if !validStatus(in.Status) {
		return newError(ErrValidation, "Statut_Demande is required and must be at most 50 characters.")
	}
	if in.RequestDate.IsZero() {
		in.RequestDate = r.now()
	}
	return nil
}

func (r *Repository) GetImmatriculations(ctx context.Context, imo int) ([]ds.Immatriculation, error) {
	return listByShip[ds.Immatriculation](ctx, r.db, imo)
}

func (r *Repository) GetImmatriculation(ctx context.Context, id int) (ds.Immatriculation, error) {
	return first[ds.Immatriculation](ctx, r.db, "Immatriculation", "immatriculation_id = ?", id)
}

func (r *Repository) CreateImmatriculation(ctx context.Context, in ds.Immatriculation) (ds.Immatriculation, error) {
	in.ID = 0
	if err := r.prepareImmatriculation(&in); err != nil {
		return ds.Immatriculation{}, err
	}
	if err := createRecord(ctx, r.db, &in, in.IMO); err != nil {
		return ds.Immatriculation{}, err
	}
	return in, nil
}

func (r *Repository) UpdateImmatriculation(ctx context.Context, id int, in ds.Immatriculation) (ds.Immatriculation, error) {
	if in.ID != 0 && in.ID != id {
		return ds.Immatriculation{}, newError(ErrValidation, "ID mismatch.")
	}
	in.ID = id
	if in.RequestDate.IsZero() {
		stored, err := r.GetImmatriculation(ctx, id)
		if err != nil {
			return ds.Immatriculation{}, err
		}
		in.RequestDate = stored.RequestDate
	}
	if err := r.prepareImmatriculation(&in); err != nil {
		return ds.Immatriculation{}, err
	}
	if err := updateRecord(ctx, r.db, &in, "Immatriculation", "immatriculation_id", id, in.IMO); err != nil {
		return ds.Immatriculation{}, err
	}
	return in, nil
}

func (r *Repository) DeleteImmatriculation(ctx context.Context, id int) error {
	return deleteRecord[ds.Immatriculation](ctx, r.db, "Immatriculation", "immatriculation_id", id)
}
