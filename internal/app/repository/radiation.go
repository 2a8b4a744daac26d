package repository

import (
	"context"
	"strings"
	"unicode/utf8"

	"maritime_registry/internal/app/ds"
)

func (r *Repository) prepareRadiation(in *ds.Radiation) error {
	if strings.TrimSpace(in.Reason) == "" || utf8.RuneCountInString(in.Reason) > 255 {
		return newError(ErrValidation, "Motif_Radiation is required and must be at most 255 characters.")
	}
	if !validStatus(in.Status) {
		return newError(ErrValidation, "Statut_Radiation is required and must be at most 50 characters.")
	}
	if in.RequestDate.IsZero() {
		in.RequestDate = r.now()
	}
	if in.EffectiveDate != nil && in.EffectiveDate.Before(in.RequestDate) {
		return newError(ErrValidation, "Date_Effective must not precede Date_Demande.")
	}
	return nil
}

func (r *Repository) GetRadiations(ctx context.Context, imo int) ([]ds.Radiation, error) {
	return listByShip[ds.Radiation](ctx, r.db, imo)
}

func (r *Repository) GetRadiation(ctx context.Context, id int) (ds.Radiation, error) {
	return first[ds.Radiation](ctx, r.db, "Radiation", "radiation_id = ?", id)
}

func (r *Repository) CreateRadiation(ctx context.Context, in ds.Radiation) (ds.Radiation, error) {
	in.ID = 0
	if err := r.prepareRadiation(&in); err != nil {
		return ds.Radiation{}, err
	}
	if err := createRecord(ctx, r.db, &in, in.IMO); err != nil {
		return ds.Radiation{}, err
	}
	return in, nil
}

func (r *Repository) UpdateRadiation(ctx context.Context, id int, in ds.Radiation) (ds.Radiation, error) {
	if in.ID != 0 && in.ID != id {
		return ds.Radiation{}, newError(ErrValidation, "ID mismatch.")
	}
	in.ID = id
	if in.RequestDate.IsZero() {
		stored, err := r.GetRadiation(ctx, id)
		if err != nil {
			return ds.Radiation{}, err
		}
		in.RequestDate = stored.RequestDate
	}
	if err := r.prepareRadiation(&in); err != nil {
		return ds.Radiation{}, err
	}
	if err := updateRecord(ctx, r.db, &in, "Radiation", "radiation_id", id, in.IMO); err != nil {
		return ds.Radiation{}, err
	}
	return in, nil
}

func (r *Repository) DeleteRadiation(ctx context.Context, id int) error {
	return deleteRecord[ds.Radiation](ctx, r.db, "Radiation", "radiation_id", id)
}
