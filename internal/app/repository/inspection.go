package repository

import (
	"context"
	"strings"
	"unicode/utf8"

	"maritime_registry/internal/app/ds"
)

func (r *Repository) prepareInspection(in *ds.Inspection) error {
	if strings.TrimSpace(in.Result) == "" || utf8.RuneCountInString(in.Result) > 20 {
		return newError(ErrValidation, "Resultat is required and must be at most 20 characters.")
	}
	if in.VisitDate.IsZero() {
		in.VisitDate = r.now()
	}
	return nil
}

func (r *Repository) GetInspections(ctx context.Context, imo int) ([]ds.Inspection, error) {
	return listByShip[ds.Inspection](ctx, r.db, imo)
}

func (r *Repository) GetInspection(ctx context.Context, id int) (ds.Inspection, error) {
	return first[ds.Inspection](ctx, r.db, "Inspection", "inspection_id = ?", id)
}

func (r *Repository) CreateInspection(ctx context.Context, in ds.Inspection) (ds.Inspection, error) {
	in.ID = 0
	if err := r.prepareInspection(&in); err != nil {
		return ds.Inspection{}, err
	}
	if err := createRecord(ctx, r.db, &in, in.IMO); err != nil {
		return ds.Inspection{}, err
	}
	return in, nil
}

func (r *Repository) UpdateInspection(ctx context.Context, id int, in ds.Inspection) (ds.Inspection, error) {
	if in.ID != 0 && in.ID != id {
		return ds.Inspection{}, newError(ErrValidation, "ID mismatch.")
	}
	in.ID = id
	if in.VisitDate.IsZero() {
		stored, err := r.GetInspection(ctx, id)
		if err != nil {
			return ds.Inspection{}, err
		}
		in.VisitDate = stored.VisitDate
	}
	if err := r.prepareInspection(&in); err != nil {
		return ds.Inspection{}, err
	}
	if err := updateRecord(ctx, r.db, &in, "Inspection", "inspection_id", id, in.IMO); err != nil {
		return ds.Inspection{}, err
	}
	return in, nil
}

func (r *Repository) DeleteInspection(ctx context.Context, id int) error {
	return deleteRecord[ds.Inspection](ctx, r.db, "Inspection", "inspection_id", id)
}
