package repository

import (
	"context"
	"strings"
	"unicode/utf8"

	"maritime_registry/internal/app/ds"
)

func validStatus(status string) bool {
	return strings.TrimSpace(status) != "" && utf8.RuneCountInString(status) <= 50
}

func (r *Repository) prepareMutation(in *ds.Mutation) error {
	if !validStatus(in.Status) {
		return newError(ErrValidation, "Statut_Mutation is required and must be at most 50 characters.")
	}
	if in.RequestDate.IsZero() {
		in.RequestDate = r.now()
	}
	return nil
}

func (r *Repository) GetMutations(ctx context.Context, imo int) ([]ds.Mutation, error) {
	return listByShip[ds.Mutation](ctx, r.db, imo)
}

func (r *Repository) GetMutation(ctx context.Context, id int) (ds.Mutation, error) {
	return first[ds.Mutation](ctx, r.db, "Mutation", "mutation_id = ?", id)
}

func (r *Repository) CreateMutation(ctx context.Context, in ds.Mutation) (ds.Mutation, error) {
	in.ID = 0
	if err := r.prepareMutation(&in); err != nil {
		return ds.Mutation{}, err
	}
	if err := createRecord(ctx, r.db, &in, in.IMO); err != nil {
		return ds.Mutation{}, err
	}
	return in, nil
}

func (r *Repository) UpdateMutation(ctx context.Context, id int, in ds.Mutation) (ds.Mutation, error) {
	if in.ID != 0 && in.ID != id {
		return ds.Mutation{}, newError(ErrValidation, "ID mismatch.")
	}
	in.ID = id
	if in.RequestDate.IsZero() {
		stored, err := r.GetMutation(ctx, id)
		if err != nil {
			return ds.Mutation{}, err
		}
		in.RequestDate = stored.RequestDate
	}
	if err := r.prepareMutation(&in); err != nil {
		return ds.Mutation{}, err
	}
	if err := updateRecord(ctx, r.db, &in, "Mutation", "mutation_id", id, in.IMO); err != nil {
		return ds.Mutation{}, err
	}
	return in, nil
}

func (r *Repository) DeleteMutation(ctx context.Context, id int) error {
	return deleteRecord[ds.Mutation](ctx, r.db, "Mutation", "mutation_id", id)
}
