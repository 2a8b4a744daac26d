package repository

import (
	"context"
	"testing"

	"maritime_registry/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOwner(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner, err := repo.CreateOwner(ctx, ds.Owner{Name: "CMA CGM", Contact: "fleet@cma.test"})
	require.NoError(t, err)
	assert.NotZero(t, owner.ID)

	_, err = repo.CreateOwner(ctx, ds.Owner{Name: "CMA CGM", Contact: "other@cma.test"})
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Armateur with name 'CMA CGM' already exists.", err.Error())

	// exact match only: a different casing is another owner
	_, err = repo.CreateOwner(ctx, ds.Owner{Name: "cma cgm", Contact: "x@cma.test"})
	require.NoError(t, err)

	_, err = repo.CreateOwner(ctx, ds.Owner{Name: "", Contact: "x@y.test"})
	require.ErrorIs(t, err, ErrValidation)
	_, err = repo.CreateOwner(ctx, ds.Owner{Name: "No Contact"})
	require.ErrorIs(t, err, ErrValidation)

	owners, err := repo.GetOwners(ctx)
	require.NoError(t, err)
	assert.Len(t, owners, 2)
}

func TestUpdateOwner(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a, err := repo.CreateOwner(ctx, ds.Owner{Name: "Alpha", Contact: "a@a.test"})
	require.NoError(t, err)
	b, err := repo.CreateOwner(ctx, ds.Owner{Name: "Beta", Contact: "b@b.test"})
	require.NoError(t, err)

	err = repo.UpdateOwner(ctx, a.ID, ds.Owner{ID: b.ID, Name: "Alpha", Contact: "a@a.test"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "ID mismatch.", err.Error())

	err = repo.UpdateOwner(ctx, 999, ds.Owner{ID: 999, Name: "Ghost", Contact: "g@g.test"})
	require.ErrorIs(t, err, ErrNotFound)

	err = repo.UpdateOwner(ctx, a.ID, ds.Owner{ID: a.ID, Name: "Beta", Contact: "a@a.test"})
	require.ErrorIs(t, err, ErrConflict)

	// keeping its own name is not a conflict
	require.NoError(t, repo.UpdateOwner(ctx, a.ID, ds.Owner{ID: a.ID, Name: "Alpha", Contact: "new@a.test"}))
	got, err := repo.GetOwner(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@a.test", got.Contact)
}

func TestGetOwnerShips(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	f := seedShip(t, repo)

	ships, err := repo.GetOwnerShips(ctx, f.owner.ID)
	require.NoError(t, err)
	require.Len(t, ships, 1)
	assert.Equal(t, ds.OwnerShip{IMO: testIMO, Name: "Belle Ile", ShipType: "container ship", Status: ds.StatusActif}, ships[0])

	_, err = repo.GetOwnerShips(ctx, 4040)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Armateur with ID 4040 not found.", err.Error())
}

func TestDeleteOwner(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	f := seedShip(t, repo)

	err := repo.DeleteOwner(ctx, f.owner.ID)
	require.ErrorIs(t, err, ErrConflict)
	_, err = repo.GetOwner(ctx, f.owner.ID)
	require.NoError(t, err)

	lonely, err := repo.CreateOwner(ctx, ds.Owner{Name: "Lonely", Contact: "l@l.test"})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteOwner(ctx, lonely.ID))
	_, err = repo.GetOwner(ctx, lonely.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, repo.DeleteOwner(ctx, lonely.ID), ErrNotFound)
}
