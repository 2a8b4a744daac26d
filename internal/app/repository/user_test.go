package repository

import (
	"context"
	"testing"

	"maritime_registry/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminInput() ds.UserInput {
	return ds.UserInput{Username: "admin", Password: "s3cret", Email: "admin@registry.test", Role: ds.RoleAdmin}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, adminInput())
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	stored, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
}

func TestCreateUser_Rejections(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	_, err := repo.CreateUser(ctx, adminInput())
	require.NoError(t, err)

	dupName := adminInput()
	dupName.Email = "other@registry.test"
	_, err = repo.CreateUser(ctx, dupName)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Username admin already exists.", err.Error())

	dupEmail := adminInput()
	dupEmail.Username = "other"
	_, err = repo.CreateUser(ctx, dupEmail)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Email admin@registry.test already exists.", err.Error())

	badRole := adminInput()
	badRole.Username, badRole.Email, badRole.Role = "x", "x@registry.test", "Captain"
	_, err = repo.CreateUser(ctx, badRole)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Invalid role. Allowed roles: Admin, Agent, Armateur.", err.Error())

	noPassword := ds.UserInput{Username: "y", Email: "y@registry.test", Role: ds.RoleAgent}
	_, err = repo.CreateUser(ctx, noPassword)
	require.ErrorIs(t, err, ErrValidation)

	users, err := repo.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUpdateUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	admin, err := repo.CreateUser(ctx, adminInput())
	require.NoError(t, err)
	agent, err := repo.CreateUser(ctx, ds.UserInput{Username: "agent", Password: "pw", Email: "agent@registry.test", Role: ds.RoleAgent})
	require.NoError(t, err)

	// empty password keeps the stored hash
	updated, err := repo.UpdateUser(ctx, admin.ID, ds.UserInput{Username: "root", Email: "admin@registry.test", Role: ds.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "root", updated.Username)
	_, err = repo.Authenticate(ctx, "root", "s3cret")
	require.NoError(t, err)

	_, err = repo.UpdateUser(ctx, admin.ID, ds.UserInput{Username: "root", Password: "n3w", Email: "admin@registry.test", Role: ds.RoleAdmin})
	require.NoError(t, err)
	_, err = repo.Authenticate(ctx, "root", "s3cret")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = repo.Authenticate(ctx, "root", "n3w")
	require.NoError(t, err)

	_, err = repo.UpdateUser(ctx, agent.ID, ds.UserInput{Username: "root", Email: "agent@registry.test", Role: ds.RoleAgent})
	require.ErrorIs(t, err, ErrConflict)
	_, err = repo.UpdateUser(ctx, 999, ds.UserInput{Username: "ghost", Email: "g@registry.test", Role: ds.RoleAgent})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	_, err := repo.CreateUser(ctx, adminInput())
	require.NoError(t, err)

	user, err := repo.Authenticate(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, ds.RoleAdmin, user.Role)

	_, wrongPassword := repo.Authenticate(ctx, "admin", "nope")
	_, unknownUser := repo.Authenticate(ctx, "nobody", "s3cret")
	require.ErrorIs(t, wrongPassword, ErrUnauthorized)
	require.ErrorIs(t, unknownUser, ErrUnauthorized)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestDeleteUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	user, err := repo.CreateUser(ctx, adminInput())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteUser(ctx, user.ID))
	_, err = repo.GetUserByID(ctx, user.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, repo.DeleteUser(ctx, user.ID), ErrNotFound)
}
