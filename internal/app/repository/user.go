package repository

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"maritime_registry/internal/app/ds"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const badCredentials = "Nom d'utilisateur ou mot de passe incorrect"

// dummyHash is compared against when the username is unknown so that both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("maritime-registry"), bcrypt.DefaultCost)

func userNotFound(id int) error {
	return newError(ErrNotFound, "User with ID %d not found.", id)
}

func validateUser(in ds.UserInput, requirePassword bool) error {
	if strings.TrimSpace(in.Username) == "" || utf8.RuneCountInString(in.Username) > 100 {
		return newError(ErrValidation, "nom_utilisateur is required and must be at most 100 characters.")
	}
	if strings.TrimSpace(in.Email) == "" || utf8.RuneCountInString(in.Email) > 255 {
		return newError(ErrValidation, "email is required and must be at most 255 characters.")
	}
	if requirePassword && in.Password == "" {
		return newError(ErrValidation, "mot_de_passe is required.")
	}
	if len(in.Password) > 72 {
		return newError(ErrValidation, "mot_de_passe must be at most 72 bytes.")
	}
	if !ds.ValidRole(in.Role) {
		return newError(ErrValidation, "Invalid role. Allowed roles: Admin, Agent, Armateur.")
	}
	return nil
}

// checkUserUnique rejects a username or email held by a user other than selfID.
func checkUserUnique(tx *gorm.DB, in ds.UserInput, selfID int) error {
	taken, err := exists(tx, &ds.User{}, "nom_utilisateur = ? AND utilisateur_id <> ?", in.Username, selfID)
	if err != nil {
		return err
	}
	if taken {
		return newError(ErrConflict, "Username %s already exists.", in.Username)
	}
	taken, err = exists(tx, &ds.User{}, "email = ? AND utilisateur_id <> ?", in.Email, selfID)
	if err != nil {
		return err
	}
	if taken {
		return newError(ErrConflict, "Email %s already exists.", in.Email)
	}
	return nil
}

func (r *Repository) GetUsers(ctx context.Context) ([]ds.User, error) {
	return list[ds.User](ctx, r.db)
}

func (r *Repository) GetUserByID(ctx context.Context, id int) (ds.User, error) {
	user := ds.User{}
	err := r.db.WithContext(ctx).Where("utilisateur_id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.User{}, userNotFound(id)
	}
	return user, translate(err)
}

// CreateUser stores a new account; the password is hashed by ds.User.BeforeCreate.
func (r *Repository) CreateUser(ctx context.Context, in ds.UserInput) (ds.User, error) {
	if err := validateUser(in, true); err != nil {
		return ds.User{}, err
	}

	user := ds.User{
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
		Role:     in.Role,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkUserUnique(tx, in, 0); err != nil {
			return err
		}
		return translate(tx.Create(&user).Error)
	})
	if err != nil {
		return ds.User{}, err
	}
	return user, nil
}

// UpdateUser overwrites username, email and role. An empty password keeps the stored hash.
func (r *Repository) UpdateUser(ctx context.Context, id int, in ds.UserInput) (ds.User, error) {
	if err := validateUser(in, false); err != nil {
		return ds.User{}, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &ds.User{}, "utilisateur_id = ?", id)
		if err != nil {
			return err
		}
		if !found {
			return userNotFound(id)
		}
		if err := checkUserUnique(tx, in, id); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"nom_utilisateur": in.Username,
			"email":           in.Email,
			"role":            in.Role,
		}
		if in.Password != "" {
			hashed, err := ds.HashPassword(in.Password)
			if err != nil {
				return err
			}
			updates["mot_de_passe"] = hashed
		}
		return translate(tx.Model(&ds.User{}).Where("utilisateur_id = ?", id).Updates(updates).Error)
	})
	if err != nil {
		return ds.User{}, err
	}
	return r.GetUserByID(ctx, id)
}

func (r *Repository) DeleteUser(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Where("utilisateur_id = ?", id).Delete(&ds.User{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return userNotFound(id)
	}
	return nil
}

// Authenticate returns the user when username and password match. Unknown
// usernames and wrong passwords yield the same ErrUnauthorized error.
func (r *Repository) Authenticate(ctx context.Context, username, password string) (ds.User, error) {
	user := ds.User{}
	err := r.db.WithContext(ctx).Where("nom_utilisateur = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return ds.User{}, newError(ErrUnauthorized, badCredentials)
	}
	if err != nil {
		return ds.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ds.User{}, newError(ErrUnauthorized, badCredentials)
	}
	return user, nil
}
