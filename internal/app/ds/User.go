package ds

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "Admin"
	RoleAgent    = "Agent"
	RoleArmateur = "Armateur"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAgent, RoleArmateur:
		return true
	}
	return false
}

// @Schema(description="Back office account")
type User struct {
	ID       int    `gorm:"primaryKey;column:utilisateur_id" json:"utilisateur_id"`
	Username string `gorm:"column:nom_utilisateur;size:100;not null;uniqueIndex" json:"nom_utilisateur"`
	Password string `gorm:"column:mot_de_passe;size:255;not null" json:"-"`
	Role     string `gorm:"column:role;size:50;not null" json:"role"`
	Email    string `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
}

// BeforeCreate hashes the plain password before insert
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.Password, err = HashPassword(u.Password)
	return err
}

func (User) TableName() string {
	return "utilisateurs"
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// UserInput is the create/update payload; an empty password on update keeps the stored hash.
type UserInput struct {
	Username string `json:"nom_utilisateur"`
	Password string `json:"mot_de_passe"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"nom_utilisateur"`
	Password string `json:"mot_de_passe"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}
