package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"maritime_registry/internal/app/ds"
	"maritime_registry/internal/app/handler/middleware"
	"maritime_registry/internal/app/metrics"
	"maritime_registry/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	Repository interface {
		GetUsers(ctx context.Context) ([]ds.User, error)
		GetUserByID(ctx context.Context, id int) (ds.User, error)
		CreateUser(ctx context.Context, in ds.UserInput) (ds.User, error)
		UpdateUser(ctx context.Context, id int, in ds.UserInput) (ds.User, error)
		DeleteUser(ctx context.Context, id int) error
	}
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} ds.User
// @Router /api/users [get]
func (h *UserHandler) GetUsersAPI(c *gin.Context) {
	users, err := h.Repository.GetUsers(c.Request.Context())
	if err != nil {
		respondError(c, "GetUsersAPI", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} ds.User
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUserAPI(c *gin.Context) {
	getRecord(c, "GetUserAPI", h.Repository.GetUserByID)
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body ds.UserInput true "User"
// @Success 201 {object} ds.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/users [post]
func (h *UserHandler) CreateUserAPI(c *gin.Context) {
	createRecord(c, "CreateUserAPI", h.Repository.CreateUser)
}

// @Summary Update user, an empty mot_de_passe keeps the current password
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param user body ds.UserInput true "User"
// @Success 200 {object} ds.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUserAPI(c *gin.Context) {
	updateRecord(c, "UpdateUserAPI", h.Repository.UpdateUser)
}

// @Summary Delete user
// @Tags users
// @Param id path int true "User id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUserAPI(c *gin.Context) {
	deleteRecord(c, "DeleteUserAPI", h.Repository.DeleteUser)
}

// SessionWriter records and revokes login sessions.
type SessionWriter interface {
	SetSession(ctx context.Context, token string, userID int, role string) error
	DeleteSession(ctx context.Context, token string) error
}

type AuthHandler struct {
	Repository interface {
		Authenticate(ctx context.Context, username, password string) (ds.User, error)
		GetUserByID(ctx context.Context, id int) (ds.User, error)
	}
	Tokens interface {
		GenerateJWT(userID int, role string) (string, error)
	}
	// Sessions is nil when Redis is not configured.
	Sessions SessionWriter
	Metrics  interface {
		IncrementLoginAttempts(outcome string)
	}
}

func (h *AuthHandler) countLogin(outcome string) {
	if h.Metrics != nil {
		h.Metrics.IncrementLoginAttempts(outcome)
	}
}

// LoginAPI - POST /api/auth/login
// @Summary Login
// @Description Checks the credentials and returns a signed token. Unknown user
// @Description and wrong password give the same answer.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body ds.LoginRequest true "Credentials"
// @Success 200 {object} ds.LoginResponse
// @Failure 400 {object} ds.LoginResponse
// @Failure 401 {object} ds.LoginResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginAPI(c *gin.Context) {
	var req ds.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		h.countLogin(metrics.LoginInvalid)
		c.JSON(http.StatusBadRequest, ds.LoginResponse{Message: "Nom d'utilisateur et mot de passe requis"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.Repository.Authenticate(ctx, req.Username, req.Password)
	if errors.Is(err, repository.ErrUnauthorized) {
		h.countLogin(metrics.LoginFailure)
		c.JSON(http.StatusUnauthorized, ds.LoginResponse{Message: "Nom d'utilisateur ou mot de passe incorrect"})
		return
	}
	if err != nil {
		respondError(c, "LoginAPI", err)
		return
	}

	token, err := h.Tokens.GenerateJWT(user.ID, user.Role)
	if err != nil {
		respondError(c, "LoginAPI", err)
		return
	}
	if h.Sessions != nil {
		if err := h.Sessions.SetSession(ctx, token, user.ID, user.Role); err != nil {
			respondError(c, "LoginAPI", err)
			return
		}
	}

	h.countLogin(metrics.LoginSuccess)
	logrus.WithField("user_id", user.ID).Info("LoginAPI: user logged in")
	c.JSON(http.StatusOK, ds.LoginResponse{
		Success: true,
		Token:   token,
		User:    &user,
		Message: "Connexion réussie",
	})
}

// MeAPI - GET /api/auth/me
// @Summary User info by id
// @Tags auth
// @Produce json
// @Param utilisateur_id query int true "User id"
// @Success 200 {object} ds.User
// @Failure 400 {object} ds.LoginResponse
// @Failure 404 {object} ds.LoginResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) MeAPI(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("utilisateur_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ds.LoginResponse{Message: "utilisateur_id requis"})
		return
	}
	user, ok := h.lookupUser(c, "MeAPI", id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, user)
}

// SessionAPI - GET /api/auth/session
// @Summary Current user of a Bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ds.LoginResponse
// @Failure 401 {object} ds.LoginResponse
// @Router /api/auth/session [get]
func (h *AuthHandler) SessionAPI(c *gin.Context) {
	user, ok := h.lookupUser(c, "SessionAPI", c.GetInt(middleware.UserIDKey))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ds.LoginResponse{Success: true, User: &user})
}

// LogoutAPI - POST /api/auth/logout
// @Summary Revoke the Bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ds.LoginResponse
// @Failure 401 {object} ds.LoginResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutAPI(c *gin.Context) {
	if h.Sessions != nil {
		if err := h.Sessions.DeleteSession(c.Request.Context(), c.GetString(middleware.TokenKey)); err != nil {
			respondError(c, "LogoutAPI", err)
			return
		}
	}
	c.JSON(http.StatusOK, ds.LoginResponse{Success: true, Message: "Déconnexion réussie"})
}

// lookupUser writes the error response itself and reports false when the user cannot be served.
func (h *AuthHandler) lookupUser(c *gin.Context, handlerName string, id int) (ds.User, bool) {
	user, err := h.Repository.GetUserByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, ds.LoginResponse{Message: "Utilisateur introuvable"})
		return ds.User{}, false
	}
	if err != nil {
		respondError(c, handlerName, err)
		return ds.User{}, false
	}
	return user, true
}
