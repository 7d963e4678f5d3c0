package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/davidmtz/usuarios-api/internal/application"
	"github.com/davidmtz/usuarios-api/internal/domain/entity"
	"github.com/davidmtz/usuarios-api/internal/interface/middleware"
	"github.com/davidmtz/usuarios-api/pkg/apperrors"
	"github.com/davidmtz/usuarios-api/pkg/response"
)

// UserFlows is the slice of the application layer the user handler drives.
type UserFlows interface {
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, in application.UpdateProfileInput) (*entity.UserProfile, error)
	DeleteUser(ctx context.Context, userID string) (bool, error)
}

type UserHandler struct {
	Svc    UserFlows
	Logger *logrus.Logger
}

func NewUserHandler(svc UserFlows, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateProfileRequest struct {
	Nombre   *string `json:"nombre"`
	Telefono *string `json:"telefono"`
	Edad     *int    `json:"edad"`
}

// GetProfile handles GET /api/users/profile. The identity comes from the
// bearer gate, never from the request itself.
func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	p, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err, "get profile failed")
		return
	}

	response.OK(c, http.StatusOK, "Perfil obtenido exitosamente", gin.H{"user": p})
}

// UpdateProfile handles PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, apperrors.ErrValidation.Error())
		return
	}

	p, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Edad:     req.Edad,
	})
	if err != nil {
		h.fail(c, err, "update profile failed")
		return
	}

	response.OK(c, http.StatusOK, "Perfil actualizado exitosamente", gin.H{"user": p})
}

// DeleteUser handles DELETE /api/users/profile
func (h *UserHandler) DeleteUser(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)

	ok, err := h.Svc.DeleteUser(c.Request.Context(), uid)
	if err != nil {
		h.fail(c, err, "delete user failed")
		return
	}
	if !ok {
		response.Fail(c, http.StatusNotFound, apperrors.ErrUserNotFound.Error())
		return
	}

	response.OK(c, http.StatusOK, "Usuario eliminado exitosamente", nil)
}

func (h *UserHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, apperrors.ErrStorage) && h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	response.Fail(c, apperrors.StatusFor(err), apperrors.Message(err))
}
