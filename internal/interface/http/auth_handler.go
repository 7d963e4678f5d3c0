package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/davidmtz/usuarios-api/internal/application"
	"github.com/davidmtz/usuarios-api/pkg/apperrors"
	"github.com/davidmtz/usuarios-api/pkg/response"
	"github.com/davidmtz/usuarios-api/pkg/validation"
)

// AuthFlows is the slice of the application layer the auth handler drives.
type AuthFlows interface {
	Register(ctx context.Context, in application.RegisterInput) (*application.AuthResult, error)
	Login(ctx context.Context, email, password string) (*application.AuthResult, error)
}

type AuthHandler struct {
	Svc    AuthFlows
	Logger *logrus.Logger
}

func NewAuthHandler(svc AuthFlows, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Telefono string `json:"telefono"`
	Edad     int    `json:"edad"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("register payload rejected")
		}
		response.Fail(c, http.StatusBadRequest, apperrors.ErrValidation.Error())
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
		Telefono: req.Telefono,
		Edad:     req.Edad,
	})
	if err != nil {
		h.fail(c, err, "register failed")
		return
	}

	response.OK(c, http.StatusCreated, "Usuario registrado exitosamente", res)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, apperrors.ErrValidation.Error())
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err, "login failed")
		return
	}

	response.OK(c, http.StatusOK, "Login exitoso", res)
}

// fail maps an application error to its HTTP response. Storage detail is
// logged, never sent to the caller.
func (h *AuthHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, apperrors.ErrStorage) && h.Logger != nil {
		h.Logger.WithError(err).Error(msg)
	}
	response.Fail(c, apperrors.StatusFor(err), apperrors.Message(err))
}
