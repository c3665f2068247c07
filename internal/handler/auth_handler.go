package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahisiiii/quiz-platform/internal/model"
	"github.com/shahisiiii/quiz-platform/internal/repository"
	"github.com/shahisiiii/quiz-platform/internal/response"
	"github.com/shahisiiii/quiz-platform/internal/service"
	"github.com/shahisiiii/quiz-platform/internal/validator"
)

// AuthHandler handles registration, login, and token refresh.
type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a user (or admin, via is_admin) and returns a token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.RegisterRequest true "Registration payload"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response
// @Router       /auth/register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"username": "A user with that username already exists."})
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"email": "A user with that email already exists."})
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	tokens, err := h.authService.GenerateTokenPair(user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":   model.NewUserView(user),
		"tokens": tokens,
	})
}

// Login godoc
// @Summary      Log in with username or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.LoginRequest true "Login payload"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response
// @Router       /auth/login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	tokens, err := h.authService.GenerateTokenPair(user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":   model.NewUserView(user),
		"tokens": tokens,
	})
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.RefreshRequest true "Refresh payload"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response
// @Router       /token/refresh/ [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	access, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrRefreshInvalid)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"access": access})
}
