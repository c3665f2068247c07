package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahisiiii/quiz-platform/internal/middleware"
	"github.com/shahisiiii/quiz-platform/internal/model"
	"github.com/shahisiiii/quiz-platform/internal/repository"
	"github.com/shahisiiii/quiz-platform/internal/response"
	"github.com/shahisiiii/quiz-platform/internal/service"
	"github.com/shahisiiii/quiz-platform/internal/validator"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List godoc
// @Summary      List categories
// @Description  Non-admins see active categories only, with active quiz counts
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /categories/ [get]
func (h *CategoryHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	categories, err := h.categoryService.List(c.Request.Context(), claims.Role)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if categories == nil {
		categories = []model.CategoryView{}
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// Get godoc
// @Summary      Get one category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /categories/{id}/ [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id, claims.Role)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"category": category})
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateCategoryRequest true "Category payload"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response
// @Router       /categories/ [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	category, err := h.categoryService.Create(c.Request.Context(), &req, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"name": "A category with this name already exists."})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"category": category})
}

// Update godoc
// @Summary      Update a category
// @Description  Handles both PUT and PATCH; absent fields keep stored values
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Param        request body model.UpdateCategoryRequest true "Category fields"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /categories/{id}/ [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateCategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case repository.IsNotFound(err):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, repository.ErrDuplicateCategory):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"name": "A category with this name already exists."})
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"category": category})
}

// Delete godoc
// @Summary      Delete a category and its quizzes
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /categories/{id}/ [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "category deleted successfully"})
}
