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

// QuizHandler handles quiz endpoints.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// List godoc
// @Summary      List quizzes
// @Description  Non-admins see active quizzes only; counts cover active questions
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /quizzes/ [get]
func (h *QuizHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	quizzes, err := h.quizService.List(c.Request.Context(), claims.Role)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if quizzes == nil {
		quizzes = []model.QuizListItem{}
	}

	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// Get godoc
// @Summary      Get one quiz with its questions
// @Description  Admins receive answer keys and inactive questions; users do not
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /quizzes/{id}/ [get]
func (h *QuizHandler) Get(c *gin.Context) {
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

	quiz, err := h.quizService.Get(c.Request.Context(), id, claims.Role)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Create godoc
// @Summary      Create a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateQuizRequest true "Quiz payload"
// @Success      201 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /quizzes/ [post]
func (h *QuizHandler) Create(c *gin.Context) {
	var req model.CreateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	quiz, err := h.quizService.Create(c.Request.Context(), &req, claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.FailWithFields(c, http.StatusNotFound, response.ErrNotFound,
				map[string]string{"category_id": "Category does not exist."})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"quiz": quiz})
}

// Update godoc
// @Summary      Update a quiz
// @Description  Handles both PUT and PATCH; absent fields keep stored values
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body model.UpdateQuizRequest true "Quiz fields"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /quizzes/{id}/ [put]
func (h *QuizHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			response.FailWithFields(c, http.StatusNotFound, response.ErrNotFound,
				map[string]string{"category_id": "Category does not exist."})
		case repository.IsNotFound(err):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Delete godoc
// @Summary      Delete a quiz and its questions
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /quizzes/{id}/ [delete]
func (h *QuizHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), id); err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "quiz deleted successfully"})
}

// AddQuestion godoc
// @Summary      Append a question to a quiz
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body model.AddQuestionRequest true "Question payload"
// @Success      201 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /quizzes/{id}/add_question/ [post]
func (h *QuizHandler) AddQuestion(c *gin.Context) {
	quizID, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.AddQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, err := h.quizService.AddQuestion(c.Request.Context(), quizID, &req)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"question": question})
}

// Statistics godoc
// @Summary      Aggregated submission statistics for a quiz
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /quizzes/{id}/statistics/ [get]
func (h *QuizHandler) Statistics(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	stats, err := h.quizService.Statistics(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"statistics": stats})
}
