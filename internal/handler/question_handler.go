package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shahisiiii/quiz-platform/internal/model"
	"github.com/shahisiiii/quiz-platform/internal/repository"
	"github.com/shahisiiii/quiz-platform/internal/response"
	"github.com/shahisiiii/quiz-platform/internal/service"
	"github.com/shahisiiii/quiz-platform/internal/validator"
)

// QuestionHandler handles the admin-only flat question collection.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// List godoc
// @Summary      List all questions across quizzes
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /questions/ [get]
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if questions == nil {
		questions = []model.Question{}
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// Get godoc
// @Summary      Get one question with its answer key
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /questions/{id}/ [get]
func (h *QuestionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	question, err := h.questionService.Get(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// Create godoc
// @Summary      Create a question under an existing quiz
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateQuestionRequest true "Question payload"
// @Success      201 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /questions/ [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), &req)
	if err != nil {
		if repository.IsNotFound(err) {
			response.FailWithFields(c, http.StatusNotFound, response.ErrNotFound,
				map[string]string{"quiz_id": "Quiz does not exist."})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"question": question})
}

// Update godoc
// @Summary      Update a question
// @Description  Handles both PUT and PATCH; absent fields keep stored values
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body model.UpdateQuestionRequest true "Question fields"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /questions/{id}/ [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	question, err := h.questionService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// Delete godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /questions/{id}/ [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "question deleted successfully"})
}
