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

// SubmissionHandler handles quiz attempt endpoints.
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Submit godoc
// @Summary      Submit answers for a quiz
// @Description  Grades against active questions and records the attempt; retakes are unrestricted
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.SubmitRequest true "Answers payload"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /submissions/ [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.SubmitRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sub, err := h.submissionService.Submit(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotAvailable):
			response.Fail(c, http.StatusNotFound, response.ErrQuizNotAvailable)
		case repository.IsNotFound(err):
			response.Fail(c, http.StatusNotFound, response.ErrQuizNotAvailable)
		case errors.Is(err, service.ErrNoQuestions):
			response.Fail(c, http.StatusBadRequest, response.ErrNoQuestions)
		case errors.Is(err, service.ErrDuplicateAnswer):
			response.Fail(c, http.StatusBadRequest, response.ErrDuplicateAnswer)
		case errors.Is(err, service.ErrInvalidQuestion):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidQuestion)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": sub})
}

// List godoc
// @Summary      List submissions
// @Description  Admins see every submission; users see their own
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /submissions/ [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	items, err := h.submissionService.List(c.Request.Context(), claims.UserID, claims.Role)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submissions": items})
}

// MySubmissions godoc
// @Summary      List the caller's own submissions
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /submissions/my_submissions/ [get]
func (h *SubmissionHandler) MySubmissions(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	items, err := h.submissionService.List(c.Request.Context(), claims.UserID, model.RoleUser)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submissions": items})
}

// Get godoc
// @Summary      Get one submission with its answer breakdown
// @Description  Visible to the owner and admins; others receive 404
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Submission ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /submissions/{id}/ [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
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

	view, err := h.submissionService.Get(c.Request.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": view})
}
