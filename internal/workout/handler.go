package workout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kalebesantos/kgym/internal/api"
	"github.com/kalebesantos/kgym/internal/auth"
	"github.com/kalebesantos/kgym/internal/logger"
	"github.com/kalebesantos/kgym/internal/profile"
)

type Handler struct {
	service    Service
	profileSvc profile.Service
}

func NewHandler(service Service, profileSvc profile.Service) *Handler {
	return &Handler{service: service, profileSvc: profileSvc}
}

// CreateSheet godoc
// @Summary Create a workout sheet for a student
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSheetRequest true "Sheet data"
// @Success 201 {object} WorkoutSheet
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /admin/workouts [post]
func (h *Handler) CreateSheet(c *gin.Context) {
	var req CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	admin, err := h.profileSvc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "profile not found"})
		return
	}

	sheet, err := h.service.CreateSheet(c.Request.Context(), admin.ID, req)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.Errorf("failed to create workout sheet: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create workout sheet"})
		return
	}

	c.JSON(http.StatusCreated, sheet)
}

// ListSheets godoc
// @Summary List all workout sheets
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WorkoutSheet
// @Router /admin/workouts [get]
func (h *Handler) ListSheets(c *gin.Context) {
	sheets, err := h.service.ListSheets(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to list workout sheets: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list workout sheets"})
		return
	}

	c.JSON(http.StatusOK, sheets)
}

// GetSheet godoc
// @Summary Get a workout sheet with its exercises
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sheet ID"
// @Success 200 {object} SheetWithExercises
// @Failure 404 {object} api.ErrorResponse
// @Router /admin/workouts/{id} [get]
func (h *Handler) GetSheet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid sheet id"})
		return
	}

	sheet, err := h.service.GetSheet(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "workout sheet not found"})
			return
		}
		logger.Errorf("failed to get workout sheet %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to get workout sheet"})
		return
	}

	c.JSON(http.StatusOK, sheet)
}

// UpdateSheet godoc
// @Summary Update a workout sheet
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sheet ID"
// @Param request body UpdateSheetRequest true "Fields to update"
// @Success 200 {object} WorkoutSheet
// @Failure 404 {object} api.ErrorResponse
// @Router /admin/workouts/{id} [put]
func (h *Handler) UpdateSheet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid sheet id"})
		return
	}

	var req UpdateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	sheet, err := h.service.UpdateSheet(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "workout sheet not found"})
			return
		}
		logger.Errorf("failed to update workout sheet %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update workout sheet"})
		return
	}

	c.JSON(http.StatusOK, sheet)
}

// DeleteSheet godoc
// @Summary Delete a workout sheet
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sheet ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /admin/workouts/{id} [delete]
func (h *Handler) DeleteSheet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid sheet id"})
		return
	}

	if err := h.service.DeleteSheet(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "workout sheet not found"})
			return
		}
		logger.Errorf("failed to delete workout sheet %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete workout sheet"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "workout sheet deleted"})
}

// AddExercise godoc
// @Summary Add an exercise to a workout sheet
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sheet ID"
// @Param request body CreateExerciseRequest true "Exercise data"
// @Success 201 {object} Exercise
// @Failure 404 {object} api.ErrorResponse
// @Router /admin/workouts/{id}/exercises [post]
func (h *Handler) AddExercise(c *gin.Context) {
	sheetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid sheet id"})
		return
	}

	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	exercise, err := h.service.AddExercise(c.Request.Context(), sheetID, req)
	if err != nil {
		if errors.Is(err, ErrSheetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "workout sheet not found"})
			return
		}
		logger.Errorf("failed to add exercise to sheet %d: %v", sheetID, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to add exercise"})
		return
	}

	c.JSON(http.StatusCreated, exercise)
}

// UpdateExercise godoc
// @Summary Update an exercise
// @Tags workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Param request body UpdateExerciseRequest true "Fields to update"
// @Success 200 {object} Exercise
// @Failure 404 {object} api.ErrorResponse
// @Router /admin/exercises/{id} [put]
func (h *Handler) UpdateExercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid exercise id"})
		return
	}

	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	exercise, err := h.service.UpdateExercise(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "exercise not found"})
			return
		}
		logger.Errorf("failed to update exercise %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update exercise"})
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /admin/exercises/{id} [delete]
func (h *Handler) DeleteExercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid exercise id"})
		return
	}

	if err := h.service.DeleteExercise(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "exercise not found"})
			return
		}
		logger.Errorf("failed to delete exercise %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete exercise"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "exercise deleted"})
}

// ListMyWorkouts godoc
// @Summary List my workout sheets with exercises
// @Tags workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} SheetWithExercises
// @Failure 401 {object} api.ErrorResponse
// @Router /my/workouts [get]
func (h *Handler) ListMyWorkouts(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	p, err := h.profileSvc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "profile not found"})
		return
	}

	sheets, err := h.service.ListForStudent(c.Request.Context(), p.ID)
	if err != nil {
		logger.Errorf("failed to list workouts for profile %d: %v", p.ID, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list workout sheets"})
		return
	}

	c.JSON(http.StatusOK, sheets)
}
