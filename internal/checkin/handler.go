package checkin

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kalebesantos/kgym/internal/api"
	"github.com/kalebesantos/kgym/internal/auth"
	"github.com/kalebesantos/kgym/internal/logger"
	"github.com/kalebesantos/kgym/internal/membership"
	"github.com/kalebesantos/kgym/internal/profile"
)

type Handler struct {
	service       Service
	profileSvc    profile.Service
	membershipSvc membership.Service
	matcher       Matcher
}

func NewHandler(service Service, profileSvc profile.Service, membershipSvc membership.Service, matcher Matcher) *Handler {
	return &Handler{
		service:       service,
		profileSvc:    profileSvc,
		membershipSvc: membershipSvc,
		matcher:       matcher,
	}
}

// Checkin godoc
// @Summary Register a gym check-in
// @Description Validates a student check-in code and records the entry
// @Tags checkins
// @Accept json
// @Produce json
// @Param request body CheckinRequest true "Check-in code"
// @Success 201 {object} CheckIn
// @Failure 400 {object} api.ErrorResponse
// @Failure 403 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /checkin [post]
func (h *Handler) Checkin(c *gin.Context) {
	var req CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	ci, err := h.service.CheckInByCode(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCode):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrStudentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNoActivePlan), errors.Is(err, ErrPlanExpired):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		default:
			logger.Errorf("checkin failed: %v", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to register check-in"})
		}
		return
	}

	c.JSON(http.StatusCreated, ci)
}

// FaceCheckin godoc
// @Summary Register a check-in by face capture
// @Description Identifies the student from a photo capture and records the entry
// @Tags checkins
// @Accept octet-stream
// @Produce json
// @Success 201 {object} CheckIn
// @Failure 501 {object} api.ErrorResponse
// @Router /checkin/face [post]
func (h *Handler) FaceCheckin(c *gin.Context) {
	capture, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}

	studentID, err := h.matcher.Identify(c.Request.Context(), capture)
	if err != nil {
		if errors.Is(err, ErrMatchNotImplemented) {
			c.JSON(http.StatusNotImplemented, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: ErrStudentNotFound.Error()})
		return
	}

	ci, err := h.service.AttemptCheckin(c.Request.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrStudentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrNoActivePlan), errors.Is(err, ErrPlanExpired):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		default:
			logger.Errorf("face checkin failed: %v", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to register check-in"})
		}
		return
	}

	c.JSON(http.StatusCreated, ci)
}

// ListMyCheckins godoc
// @Summary List my check-in history
// @Tags checkins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} CheckIn
// @Failure 401 {object} api.ErrorResponse
// @Router /my/checkins [get]
func (h *Handler) ListMyCheckins(c *gin.Context) {
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

	checkins, err := h.service.ListByStudent(c.Request.Context(), p.ID)
	if err != nil {
		logger.Errorf("failed to list checkins for profile %d: %v", p.ID, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list check-ins"})
		return
	}

	c.JSON(http.StatusOK, checkins)
}

// ListCheckins godoc
// @Summary List recent check-ins
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows to return" default(50)
// @Success 200 {array} CheckInWithStudent
// @Failure 401 {object} api.ErrorResponse
// @Router /admin/checkins [get]
func (h *Handler) ListCheckins(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	checkins, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		logger.Errorf("failed to list checkins: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list check-ins"})
		return
	}

	c.JSON(http.StatusOK, checkins)
}

// DeleteCheckin godoc
// @Summary Delete a check-in record
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Check-in ID"
// @Success 200 {object} api.MessageResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /admin/checkins/{id} [delete]
func (h *Handler) DeleteCheckin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid check-in id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "check-in not found"})
			return
		}
		logger.Errorf("failed to delete checkin %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete check-in"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "check-in deleted"})
}

// Report godoc
// @Summary Gym activity report
// @Description Totals for students, active memberships and check-ins over the last 30 days
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ReportResponse
// @Failure 401 {object} api.ErrorResponse
// @Router /admin/report [get]
func (h *Handler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	totalStudents, err := h.profileSvc.CountStudents(ctx)
	if err != nil {
		logger.Errorf("report: counting students: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build report"})
		return
	}

	activeMemberships, err := h.membershipSvc.CountActive(ctx)
	if err != nil {
		logger.Errorf("report: counting memberships: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build report"})
		return
	}

	checkinsToday, err := h.service.CountToday(ctx)
	if err != nil {
		logger.Errorf("report: counting checkins: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build report"})
		return
	}

	now := time.Now()
	byDay, err := h.service.StatsByDay(ctx, now.AddDate(0, 0, -30), now)
	if err != nil {
		logger.Errorf("report: daily stats: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build report"})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{
		TotalStudents:     totalStudents,
		ActiveMemberships: activeMemberships,
		CheckinsToday:     checkinsToday,
		CheckinsByDay:     byDay,
	})
}
