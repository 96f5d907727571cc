package membership

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kalebesantos/kgym/internal/api"
	"github.com/kalebesantos/kgym/internal/auth"
	"github.com/kalebesantos/kgym/internal/profile"
)

type Handler struct {
	service    Service
	profileSvc profile.Service
}

func NewHandler(service Service, profileSvc profile.Service) *Handler {
	return &Handler{service: service, profileSvc: profileSvc}
}

// AssignPlan godoc
// @Summary      Assign plan to student
// @Description  Creates an active membership; the end date defaults to start + plan duration.
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      AssignRequest  true  "Assignment data"
// @Success      201      {object}  Membership
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/memberships [post]
func (h *Handler) AssignPlan(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.AssignPlan(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrStudentNotFound), errors.Is(err, ErrPlanNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrPlanInactive), errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to assign plan"})
		}
		return
	}

	c.JSON(http.StatusCreated, m)
}

// ListMemberships godoc
// @Summary      List all memberships
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   MembershipWithDetails
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/memberships [get]
func (h *Handler) ListMemberships(c *gin.Context) {
	memberships, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list memberships"})
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// ListStudentMemberships godoc
// @Summary      List a student's memberships
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Student profile ID"
// @Success      200        {array}   MembershipWithPlan
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /admin/students/{id}/memberships [get]
func (h *Handler) ListStudentMemberships(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	memberships, err := h.service.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list memberships"})
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// UpdateMembership godoc
// @Summary      Update membership
// @Description  Direct edits to dates or stored status; dates are not re-validated against the plan duration.
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path      int                      true  "Membership ID"
// @Param        request       body      UpdateMembershipRequest  true  "Fields to update"
// @Success      200           {object}  Membership
// @Failure      400           {object}  api.ErrorResponse
// @Failure      404           {object}  api.ErrorResponse
// @Failure      500           {object}  api.ErrorResponse
// @Router       /admin/memberships/{id} [put]
func (h *Handler) UpdateMembership(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid membership ID"})
		return
	}

	var req UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMembershipNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership not found"})
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update membership"})
		}
		return
	}

	c.JSON(http.StatusOK, m)
}

// BulkSetStatus godoc
// @Summary      Bulk status toggle
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      BulkStatusRequest  true  "Membership IDs and target status"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/memberships/status [post]
func (h *Handler) BulkSetStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.service.BulkSetStatus(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update memberships"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// GetMyMembership godoc
// @Summary      Current student's membership and status
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  StatusInfo
// @Failure      401  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /my/membership [get]
func (h *Handler) GetMyMembership(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	p, err := h.profileSvc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Profile not found"})
		return
	}

	info, err := h.service.GetStudentStatus(c.Request.Context(), p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to resolve membership status"})
		return
	}

	c.JSON(http.StatusOK, info)
}

// GetStudentStatus godoc
// @Summary      Resolve a student's membership status
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Student profile ID"
// @Success      200        {object}  StatusInfo
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /admin/students/{id}/status [get]
func (h *Handler) GetStudentStatus(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	info, err := h.service.GetStudentStatus(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to resolve membership status"})
		return
	}

	c.JSON(http.StatusOK, info)
}
