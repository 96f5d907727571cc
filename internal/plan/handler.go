package plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kalebesantos/kgym/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreatePlan godoc
// @Summary      Create plan
// @Tags         plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePlanRequest  true  "Plan data"
// @Success      201      {object}  Plan
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/plans [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ListPlans godoc
// @Summary      List plans
// @Tags         plans
// @Security     BearerAuth
// @Produce      json
// @Param        active  query     bool  false  "Only active plans"
// @Success      200     {array}   Plan
// @Failure      500     {object}  api.ErrorResponse
// @Router       /admin/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	onlyActive := c.Query("active") == "true"

	plans, err := h.service.List(c.Request.Context(), onlyActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary      Get plan
// @Tags         plans
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Plan ID"
// @Success      200     {object}  Plan
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /admin/plans/{id} [get]
func (h *Handler) GetPlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdatePlan godoc
// @Summary      Update plan
// @Tags         plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path      int                true  "Plan ID"
// @Param        request  body      UpdatePlanRequest  true  "Fields to update"
// @Success      200      {object}  Plan
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/plans/{id} [put]
func (h *Handler) UpdatePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update plan"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeletePlan godoc
// @Summary      Delete plan
// @Description  Rejected while any membership references the plan with status active.
// @Tags         plans
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Plan ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Failure      409     {object}  api.ErrorResponse
// @Failure      500     {object}  api.ErrorResponse
// @Router       /admin/plans/{id} [delete]
func (h *Handler) DeletePlan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid plan ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Plan not found"})
		case errors.Is(err, ErrPlanInUse):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Plan has active memberships"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete plan"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Plan deleted"})
}
