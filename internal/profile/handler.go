package profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kalebesantos/kgym/internal/api"
	"github.com/kalebesantos/kgym/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Register admin account
// @Description  Self-service signup for gym administrators.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Admin registration data"
// @Success      201      {object}  LoginResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, accessToken, refreshToken, err := h.service.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      *p,
	})
}

// Login godoc
// @Summary      Login
// @Description  Authenticates a user by email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      *p,
	})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]string  true  "Refresh token payload"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "refresh_token is required"})
		return
	}

	newAccessToken, p, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": newAccessToken,
		"profile":      p,
	})
}

// GetMe godoc
// @Summary      Get current profile
// @Tags         profile
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Profile
// @Failure      401  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	p, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// CreateStudent godoc
// @Summary      Create student account
// @Description  Creates the auth account and student profile. The initial password is derived from the CPF.
// @Tags         students
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateStudentRequest  true  "Student data"
// @Success      201      {object}  StudentRow
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/students [post]
func (h *Handler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	student, err := h.service.CreateStudent(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
		case errors.Is(err, ErrInvalidCPF):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create student"})
		}
		return
	}

	c.JSON(http.StatusCreated, student)
}

// ListStudents godoc
// @Summary      List students
// @Tags         students
// @Security     BearerAuth
// @Produce      json
// @Param        search  query     string  false  "Filter by name or CPF"
// @Success      200     {array}   StudentRow
// @Failure      500     {object}  api.ErrorResponse
// @Router       /admin/students [get]
func (h *Handler) ListStudents(c *gin.Context) {
	students, err := h.service.ListStudents(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to list students"})
		return
	}

	c.JSON(http.StatusOK, students)
}

// GetStudent godoc
// @Summary      Get student
// @Tags         students
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Student profile ID"
// @Success      200        {object}  Profile
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /admin/students/{id} [get]
func (h *Handler) GetStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	p, err := h.service.GetStudent(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Student not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateStudent godoc
// @Summary      Update student
// @Tags         students
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path      int                   true  "Student profile ID"
// @Param        request    body      UpdateStudentRequest  true  "Fields to update"
// @Success      200        {object}  Profile
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /admin/students/{id} [put]
func (h *Handler) UpdateStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.service.UpdateStudent(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update student"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeleteStudent godoc
// @Summary      Delete student
// @Description  Removes the account; memberships and check-ins cascade.
// @Tags         students
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      int  true  "Student profile ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /admin/students/{id} [delete]
func (h *Handler) DeleteStudent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid student ID"})
		return
	}

	if err := h.service.DeleteStudent(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Student not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete student"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Student deleted"})
}
