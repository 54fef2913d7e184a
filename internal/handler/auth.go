package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"schoolportal/internal/config"
	"schoolportal/internal/model"
	"schoolportal/internal/service"
	"schoolportal/pkg/util"
)

// AuthHandler handles signup and login
type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Signup handles user registration
// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid name, email, or password."))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = util.NormalizeEmail(req.Email)

	// Input is rejected here, before any store or identity call.
	if req.Name == "" || len(req.Name) > config.MaxNameLength ||
		!util.IsValidEmail(req.Email) ||
		len(req.Password) < config.MinPasswordLength ||
		req.SchoolCode == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid name, email, or password."))
		return
	}

	if err := h.accounts.Signup(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("School code not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error"))
		return
	}

	c.JSON(http.StatusCreated, model.NewMessageResponse("User created successfully"))
}

// Login handles user login
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email or password."))
		return
	}

	req.Email = util.NormalizeEmail(req.Email)
	if !util.IsValidEmail(req.Email) || req.Password == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email or password."))
		return
	}

	uid, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email or password."))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error"))
		return
	}

	c.JSON(http.StatusOK, model.NewMessageResponse(fmt.Sprintf("Login successful for user: %s", uid)))
}
