package handlers

import (
	"errors"
	"net/http"

	"github.com/Aruntata-2001/task-manager/internal/auth"
	"github.com/Aruntata-2001/task-manager/internal/dto"
	"github.com/Aruntata-2001/task-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles registration and login.
type UserHandler struct {
	userSvc *service.UserService
	tokens  *auth.TokenManager
	log     *zap.Logger
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(userSvc *service.UserService, tokens *auth.TokenManager, log *zap.Logger) *UserHandler {
	return &UserHandler{userSvc: userSvc, tokens: tokens, log: log}
}

// Register godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Credentials"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	_, err := h.userSvc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		default:
			h.log.Error("register failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login godoc
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	user, err := h.userSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid password"})
		default:
			h.log.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		}
		return
	}
	token, err := h.tokens.Issue(user)
	if err != nil {
		h.log.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}
