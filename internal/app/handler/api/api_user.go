package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"space_fleet/internal/app/ds"
	"space_fleet/internal/app/repository"
)

type UserHandler struct {
	Repository interface {
		RegisterUser(user ds.User) (ds.User, error)
		LoginUser(ctx context.Context, login, password string) (string, error)
		LogoutUser(ctx context.Context, userID int) error
	}
}

// @Summary Register a new operator
// @Description Register an operator with login and password
// @Tags users
// @Accept json
// @Produce json
// @Param user body ds.User true "User info"
// @Success 201 {object} object "data: registered user"
// @Failure 400 {object} object "error: message"
// @Failure 409 {object} object "error: message"
// @Router /rest/users/register [post]
func (h *UserHandler) RegisterUserAPI(c *gin.Context) {
	var user ds.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	// роль модератора выдаётся только через базу
	user.Role = ""
	registered, err := h.Repository.RegisterUser(user)
	if errors.Is(err, repository.ErrUserExists) {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"data": registered,
	})
}

// @Summary Login operator
// @Description Check credentials and return a JWT
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body object{login=string,password=string} true "Credentials"
// @Success 200 {object} object "data: {token: string}"
// @Failure 400 {object} object "error: message"
// @Failure 401 {object} object "error: message"
// @Router /rest/users/login [post]
func (h *UserHandler) LoginUserAPI(c *gin.Context) {
	var credentials struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	token, err := h.Repository.LoginUser(c.Request.Context(), credentials.Login, credentials.Password)
	if errors.Is(err, repository.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
		return
	}
	if err != nil {
		logrus.Errorf("login %s: %v", credentials.Login, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    gin.H{"token": token},
	})
}

// @Summary Logout operator
// @Description Revoke the active JWT
// @Tags users
// @Produce json
// @Success 200 {object} object "message: string"
// @Failure 401 {object} object "error: message"
// @Router /rest/users/logout [post]
func (h *UserHandler) LogoutUserAPI(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.Repository.LogoutUser(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}
