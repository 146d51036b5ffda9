package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"space_fleet/internal/app/ds"
	"space_fleet/internal/app/handler/api"
	"space_fleet/internal/app/handler/middleware"
)

// UserStore backs operator accounts and their tokens.
type UserStore interface {
	RegisterUser(user ds.User) (ds.User, error)
	LoginUser(ctx context.Context, login, password string) (string, error)
	LogoutUser(ctx context.Context, userID int) error
	middleware.TokenChecker
	JWTKey() string
}

type Handler struct {
	ShipAPIHandler *api.ShipHandler
	UserAPIHandler *api.UserHandler
	users          UserStore
	authEnabled    bool
}

// NewHandler wires the ship routes. users may be nil, then operator routes
// are not registered and ship mutations stay open regardless of authEnabled.
func NewHandler(ships api.ShipService, images api.ImageStorage, users UserStore, authEnabled bool) *Handler {
	h := &Handler{
		ShipAPIHandler: &api.ShipHandler{Service: ships, Images: images},
		users:          users,
		authEnabled:    authEnabled && users != nil,
	}
	if users != nil {
		h.UserAPIHandler = &api.UserHandler{Repository: users}
	}
	if authEnabled && users == nil {
		logrus.Warn("auth requested without a user store, ship mutations are open")
	}
	return h
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	rest := router.Group("/rest")

	// Домен кораблей: чтение открыто
	rest.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
	rest.GET("/ships/count", h.ShipAPIHandler.GetShipsCountAPI)
	rest.GET("/ships/:id", h.ShipAPIHandler.GetShipAPI)

	// изменения - только модератор, если включена авторизация
	mutations := rest.Group("/")
	if h.authEnabled {
		mutations.Use(middleware.AuthMiddleware(h.users, h.users.JWTKey()), middleware.ModeratorMiddleware())
	}
	mutations.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
	mutations.POST("/ships/:id", h.ShipAPIHandler.UpdateShipAPI)
	mutations.DELETE("/ships/:id", h.ShipAPIHandler.DeleteShipAPI)
	mutations.POST("/ships/:id/image", h.ShipAPIHandler.AddShipImageAPI)

	if h.UserAPIHandler == nil {
		return
	}
	// Домен пользователя
	rest.POST("/users/register", h.UserAPIHandler.RegisterUserAPI)
	rest.POST("/users/login", h.UserAPIHandler.LoginUserAPI)
	authGroup := rest.Group("/", middleware.AuthMiddleware(h.users, h.users.JWTKey()))
	authGroup.POST("/users/logout", h.UserAPIHandler.LogoutUserAPI)
}
