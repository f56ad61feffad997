package router

import (
	"github.com/labstack/echo/v4"

	"connectfood/internal/adapter/api/handler"
	"connectfood/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	profile := e.Group("/api/profile")
	profile.Use(authMiddleware.Authenticate)

	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.UpdateProfile)
	profile.GET("/stats", profileHandler.GetStats)
}
