package router

import (
	"github.com/labstack/echo/v4"

	"connectfood/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	e.POST("/api/auth/google", authHandler.GoogleLogin)
}
