package router

import (
	"github.com/labstack/echo/v4"

	"connectfood/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e)
	SetupDonationRouter(e, authMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
