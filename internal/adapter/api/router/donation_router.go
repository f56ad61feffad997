package router

import (
	"github.com/labstack/echo/v4"

	"connectfood/internal/adapter/api/handler"
	"connectfood/internal/adapter/api/middleware"
)

func SetupDonationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	donationHandler := handler.GetDonationHandler()

	donations := e.Group("/api/donations")
	donations.Use(authMiddleware.Authenticate)

	donations.POST("", donationHandler.CreateDonation)
	donations.GET("/my", donationHandler.ListMyDonations)
	donations.GET("/live", donationHandler.ListLiveDonations)
	donations.GET("/received", donationHandler.ListReceivedDonations)
	donations.PUT("/:id/initiate", donationHandler.InitiateCollection)
	donations.PUT("/:id/collect", donationHandler.CollectDonation)
}
