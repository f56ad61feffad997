package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"connectfood/internal/usecase"
	"connectfood/pkg/errors"
	"connectfood/pkg/response"
)

type DonationHandler struct {
	donationUseCase *usecase.DonationUseCase
}

func NewDonationHandler(donationUseCase *usecase.DonationUseCase) *DonationHandler {
	return &DonationHandler{
		donationUseCase: donationUseCase,
	}
}

type createDonationRequest struct {
	FoodItem            string    `json:"food_item" validate:"required"`
	Description         string    `json:"description"`
	Quantity            int       `json:"quantity" validate:"gte=0"`
	Unit                string    `json:"unit" validate:"required"`
	City                string    `json:"city" validate:"required"`
	District            string    `json:"district" validate:"required"`
	Address             string    `json:"address" validate:"required"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
	ExpiryDate          time.Time `json:"expiry_date" validate:"required"`
	SpecialInstructions string    `json:"special_instructions"`
}

func (h *DonationHandler) CreateDonation(c echo.Context) error {
	var req createDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	email := c.Get("email").(string)

	donation, err := h.donationUseCase.Create(c.Request().Context(), email, usecase.CreateDonationInput{
		FoodItem:            req.FoodItem,
		Description:         req.Description,
		Quantity:            req.Quantity,
		Unit:                req.Unit,
		City:                req.City,
		District:            req.District,
		Address:             req.Address,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		ExpiryDate:          req.ExpiryDate,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, donation)
}

func (h *DonationHandler) ListMyDonations(c echo.Context) error {
	email := c.Get("email").(string)

	donations, err := h.donationUseCase.ListMine(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, donations)
}

func (h *DonationHandler) ListLiveDonations(c echo.Context) error {
	city := c.QueryParam("city")
	district := c.QueryParam("district")

	minQty := 0
	if raw := c.QueryParam("minQty"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.Error(c, errors.BadRequest("minQty must be a number", err))
		}
		minQty = parsed
	}

	donations, err := h.donationUseCase.ListLive(c.Request().Context(), city, district, minQty)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, donations)
}

func (h *DonationHandler) InitiateCollection(c echo.Context) error {
	id := c.Param("id")
	email := c.Get("email").(string)

	donation, err := h.donationUseCase.Initiate(c.Request().Context(), id, email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, donation)
}

func (h *DonationHandler) CollectDonation(c echo.Context) error {
	id := c.Param("id")
	email := c.Get("email").(string)

	donation, err := h.donationUseCase.Collect(c.Request().Context(), id, email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, donation)
}

func (h *DonationHandler) ListReceivedDonations(c echo.Context) error {
	donations, err := h.donationUseCase.ListReceived(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, donations)
}
