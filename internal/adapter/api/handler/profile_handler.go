package handler

import (
	"github.com/labstack/echo/v4"

	"connectfood/internal/usecase"
	"connectfood/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

type updateProfileRequest struct {
	Name             *string `json:"name"`
	PhoneNumber      *string `json:"phone_number"`
	Address          *string `json:"address"`
	ProfilePicture   *string `json:"profile_picture"`
	OrganizationName *string `json:"organization_name"`
	LicenseNumber    *string `json:"license_number"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	email := c.Get("email").(string)
	role := c.Get("role").(string)

	profile, err := h.profileUseCase.GetProfile(c.Request().Context(), email, role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	email := c.Get("email").(string)
	role := c.Get("role").(string)

	complete, err := h.profileUseCase.UpdateProfile(c.Request().Context(), email, role, usecase.UpdateProfileInput{
		Name:             req.Name,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		ProfilePicture:   req.ProfilePicture,
		OrganizationName: req.OrganizationName,
		LicenseNumber:    req.LicenseNumber,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"profileComplete": complete})
}

func (h *ProfileHandler) GetStats(c echo.Context) error {
	email := c.Get("email").(string)
	role := c.Get("role").(string)

	stats, err := h.profileUseCase.GetStats(c.Request().Context(), email, role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
