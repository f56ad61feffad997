package handler

import (
	"github.com/labstack/echo/v4"

	"connectfood/internal/usecase"
	"connectfood/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	Role    string `json:"role" validate:"required,oneof=donor recipient"`
}

type loginResponse struct {
	JwtToken string `json:"jwtToken"`
	Role     string `json:"role"`
}

func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.IDToken, req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, loginResponse{
		JwtToken: result.Token,
		Role:     result.Role,
	})
}
