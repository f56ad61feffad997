package handler

import (
	"connectfood/internal/usecase"
)

var (
	authHandler     *AuthHandler
	donationHandler *DonationHandler
	profileHandler  *ProfileHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	donationUseCase *usecase.DonationUseCase,
	profileUseCase *usecase.ProfileUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	donationHandler = NewDonationHandler(donationUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetDonationHandler() *DonationHandler {
	return donationHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}
