package usecase

import (
	"context"

	"connectfood/internal/domain/entity"
	"connectfood/internal/domain/repository"
	"connectfood/pkg/errors"
)

type AuthUseCase struct {
	registry repository.AccountRegistry
	verifier IdentityVerifier
	tokens   SessionTokenService
}

func NewAuthUseCase(registry repository.AccountRegistry, verifier IdentityVerifier, tokens SessionTokenService) *AuthUseCase {
	return &AuthUseCase{
		registry: registry,
		verifier: verifier,
		tokens:   tokens,
	}
}

type LoginResult struct {
	Token string
	Role  string
}

// Login exchanges a Google ID token for a session token. The account is
// created on first login for the requested role and refreshed (picture,
// last login) on repeat logins; an email already registered under the
// opposite role is rejected.
func (uc *AuthUseCase) Login(ctx context.Context, idToken, role string) (*LoginResult, error) {
	if role != entity.RoleDonor && role != entity.RoleRecipient {
		return nil, errors.BadRequest("Invalid role", nil)
	}

	email, name, picture, err := uc.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, errors.BadRequest("Invalid Google token", err)
	}
	if email == "" {
		return nil, errors.BadRequest("Google token has no verified email", nil)
	}

	if err := uc.registry.RegisterOrRefresh(ctx, role, email, name, picture); err != nil {
		return nil, err
	}

	sessionToken, err := uc.tokens.Issue(email, role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: sessionToken,
		Role:  role,
	}, nil
}
