package usecase

import "context"

// IdentityVerifier validates an opaque identity-provider token and returns
// the verified email plus display name and picture.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (email, name, picture string, err error)
}

type SessionTokenService interface {
	Issue(email, role string) (string, error)
	Validate(tokenString string) (email, role string, err error)
}
