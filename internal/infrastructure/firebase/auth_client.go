package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

type IdentityClient struct {
	client *auth.Client
}

func NewIdentityClient(client *auth.Client) *IdentityClient {
	return &IdentityClient{
		client: client,
	}
}

// Verify checks the Google ID token with Firebase Auth and extracts the
// verified email plus display name and picture from its claims.
func (f *IdentityClient) Verify(ctx context.Context, idToken string) (string, string, string, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", "", err
	}

	var email, name, picture string
	if v, ok := token.Claims["email"].(string); ok {
		email = v
	}
	if v, ok := token.Claims["name"].(string); ok {
		name = v
	}
	if v, ok := token.Claims["picture"].(string); ok {
		picture = v
	}

	return email, name, picture, nil
}
