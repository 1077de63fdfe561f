package google

import (
	"context"
	"errors"

	"github.com/L-alam/amongyall-sub001/internal/core/ports"
	"google.golang.org/api/idtoken"
)

var ErrMissingEmail = errors.New("email not found in claims")

type Verifier struct {
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func NewVerifier() *Verifier {
	return &Verifier{validate: idtoken.Validate}
}

// Verify checks a Google ID token against clientID. Accounts without a
// display name fall back to the email address.
func (v *Verifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	payload, err := v.validate(ctx, token, clientID)
	if err != nil {
		return nil, err
	}
	return payloadFromClaims(payload.Claims)
}

func payloadFromClaims(claims map[string]interface{}) (*ports.TokenPayload, error) {
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, ErrMissingEmail
	}
	name, ok := claims["name"].(string)
	if !ok || name == "" {
		name = email
	}
	return &ports.TokenPayload{Email: email, Name: name}, nil
}
