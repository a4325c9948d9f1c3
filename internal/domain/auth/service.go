package auth

import (
	"context"
)

// AuthService issues and revokes sessions. Every other component trusts
// the {id, role} principal resolved from the access token and performs no
// credential verification of its own.
type AuthService interface {
	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	// LoginFederated establishes a session for an identity already verified
	// by the external identity provider, bypassing local password checks.
	// Unregistered emails are rejected, except the bootstrap account.
	LoginFederated(ctx context.Context, email, firstName, lastName string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
}
