package gateway

import (
	"context"

	"shelf-auth/internal/auth"
)

// SessionGateway defines the contract with the external identity
// provider. Implementations return identity and session facts only and
// must not perform profile reconciliation or redirect decisions.
type SessionGateway interface {
	// SignUp creates an account. When the email is already registered
	// the provider returns a user with zero linked identities instead
	// of an error; implementations must classify that as a
	// duplicate-account failure.
	SignUp(ctx context.Context, email, password, username string) (*auth.Identity, error)

	// SignInWithPassword authenticates with credentials and returns
	// the identity together with an established session.
	SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error)

	// SignOut invalidates the session bound to accessToken. A failure
	// is fatal for the caller; it must not be treated as signed out.
	SignOut(ctx context.Context, accessToken string) error

	// AuthorizeURL returns the provider authorization URL to redirect
	// the browser to for the named upstream provider. codeChallenge is
	// the PKCE S256 challenge bound to the eventual code exchange.
	AuthorizeURL(provider, redirectTo, codeChallenge string) (string, error)

	// ExchangeCode consumes a single-use authorization code and
	// returns the established session. A reused, expired, or invalid
	// code fails.
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*auth.Session, error)

	// CurrentUser returns the identity bound to accessToken.
	CurrentUser(ctx context.Context, accessToken string) (*auth.Identity, error)

	// RequestPasswordReset sends a recovery link for email that lands
	// on redirectTo with a single-use code.
	RequestPasswordReset(ctx context.Context, email, redirectTo string) error

	// UpdatePassword sets a new password for the subject bound to
	// accessToken. For resets the token comes from a just-completed
	// code exchange.
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error
}
