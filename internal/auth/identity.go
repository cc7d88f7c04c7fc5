package auth

import "golang.org/x/oauth2"

// Identity represents the authenticated subject as returned by the
// external identity provider. It contains facts only, no decisions;
// this service never mutates it.
type Identity struct {
	ID         string           `json:"id"`
	Email      string           `json:"email"`
	Metadata   map[string]any   `json:"user_metadata"`
	Identities []LinkedProvider `json:"identities"`
}

// LinkedProvider is one upstream OAuth identity linked to the subject.
type LinkedProvider struct {
	Provider       string `json:"provider"`
	ProviderUserID string `json:"id"`
}

// Username extracts a display username from provider metadata,
// preferring the key captured at signup, then the names OAuth
// providers emit. Falls back to "unknown".
func (i *Identity) Username() string {
	for _, key := range []string{"username", "user_name", "preferred_username"} {
		if v, ok := i.Metadata[key].(string); ok && v != "" {
			return v
		}
	}
	return "unknown"
}

// Session is the provider-issued proof of authentication. The token is
// opaque to this service; it is held server-side and forwarded on
// provider calls, never interpreted beyond expiry checks.
type Session struct {
	Token oauth2.Token `json:"token"`
	User  Identity     `json:"user"`
}
