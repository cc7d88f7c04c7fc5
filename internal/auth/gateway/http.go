package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"shelf-auth/internal/auth"
	"shelf-auth/internal/logger"
)

// DuplicateAccountMessage is surfaced when signup targets an email that
// is already registered.
const DuplicateAccountMessage = "user with this email already exists, please try with another email"

// HTTPGateway talks to a GoTrue-style identity provider over its REST
// API. The provider terminates upstream OAuth itself; this client only
// drives its aggregate endpoints.
type HTTPGateway struct {
	baseURL string
	anonKey string
	client  *http.Client
}

func NewHTTPGateway(baseURL, anonKey string) (*HTTPGateway, error) {
	if baseURL == "" || anonKey == "" {
		return nil, errors.New("gateway config missing required fields")
	}

	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// sessionResponse is the provider's token grant payload.
type sessionResponse struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	RefreshToken string        `json:"refresh_token"`
	User         auth.Identity `json:"user"`
}

func (s *sessionResponse) session() *auth.Session {
	return &auth.Session{
		Token: oauth2.Token{
			AccessToken:  s.AccessToken,
			TokenType:    s.TokenType,
			RefreshToken: s.RefreshToken,
			Expiry:       time.Now().Add(time.Duration(s.ExpiresIn) * time.Second),
		},
		User: s.User,
	}
}

// apiError covers both error body shapes the provider emits.
type apiError struct {
	Msg              string `json:"msg"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e *apiError) message() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.ErrorField != "":
		return e.ErrorField
	}
	return "identity provider request failed"
}

func (g *HTTPGateway) do(
	ctx context.Context,
	method, path, accessToken string,
	body any,
	out any,
) error {

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}

	req.Header.Set("apikey", g.anonKey)
	if accessToken == "" {
		accessToken = g.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("gateway: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		_ = json.Unmarshal(data, &apiErr)
		return auth.NewError(auth.KindProvider, apiErr.message())
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("gateway: decode response: %w", err)
		}
	}

	return nil
}

func (g *HTTPGateway) SignUp(
	ctx context.Context,
	email, password, username string,
) (*auth.Identity, error) {

	var user auth.Identity
	err := g.do(ctx, http.MethodPost, "/signup", "", map[string]any{
		"email":    email,
		"password": password,
		"data": map[string]any{
			"username": username,
		},
	}, &user)
	if err != nil {
		return nil, err
	}

	// The provider obfuscates existing accounts: it answers with a
	// user carrying zero linked identities instead of an error.
	if len(user.Identities) == 0 {
		return nil, auth.NewError(auth.KindDuplicateAccount, DuplicateAccountMessage)
	}

	return &user, nil
}

func (g *HTTPGateway) SignInWithPassword(
	ctx context.Context,
	email, password string,
) (*auth.Session, error) {

	var resp sessionResponse
	err := g.do(ctx, http.MethodPost, "/token?grant_type=password", "", map[string]any{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp.session(), nil
}

func (g *HTTPGateway) SignOut(ctx context.Context, accessToken string) error {
	return g.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
}

func (g *HTTPGateway) AuthorizeURL(provider, redirectTo, codeChallenge string) (string, error) {
	if provider == "" {
		return "", auth.NewError(auth.KindValidation, "oauth provider is required")
	}

	q := url.Values{}
	q.Set("provider", provider)
	q.Set("redirect_to", redirectTo)
	if codeChallenge != "" {
		q.Set("code_challenge", codeChallenge)
		q.Set("code_challenge_method", "s256")
	}

	return g.baseURL + "/authorize?" + q.Encode(), nil
}

func (g *HTTPGateway) ExchangeCode(
	ctx context.Context,
	code, codeVerifier string,
) (*auth.Session, error) {

	var resp sessionResponse
	err := g.do(ctx, http.MethodPost, "/token?grant_type=pkce", "", map[string]any{
		"auth_code":     code,
		"code_verifier": codeVerifier,
	}, &resp)
	if err != nil {
		logger.Warn("code exchange failed", map[string]any{
			"error": err.Error(),
		})
		if ae, ok := err.(*auth.Error); ok {
			return nil, auth.NewError(auth.KindCodeExchange, ae.Message)
		}
		return nil, err
	}

	return resp.session(), nil
}

func (g *HTTPGateway) CurrentUser(
	ctx context.Context,
	accessToken string,
) (*auth.Identity, error) {

	var user auth.Identity
	err := g.do(ctx, http.MethodGet, "/user", accessToken, nil, &user)
	if err != nil {
		if ae, ok := err.(*auth.Error); ok {
			return nil, auth.NewError(auth.KindIdentityFetch, ae.Message)
		}
		return nil, err
	}

	if user.ID == "" {
		return nil, auth.NewError(auth.KindIdentityFetch, "no identity bound to session")
	}

	return &user, nil
}

func (g *HTTPGateway) RequestPasswordReset(
	ctx context.Context,
	email, redirectTo string,
) error {

	path := "/recover?redirect_to=" + url.QueryEscape(redirectTo)
	return g.do(ctx, http.MethodPost, path, "", map[string]any{
		"email": email,
	}, nil)
}

func (g *HTTPGateway) UpdatePassword(
	ctx context.Context,
	accessToken, newPassword string,
) error {

	return g.do(ctx, http.MethodPut, "/user", accessToken, map[string]any{
		"password": newPassword,
	}, nil)
}
