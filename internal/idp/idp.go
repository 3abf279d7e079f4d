// Package idp verifies RS256 bearer tokens issued by the configured
// identity provider and resolves the token subject's email via the
// provider's management API, grounded on the teacher pack's golang-jwt
// usage and client-credentials OAuth2 flow.
package idp

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2/clientcredentials"
)

// Claims is the subset of an Auth0-style access token this fabric cares
// about: the subject (provider|id form) and the audience list, checked
// against the configured API audience.
type Claims struct {
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens against a fixed RS256 public key and can
// look up a subject's email from the identity provider's management API.
type Verifier struct {
	pub      *rsa.PublicKey
	audience string
	issuer   string

	mgmtBaseURL string
	mgmtClient  *http.Client // client-credentials-authenticated
}

// Config carries everything needed to construct a Verifier, mirroring the
// AUTH0_* environment variables named in the fabric's configuration.
type Config struct {
	// ServerN, ServerE are base64url-encoded RSA public key components
	// (AUTH0_SERVER_N, AUTH0_SERVER_E).
	ServerN, ServerE string
	Audience         string
	Issuer           string

	ManagementBaseURL string
	ClientID          string
	ClientSecret      string
	TokenURL          string
	ManagementAudience string
}

// NewVerifier builds a Verifier, constructing the RSA public key from its
// base64url N/E components and wiring a client-credentials HTTP client for
// management API calls.
func NewVerifier(cfg Config) (*Verifier, error) {
	pub, err := publicKeyFromNE(cfg.ServerN, cfg.ServerE)
	if err != nil {
		return nil, fmt.Errorf("idp: public key: %w", err)
	}

	ccCfg := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	if cfg.ManagementAudience != "" {
		ccCfg.EndpointParams = map[string][]string{"audience": {cfg.ManagementAudience}}
	}

	return &Verifier{
		pub:         pub,
		audience:    cfg.Audience,
		issuer:      cfg.Issuer,
		mgmtBaseURL: cfg.ManagementBaseURL,
		mgmtClient:  ccCfg.Client(context.Background()),
	}, nil
}

// publicKeyFromNE decodes base64url-encoded modulus/exponent components
// into an *rsa.PublicKey, the form Auth0-style JWKs publish them in.
func publicKeyFromNE(n, e string) (*rsa.PublicKey, error) {
	if n == "" || e == "" {
		return nil, errors.New("idp: N and E must both be set")
	}
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("decode N: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("decode E: %w", err)
	}

	// E is a short big-endian integer; pad to 8 bytes for binary.BigEndian.
	eBytes := make([]byte, 8)
	copy(eBytes[8-len(eb):], eb)

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(binary.BigEndian.Uint64(eBytes)),
	}, nil
}

// Verify parses and validates tokenString, returning the subject (the
// user id to place in gRPC context). Failure here is always the caller's
// cue to return an `unauthenticated` status.
func (v *Verifier) Verify(tokenString string) (subject string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.pub, nil
	}, jwt.WithAudience(v.audience), jwt.WithIssuer(v.issuer))
	if err != nil {
		return "", fmt.Errorf("idp: verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("idp: token missing subject")
	}
	return claims.Subject, nil
}

// managementUser mirrors the subset of an Auth0 Management API /users/{id}
// response this fabric needs.
type managementUser struct {
	Email string `json:"email"`
}

// Email queries the identity provider's management API for the email
// associated with subject. Only called on resolve-or-create's cold path —
// a brand-new User row with no cached email.
func (v *Verifier) Email(ctx context.Context, subject string) (string, error) {
	// subject is provider|id-shaped (e.g. "auth0|abc123"); PathEscape keeps
	// the "|" from being read as a path separator by the management API.
	endpoint := fmt.Sprintf("%s/api/v2/users/%s", v.mgmtBaseURL, url.PathEscape(subject))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("idp: build management request: %w", err)
	}

	resp, err := v.mgmtClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("idp: management request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("idp: management API returned %d: %s", resp.StatusCode, body)
	}

	var mu managementUser
	if err := json.NewDecoder(resp.Body).Decode(&mu); err != nil {
		return "", fmt.Errorf("idp: decode management response: %w", err)
	}
	if mu.Email == "" {
		return "", errors.New("idp: management API returned empty email")
	}
	return mu.Email, nil
}
