// Package launch carries the LTI launch session: who the user is, which
// course context they launched from and which resource link they followed.
// The session travels as an HS256-signed token so handlers never read
// ambient session state.
package launch

import (
	"context"
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing launch token")
	ErrInvalidToken = errors.New("invalid launch token")
)

type Claims struct {
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	ContextID    string `json:"context_id"`
	ContextTitle string `json:"context_title,omitempty"`
	Instructor   bool   `json:"instructor,omitempty"`

	ResourceLinkTitle string `json:"resource_link_title,omitempty"`
	// LabID is the custom_lab_id launch parameter.
	LabID string `json:"custom_lab_id,omitempty"`

	jwt.RegisteredClaims
}

// Sign issues a token for c valid for ttl.
func Sign(secret []byte, c Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(secret)
}

// Parse verifies tok and returns its claims. A token without a context id is
// rejected since every view is scoped to a course.
func Parse(secret []byte, tok string) (*Claims, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, ErrMissingToken
	}
	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.ContextID == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}

type ctxKey struct{}

// WithClaims attaches the launch session to ctx.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the launch session attached by WithClaims.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok && c != nil
}
