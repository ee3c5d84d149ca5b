// Package jwt issues and verifies HS256 bearer tokens.
package jwt

import (
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// TokenError represents JWT token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	DefaultAccessTokenExpire = time.Hour * 24

	// SubjectAccess is the subject claim of access tokens.
	SubjectAccess = "access"

	ErrNeedTokenProvider = TokenError("cannot sign token without token provider")
	ErrInvalidToken      = TokenError("invalid token")
	ErrTokenParsing      = TokenError("token parsing error")
)

// Token represents the token body
type Token struct {
	JTI     string
	Payload map[string]any
	Subject string
	Expire  time.Duration
}

// TokenManager handles JWT token operations
type TokenManager struct {
	key    string
	expire time.Duration
	now    func() time.Time
}

// NewTokenManager creates a new TokenManager instance. A non-positive expire
// falls back to DefaultAccessTokenExpire.
func NewTokenManager(key string, expire time.Duration) *TokenManager {
	if expire <= 0 {
		expire = DefaultAccessTokenExpire
	}
	return &TokenManager{key: key, expire: expire, now: time.Now}
}

// validateKey validates the token key
func (jtm *TokenManager) validateKey() error {
	if jtm.key == "" {
		return ErrNeedTokenProvider
	}
	return nil
}

// generateToken generates a JWT token
func (jtm *TokenManager) generateToken(token *Token) (string, error) {
	if err := jtm.validateKey(); err != nil {
		return "", err
	}

	claims := jwtstd.MapClaims{
		"jti":     token.JTI,
		"sub":     token.Subject,
		"payload": token.Payload,
		"exp":     jtm.now().Add(token.Expire).Unix(),
	}

	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	return t.SignedString([]byte(jtm.key))
}

// GenerateAccessToken signs an access token for the user with a fresh jti.
func (jtm *TokenManager) GenerateAccessToken(userID string) (string, error) {
	return jtm.GenerateAccessTokenWithExpiry(userID, jtm.expire)
}

// GenerateAccessTokenWithExpiry signs an access token with a custom lifetime.
func (jtm *TokenManager) GenerateAccessTokenWithExpiry(userID string, expiry time.Duration) (string, error) {
	jti, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	return jtm.generateToken(&Token{
		JTI:     jti,
		Payload: map[string]any{"user_id": userID},
		Subject: SubjectAccess,
		Expire:  expiry,
	})
}

// ValidateToken parses a token and checks its signature and expiry.
func (jtm *TokenManager) ValidateToken(tokenString string) (*jwtstd.Token, error) {
	if err := jtm.validateKey(); err != nil {
		return nil, err
	}

	return jwtstd.Parse(tokenString, func(token *jwtstd.Token) (any, error) {
		return []byte(jtm.key), nil
	},
		jwtstd.WithValidMethods([]string{jwtstd.SigningMethodHS256.Alg()}),
		jwtstd.WithTimeFunc(jtm.now),
		jwtstd.WithExpirationRequired(),
	)
}

// DecodeToken decodes a JWT token into its claims
func (jtm *TokenManager) DecodeToken(tokenString string) (map[string]any, error) {
	token, err := jtm.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwtstd.MapClaims)
	if !ok {
		return nil, ErrTokenParsing
	}
	return claims, nil
}

// VerifyAccessToken returns the user id carried by a valid access token.
func (jtm *TokenManager) VerifyAccessToken(tokenString string) (string, error) {
	claims, err := jtm.DecodeToken(tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}
	if !IsAccessToken(claims) {
		return "", ErrInvalidToken
	}
	userID := GetUserIDFromToken(claims)
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
