package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the "kind" claim. A user token encodes an identity
// plus role; a viewer token grants read access to exactly one board.
const (
	TokenKindUser   = "user"
	TokenKindViewer = "viewer"
)

var jwtSecret []byte

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// Claims are the signed token claims. For user tokens UserID/Name/Role are
// set; for viewer tokens BoardID holds the board's external id.
type Claims struct {
	UserID  uint   `json:"uid,omitempty"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role,omitempty"`
	Kind    string `json:"kind"`
	BoardID string `json:"board,omitempty"`
	jwt.RegisteredClaims
}

// IsUser reports whether the claims carry a user identity.
func (c *Claims) IsUser() bool { return c.Kind == TokenKindUser }

// IsViewer reports whether the claims carry a board-scoped viewer capability.
func (c *Claims) IsViewer() bool { return c.Kind == TokenKindViewer }

// GenerateUserToken issues a signed token for a user principal.
func GenerateUserToken(userID uint, name, role string, expireHour int) (string, error) {
	claims := Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		Kind:   TokenKindUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHour) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// GenerateViewerToken issues a signed token granting read access to a single
// board, identified by its external id. Intended for share links.
func GenerateViewerToken(boardExternalID string, expireHour int) (string, error) {
	claims := Claims{
		Kind:    TokenKindViewer,
		BoardID: boardExternalID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHour) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Kind != TokenKindUser && claims.Kind != TokenKindViewer {
		return nil, errors.New("unknown token kind")
	}
	return claims, nil
}
