package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Nikshey/TWINSKILL/config"
)

const ContextUserEmailKey = "userEmail"

type SessionClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

// AuthHandler issues session tokens at login and validates them on later
// requests. Tokens are optional: the API stays usable without one, but a
// valid token pins the acting user regardless of what the request body says.
type AuthHandler interface {
	AuthMiddleware() gin.HandlerFunc
	IssueToken(email, name string) (string, error)
}

type authHandler struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthHandler(authConfig *config.AuthConfig) AuthHandler {
	return &authHandler{
		secret: []byte(authConfig.TokenSecret),
		ttl:    authConfig.TokenTTL,
	}
}

func (h *authHandler) IssueToken(email, name string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
		},
		Name: name,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

func (h *authHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.Next()
			return
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		var claims SessionClaims
		token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
			return h.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			// A present-but-invalid token is ignored rather than rejected:
			// the request proceeds unauthenticated like a token-less one.
			c.Next()
			return
		}

		c.Set(ContextUserEmailKey, claims.Subject)
		c.Next()
	}
}
