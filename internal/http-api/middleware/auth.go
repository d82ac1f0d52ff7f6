package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated identity for the current request, taken
// from the identity provider's token claims. It is the only authorization
// input handlers may use; nothing identity-related is ever read from
// request payloads.
type Principal struct {
	ID        string
	Username  string
	Email     string
	AvatarURL string
}

var errInvalidToken = errors.New("invalid token")

// AuthMiddleware is a Gin middleware that authenticates API requests.
// It checks for a provider-issued JWT in the Authorization header and sets
// the principal on the context for handlers to use.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		principal, err := parsePrincipal(parts[1], jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuth sets the principal when a valid bearer token is present and
// lets the request continue anonymously otherwise. Used on read routes
// whose visibility rules depend on who is asking (unpublished levels).
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		if principal, err := parsePrincipal(parts[1], jwtSecret); err == nil {
			setPrincipal(c, principal)
		}
		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal, if any.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	id, exists := c.Get("userID")
	if !exists {
		return Principal{}, false
	}
	return Principal{
		ID:        id.(string),
		Username:  c.GetString("userName"),
		Email:     c.GetString("email"),
		AvatarURL: c.GetString("avatarURL"),
	}, true
}

// PrincipalID returns the authenticated user id, or "" for anonymous
// callers.
func PrincipalID(c *gin.Context) string {
	return c.GetString("userID")
}

func setPrincipal(c *gin.Context, p Principal) {
	c.Set("userID", p.ID)
	c.Set("userName", p.Username)
	c.Set("email", p.Email)
	c.Set("avatarURL", p.AvatarURL)
}

// parsePrincipal validates the provider token signature and lifts the
// identity claims (sub, nickname, email, picture) into a Principal.
func parsePrincipal(tokenString, jwtSecret string) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return Principal{}, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, errInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Principal{}, errInvalidToken
	}

	p := Principal{ID: sub}
	if v, ok := claims["nickname"].(string); ok {
		p.Username = v
	}
	if v, ok := claims["email"].(string); ok {
		p.Email = v
	}
	if v, ok := claims["picture"].(string); ok {
		p.AvatarURL = v
	}
	return p, nil
}
