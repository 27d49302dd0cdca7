// Package middleware carries the identity layer. The service trusts
// the identity provider: the middleware verifies the token signature
// and expiry, extracts the caller's id, role and department scope, and
// hands them to the handlers as an Actor. No permission decisions are
// made here.
package middleware

import (
	"errors"
	"flag"
	"net/http"
	"strings"

	"civictrack/backend/lifecycle"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = flag.String("jwt_secret", "", "HMAC secret for identity tokens.")

const actorKey = "actor"

// ActorFromToken verifies an HS256 token and builds the Actor from its
// claims.
func ActorFromToken(tokenString, secret string) (lifecycle.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return lifecycle.Actor{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return lifecycle.Actor{}, errors.New("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return lifecycle.Actor{}, errors.New("invalid user id in token")
	}
	roleStr, _ := claims["role"].(string)
	role := lifecycle.Role(roleStr)
	if !role.Valid() {
		return lifecycle.Actor{}, errors.New("invalid role in token")
	}
	departmentID, _ := claims["department_id"].(string)

	return lifecycle.Actor{ID: userID, Role: role, DepartmentID: departmentID}, nil
}

// Identity is the gin middleware for protected routes.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warnf("Missing authorization header from %s", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}
		tokenString := extractToken(authHeader)
		if tokenString == "" {
			log.Warnf("Invalid authorization format from %s", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		actor, err := ActorFromToken(tokenString, *jwtSecret)
		if err != nil {
			log.Warnf("Token rejected from %s: %v", c.ClientIP(), err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// GetActor returns the Actor set by Identity.
func GetActor(c *gin.Context) (lifecycle.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return lifecycle.Actor{}, false
	}
	actor, ok := v.(lifecycle.Actor)
	return actor, ok
}

func extractToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
