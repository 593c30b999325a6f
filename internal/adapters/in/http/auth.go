package http

import (
	"net/http"
	"strings"

	"spotserve/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Roles carried in access tokens. Every authenticated request acts as
// exactly one of them.
const (
	RoleCustomer = "customer"
	RoleMechanic = "mechanic"
)

const principalContextKey = "principal"

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	ID   kernel.UUID
	Role string
}

type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token on incoming requests and stores
// the resulting Principal in the echo context. Tokens are HS256-signed with
// the shared secret; the subject claim carries the caller's ID.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return unauthorized(c)
			}

			claims := &authClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return unauthorized(c)
			}

			subjectID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return unauthorized(c)
			}
			if claims.Role != RoleCustomer && claims.Role != RoleMechanic {
				return unauthorized(c)
			}

			c.Set(principalContextKey, Principal{ID: subjectID, Role: claims.Role})
			return next(c)
		}
	}
}

// RequireRole rejects requests whose principal does not carry the given role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := principalFrom(c)
			if !ok {
				return unauthorized(c)
			}
			if principal.Role != role {
				return c.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "role is not allowed to perform this operation",
				})
			}
			return next(c)
		}
	}
}

func principalFrom(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(principalContextKey).(Principal)
	return principal, ok
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "request is not authorized",
	})
}

// IssueToken signs an HS256 access token for the given principal. Used by
// tooling and tests; the deployment normally receives tokens from the
// identity provider.
func IssueToken(secret []byte, principal Principal) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims{
		Role: principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: principal.ID.String(),
		},
	})
	return token.SignedString(secret)
}
