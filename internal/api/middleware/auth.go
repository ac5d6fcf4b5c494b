package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenHeader is the request header carrying the raw signed token. The token
// is sent bare, without a Bearer prefix.
const TokenHeader = "auth-token"

// UserIDKey is the context key the resolved user identity is stored under.
const UserIDKey = "user_id"

const authFailedMessage = "Please authenticate using a valid token"

// Auth is the request gate for protected routes. It verifies the token from
// the auth-token header and injects the resolved user id into the context.
// A missing header fails immediately without touching the verifier; both
// failure modes answer 401 with the same body so callers cannot distinguish
// absent from tampered tokens.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(TokenHeader)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"errors": authFailedMessage})
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"errors": authFailedMessage})
			}

			userID := decodeUserID(claims)
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"errors": authFailedMessage})
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

// decodeUserID extracts the identity from the {"user": {"id": ...}} payload.
func decodeUserID(claims jwt.MapClaims) string {
	user, ok := claims["user"].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := user["id"].(string)
	return id
}
