package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

var ErrMissingIdentity = errors.New("request carries no authenticated identity")

// Identity is the authenticated caller of a request.
type Identity struct {
	ID   kernel.UUID
	Role user.Role
}

// Claims are the JWT claims issued at login. The subject is the user id.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens and places the caller's Identity
// in the echo context.
type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Sign issues a token for the user valid for ttl.
func (a *Authenticator) Sign(id kernel.UUID, role user.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Authenticate rejects requests without a valid bearer token with 401.
func (a *Authenticator) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := bearerToken(c.Request())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in! Please log in to get access.").SetInternal(err)
		}

		identity, err := a.parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token. Please log in again!").SetInternal(err)
		}

		c.Set(identityKey, identity)
		return next(c)
	}
}

func (a *Authenticator) parse(raw string) (Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, err
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("subject: %w", err)
	}

	role := user.RoleUser
	if claims.Role != "" {
		if role, err = user.ParseRole(claims.Role); err != nil {
			return Identity{}, err
		}
	}

	return Identity{ID: id, Role: role}, nil
}

// RequireRole lets through only callers holding one of the roles. It must run
// after Authenticate.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := identityFrom(c)
			if err != nil {
				return err
			}
			for _, role := range roles {
				if identity.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to perform this action")
		}
	}
}

func identityFrom(c echo.Context) (Identity, error) {
	identity, ok := c.Get(identityKey).(Identity)
	if !ok {
		return Identity{}, echo.NewHTTPError(http.StatusUnauthorized).SetInternal(ErrMissingIdentity)
	}
	return identity, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errors.New("authorization header is missing")
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("authorization header is not a bearer token")
	}
	return strings.TrimSpace(token), nil
}
