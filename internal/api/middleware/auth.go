package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ApartmentBooking/internal/api/handlers"
)

const (
	msgMissingToken = "требуется токен авторизации"
	msgInvalidToken = "некорректный или просроченный токен"
	msgForbidden    = "доступ только для администратора"
)

var (
	ErrMissingToken = errors.New("middleware: missing bearer token")
	ErrInvalidToken = errors.New("middleware: invalid token")
)

type ctxKey string

const subjectKey ctxKey = "subject"

// Logger логгер middleware
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminClaims клеймы токена администратора
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth пропускает только запросы с Bearer JWT (HS256), у которого role совпадает с adminRole
func AdminAuth(secret, adminRole string, logger Logger) mux.MiddlewareFunc {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractBearerToken(r)
			if err != nil {
				logger.Warn("%s %s - %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := parseToken(token, key)
			if err != nil {
				logger.Warn("%s %s - %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if claims.Role != adminRole {
				logger.Warn("%s %s - role %q is not allowed, subject=%s", r.Method, r.URL.Path, claims.Role, claims.Subject)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext возвращает sub токена администратора
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey).(string)
	return sub, ok
}

func extractBearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

func parseToken(raw string, key []byte) (*AdminClaims, error) {
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
