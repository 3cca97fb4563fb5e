package v1

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"bookhaven/internal/api/auth"
	"bookhaven/internal/http/request"
	"bookhaven/internal/http/response"
	"bookhaven/internal/log"
	"bookhaven/internal/model"
	"bookhaven/internal/store"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var authenticationAllowlist = map[string]bool{
	"/api/v1/signup": true,
	"/api/v1/signin": true,
}

// isUnauthorizeAllowed returns whether the path is exempted from
// authentication. Supports the wildcard character *.
func isUnauthorizeAllowed(fullPath string) bool {
	for k := range authenticationAllowlist {
		if strings.HasSuffix(k, "*") {
			if strings.HasPrefix(fullPath, strings.TrimSuffix(k, "*")) {
				return true
			}
		}
	}

	return authenticationAllowlist[fullPath]
}

var allowedPathOnlyForAdmin = map[string]bool{
	"/api/v1/users": true,
}

func isOnlyForAdminAllowedPath(path string) bool {
	return allowedPathOnlyForAdmin[path]
}

type AuthInterceptor struct {
	store  *store.Store
	secret string
}

func NewAuthInterceptor(store *store.Store, secret string) *AuthInterceptor {
	return &AuthInterceptor{store: store, secret: secret}
}

func (m *AuthInterceptor) AuthenticationInterceptor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isUnauthorizeAllowed(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		clientIP := request.FindClientIP(r)
		accessToken := getAccessToken(r)

		user, err := m.authenticate(accessToken)
		if err != nil {
			log.Debug("Failed to authenticate user",
				zap.String("client_ip", clientIP),
				zap.String("user_agent", r.UserAgent()),
				zap.Error(err),
			)
			response.Unauthorized(w, r)
			return
		}
		if isOnlyForAdminAllowedPath(r.URL.Path) && user.Role != model.RoleHost && user.Role != model.RoleAdmin {
			response.Forbidden(w, r)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, request.UserIDContextKey, strconv.Itoa(user.ID))
		ctx = context.WithValue(ctx, request.UserNameContextKey, user.Username)
		ctx = context.WithValue(ctx, request.UserRolesContextKey, string(user.Role))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthInterceptor) authenticate(accessToken string) (*model.User, error) {
	if accessToken == "" {
		return nil, errors.New("no access token provided")
	}
	claims, err := auth.ParseAccessToken(accessToken, []byte(m.secret))
	if err != nil {
		return nil, err
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "malformed ID in the token")
	}
	user, err := m.store.GetUser(&model.FindUser{ID: &userID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	if user == nil {
		return nil, errors.Errorf("user not found with ID: %d", userID)
	}
	return user, nil
}

func getAccessToken(r *http.Request) string {
	// Check the HTTP Authorization header first
	authorizationHeader := r.Header.Get("Authorization")
	if authorizationHeader != "" {
		splitToken := strings.Split(authorizationHeader, "Bearer ")
		if len(splitToken) == 2 {
			return splitToken[1]
		}
	}

	// Fall back to the cookie header
	var accessToken string
	for cookie := range r.Cookies() {
		if r.Cookies()[cookie].Name == auth.AccessTokenCookieName {
			accessToken = r.Cookies()[cookie].Value
		}
	}
	return accessToken
}
