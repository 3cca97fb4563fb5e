package request // import "bookhaven/internal/http/request"

import (
	"net/http"

	"bookhaven/internal/model"
)

type ContextKey int

const (
	ClientIPContextKey ContextKey = iota
	UserIDContextKey
	UserNameContextKey
	UserRolesContextKey
	IsAuthenticatedContextKey
)

func getContextStringValue(r *http.Request, key ContextKey) string {
	if v := r.Context().Value(key); v != nil {
		if value, valid := v.(string); valid {
			return value
		}
	}
	return ""
}

func GetUserID(r *http.Request) string {
	return getContextStringValue(r, UserIDContextKey)
}

func GetUsername(r *http.Request) string {
	return getContextStringValue(r, UserNameContextKey)
}

func GetUserRole(r *http.Request) model.Role {
	return (model.Role)(getContextStringValue(r, UserRolesContextKey))
}
