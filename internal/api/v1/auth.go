package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bookhaven/internal/api/auth"
	"bookhaven/internal/http/request"
	"bookhaven/internal/http/response"
	"bookhaven/internal/log"
	"bookhaven/internal/model"
	"bookhaven/internal/validator"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var signin model.UserSigninRequest
	if err := json.NewDecoder(r.Body).Decode(&signin); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	user, err := h.store.GetUser(&model.FindUser{Username: &signin.Username})
	if err != nil {
		log.Error("Failed to get user", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	if user == nil {
		log.Warn("User not found", zap.String("username", signin.Username))
		response.NotFound(w, r)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(signin.Password))
	if err != nil {
		log.Error("Failed to compare password", zap.Error(err))
		response.BadRequest(w, r, errors.New("invalid password"))
		return
	}

	expireTime := time.Now().Add(auth.AccessTokenDuration)
	if signin.NeverExpire {
		// Set the expire time to 100 years.
		expireTime = time.Now().Add(100 * 365 * 24 * time.Hour)
	}

	accessToken, err := auth.GenerateAccessToken(user.Username, user.ID, expireTime, []byte(h.secret))
	if err != nil {
		log.Error("Failed to generate access token", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	cookie := buildAccessTokenCookie(accessToken, expireTime, r.Header.Get("Origin"))
	w.Header().Set("Set-Cookie", cookie)

	response.OK(w, r, response.UserResponse(user))
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	signup := &model.UserSignupRequest{}
	if err := json.NewDecoder(r.Body).Decode(&signup); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	if err := validator.ValidateSignupRequest(h.store, signup); err != nil {
		log.Error("Failed to validate signup request", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to generate password hash")
		response.ServerError(w, r, err)
		return
	}

	// The first user of the instance becomes the host.
	var newRole model.Role
	hostType := model.RoleHost
	existedHostUser, err := h.store.GetUser(&model.FindUser{Role: &hostType})
	if err != nil {
		log.Error("Failed to get users", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	if existedHostUser == nil {
		newRole = model.RoleHost
	} else {
		newRole = model.RoleUser
	}

	user := model.User{
		Username:     signup.Username,
		Nickname:     signup.Nickname,
		PasswordHash: string(passwordHash),
		Role:         newRole,
	}

	newUser, err := h.store.CreateUser(&user)
	if err != nil {
		log.Error("Failed to signup user", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	// Store user in cache
	h.store.UserCache.Store(newUser.ID, newUser)

	response.Created(w, r, response.UserResponse(newUser))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(&model.FindUser{})
	if err != nil {
		log.Error("Failed to list users", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, response.UserListResponse(users))
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if request.GetUserRole(r) != model.RoleHost {
		response.Forbidden(w, r)
		return
	}

	id := request.RouteIntParam(r, "id")
	if strconv.Itoa(id) == request.GetUserID(r) {
		response.BadRequest(w, r, errors.New("cannot delete the signed-in user"))
		return
	}

	user, err := h.store.GetUser(&model.FindUser{ID: &id})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if user == nil {
		response.NotFound(w, r)
		return
	}

	if err := h.store.RemoveUser(id); err != nil {
		log.Error("Failed to delete user", zap.Error(err), zap.Int("user_id", id))
		response.ServerError(w, r, err)
		return
	}

	log.Info("User deleted",
		zap.String("username", user.Username),
		zap.String("by", request.GetUsername(r)),
	)
	response.NoContent(w, r)
}

func buildAccessTokenCookie(accessToken string, expireTime time.Time, origin string) string {
	attrs := []string{
		fmt.Sprintf("%s=%s", auth.AccessTokenCookieName, accessToken),
		"Path=/",
		"HttpOnly",
	}
	if expireTime.IsZero() {
		attrs = append(attrs, "Expires=Thu, 01 Jan 1970 00:00:00 GMT")
	} else {
		attrs = append(attrs, "Expires="+expireTime.Format(time.RFC1123))
	}

	if strings.HasPrefix(origin, "https://") {
		attrs = append(attrs, "Secure")
		attrs = append(attrs, "SameSite=None")
	} else {
		attrs = append(attrs, "SameSite=Lax")
	}
	return strings.Join(attrs, "; ")
}
