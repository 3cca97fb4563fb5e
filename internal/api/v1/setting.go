package v1

import (
	"encoding/json"
	"net/http"

	"bookhaven/internal/http/response"
	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) listSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.ListSettings()
	if err != nil {
		log.Error("Failed to list settings", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	// The signing secret never leaves the server.
	delete(settings, "security.jwtSecret")
	response.OK(w, r, settings)
}

func (h *Handler) updateSetting(w http.ResponseWriter, r *http.Request) {
	var setting model.Setting
	if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	if setting.Key == "" {
		response.BadRequest(w, r, errors.New("setting key is empty"))
		return
	}
	if setting.Key == "security.jwtSecret" {
		response.BadRequest(w, r, errors.New("setting key is reserved"))
		return
	}

	if err := h.store.UpsertSetting(&setting); err != nil {
		log.Error("Failed to update setting", zap.Error(err), zap.String("key", setting.Key))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, &setting)
}
