package v1

import (
	"encoding/json"
	"net/http"

	"bookhaven/internal/http/request"
	"bookhaven/internal/http/response"
	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) listQualityProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.ListQualityProfiles()
	if err != nil {
		log.Error("Failed to list quality profiles", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, profiles)
}

func (h *Handler) getQualityProfile(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	profile, err := h.store.GetQualityProfile(id)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if profile == nil {
		response.NotFound(w, r)
		return
	}
	response.OK(w, r, profile)
}

func (h *Handler) addQualityProfile(w http.ResponseWriter, r *http.Request) {
	var profile model.QualityProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	if profile.Name == "" {
		response.BadRequest(w, r, errors.New("profile name is empty"))
		return
	}

	newProfile, err := h.store.AddQualityProfile(&profile)
	if err != nil {
		log.Error("Failed to add quality profile", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	response.Created(w, r, newProfile)
}

func (h *Handler) updateQualityProfile(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	existing, err := h.store.GetQualityProfile(id)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if existing == nil {
		response.NotFound(w, r)
		return
	}

	var profile model.QualityProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	profile.ID = id

	updated, err := h.store.UpdateQualityProfile(&profile)
	if err != nil {
		log.Error("Failed to update quality profile", zap.Error(err), zap.Int("profile_id", id))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, updated)
}

func (h *Handler) deleteQualityProfile(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	profile, err := h.store.GetQualityProfile(id)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if profile == nil {
		response.NotFound(w, r)
		return
	}

	// Refuse to delete a profile that authors still reference.
	authors, err := h.store.ListAuthors(&model.FindAuthor{})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	for _, author := range authors {
		if author.QualityProfileID != nil && *author.QualityProfileID == id {
			response.BadRequest(w, r, errors.New("quality profile is in use"))
			return
		}
	}

	if err := h.store.RemoveQualityProfile(id); err != nil {
		log.Error("Failed to delete quality profile", zap.Error(err), zap.Int("profile_id", id))
		response.ServerError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

func (h *Handler) listQualityDefinitions(w http.ResponseWriter, r *http.Request) {
	definitions, err := h.store.ListQualityDefinitions()
	if err != nil {
		log.Error("Failed to list quality definitions", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, definitions)
}

func (h *Handler) updateQualityDefinition(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")

	var def model.QualityDefinition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	def.ID = id

	updated, err := h.store.UpdateQualityDefinition(&def)
	if err != nil {
		log.Error("Failed to update quality definition", zap.Error(err), zap.Int("definition_id", id))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, updated)
}
