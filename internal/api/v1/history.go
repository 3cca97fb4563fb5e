package v1

import (
	"net/http"

	"bookhaven/internal/http/request"
	"bookhaven/internal/http/response"
	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"go.uber.org/zap"
)

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	find := &model.FindHistory{
		Page:  request.QueryIntParam(r, "page", 1),
		Limit: request.QueryIntParam(r, "limit", 20),
	}
	if eventType := request.QueryStringParam(r, "eventType", ""); eventType != "" {
		find.EventType = &eventType
	}

	page, err := h.store.ListHistory(find)
	if err != nil {
		log.Error("Failed to list history", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, page)
}
