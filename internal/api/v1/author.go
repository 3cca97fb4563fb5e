package v1

import (
	"encoding/json"
	"net/http"

	"bookhaven/internal/http/request"
	"bookhaven/internal/http/response"
	"bookhaven/internal/log"
	"bookhaven/internal/model"
	"bookhaven/internal/validator"

	"go.uber.org/zap"
)

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) {
	find := &model.FindAuthor{}
	if request.HasQueryParam(r, "monitored") {
		monitored := request.QueryStringParam(r, "monitored", "") == "true"
		find.Monitored = &monitored
	}
	if name := request.QueryStringParam(r, "name", ""); name != "" {
		find.Name = &name
	}

	authors, err := h.store.ListAuthors(find)
	if err != nil {
		log.Error("Failed to list authors", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, authors)
}

func (h *Handler) getAuthor(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	author, err := h.store.GetAuthor(&model.FindAuthor{ID: &id})
	if err != nil {
		log.Error("Failed to get author", zap.Error(err), zap.Int("author_id", id))
		response.ServerError(w, r, err)
		return
	}
	if author == nil {
		response.NotFound(w, r)
		return
	}

	orderBy := "books.release_date DESC"
	books, err := h.store.ListBooks(&model.FindBook{AuthorID: &author.ID, OrderBy: &orderBy})
	if err != nil {
		log.Error("Failed to list author books", zap.Error(err), zap.Int("author_id", id))
		response.ServerError(w, r, err)
		return
	}

	response.OK(w, r, &authorWithBooks{Author: author, Books: books})
}

type authorWithBooks struct {
	*model.Author
	Books []*model.Book `json:"books"`
}

func (h *Handler) addAuthor(w http.ResponseWriter, r *http.Request) {
	var author model.Author
	if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	if err := validator.ValidateAuthor(&author); err != nil {
		response.BadRequest(w, r, err)
		return
	}

	newAuthor, err := h.store.AddAuthor(&author)
	if err != nil {
		log.Error("Failed to add author", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	h.recordEvent(model.EventAuthorAdded, &newAuthor.ID, nil, map[string]any{"name": newAuthor.Name})

	response.Created(w, r, newAuthor)
}

func (h *Handler) updateAuthor(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	existing, err := h.store.GetAuthor(&model.FindAuthor{ID: &id})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if existing == nil {
		response.NotFound(w, r)
		return
	}

	var author model.Author
	if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	author.ID = id
	if err := validator.ValidateAuthor(&author); err != nil {
		response.BadRequest(w, r, err)
		return
	}

	updated, err := h.store.UpdateAuthor(&author)
	if err != nil {
		log.Error("Failed to update author", zap.Error(err), zap.Int("author_id", id))
		response.ServerError(w, r, err)
		return
	}

	h.recordEvent(model.EventAuthorUpdated, &updated.ID, nil, map[string]any{"name": updated.Name})

	response.OK(w, r, updated)
}

func (h *Handler) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	author, err := h.store.GetAuthor(&model.FindAuthor{ID: &id})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if author == nil {
		response.NotFound(w, r)
		return
	}

	if err := h.store.RemoveAuthor(id); err != nil {
		log.Error("Failed to delete author", zap.Error(err), zap.Int("author_id", id))
		response.ServerError(w, r, err)
		return
	}

	// The author row is gone, keep only the name in the event payload.
	h.recordEvent(model.EventAuthorDeleted, nil, nil, map[string]any{"name": author.Name})

	response.NoContent(w, r)
}

// recordEvent appends a history event, logging failures without failing
// the originating request.
func (h *Handler) recordEvent(eventType string, authorID, bookID *int, data map[string]any) {
	event := &model.HistoryEvent{
		EventType: eventType,
		AuthorID:  authorID,
		BookID:    bookID,
		Data:      data,
	}
	if _, err := h.store.AddHistoryEvent(event); err != nil {
		log.Warn("Failed to record history event", zap.Error(err), zap.String("event_type", eventType))
	}
}
