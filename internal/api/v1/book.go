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

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	find := &model.FindBook{}
	if authorID := request.QueryIntParam(r, "authorId", 0); authorID > 0 {
		find.AuthorID = &authorID
	}
	if request.HasQueryParam(r, "monitored") {
		monitored := request.QueryStringParam(r, "monitored", "") == "true"
		find.Monitored = &monitored
	}

	books, err := h.store.ListBooks(find)
	if err != nil {
		log.Error("Failed to list books", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, books)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	book, err := h.store.GetBook(&model.FindBook{ID: &id})
	if err != nil {
		log.Error("Failed to get book", zap.Error(err), zap.Int("book_id", id))
		response.ServerError(w, r, err)
		return
	}
	if book == nil {
		response.NotFound(w, r)
		return
	}

	editions, err := h.store.ListEditionsByBook(book.ID)
	if err != nil {
		log.Error("Failed to list editions", zap.Error(err), zap.Int("book_id", id))
		response.ServerError(w, r, err)
		return
	}

	response.OK(w, r, &bookWithEditions{Book: book, Editions: editions})
}

type bookWithEditions struct {
	*model.Book
	Editions []*model.Edition `json:"editions"`
}

func (h *Handler) addBook(w http.ResponseWriter, r *http.Request) {
	var book model.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	if err := validator.ValidateBook(&book); err != nil {
		response.BadRequest(w, r, err)
		return
	}

	author, err := h.store.GetAuthor(&model.FindAuthor{ID: &book.AuthorID})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if author == nil {
		response.NotFound(w, r)
		return
	}

	newBook, err := h.store.AddBook(&book)
	if err != nil {
		log.Error("Failed to add book", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	h.recordEvent(model.EventBookAdded, &newBook.AuthorID, &newBook.ID, map[string]any{"title": newBook.Title})

	response.Created(w, r, newBook)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	existing, err := h.store.GetBook(&model.FindBook{ID: &id})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if existing == nil {
		response.NotFound(w, r)
		return
	}

	var book model.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	book.ID = id
	if book.AuthorID == 0 {
		book.AuthorID = existing.AuthorID
	}
	if err := validator.ValidateBook(&book); err != nil {
		response.BadRequest(w, r, err)
		return
	}

	updated, err := h.store.UpdateBook(&book)
	if err != nil {
		log.Error("Failed to update book", zap.Error(err), zap.Int("book_id", id))
		response.ServerError(w, r, err)
		return
	}

	h.recordEvent(model.EventBookUpdated, &updated.AuthorID, &updated.ID, map[string]any{"title": updated.Title})

	response.OK(w, r, updated)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	book, err := h.store.GetBook(&model.FindBook{ID: &id})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if book == nil {
		response.NotFound(w, r)
		return
	}

	if err := h.store.RemoveBook(id); err != nil {
		log.Error("Failed to delete book", zap.Error(err), zap.Int("book_id", id))
		response.ServerError(w, r, err)
		return
	}

	h.recordEvent(model.EventBookDeleted, &book.AuthorID, nil, map[string]any{"title": book.Title})

	response.NoContent(w, r)
}

func (h *Handler) listEditions(w http.ResponseWriter, r *http.Request) {
	bookID := request.RouteIntParam(r, "id")
	book, err := h.store.GetBook(&model.FindBook{ID: &bookID})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if book == nil {
		response.NotFound(w, r)
		return
	}

	editions, err := h.store.ListEditionsByBook(bookID)
	if err != nil {
		log.Error("Failed to list editions", zap.Error(err), zap.Int("book_id", bookID))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, editions)
}

func (h *Handler) addEdition(w http.ResponseWriter, r *http.Request) {
	bookID := request.RouteIntParam(r, "id")
	book, err := h.store.GetBook(&model.FindBook{ID: &bookID})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	if book == nil {
		response.NotFound(w, r)
		return
	}

	var edition model.Edition
	if err := json.NewDecoder(r.Body).Decode(&edition); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	edition.BookID = bookID

	newEdition, err := h.store.AddEdition(&edition)
	if err != nil {
		log.Error("Failed to add edition", zap.Error(err), zap.Int("book_id", bookID))
		response.ServerError(w, r, err)
		return
	}
	response.Created(w, r, newEdition)
}

func (h *Handler) updateEdition(w http.ResponseWriter, r *http.Request) {
	bookID := request.RouteIntParam(r, "id")
	editionID := request.RouteIntParam(r, "eid")

	editions, err := h.store.ListEditionsByBook(bookID)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	var existing *model.Edition
	for _, e := range editions {
		if e.ID == editionID {
			existing = e
			break
		}
	}
	if existing == nil {
		response.NotFound(w, r)
		return
	}

	var edition model.Edition
	if err := json.NewDecoder(r.Body).Decode(&edition); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	edition.ID = editionID
	edition.BookID = bookID

	updated, err := h.store.UpdateEdition(&edition)
	if err != nil {
		log.Error("Failed to update edition", zap.Error(err), zap.Int("edition_id", editionID))
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, updated)
}
