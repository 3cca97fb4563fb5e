package v1

import (
	"net/http"
	"unicode/utf8"

	"bookhaven/internal/hardcover"
	"bookhaven/internal/http/request"
	"bookhaven/internal/http/response"
	"bookhaven/internal/log"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultSearchLimit = 20

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := request.QueryStringParam(r, "query", "")
	if utf8.RuneCountInString(query) > hardcover.MaxQueryLength {
		response.BadRequest(w, r, errors.New("search query is too long"))
		return
	}

	mode := hardcover.SearchMode(request.QueryStringParam(r, "type", string(hardcover.ModeAll)))
	if !hardcover.ValidSearchMode(mode) {
		response.BadRequest(w, r, errors.New("type must be one of all, books, authors"))
		return
	}
	limit := request.QueryIntParam(r, "limit", defaultSearchLimit)

	result, err := h.metadata.Search(r.Context(), query, mode, limit)
	if err != nil {
		h.remoteError(w, r, err)
		return
	}
	response.OK(w, r, result)
}

func (h *Handler) authorDetail(w http.ResponseWriter, r *http.Request) {
	slug := request.RouteStringParam(r, "slug")
	if slug == "" {
		response.BadRequest(w, r, errors.New("author slug is empty"))
		return
	}
	page := request.QueryIntParam(r, "page", 1)
	pageSize := request.QueryIntParam(r, "pageSize", hardcover.DefaultPageSize)
	language := request.QueryStringParam(r, "language", "")

	detail, err := h.metadata.AuthorDetail(r.Context(), slug, page, pageSize, language)
	if err != nil {
		h.remoteError(w, r, err)
		return
	}

	if request.QueryStringParam(r, "grouped", "") == "true" {
		response.OK(w, r, &groupedAuthorDetail{
			AuthorDetail: detail,
			Groups:       hardcover.GroupByLanguage(detail.Books),
		})
		return
	}
	response.OK(w, r, detail)
}

// groupedAuthorDetail adds the per-language display groups of the current
// page on top of the flat book list.
type groupedAuthorDetail struct {
	*hardcover.AuthorDetail
	Groups []hardcover.BookGroup `json:"groups"`
}

// remoteError maps metadata lookup failures onto HTTP status codes.
func (h *Handler) remoteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, hardcover.ErrQueryTooShort):
		response.BadRequest(w, r, err)
	case errors.Is(err, hardcover.ErrAuthorNotFound):
		response.NotFound(w, r)
	case errors.Is(err, hardcover.ErrNotConfigured):
		log.Error("Hardcover token is not configured")
		response.ServerError(w, r, err)
	case hardcover.IsTimeout(err):
		response.GatewayTimeout(w, r, err)
	case hardcover.IsRemote(err):
		response.BadGateway(w, r, err)
	default:
		log.Error("Metadata lookup failed", zap.Error(err))
		response.ServerError(w, r, err)
	}
}
