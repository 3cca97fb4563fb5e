package v1

import (
	"net/http"

	"bookhaven/internal/diskspace"
	"bookhaven/internal/http/response"
	"bookhaven/internal/log"
	"bookhaven/internal/model"
	"bookhaven/internal/store"

	"go.uber.org/zap"
)

type dashboardResponse struct {
	Counts        *store.LibraryCounts  `json:"counts"`
	RecentBooks   []*model.Book         `json:"recentBooks"`
	UpcomingBooks []*model.Book         `json:"upcomingBooks"`
	RecentHistory []*model.HistoryEvent `json:"recentHistory"`
	RootFolders   []*model.RootFolder   `json:"rootFolders"`
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.GetLibraryCounts()
	if err != nil {
		log.Error("Failed to get library counts", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	recentLimit := 10
	recent, err := h.store.ListBooks(&model.FindBook{Limit: &recentLimit})
	if err != nil {
		log.Error("Failed to list recent books", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	upcoming, err := h.store.ListUpcomingBooks(10)
	if err != nil {
		log.Error("Failed to list upcoming books", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	history, err := h.store.ListHistory(&model.FindHistory{Page: 1, Limit: 10})
	if err != nil {
		log.Error("Failed to list recent history", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	folders, err := h.store.ListRootFolders()
	if err != nil {
		log.Error("Failed to list root folders", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}
	for _, folder := range folders {
		stats, err := diskspace.Probe(folder.Path)
		if err != nil {
			continue
		}
		folder.FreeSpace = stats.FreeBytes
		folder.TotalSpace = stats.TotalBytes
	}

	response.OK(w, r, &dashboardResponse{
		Counts:        counts,
		RecentBooks:   recent,
		UpcomingBooks: upcoming,
		RecentHistory: history.Items,
		RootFolders:   folders,
	})
}
