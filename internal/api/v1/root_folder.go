package v1

import (
	"encoding/json"
	"net/http"
	"os"

	"bookhaven/internal/diskspace"
	"bookhaven/internal/http/request"
	"bookhaven/internal/http/response"
	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) listRootFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.store.ListRootFolders()
	if err != nil {
		log.Error("Failed to list root folders", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	for _, folder := range folders {
		stats, err := diskspace.Probe(folder.Path)
		if err != nil {
			// Keep the last-known values when the filesystem probe fails.
			log.Debug("Failed to probe root folder", zap.Error(err), zap.String("path", folder.Path))
			continue
		}
		folder.FreeSpace = stats.FreeBytes
		folder.TotalSpace = stats.TotalBytes
	}

	response.OK(w, r, folders)
}

func (h *Handler) addRootFolder(w http.ResponseWriter, r *http.Request) {
	var folder model.RootFolder
	if err := json.NewDecoder(r.Body).Decode(&folder); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}
	if folder.Path == "" {
		response.BadRequest(w, r, errors.New("folder path is empty"))
		return
	}

	info, err := os.Stat(folder.Path)
	if err != nil || !info.IsDir() {
		response.BadRequest(w, r, errors.New("folder path is not an existing directory"))
		return
	}

	if stats, err := diskspace.Probe(folder.Path); err == nil {
		folder.FreeSpace = stats.FreeBytes
		folder.TotalSpace = stats.TotalBytes
	}

	newFolder, err := h.store.AddRootFolder(&folder)
	if err != nil {
		log.Error("Failed to add root folder", zap.Error(err), zap.String("path", folder.Path))
		response.ServerError(w, r, err)
		return
	}
	response.Created(w, r, newFolder)
}

func (h *Handler) deleteRootFolder(w http.ResponseWriter, r *http.Request) {
	id := request.RouteIntParam(r, "id")
	if err := h.store.RemoveRootFolder(id); err != nil {
		log.Error("Failed to delete root folder", zap.Error(err), zap.Int("folder_id", id))
		response.ServerError(w, r, err)
		return
	}
	response.NoContent(w, r)
}
