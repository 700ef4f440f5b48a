package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/reelvault/reelvault-go/internal/api_context"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/usecase/video"
)

type DeleteVideoResponse struct {
	Success bool `json:"success"`
}

// DeleteVideoHandler removes one record owned by the authenticated user.
func DeleteVideoHandler(svc port.VideoDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		id, ok := api_context.VideoIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "Video ID is required", nil)
			return
		}

		err := svc.DeleteVideo(r.Context(), port.DeleteVideoInput{ID: id, Principal: p})
		if err != nil {
			if errors.Is(err, video.ErrVideoNotFound) {
				WriteError(w, http.StatusNotFound, "Video not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to delete video", err)
			return
		}

		RespondJSON(w, http.StatusOK, DeleteVideoResponse{Success: true})
		log.Printf("✅  Successfully deleted video #%s", id)
	}
}
