package api

import (
	"log"
	"net/http"

	"github.com/reelvault/reelvault-go/internal/port"
)

// ListVideosHandler returns the authenticated user's records, newest first.
func ListVideosHandler(svc port.VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		videos, err := svc.ListVideos(r.Context(), p)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to fetch videos", err)
			return
		}

		RespondJSON(w, http.StatusOK, videos)
		log.Printf("✅  Returned %d videos for %q", len(videos), p.ExternalID)
	}
}
