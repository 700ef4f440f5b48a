package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/usecase/image"
)

// GetImageHandler returns provider-side metadata and the delivery URL set
// for an uploaded image.
func GetImageHandler(svc port.ImageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := principalFromContext(r.Context()); !ok {
			WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		publicID := r.URL.Query().Get("publicId")
		if publicID == "" {
			WriteError(w, http.StatusBadRequest, "publicId is required", nil)
			return
		}

		out, err := svc.GetImage(r.Context(), publicID)
		if err != nil {
			if errors.Is(err, image.ErrImageNotFound) {
				WriteError(w, http.StatusNotFound, "Image not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to fetch image details", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Returned details for image %q", publicID)
	}
}
