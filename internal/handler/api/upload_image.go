package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/reelvault/reelvault-go/internal/logger"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/usecase/image"
	"github.com/reelvault/reelvault-go/internal/validation"
)

type uploadImageOptions struct {
	Quality            int   `json:"quality" validate:"gte=0,lte=100"`
	MaxWidth           int   `json:"maxWidth" validate:"gte=0"`
	MaxHeight          int   `json:"maxHeight" validate:"gte=0"`
	EnableOptimization *bool `json:"enableOptimization"`
	GenerateThumbnail  bool  `json:"generateThumbnail"`
}

// UploadImageHandler accepts a multipart image upload with an optional JSON
// options field. Optimization is on unless explicitly disabled.
func UploadImageHandler(svc port.ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid multipart payload", err)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "File is required", err)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.Printf("failed to close uploaded file: %v", err)
			}
		}()

		data, err := io.ReadAll(file)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to read uploaded file", err)
			return
		}

		var opts uploadImageOptions
		if raw := r.FormValue("options"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &opts); err != nil {
				WriteError(w, http.StatusBadRequest, "Invalid options payload", err)
				return
			}
			if errs := validation.ValidateStruct(opts); errs != nil {
				errsJSON, err := validation.ErrorsToJson(errs)
				if err != nil {
					WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", err)
					return
				}
				RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
				logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
				return
			}
		}
		enableOptimization := true
		if opts.EnableOptimization != nil {
			enableOptimization = *opts.EnableOptimization
		}

		in := port.UploadImageInput{
			Principal: p,
			Data:      data,
			MimeType:  header.Header.Get("Content-Type"),
			FileName:  header.Filename,
			Options: port.ImageOptions{
				Quality:            opts.Quality,
				MaxWidth:           opts.MaxWidth,
				MaxHeight:          opts.MaxHeight,
				EnableOptimization: enableOptimization,
				GenerateThumbnail:  opts.GenerateThumbnail,
			},
		}

		out, err := svc.UploadImage(r.Context(), in)
		if err != nil {
			var rej *image.RejectionError
			if errors.As(err, &rej) {
				WriteError(w, http.StatusBadRequest, rej.Reason, nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to upload image", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully uploaded image %q", out.PublicID)
	}
}
