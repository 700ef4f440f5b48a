package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/usecase/video"
)

// maxUploadMemory bounds how much of a multipart body stays in memory
// before spilling to disk.
const maxUploadMemory = 32 << 20

// UploadVideoHandler accepts a multipart video upload plus processing flags.
func UploadVideoHandler(svc port.VideoUploader) http.HandlerFunc {
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

		originalSize, _ := strconv.ParseInt(r.FormValue("originalSize"), 10, 64)
		quality := r.FormValue("quality")
		if quality == "" {
			quality = model.QualityAuto
		}

		in := port.UploadVideoInput{
			Principal:    p,
			Data:         data,
			MimeType:     header.Header.Get("Content-Type"),
			Title:        r.FormValue("title"),
			Description:  r.FormValue("description"),
			OriginalSize: originalSize,
			Options: model.ProcessingOptions{
				EnableEnhancement: r.FormValue("enableEnhancement") == "true",
				Quality:           quality,
				GenerateThumbnail: r.FormValue("generateThumbnail") == "true",
				AnalyzeContent:    r.FormValue("analyzeContent") == "true",
			},
		}

		out, err := svc.UploadVideo(r.Context(), in)
		if err != nil {
			var rej *video.RejectionError
			if errors.As(err, &rej) {
				WriteError(w, http.StatusBadRequest, rej.Reason, nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Failed to upload video", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully uploaded video #%s (%q)", out.Video.ID, out.Video.Title)
	}
}
