package api

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/reelvault/reelvault-go/internal/mock"
	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/usecase/video"
	"github.com/reelvault/reelvault-go/internal/uuid"
)

// multipartVideoBody builds a multipart payload with a video file part and
// the given form fields.
func multipartVideoBody(t *testing.T, fileContents string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if fileContents != "" {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="file"; filename="demo.mp4"`)
		hdr.Set("Content-Type", "video/mp4")
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write([]byte(fileContents)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %q: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadVideoHandler_HappyPath(t *testing.T) {
	created := &model.Video{ID: uuid.NewUUID(), Title: "Demo"}
	mockSvc := &mock.MockVideoUploader{Out: &port.UploadVideoOutput{
		Video:      created,
		Processing: port.ProcessingSummary{Quality: "auto", CompressionApplied: true, SizeReduction: "20.5%"},
	}}
	h := UploadVideoHandler(mockSvc)

	body, contentType := multipartVideoBody(t, "mp4 bytes", map[string]string{
		"title":             "Demo",
		"description":       "A demo clip",
		"originalSize":      "3145728",
		"enableEnhancement": "true",
		"generateThumbnail": "true",
		"analyzeContent":    "false",
		"quality":           "high",
	})
	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/video-upload", body), "ext_1")
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200, body %s", rec.Code, rec.Body.String())
	}
	in := mockSvc.In
	if in.Title != "Demo" || in.Description != "A demo clip" {
		t.Errorf("unexpected fields: %+v", in)
	}
	if in.MimeType != "video/mp4" || string(in.Data) != "mp4 bytes" {
		t.Errorf("unexpected file: mime %q, %d bytes", in.MimeType, len(in.Data))
	}
	if in.OriginalSize != 3145728 {
		t.Errorf("originalSize = %d; want 3145728", in.OriginalSize)
	}
	if !in.Options.EnableEnhancement || !in.Options.GenerateThumbnail || in.Options.AnalyzeContent {
		t.Errorf("unexpected flags: %+v", in.Options)
	}
	if in.Options.Quality != "high" {
		t.Errorf("quality = %q; want high", in.Options.Quality)
	}
	if !strings.Contains(rec.Body.String(), `"sizeReduction":"20.5%"`) {
		t.Errorf("body missing processing summary: %s", rec.Body.String())
	}
}

func TestUploadVideoHandler_QualityDefaultsToAuto(t *testing.T) {
	mockSvc := &mock.MockVideoUploader{Out: &port.UploadVideoOutput{Video: &model.Video{ID: uuid.NewUUID()}}}
	h := UploadVideoHandler(mockSvc)

	body, contentType := multipartVideoBody(t, "mp4 bytes", map[string]string{"title": "Demo"})
	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/video-upload", body), "ext_1")
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if mockSvc.In.Options.Quality != model.QualityAuto {
		t.Errorf("quality = %q; want auto", mockSvc.In.Options.Quality)
	}
}

func TestUploadVideoHandler_Unauthenticated(t *testing.T) {
	mockSvc := &mock.MockVideoUploader{}
	h := UploadVideoHandler(mockSvc)

	body, contentType := multipartVideoBody(t, "mp4 bytes", map[string]string{"title": "Demo"})
	req := httptest.NewRequest(http.MethodPost, "/api/video-upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401", rec.Code)
	}
	if mockSvc.Called {
		t.Error("service must not run for unauthenticated requests")
	}
}

func TestUploadVideoHandler_MissingFile(t *testing.T) {
	mockSvc := &mock.MockVideoUploader{}
	h := UploadVideoHandler(mockSvc)

	body, contentType := multipartVideoBody(t, "", map[string]string{"title": "Demo"})
	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/video-upload", body), "ext_1")
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "File is required") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestUploadVideoHandler_RejectionIs400(t *testing.T) {
	mockSvc := &mock.MockVideoUploader{Err: &video.RejectionError{Reason: "title is required"}}
	h := UploadVideoHandler(mockSvc)

	body, contentType := multipartVideoBody(t, "mp4 bytes", nil)
	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/video-upload", body), "ext_1")
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "title is required") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestUploadVideoHandler_ServiceError(t *testing.T) {
	mockSvc := &mock.MockVideoUploader{Err: errors.New("boom")}
	h := UploadVideoHandler(mockSvc)

	body, contentType := multipartVideoBody(t, "mp4 bytes", map[string]string{"title": "Demo"})
	req := withPrincipal(httptest.NewRequest(http.MethodPost, "/api/video-upload", body), "ext_1")
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
}
