package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reelvault/reelvault-go/internal/mock"
)

func TestWebhookHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCalled bool
		wantType   string
	}{
		{
			name:       "non-object body",
			body:       `[1, 2, 3]`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unreadable body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "eager notification",
			body:       `{"notification_type":"eager","public_id":"reelvault-uploads/abc"}`,
			wantStatus: http.StatusOK,
			wantCalled: true,
			wantType:   "eager",
		},
		{
			name:       "missing notification type",
			body:       `{"public_id":"abc"}`,
			wantStatus: http.StatusOK,
			wantCalled: true,
			wantType:   "",
		},
		{
			name:       "processing failure still acknowledged",
			body:       `{"notification_type":"eager","public_id":"abc"}`,
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusOK,
			wantCalled: true,
			wantType:   "eager",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.MockWebhookProcessor{Err: tc.svcErr}
			h := WebhookHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/media", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if mockSvc.Called != tc.wantCalled {
				t.Fatalf("called = %v; want %v", mockSvc.Called, tc.wantCalled)
			}
			if tc.wantCalled && mockSvc.Type != tc.wantType {
				t.Errorf("type = %q; want %q", mockSvc.Type, tc.wantType)
			}
			if tc.wantStatus == http.StatusOK && !strings.Contains(rec.Body.String(), `"received":true`) {
				t.Errorf("body = %q; want a received acknowledgement", rec.Body.String())
			}
		})
	}
}
