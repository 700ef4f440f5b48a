package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/reelvault/reelvault-go/internal/api_context"
	"github.com/reelvault/reelvault-go/internal/logger"
	"github.com/reelvault/reelvault-go/internal/port"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// principalFromContext rebuilds the authenticated principal the auth
// middleware stashed in the request context.
func principalFromContext(ctx context.Context) (port.Principal, bool) {
	externalID, ok := api_context.AuthUserIDFromContext(ctx)
	if !ok || externalID == "" {
		return port.Principal{}, false
	}
	email, _ := api_context.AuthEmailFromContext(ctx)
	name, _ := api_context.AuthNameFromContext(ctx)
	return port.Principal{ExternalID: externalID, Email: email, Name: name}, true
}
