package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/reelvault/reelvault-go/internal/port"
)

type WebhookResponse struct {
	Received bool `json:"received"`
}

// WebhookHandler acknowledges asynchronous provider notifications. The
// provider retries on non-2xx, so only an unreadable body is worth a 400;
// processing failures are logged and acknowledged anyway.
func WebhookHandler(svc port.WebhookProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid notification payload", err)
			return
		}

		notificationType, _ := payload["notification_type"].(string)
		if err := svc.ProcessNotification(r.Context(), notificationType, payload); err != nil {
			log.Printf("❌  Failed to process %q notification: %v", notificationType, err)
		}

		RespondJSON(w, http.StatusOK, WebhookResponse{Received: true})
	}
}
