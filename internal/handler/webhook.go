package handler

import (
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/reelmart/storefront/internal/webhook"
)

// maxWebhookBody bounds the raw delivery body; the signature is computed
// over these exact bytes.
const maxWebhookBody = 1 << 20

// receiveWebhook accepts one upstream delivery. A bad signature is the only
// rejection; unrecognized topics are acknowledged and ignored so the
// platform does not retry them forever.
func (h *Handler) receiveWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "body too large")
		return
	}

	err = h.hooks.Process(body,
		r.Header.Get(webhook.TopicHeader),
		r.Header.Get(webhook.SignatureHeader),
		r.Header.Get(webhook.DeliveryHeader),
	)
	if err != nil {
		if errors.Is(err, webhook.ErrSignatureInvalid) {
			zctx.From(r.Context()).Warn("Webhook rejected",
				zap.String("topic", r.Header.Get(webhook.TopicHeader)),
			)
			writeError(w, http.StatusUnauthorized, "signature invalid")
			return
		}
		serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
