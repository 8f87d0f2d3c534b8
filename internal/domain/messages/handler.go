package messages

import (
	"encoding/json"
	"io"
	"net/http"

	"bordoodles-api/internal/platform/httpjson"
	"bordoodles-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes limita lo que se loguea; el resto del body se descarta.
const maxBodyBytes = 64 << 10

type ackResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Message received"`
}

// RegisterRoutes registra el formulario de contacto. mw permite agregar rate limiting.
func RegisterRoutes(r chi.Router, log logger.Logger, mw ...func(http.Handler) http.Handler) {
	r.With(mw...).Post("/api/messages", createMessageHandler(log.With(map[string]any{"module": "messages"})))
}

// createMessageHandler godoc
// @Summary Mensaje de contacto
// @Description Acusa recibo de cualquier body. No se persiste ni se valida.
// @Tags messages
// @Accept json
// @Produce json
// @Param payload body object false "Mensaje libre"
// @Success 200 {object} ackResponse
// @Failure 429 {object} object "Too Many Requests (sólo con CONTACT_RPS > 0)"
// @Router /api/messages [post]
func createMessageHandler(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := chimw.GetReqID(r.Context())

		// un body cortado igual se acusa; se loguea lo que se pudo leer
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			log.Warn("read message body failed", map[string]any{
				"request_id": reqID,
				"bytes_read": len(raw),
				"error":      err,
			})
		}

		fields := map[string]any{
			"request_id": reqID,
		}
		var body any
		if err := json.Unmarshal(raw, &body); err == nil {
			fields["body"] = body
		} else {
			fields["body_raw"] = string(raw)
		}
		log.Info("received message", fields)

		httpjson.Write(w, http.StatusOK, ackResponse{Success: true, Message: "Message received"})
	}
}
