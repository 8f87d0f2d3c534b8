package uploads

import (
	"errors"
	"net/http"

	"bordoodles-api/internal/platform/httpjson"
	"bordoodles-api/internal/platform/logger"
	"bordoodles-api/internal/ports/blob"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	// FieldName es el campo multipart esperado.
	FieldName = "image"

	DefaultMaxBytes int64 = 10 << 20
)

type uploadResponse struct {
	URL string `json:"url" example:"/image-1718000000000-123456789.png"`
}

func RegisterRoutes(r chi.Router, store blob.Store, log logger.Logger, maxBytes int64) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	r.Post("/api/upload", uploadHandler(store, log.With(map[string]any{"module": "uploads"}), maxBytes))
}

// uploadHandler godoc
// @Summary Subir imagen
// @Description Guarda un archivo (campo multipart "image") y devuelve su ruta pública. La ruta se usa luego en image/images.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Imagen"
// @Success 200 {object} uploadResponse
// @Failure 400 {object} object "No file uploaded"
// @Failure 413 {object} object "File too large"
// @Failure 500 {object} object "Upload failed"
// @Router /api/upload [post]
func uploadHandler(store blob.Store, log logger.Logger, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		file, hdr, err := r.FormFile(FieldName)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httpjson.Error(w, http.StatusRequestEntityTooLarge, "File too large")
				return
			}
			httpjson.Error(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		url, err := store.Put(r.Context(), blob.Object{
			Field:       FieldName,
			Filename:    hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			Body:        file,
		})
		if err != nil {
			log.Error("upload error", map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"filename":   hdr.Filename,
				"error":      err,
			})
			httpjson.Error(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		log.Info("file uploaded", map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"url":        url,
			"size":       hdr.Size,
		})
		httpjson.Write(w, http.StatusOK, uploadResponse{URL: url})
	}
}
