package parents

import (
	"errors"
	"net/http"
	"strconv"

	"bordoodles-api/internal/domain/catalog"
	"bordoodles-api/internal/platform/httpjson"
	"bordoodles-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	log = log.With(map[string]any{"module": "parents"})

	r.Route("/api/parents", func(pr chi.Router) {
		pr.Get("/", listParentsHandler(svc, log))
		pr.Post("/", createParentHandler(svc, log))

		pr.Get("/{id}", getParentHandler(svc, log))
		pr.Put("/{id}", updateParentHandler(svc, log))
		pr.Delete("/{id}", deleteParentHandler(svc, log))
	})
}

type parentRequest struct {
	Name        string `json:"name" example:"Duke"`
	Role        string `json:"role" example:"Sire" enums:"Sire,Dam"`
	Breed       string `json:"breed"`
	Color       string `json:"color"`
	Weight      string `json:"weight" example:"45 lbs"`
	Description string `json:"description"`
	Image       string `json:"image" example:"/image-1718000000000-123456789.png"`
}

type parentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Breed       string `json:"breed"`
	Color       string `json:"color"`
	Weight      string `json:"weight"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// listParentsHandler godoc
// @Summary Listar reproductores
// @Tags parents
// @Produce json
// @Success 200 {array} parentResponse
// @Failure 500 {object} object "Internal Server Error"
// @Router /api/parents [get]
func listParentsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("error fetching parents", reqFields(r, err))
			httpjson.Error(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		out := make([]parentResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toParentResponse(p))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getParentHandler godoc
// @Summary Obtener reproductor
// @Tags parents
// @Produce json
// @Param id path int true "ID del reproductor"
// @Success 200 {object} parentResponse
// @Failure 404 {object} object "Parent not found"
// @Router /api/parents/{id} [get]
func getParentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, log, err, "Internal Server Error")
			return
		}
		httpjson.Write(w, http.StatusOK, toParentResponse(p))
	}
}

// createParentHandler godoc
// @Summary Crear reproductor
// @Description name y role son obligatorios.
// @Tags parents
// @Accept json
// @Produce json
// @Param payload body parentRequest true "Datos del reproductor (id se ignora)"
// @Success 201 {object} parentResponse
// @Failure 400 {object} object "input inválido"
// @Failure 500 {object} object "Failed to create parent"
// @Router /api/parents [post]
func createParentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch, err := decodePatch(r)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), patch)
		if err != nil {
			writeServiceError(w, r, log, err, "Failed to create parent")
			return
		}
		httpjson.Write(w, http.StatusCreated, toParentResponse(p))
	}
}

// updateParentHandler godoc
// @Summary Actualizar reproductor (merge parcial)
// @Tags parents
// @Accept json
// @Produce json
// @Param id path int true "ID del reproductor"
// @Param payload body parentRequest false "Campos a modificar"
// @Success 200 {object} parentResponse
// @Failure 400 {object} object "input inválido"
// @Failure 404 {object} object "Parent not found"
// @Failure 500 {object} object "Failed to update parent"
// @Router /api/parents/{id} [put]
func updateParentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		patch, err := decodePatch(r)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		updated, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, r, log, err, "Failed to update parent")
			return
		}
		httpjson.Write(w, http.StatusOK, toParentResponse(updated))
	}
}

// deleteParentHandler godoc
// @Summary Borrar reproductor
// @Tags parents
// @Param id path int true "ID del reproductor"
// @Success 204
// @Failure 404 {object} object "Parent not found"
// @Failure 500 {object} object "Failed to delete parent"
// @Router /api/parents/{id} [delete]
func deleteParentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, log, err, "Failed to delete parent")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func decodePatch(r *http.Request) (Patch, error) {
	f, err := catalog.DecodeFields(r.Body)
	if err != nil {
		return Patch{}, err
	}
	if err := f.Allow(Fields); err != nil {
		return Patch{}, err
	}
	return PatchFromFields(f)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, catalog.Invalid("", "invalid id")
	}
	return id, nil
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error, faultMsg string) {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "Parent not found")
	default:
		log.Error(faultMsg, reqFields(r, err))
		httpjson.Error(w, http.StatusInternalServerError, faultMsg)
	}
}

func reqFields(r *http.Request, err error) map[string]any {
	return map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"error":      err,
	}
}

func toParentResponse(p Parent) parentResponse {
	return parentResponse{
		ID:          p.ID,
		Name:        p.Name,
		Role:        p.Role,
		Breed:       p.Breed,
		Color:       p.Color,
		Weight:      p.Weight,
		Description: p.Description,
		Image:       p.Image,
	}
}
