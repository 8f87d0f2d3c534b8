package puppies

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
	log = log.With(map[string]any{"module": "puppies"})

	r.Route("/api/puppies", func(pr chi.Router) {
		pr.Get("/", listPuppiesHandler(svc, log))
		pr.Post("/", createPuppyHandler(svc, log))

		pr.Get("/{id}", getPuppyHandler(svc, log))
		pr.Put("/{id}", updatePuppyHandler(svc, log))
		pr.Delete("/{id}", deletePuppyHandler(svc, log))
	})
}

// puppyRequest documenta el body aceptado; se decodifica vía catalog.Fields.
type puppyRequest struct {
	Name        string   `json:"name" example:"Rex"`
	Breed       string   `json:"breed" example:"Bordoodle"`
	Color       string   `json:"color"`
	Gender      string   `json:"gender"`
	Price       *int     `json:"price" example:"1200"`
	Status      string   `json:"status" example:"Available"`
	DOB         string   `json:"dob" example:"2025-03-01"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// puppyResponse es un cachorro tal como lo consume el front.
type puppyResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Breed       string             `json:"breed"`
	Color       string             `json:"color"`
	Gender      string             `json:"gender"`
	Price       *int               `json:"price"`
	Status      string             `json:"status"`
	DOB         *catalog.Date      `json:"dob" swaggertype:"string"`
	Description string             `json:"description"`
	Images      catalog.StringList `json:"images" swaggertype:"array,string"`
}

// listPuppiesHandler godoc
// @Summary Listar cachorros
// @Tags puppies
// @Produce json
// @Success 200 {array} puppyResponse
// @Failure 500 {object} object "Internal Server Error"
// @Router /api/puppies [get]
func listPuppiesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("error fetching puppies", reqFields(r, err))
			httpjson.Error(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		out := make([]puppyResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPuppyResponse(p))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getPuppyHandler godoc
// @Summary Obtener cachorro
// @Tags puppies
// @Produce json
// @Param id path int true "ID del cachorro"
// @Success 200 {object} puppyResponse
// @Failure 400 {object} object "invalid id"
// @Failure 404 {object} object "Puppy not found"
// @Router /api/puppies/{id} [get]
func getPuppyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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
		httpjson.Write(w, http.StatusOK, toPuppyResponse(p))
	}
}

// createPuppyHandler godoc
// @Summary Crear cachorro
// @Description name y breed son obligatorios. status default "Available", images default [].
// @Tags puppies
// @Accept json
// @Produce json
// @Param payload body puppyRequest true "Datos del cachorro (id se ignora)"
// @Success 201 {object} puppyResponse
// @Failure 400 {object} object "campo obligatorio faltante / campo desconocido"
// @Failure 500 {object} object "Failed to create puppy"
// @Router /api/puppies [post]
func createPuppyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch, err := decodePatch(r)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), patch)
		if err != nil {
			writeServiceError(w, r, log, err, "Failed to create puppy")
			return
		}
		httpjson.Write(w, http.StatusCreated, toPuppyResponse(p))
	}
}

// updatePuppyHandler godoc
// @Summary Actualizar cachorro (merge parcial)
// @Description Sólo cambian los campos enviados. Campos fuera de la allow-list => 400.
// @Tags puppies
// @Accept json
// @Produce json
// @Param id path int true "ID del cachorro"
// @Param payload body puppyRequest false "Campos a modificar"
// @Success 200 {object} puppyResponse
// @Failure 400 {object} object "input inválido"
// @Failure 404 {object} object "Puppy not found"
// @Failure 500 {object} object "Failed to update puppy"
// @Router /api/puppies/{id} [put]
func updatePuppyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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
			writeServiceError(w, r, log, err, "Failed to update puppy")
			return
		}
		httpjson.Write(w, http.StatusOK, toPuppyResponse(updated))
	}
}

// deletePuppyHandler godoc
// @Summary Borrar cachorro
// @Tags puppies
// @Param id path int true "ID del cachorro"
// @Success 204
// @Failure 400 {object} object "invalid id"
// @Failure 404 {object} object "Puppy not found"
// @Failure 500 {object} object "Failed to delete puppy"
// @Router /api/puppies/{id} [delete]
func deletePuppyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, log, err, "Failed to delete puppy")
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

// writeServiceError mapea errores del service a status. Los 500 nunca exponen el error interno.
func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error, faultMsg string) {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "Puppy not found")
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

func toPuppyResponse(p Puppy) puppyResponse {
	images := p.Images
	if images == nil {
		images = catalog.StringList{}
	}
	return puppyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Breed:       p.Breed,
		Color:       p.Color,
		Gender:      p.Gender,
		Price:       p.Price,
		Status:      p.Status,
		DOB:         p.DOB,
		Description: p.Description,
		Images:      images,
	}
}
