package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"hotel_records/internal/adapters/observability"
	"hotel_records/internal/app"
	"hotel_records/internal/domain"
)

const maxJSONBody = 1 << 20

type Handlers struct {
	Hotels         *app.HotelService
	Images         *app.ImageService
	MaxUploadBytes int64
	UploadRPS      int
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/api", func(r chi.Router) {
		r.Post("/hotel", h.createHotel)
		r.Get("/hotel/{hotelId}", h.getHotel)
		r.Put("/hotel/{hotelId}", h.updateHotel)
		r.Get("/hotels", h.listHotels)
		r.With(RateLimit(h.UploadRPS)).Post("/images", h.uploadImages)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail maps service errors to responses; internal causes are logged, not
// returned to the client.
func fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Hotel not found")
	case errors.Is(err, domain.ErrNoFiles):
		writeError(w, http.StatusBadRequest, "No files uploaded")
	case errors.Is(err, domain.ErrInvalidFileType):
		writeError(w, http.StatusBadRequest, "Invalid file type. Only image files are allowed.")
	case errors.Is(err, domain.ErrBadInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Msg(fallback)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

// decodeAndValidate writes the 400 response itself and reports false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		if fes, ok := fieldErrors(err); ok {
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fes})
			return false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write body")
	}
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req createHotelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	hotel, err := h.Hotels.Create(r.Context(), req.toInput())
	if err != nil {
		fail(w, r, err, "Failed to create hotel")
		return
	}
	log.Info().Str("hotel_id", hotel.ID).Str("slug", hotel.Slug).Msg("hotel created")
	writeJSON(w, http.StatusCreated, hotel)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Hotels.GetHotel(r.Context(), chi.URLParam(r, "hotelId"))
	if err != nil {
		fail(w, r, err, "Internal server error")
		return
	}
	writeCacheable(w, r, hotel)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var req updateHotelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "hotelId")
	hotel, err := h.Hotels.Update(r.Context(), id, req.toPatch())
	if err != nil {
		fail(w, r, err, "Internal server error")
		return
	}
	log.Info().Str("hotel_id", id).Msg("hotel updated")
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.ListHotels(r.Context())
	if err != nil {
		fail(w, r, err, "Failed to get hotels")
		return
	}
	writeCacheable(w, r, hotels)
}

func (h *Handlers) uploadImages(w http.ResponseWriter, r *http.Request) {
	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}

	var (
		hotelID string
		files   []*multipart.FileHeader
	)
	err := r.ParseMultipartForm(8 << 20)
	switch {
	case err == nil:
		defer func() { _ = r.MultipartForm.RemoveAll() }()
		hotelID = r.FormValue("hotelId")
		files = r.MultipartForm.File["images"]
	case errors.Is(err, http.ErrNotMultipart):
		// no files; Attach reports it
	default:
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "Upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	uploads := make([]app.Upload, 0, len(files))
	for _, fh := range files {
		uploads = append(uploads, app.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Open:        func() (io.ReadCloser, error) { return fh.Open() },
		})
	}

	urls, err := h.Images.Attach(r.Context(), hotelID, uploads)
	if err != nil {
		fail(w, r, err, "Failed to upload images")
		return
	}
	observability.ObserveImages(len(urls))
	log.Info().Str("hotel_id", hotelID).Int("count", len(urls)).Msg("images attached")
	writeJSON(w, http.StatusOK, map[string][]string{"images": urls})
}
