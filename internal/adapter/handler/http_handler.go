package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vralabs/wardrobe/internal/core/domain"
)

// AttachmentSource exposes the live worn state for inspection. Nil or
// empty when no host session is active.
type AttachmentSource interface {
	Attachments() []domain.Attachment
}

type HTTPHandler struct {
	catalog *domain.Catalog
	source  AttachmentSource
}

type GarmentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Wearable bool   `json:"wearable"`
}

type AttachmentResponse struct {
	UserID     string `json:"user_id"`
	GarmentID  string `json:"garment_id"`
	InstanceID string `json:"instance_id"`
}

func NewHTTPHandler(catalog *domain.Catalog, source AttachmentSource) *HTTPHandler {
	return &HTTPHandler{catalog: catalog, source: source}
}

// NewRouter assembles the HTTP surface: health and inspection
// endpoints, the host websocket endpoint, and the static asset files
// the host runtime fetches bundles from.
func NewRouter(h *HTTPHandler, bridge http.Handler, assetsDir string) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/api/catalog", h.Catalog).Methods(http.MethodGet)
	r.HandleFunc("/api/attachments", h.Attachments).Methods(http.MethodGet)
	r.Handle("/ws/host", bridge)
	r.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
	return r
}

func (h *HTTPHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	out := make([]GarmentResponse, 0, h.catalog.Len())
	for _, id := range h.catalog.IDs() {
		desc, _ := h.catalog.Get(id)
		out = append(out, GarmentResponse{
			ID:       desc.ID,
			Name:     desc.Name,
			Wearable: desc.Wearable(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) Attachments(w http.ResponseWriter, r *http.Request) {
	out := make([]AttachmentResponse, 0)
	if h.source != nil {
		for _, att := range h.source.Attachments() {
			out = append(out, AttachmentResponse{
				UserID:     att.UserID,
				GarmentID:  att.GarmentID,
				InstanceID: att.InstanceID,
			})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
