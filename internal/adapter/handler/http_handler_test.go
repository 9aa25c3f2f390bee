package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/vralabs/wardrobe/internal/core/domain"
)

type stubSource struct {
	atts []domain.Attachment
}

func (s *stubSource) Attachments() []domain.Attachment { return s.atts }

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog("Wardrobe", []domain.GarmentDescriptor{
		{ID: "none", Name: "None"},
		{ID: "red", Name: "Red Shirt", Model: domain.NewModelRef("red.gltf")},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func newTestServer(t *testing.T, source AttachmentSource) (*httptest.Server, string) {
	t.Helper()
	assetsDir := t.TempDir()
	h := NewHTTPHandler(testCatalog(t), source)
	router := NewRouter(h, http.NotFoundHandler(), assetsDir)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, assetsDir
}

func getJSON(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t, &stubSource{})

	var body map[string]string
	resp := getJSON(t, srv.URL+"/health", &body)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if body["status"] != "ok" {
		t.Errorf("expected ok, got %q", body["status"])
	}
}

func TestCatalogEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &stubSource{})

	var body []GarmentResponse
	resp := getJSON(t, srv.URL+"/api/catalog", &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if len(body) != 2 {
		t.Fatalf("expected 2 garments, got %d", len(body))
	}
	if body[0].ID != "none" || body[0].Wearable {
		t.Errorf("unexpected first entry %+v", body[0])
	}
	if body[1].ID != "red" || !body[1].Wearable {
		t.Errorf("unexpected second entry %+v", body[1])
	}
}

func TestAttachmentsEndpoint(t *testing.T) {
	source := &stubSource{atts: []domain.Attachment{
		{UserID: "user-a", GarmentID: "red", InstanceID: "inst-1"},
	}}
	srv, _ := newTestServer(t, source)

	var body []AttachmentResponse
	getJSON(t, srv.URL+"/api/attachments", &body)
	if len(body) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(body))
	}
	if body[0].UserID != "user-a" || body[0].GarmentID != "red" {
		t.Errorf("unexpected attachment %+v", body[0])
	}
}

func TestAttachmentsEndpoint_NoSession(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	var body []AttachmentResponse
	resp := getJSON(t, srv.URL+"/api/attachments", &body)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if len(body) != 0 {
		t.Errorf("expected empty list, got %d", len(body))
	}
}

func TestAssetFileServer(t *testing.T) {
	srv, assetsDir := newTestServer(t, &stubSource{})
	if err := os.WriteFile(filepath.Join(assetsDir, "red.gltf"), []byte(`{"asset":{"version":"2.0"}}`), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}

	resp, err := http.Get(srv.URL + "/assets/red.gltf")
	if err != nil {
		t.Fatalf("get asset: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
