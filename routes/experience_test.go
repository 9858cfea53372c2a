package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"experiences-catalog-server/models"
	"experiences-catalog-server/services"
	"experiences-catalog-server/storage"
)

func modelsExperience(title, location string, trending, featured bool) models.Experience {
	return models.Experience{Title: title, Location: location, Trending: trending, Featured: featured}
}

// buildTestApp creates a minimal Iris app over a sqlite-backed store.
func buildTestApp(t *testing.T) (*iris.Application, *storage.ExperienceStore) {
	t.Helper()
	dir := t.TempDir()
	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatal(err)
	}

	store := storage.NewExperienceStore(db, storage.NewFileFallback(filepath.Join(dir, "cache.json")))
	catalog := services.NewCatalogManager(store, services.NewLogNotifier())
	catalog.Load()

	app := iris.New()
	app.Validator = validator.New()

	h := NewExperienceHandler(store, catalog)
	experience := app.Party("/api/experience")
	{
		experience.Get("/", h.List)
		experience.Get("/{id}", h.Get)
		experience.Post("/", h.Create)
		experience.Patch("/{id}", h.Update)
		experience.Delete("/{id}", h.Delete)
	}
	catalogParty := app.Party("/api/catalog")
	{
		catalogParty.Post("/import", h.Import)
		catalogParty.Get("/export", h.Export)
		catalogParty.Post("/reset", h.Reset)
	}
	app.Get("/api/categories", GetCategories)

	if err := app.Build(); err != nil {
		t.Fatalf("building test app: %v", err)
	}

	return app, store
}

func doJSON(t *testing.T, app *iris.Application, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestCreateThenGet(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/experience", `{"title":"Hike","price":10,"location":"Atlas"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Experience struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"experience"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.Experience.ID == "" {
		t.Fatal("expected server-assigned id in response")
	}

	get := doJSON(t, app, http.MethodGet, "/api/experience/"+created.Experience.ID, "")
	if get.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.Code)
	}
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/experience", `{"price":10,"location":"Atlas"}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing title, got %d", resp.Code)
	}
}

func TestGetMissingIDReturns404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/experience/nope", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListFilters(t *testing.T) {
	app, store := buildTestApp(t)
	if _, err := store.Insert(modelsExperience("Hot", "Marrakech", true, false)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Insert(modelsExperience("Star", "Casablanca", false, true)); err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/experience?filter=trending", "")
	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Count != 1 {
		t.Fatalf("expected 1 trending, got %d", body.Count)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/experience?filter=featured", "")
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Count != 1 {
		t.Fatalf("expected 1 featured, got %d", body.Count)
	}
}

func TestImportNonArrayReturns422(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/catalog/import", `{"not":"an array"}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}

	var result storage.TransferResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Success {
		t.Fatal("expected success=false")
	}
}

func TestExportReturnsJSONAttachment(t *testing.T) {
	app, store := buildTestApp(t)
	if _, err := store.Insert(modelsExperience("Only", "Asilah", false, false)); err != nil {
		t.Fatal(err)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/catalog/export", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Disposition"); !strings.Contains(got, "experiences.json") {
		t.Errorf("unexpected disposition %q", got)
	}
	if !json.Valid(resp.Body.Bytes()) {
		t.Fatal("export body is not valid JSON")
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Count == 0 {
		t.Fatal("expected a non-empty category list")
	}
}
