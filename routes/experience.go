package routes

import (
	"github.com/kataras/iris/v12"

	"experiences-catalog-server/models"
	"experiences-catalog-server/services"
	"experiences-catalog-server/storage"
	"experiences-catalog-server/utils"
)

// ExperienceHandler wires the catalog routes to an explicitly constructed
// store and manager. Public reads go straight to the store; mutations go
// through the manager so its cached list stays in step.
type ExperienceHandler struct {
	store   *storage.ExperienceStore
	catalog *services.CatalogManager
}

func NewExperienceHandler(store *storage.ExperienceStore, catalog *services.CatalogManager) *ExperienceHandler {
	return &ExperienceHandler{store: store, catalog: catalog}
}

// List returns experiences, optionally narrowed by ?filter=trending|featured
// or ?category=<id>.
func (h *ExperienceHandler) List(ctx iris.Context) {
	var list []models.Experience

	switch {
	case ctx.URLParam("category") != "":
		list = h.store.FetchByCategory(ctx.URLParam("category"))
	case ctx.URLParam("filter") == "trending":
		list = h.store.FetchTrending()
	case ctx.URLParam("filter") == "featured":
		list = h.store.FetchFeatured()
	default:
		list, _ = h.store.FetchAll()
	}

	ctx.JSON(iris.Map{"success": true, "data": list, "count": len(list)})
}

// Get returns one experience by id.
func (h *ExperienceHandler) Get(ctx iris.Context) {
	id := ctx.Params().Get("id")

	experience := h.store.FetchByID(id)
	if experience == nil {
		utils.JSONError(ctx, iris.StatusNotFound, "not_found", "Experience not found")
		return
	}

	ctx.JSON(iris.Map{"success": true, "experience": experience})
}

// Create inserts a new experience.
func (h *ExperienceHandler) Create(ctx iris.Context) {
	var input struct {
		Title          string   `json:"title" validate:"required"`
		Description    string   `json:"description"`
		Image          string   `json:"image"`
		Price          float64  `json:"price" validate:"gte=0"`
		Location       string   `json:"location" validate:"required"`
		Latitude       *float64 `json:"latitude"`
		Longitude      *float64 `json:"longitude"`
		Duration       string   `json:"duration"`
		Participants   int      `json:"participants"`
		Date           string   `json:"date"`
		Category       string   `json:"category"`
		NicheCategory  string   `json:"nicheCategory"`
		ExperienceType []string `json:"experienceType"`
		Trending       bool     `json:"trending"`
		Featured       bool     `json:"featured"`
		Romantic       bool     `json:"romantic"`
		Adventurous    bool     `json:"adventurous"`
		Group          bool     `json:"group"`
	}

	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	experience := models.Experience{
		Title:          input.Title,
		Description:    input.Description,
		Image:          input.Image,
		Price:          input.Price,
		Location:       input.Location,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Duration:       input.Duration,
		Participants:   input.Participants,
		Date:           input.Date,
		Category:       input.Category,
		NicheCategory:  input.NicheCategory,
		ExperienceType: input.ExperienceType,
		Trending:       input.Trending,
		Featured:       input.Featured,
		Romantic:       input.Romantic,
		Adventurous:    input.Adventurous,
		Group:          input.Group,
	}

	created, err := h.catalog.Add(experience)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"success": true, "experience": created})
}

// Update applies a partial update; only fields present in the payload are
// touched.
func (h *ExperienceHandler) Update(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var patch models.ExperienceUpdate
	if err := ctx.ReadJSON(&patch); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if err := h.catalog.Update(id, patch); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true})
}

// Delete removes one experience by id.
func (h *ExperienceHandler) Delete(ctx iris.Context) {
	id := ctx.Params().Get("id")

	if err := h.catalog.Delete(id); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true})
}
