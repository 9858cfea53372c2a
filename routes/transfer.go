package routes

import (
	"io"

	"github.com/kataras/iris/v12"

	"experiences-catalog-server/utils"
)

// Import bulk-loads experiences from a JSON array in the request body and
// answers with the accessor's structured result.
func (h *ExperienceHandler) Import(ctx iris.Context) {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_payload", "could not read request body")
		return
	}

	result := h.catalog.Import(string(body))
	if !result.Success {
		ctx.StatusCode(iris.StatusUnprocessableEntity)
	}
	ctx.JSON(result)
}

// Export streams the full catalog as pretty-printed JSON.
func (h *ExperienceHandler) Export(ctx iris.Context) {
	text, err := h.catalog.Export()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="experiences.json"`)
	ctx.ContentType("application/json")
	ctx.WriteString(text)
}

// Reset reports a successful reset without restoring anything; the stub is
// deliberate, see DESIGN.md.
func (h *ExperienceHandler) Reset(ctx iris.Context) {
	ctx.JSON(h.catalog.Reset())
}
