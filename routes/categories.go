package routes

import (
	"github.com/kataras/iris/v12"

	"experiences-catalog-server/models"
)

// GetCategories returns the static experience category list.
func GetCategories(ctx iris.Context) {
	ctx.JSON(iris.Map{
		"success": true,
		"data":    models.Categories,
		"count":   len(models.Categories),
	})
}
