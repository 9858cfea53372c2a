package utils

import (
	"github.com/kataras/iris/v12"
)

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"error": code, "message": message})
}

func CreateInternalServerError(ctx iris.Context) {
	JSONError(ctx, iris.StatusInternalServerError, "internal_error", "Something went wrong. Please try again.")
}

func HandleValidationErrors(err error, ctx iris.Context) {
	ctx.StatusCode(iris.StatusUnprocessableEntity)
	ctx.JSON(iris.Map{"error": "invalid_payload", "message": err.Error()})
}
