package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"

	"experiences-catalog-server/routes"
	"experiences-catalog-server/services"
	"experiences-catalog-server/storage"
)

func main() {
	db, err := storage.Connect()
	if err != nil {
		log.Fatalf("❌ database init failed: %v", err)
	}

	fallback := storage.NewFallbackFromEnv()
	store := storage.NewExperienceStore(db, fallback)
	catalog := services.NewCatalogManager(store, services.NewLogNotifier())
	catalog.Load()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	// Minimal middleware - compression only
	app.Use(iris.Compression)

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	h := routes.NewExperienceHandler(store, catalog)

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

	app.Get("/api/categories", routes.GetCategories)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
