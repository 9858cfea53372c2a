package main

import (
	"fmt"
	"log"

	"experiences-catalog-server/storage"
)

// Seeds the built-in default experiences into an empty catalog. Run once
// against a fresh database.
func main() {
	db, err := storage.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	store := storage.NewExperienceStore(db, storage.NewFallbackFromEnv())

	existing, err := store.FetchAll()
	if err != nil {
		log.Fatalf("Error reading catalog: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("Catalog already has %d experiences, nothing to do.\n", len(existing))
		return
	}

	for _, e := range storage.DefaultExperiences() {
		if _, err := store.Insert(e); err != nil {
			log.Fatalf("Error seeding %q: %v", e.Title, err)
		}
	}

	fmt.Println("Default experiences seeded successfully!")
}
