package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/go-redis/redis/v8"

	"experiences-catalog-server/models"
)

// fallbackKey is the single key the cached catalog lives under.
const fallbackKey = "experiences_cache"

// FallbackStore keeps a stale copy of the catalog under a single key so read
// paths have something to serve when the database is unreachable. The whole
// list is replaced on every write; there is no versioning and no expiry.
type FallbackStore interface {
	Read() []models.Experience
	Write(list []models.Experience)
}

// FileFallback stores the catalog as one JSON blob on disk.
type FileFallback struct {
	Path string
}

func NewFileFallback(path string) *FileFallback {
	if path == "" {
		path = "experiences_cache.json"
	}
	return &FileFallback{Path: path}
}

// Read returns the cached list, or the built-in defaults when the blob is
// absent or unparsable.
func (f *FileFallback) Read() []models.Experience {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("fallback: read %s failed: %v", f.Path, err)
		}
		return DefaultExperiences()
	}
	var list []models.Experience
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("fallback: corrupt cache at %s: %v", f.Path, err)
		return DefaultExperiences()
	}
	return list
}

func (f *FileFallback) Write(list []models.Experience) {
	data, err := json.Marshal(list)
	if err != nil {
		log.Printf("fallback: marshal failed: %v", err)
		return
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		log.Printf("fallback: write %s failed: %v", f.Path, err)
	}
}

// RedisFallback stores the catalog under a single redis key, for deployments
// where instances share the cache instead of writing local files.
type RedisFallback struct {
	client *redis.Client
}

func NewRedisFallback(addr string) *RedisFallback {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
	log.Println("🔧 Redis fallback initialized with address:", addr)
	return &RedisFallback{client: client}
}

func (r *RedisFallback) Read() []models.Experience {
	data, err := r.client.Get(context.Background(), fallbackKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("fallback: redis read failed: %v", err)
		}
		return DefaultExperiences()
	}
	var list []models.Experience
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("fallback: corrupt cache under %s: %v", fallbackKey, err)
		return DefaultExperiences()
	}
	return list
}

func (r *RedisFallback) Write(list []models.Experience) {
	data, err := json.Marshal(list)
	if err != nil {
		log.Printf("fallback: marshal failed: %v", err)
		return
	}
	if err := r.client.Set(context.Background(), fallbackKey, data, 0).Err(); err != nil {
		log.Printf("fallback: redis write failed: %v", err)
	}
}

// NewFallbackFromEnv picks the redis backend when REDIS_URL is set and the
// file backend otherwise.
func NewFallbackFromEnv() FallbackStore {
	if addr := os.Getenv("REDIS_URL"); addr != "" {
		return NewRedisFallback(addr)
	}
	return NewFileFallback(os.Getenv("FALLBACK_FILE"))
}

func coord(f float64) *float64 { return &f }

// DefaultExperiences is the floor the fallback store never drops below: a
// small built-in catalog served when nothing has ever been cached.
func DefaultExperiences() []models.Experience {
	return []models.Experience{
		{
			ID:             "default-1",
			Title:          "Sunrise Mountain Hike",
			Description:    "Guided trek to the summit with breakfast at the top.",
			Image:          "https://images.example.com/experiences/sunrise-hike.jpg",
			Price:          45,
			Location:       "Atlas Mountains",
			Latitude:       coord(31.0595),
			Longitude:      coord(-7.9158),
			Duration:       "5 hours",
			Participants:   8,
			Date:           "2025-04-12",
			Category:       "Mountain",
			NicheCategory:  "Hiking",
			ExperienceType: []string{"outdoor", "guided"},
			Adventurous:    true,
			Group:          true,
		},
		{
			ID:             "default-2",
			Title:          "Old Medina Food Walk",
			Description:    "Street-food tasting tour through the old town.",
			Image:          "https://images.example.com/experiences/medina-food.jpg",
			Price:          30,
			Location:       "Marrakech",
			Duration:       "3 hours",
			Participants:   10,
			Date:           "2025-04-20",
			Category:       "Culinary",
			NicheCategory:  "Street Food",
			ExperienceType: []string{"food", "walking"},
			Trending:       true,
			Group:          true,
		},
		{
			ID:             "default-3",
			Title:          "Coastal Sunset Sail",
			Description:    "Two-hour catamaran cruise along the coast.",
			Image:          "https://images.example.com/experiences/sunset-sail.jpg",
			Price:          60,
			Location:       "Essaouira",
			Latitude:       coord(31.5085),
			Longitude:      coord(-9.7595),
			Duration:       "2 hours",
			Participants:   12,
			Date:           "2025-05-02",
			Category:       "Beach",
			NicheCategory:  "Sailing",
			ExperienceType: []string{"water", "romantic"},
			Featured:       true,
			Romantic:       true,
		},
	}
}
