package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"experiences-catalog-server/models"
)

// TransferResult is how import and reset report their outcome instead of
// raising.
type TransferResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ExperienceStore is the remote accessor for the experiences table. Read
// paths never surface errors to the caller: they log and serve the fallback
// store's copy instead. Write paths log and return the error.
type ExperienceStore struct {
	db       *gorm.DB
	fallback FallbackStore
}

func NewExperienceStore(db *gorm.DB, fallback FallbackStore) *ExperienceStore {
	return &ExperienceStore{db: db, fallback: fallback}
}

// FetchAll returns the full catalog. On success the result is written
// through to the fallback store; on failure the fallback copy is returned
// alongside the error so callers can flag staleness.
func (s *ExperienceStore) FetchAll() ([]models.Experience, error) {
	var rows []experienceRow
	if err := s.db.Find(&rows).Error; err != nil {
		log.Printf("experiences: fetch all failed: %v", err)
		return s.fallback.Read(), err
	}
	list := rowsToExperiences(rows)
	s.fallback.Write(list)
	return list, nil
}

// FetchTrending returns experiences with the trending flag set.
func (s *ExperienceStore) FetchTrending() []models.Experience {
	return s.fetchByFlag("is_trending", func(e models.Experience) bool { return e.Trending })
}

// FetchFeatured returns experiences with the featured flag set.
func (s *ExperienceStore) FetchFeatured() []models.Experience {
	return s.fetchByFlag("is_featured", func(e models.Experience) bool { return e.Featured })
}

func (s *ExperienceStore) fetchByFlag(column string, match func(models.Experience) bool) []models.Experience {
	var rows []experienceRow
	if err := s.db.Where(column+" = ?", true).Find(&rows).Error; err != nil {
		log.Printf("experiences: fetch by %s failed: %v", column, err)
		return filterExperiences(s.fallback.Read(), match)
	}
	return rowsToExperiences(rows)
}

// FetchByID returns the experience with the given id, or nil when no row
// matches. Remote errors are logged and answered from the fallback copy.
func (s *ExperienceStore) FetchByID(id string) *models.Experience {
	var row experienceRow
	err := s.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("experiences: fetch %s failed: %v", id, err)
			for _, e := range s.fallback.Read() {
				if e.ID == id {
					return &e
				}
			}
		}
		return nil
	}
	exp := rowToExperience(row)
	return &exp
}

// FetchByCategory resolves a category id to its display name, then matches
// the category column case-insensitively. A remote error, or an empty or
// mismatched result, falls back to filtering the cached list.
func (s *ExperienceStore) FetchByCategory(categoryID string) []models.Experience {
	name, ok := models.CategoryName(categoryID)
	if !ok {
		name = categoryID
	}

	var rows []experienceRow
	err := s.db.Where("LOWER(category) = LOWER(?)", name).Find(&rows).Error
	if err != nil || len(rows) == 0 {
		if err != nil {
			log.Printf("experiences: fetch by category %q failed: %v", name, err)
		}
		return filterExperiences(s.fallback.Read(), func(e models.Experience) bool {
			return strings.EqualFold(e.Category, name)
		})
	}
	return rowsToExperiences(rows)
}

// Insert creates one experience and returns the stored copy with its
// server-assigned id.
func (s *ExperienceStore) Insert(e models.Experience) (models.Experience, error) {
	row := experienceToRow(e)
	row.ID = "" // the store owns id assignment
	if err := s.db.Create(&row).Error; err != nil {
		log.Printf("experiences: insert failed: %v", err)
		return models.Experience{}, err
	}
	return rowToExperience(row), nil
}

// Update applies a sparse patch by id. Only fields present in the patch are
// sent; an empty patch is a no-op.
func (s *ExperienceStore) Update(id string, patch models.ExperienceUpdate) error {
	updates := patchColumns(patch)
	if len(updates) == 0 {
		return nil
	}
	if err := s.db.Model(&experienceRow{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		log.Printf("experiences: update %s failed: %v", id, err)
		return err
	}
	return nil
}

// Delete removes one experience by id.
func (s *ExperienceStore) Delete(id string) error {
	if err := s.db.Delete(&experienceRow{}, "id = ?", id).Error; err != nil {
		log.Printf("experiences: delete %s failed: %v", id, err)
		return err
	}
	return nil
}

// Import parses a JSON array of externally-shaped rows and bulk-inserts
// them, then re-fetches the full catalog for a consistent view. A payload
// that is not an array is rejected without inserting anything.
func (s *ExperienceStore) Import(jsonText string) ([]models.Experience, TransferResult) {
	var rows []experienceRow
	if err := json.Unmarshal([]byte(jsonText), &rows); err != nil {
		return nil, TransferResult{Success: false, Message: "import payload must be a JSON array of experiences"}
	}
	if rows == nil {
		// "null" decodes without error but is not an array.
		return nil, TransferResult{Success: false, Message: "import payload must be a JSON array of experiences"}
	}
	if len(rows) == 0 {
		list, _ := s.FetchAll()
		return list, TransferResult{Success: true, Message: "no experiences to import"}
	}
	for i := range rows {
		rows[i].ID = ""
	}
	if err := s.db.Create(&rows).Error; err != nil {
		log.Printf("experiences: import failed: %v", err)
		return nil, TransferResult{Success: false, Message: "import failed: " + err.Error()}
	}
	list, _ := s.FetchAll()
	return list, TransferResult{Success: true, Message: fmt.Sprintf("imported %d experiences", len(rows))}
}

// Export serializes the full catalog as pretty-printed JSON.
func (s *ExperienceStore) Export() (string, error) {
	list, _ := s.FetchAll()
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Reset reports success without restoring anything. The web client it was
// ported from behaves the same way; see DESIGN.md before giving this real
// restoration semantics.
func (s *ExperienceStore) Reset() TransferResult {
	return TransferResult{Success: true, Message: "catalog reset requested"}
}

func filterExperiences(list []models.Experience, match func(models.Experience) bool) []models.Experience {
	out := []models.Experience{}
	for _, e := range list {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

// patchColumns translates a sparse patch into column updates.
func patchColumns(patch models.ExperienceUpdate) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Image != nil {
		updates["image_url"] = *patch.Image
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.Latitude != nil {
		updates["latitude"] = formatCoordinate(patch.Latitude)
	}
	if patch.Longitude != nil {
		updates["longitude"] = formatCoordinate(patch.Longitude)
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.Participants != nil {
		updates["participants"] = *patch.Participants
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.NicheCategory != nil {
		updates["niche_category"] = *patch.NicheCategory
	}
	if patch.ExperienceType != nil {
		updates["experience_type"] = tagsToJSON(*patch.ExperienceType)
	}
	if patch.Trending != nil {
		updates["is_trending"] = *patch.Trending
	}
	if patch.Featured != nil {
		updates["is_featured"] = *patch.Featured
	}
	if patch.Romantic != nil {
		updates["is_romantic"] = *patch.Romantic
	}
	if patch.Adventurous != nil {
		updates["is_adventurous"] = *patch.Adventurous
	}
	if patch.Group != nil {
		updates["is_group_activity"] = *patch.Group
	}
	return updates
}
