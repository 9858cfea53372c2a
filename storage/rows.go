package storage

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"experiences-catalog-server/models"
)

// experienceRow mirrors the remote "experiences" table column for column.
// Coordinates are stored as text and parsed on the way out; the flag columns
// use the table's is_* naming.
type experienceRow struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`

	Location  string `json:"location"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`

	Duration     string `json:"duration"`
	Participants int    `json:"participants"`
	Date         string `json:"date"`

	Category       string         `json:"category"`
	NicheCategory  string         `json:"niche_category"`
	ExperienceType datatypes.JSON `json:"experience_type"`

	IsTrending      bool `json:"is_trending"`
	IsFeatured      bool `json:"is_featured"`
	IsRomantic      bool `json:"is_romantic"`
	IsAdventurous   bool `json:"is_adventurous"`
	IsGroupActivity bool `json:"is_group_activity"`
}

func (experienceRow) TableName() string { return "experiences" }

// BeforeCreate assigns the opaque string id the store owns.
func (r *experienceRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// rowToExperience maps one external row into the internal model. Absent
// booleans come out false and a missing experience_type comes out as an
// empty slice, never nil. No validation happens here.
func rowToExperience(r experienceRow) models.Experience {
	tags := []string{}
	if len(r.ExperienceType) > 0 {
		if err := json.Unmarshal(r.ExperienceType, &tags); err != nil {
			tags = []string{}
		}
	}
	return models.Experience{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Image:          r.ImageURL,
		Price:          r.Price,
		Location:       r.Location,
		Latitude:       parseCoordinate(r.Latitude),
		Longitude:      parseCoordinate(r.Longitude),
		Duration:       r.Duration,
		Participants:   r.Participants,
		Date:           r.Date,
		Category:       r.Category,
		NicheCategory:  r.NicheCategory,
		ExperienceType: tags,
		Trending:       r.IsTrending,
		Featured:       r.IsFeatured,
		Romantic:       r.IsRomantic,
		Adventurous:    r.IsAdventurous,
		Group:          r.IsGroupActivity,
	}
}

// experienceToRow is the inverse mapping, used for inserts.
func experienceToRow(e models.Experience) experienceRow {
	return experienceRow{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		ImageURL:        e.Image,
		Price:           e.Price,
		Location:        e.Location,
		Latitude:        formatCoordinate(e.Latitude),
		Longitude:       formatCoordinate(e.Longitude),
		Duration:        e.Duration,
		Participants:    e.Participants,
		Date:            e.Date,
		Category:        e.Category,
		NicheCategory:   e.NicheCategory,
		ExperienceType:  tagsToJSON(e.ExperienceType),
		IsTrending:      e.Trending,
		IsFeatured:      e.Featured,
		IsRomantic:      e.Romantic,
		IsAdventurous:   e.Adventurous,
		IsGroupActivity: e.Group,
	}
}

func rowsToExperiences(rows []experienceRow) []models.Experience {
	list := make([]models.Experience, 0, len(rows))
	for _, r := range rows {
		list = append(list, rowToExperience(r))
	}
	return list
}

// parseCoordinate converts a stored text coordinate to a number. Empty or
// unparsable text leaves the field unset.
func parseCoordinate(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formatCoordinate(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func tagsToJSON(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}
