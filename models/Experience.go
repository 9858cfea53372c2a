package models

// Experience is a single catalog entry. The ID is an opaque string assigned
// by the store on insert and never changes afterwards.
type Experience struct {
	ID string `json:"id"`

	// Basic Info
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`

	// Location
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// Logistics
	Duration     string `json:"duration"` // e.g. "3 hours"
	Participants int    `json:"participants"`
	Date         string `json:"date"`

	// Classification
	Category       string   `json:"category"`
	NicheCategory  string   `json:"nicheCategory"`
	ExperienceType []string `json:"experienceType"`

	// Flags
	Trending    bool `json:"trending"`
	Featured    bool `json:"featured"`
	Romantic    bool `json:"romantic"`
	Adventurous bool `json:"adventurous"`
	Group       bool `json:"group"`
}

// ExperienceUpdate is a sparse patch for an Experience. A nil field means
// "leave untouched"; only non-nil fields are sent to the store and merged
// into cached copies.
type ExperienceUpdate struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Image          *string   `json:"image"`
	Price          *float64  `json:"price"`
	Location       *string   `json:"location"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	Duration       *string   `json:"duration"`
	Participants   *int      `json:"participants"`
	Date           *string   `json:"date"`
	Category       *string   `json:"category"`
	NicheCategory  *string   `json:"nicheCategory"`
	ExperienceType *[]string `json:"experienceType"`
	Trending       *bool     `json:"trending"`
	Featured       *bool     `json:"featured"`
	Romantic       *bool     `json:"romantic"`
	Adventurous    *bool     `json:"adventurous"`
	Group          *bool     `json:"group"`
}

// Apply merges the non-nil fields of the patch into e.
func (u ExperienceUpdate) Apply(e *Experience) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Image != nil {
		e.Image = *u.Image
	}
	if u.Price != nil {
		e.Price = *u.Price
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Latitude != nil {
		e.Latitude = u.Latitude
	}
	if u.Longitude != nil {
		e.Longitude = u.Longitude
	}
	if u.Duration != nil {
		e.Duration = *u.Duration
	}
	if u.Participants != nil {
		e.Participants = *u.Participants
	}
	if u.Date != nil {
		e.Date = *u.Date
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.NicheCategory != nil {
		e.NicheCategory = *u.NicheCategory
	}
	if u.ExperienceType != nil {
		e.ExperienceType = *u.ExperienceType
	}
	if u.Trending != nil {
		e.Trending = *u.Trending
	}
	if u.Featured != nil {
		e.Featured = *u.Featured
	}
	if u.Romantic != nil {
		e.Romantic = *u.Romantic
	}
	if u.Adventurous != nil {
		e.Adventurous = *u.Adventurous
	}
	if u.Group != nil {
		e.Group = *u.Group
	}
}

// Empty reports whether the patch carries no fields at all.
func (u ExperienceUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Image == nil &&
		u.Price == nil && u.Location == nil && u.Latitude == nil &&
		u.Longitude == nil && u.Duration == nil && u.Participants == nil &&
		u.Date == nil && u.Category == nil && u.NicheCategory == nil &&
		u.ExperienceType == nil && u.Trending == nil && u.Featured == nil &&
		u.Romantic == nil && u.Adventurous == nil && u.Group == nil
}
