package models

// Category is a fixed {id, name} pair used to resolve category filters.
// The list is static reference data, not a table.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Categories = []Category{
	{ID: "mountain", Name: "Mountain"},
	{ID: "beach", Name: "Beach"},
	{ID: "city", Name: "City"},
	{ID: "cultural", Name: "Cultural"},
	{ID: "culinary", Name: "Culinary"},
	{ID: "wellness", Name: "Wellness"},
	{ID: "wildlife", Name: "Wildlife"},
	{ID: "nightlife", Name: "Nightlife"},
}

// CategoryName resolves a category id to its display name.
func CategoryName(id string) (string, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}
