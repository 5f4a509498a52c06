package types

// Skill is a single technology/skill card with at most one image.
type Skill struct {
	BaseDocument
	Name               string `json:"name" validate:"required"`
	Category           string `json:"category"`
	Level              string `json:"level"`
	ImageURL           string `json:"imageURL"`
	CloudinaryPublicID string `json:"cloudinaryPublicId"`
	Featured           bool   `json:"featured"`
	Created            int64  `json:"created"`
	Modified           int64  `json:"modified"`
}
