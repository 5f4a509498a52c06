package types

// Socials is the nested social-links mapping on the profile. Every field is
// optional; empty strings render as empty links in the dashboard.
type Socials struct {
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Profile is the site owner's record. A single document exists under the
// fixed id ProfileDocID; it is created once and only ever partially updated.
type Profile struct {
	BaseDocument
	Name              string  `json:"name" validate:"required"`
	Title             string  `json:"title"`
	Bio               string  `json:"bio"`
	Socials           Socials `json:"socials"`
	ProfileImage      string  `json:"profileImage"`
	CloudinaryImageID string  `json:"cloudinaryImageId"`
	Created           int64   `json:"created"`
	Modified          int64   `json:"modified"`
}

// ProfileDocID is the well-known id of the singleton profile document.
const ProfileDocID = "profile"
