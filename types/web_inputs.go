package types

type InputLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// InputProfile is a partial profile update: nil means "leave unchanged".
type InputProfile struct {
	Name              *string  `json:"name"`
	Title             *string  `json:"title"`
	Bio               *string  `json:"bio"`
	Socials           *Socials `json:"socials"`
	ProfileImage      *string  `json:"profileImage"`
	CloudinaryImageID *string  `json:"cloudinaryImageId"`
}

// InputProject is a partial project update. The gallery arrays must be
// provided together or not at all.
type InputProject struct {
	Title               *string   `json:"title"`
	Description         *string   `json:"description"`
	Category            *string   `json:"category"`
	TechStack           *[]string `json:"techStack"`
	ImageURL            *string   `json:"imageURL"`
	Images              *[]string `json:"images"`
	CloudinaryPublicIds *[]string `json:"cloudinaryPublicIds"`
	GithubLink          *string   `json:"githubLink"`
	LiveLink            *string   `json:"liveLink"`
	Featured            *bool     `json:"featured"`
	Order               *int      `json:"order"`
}

// Gallery zips the incoming parallel arrays. The second return is false when
// neither array was provided (gallery untouched).
func (in *InputProject) Gallery() ([]GalleryImage, bool, error) {
	if in.Images == nil && in.CloudinaryPublicIds == nil {
		return nil, false, nil
	}
	if in.Images == nil || in.CloudinaryPublicIds == nil {
		return nil, true, ErrGalleryMismatch
	}
	gallery, err := ZipGallery(*in.Images, *in.CloudinaryPublicIds)
	return gallery, true, err
}

// InputSkill is a partial skill update: nil means "leave unchanged".
type InputSkill struct {
	Name               *string `json:"name"`
	Category           *string `json:"category"`
	Level              *string `json:"level"`
	ImageURL           *string `json:"imageURL"`
	CloudinaryPublicID *string `json:"cloudinaryPublicId"`
	Featured           *bool   `json:"featured"`
}

// InputContact is the public contact-form submission.
type InputContact struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}
