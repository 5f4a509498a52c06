package types

import "encoding/json"

// GalleryImage pairs an uploaded image URL with the media-store public id it
// was stored under. Keeping them in one struct makes a mismatched deletion
// target impossible to represent.
type GalleryImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Project is a portfolio project with an image gallery of up to
// MaxGalleryImages entries. The stored and wire representation keeps the
// historical parallel arrays `images` and `cloudinaryPublicIds`; they are
// zipped into Gallery at the JSON boundary and never handled separately.
type Project struct {
	BaseDocument
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	TechStack   []string       `json:"techStack"`
	ImageURL    string         `json:"imageURL"`
	Gallery     []GalleryImage `json:"-"`
	GithubLink  string         `json:"githubLink"`
	LiveLink    string         `json:"liveLink"`
	Featured    bool           `json:"featured"`
	Order       int            `json:"order"`
	Created     int64          `json:"created"`
	Modified    int64          `json:"modified"`
}

// MaxGalleryImages caps the per-project gallery fan-out.
const MaxGalleryImages = 4

func (p Project) MarshalJSON() ([]byte, error) {
	type Alias Project
	urls := make([]string, 0, len(p.Gallery))
	ids := make([]string, 0, len(p.Gallery))
	for _, img := range p.Gallery {
		urls = append(urls, img.URL)
		ids = append(ids, img.PublicID)
	}
	return json.Marshal(&struct {
		Alias
		Images              []string `json:"images"`
		CloudinaryPublicIds []string `json:"cloudinaryPublicIds"`
	}{Alias: Alias(p), Images: urls, CloudinaryPublicIds: ids})
}

func (p *Project) UnmarshalJSON(data []byte) error {
	type Alias Project
	aux := struct {
		*Alias
		Images              []string `json:"images"`
		CloudinaryPublicIds []string `json:"cloudinaryPublicIds"`
	}{Alias: (*Alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	gallery, err := ZipGallery(aux.Images, aux.CloudinaryPublicIds)
	if err != nil {
		return err
	}
	p.Gallery = gallery
	return nil
}

// ZipGallery pairs the parallel url/public-id arrays, rejecting misaligned
// input.
func ZipGallery(urls []string, publicIDs []string) ([]GalleryImage, error) {
	if len(urls) != len(publicIDs) {
		return nil, ErrGalleryMismatch
	}
	gallery := make([]GalleryImage, 0, len(urls))
	for i := range urls {
		gallery = append(gallery, GalleryImage{URL: urls[i], PublicID: publicIDs[i]})
	}
	return gallery, nil
}

// PublicIDs lists the media-store ids currently referenced by the gallery.
func (p *Project) PublicIDs() []string {
	ids := make([]string, 0, len(p.Gallery))
	for _, img := range p.Gallery {
		if img.PublicID != "" {
			ids = append(ids, img.PublicID)
		}
	}
	return ids
}
