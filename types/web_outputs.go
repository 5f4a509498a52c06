package types

// CleanupWarning records a media-store destroy that failed during asset
// reconciliation. The document write proceeds regardless; callers decide
// whether to surface or retry by hand.
type CleanupWarning struct {
	PublicID string `json:"publicId"`
	Reason   string `json:"reason"`
}

type OutputProfile struct {
	Profile         *Profile         `json:"profile"`
	CleanupWarnings []CleanupWarning `json:"cleanupWarnings,omitempty"`
}

type OutputProject struct {
	Project         *Project         `json:"project"`
	CleanupWarnings []CleanupWarning `json:"cleanupWarnings,omitempty"`
}

type OutputSkill struct {
	Skill           *Skill           `json:"skill"`
	CleanupWarnings []CleanupWarning `json:"cleanupWarnings,omitempty"`
}

type OutputDeleted struct {
	Success         bool             `json:"success"`
	CleanupWarnings []CleanupWarning `json:"cleanupWarnings,omitempty"`
}

type OutputUpload struct {
	Success  bool   `json:"success"`
	Path     string `json:"path"`
	PublicID string `json:"public_id"`
}

type OutputUploadMulti struct {
	Success   bool     `json:"success"`
	Paths     []string `json:"paths"`
	PublicIds []string `json:"publicIds"`
}
