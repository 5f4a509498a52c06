package types

// Contact is an inbound message from the public portfolio site. The admin
// dashboard only reads, marks read, and deletes them.
type Contact struct {
	BaseDocument
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message" validate:"required"`
	IsRead   bool   `json:"isRead"`
	Created  int64  `json:"created"`
	Modified int64  `json:"modified"`
}
