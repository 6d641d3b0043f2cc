package domain

// OwnerProfile is the site owner's public contact identity.
// It names the recipient of primary notifications and signs acknowledgments.
type OwnerProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
}
