package types

// UserProfile holds the display attributes of a user. Authentication lives
// with the external identity provider; these documents only back display-name
// resolution for attribution and payer lists.
type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// Name returns the best display string for the user, falling back to the
// email local part and then the raw id.
func (u *UserProfile) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}
