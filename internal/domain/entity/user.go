package entity

import "time"

// UserProfile is the authenticated actor as reported by the API.
type UserProfile struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	Active    bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName returns "First Last", falling back to the email when both parts are empty.
func (u UserProfile) DisplayName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Email
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
