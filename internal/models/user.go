// Package models defines the wire types exchanged with the Nexus backend.
package models

// User is the profile document returned by /user endpoints.
// Follower and following lists carry identifiers only; the CLI uses
// their sizes for counts and never dereferences them.
type User struct {
	ID        string   `json:"_id"`
	Email     string   `json:"email"`
	Username  string   `json:"username"`
	Name      string   `json:"name,omitempty"`
	Avatar    string   `json:"avatar,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Birthday  string   `json:"birthday,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Height    float64  `json:"height,omitempty"`
	Weight    float64  `json:"weight,omitempty"`
	Interests []string `json:"interests,omitempty"`
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

// DisplayName prefers the full name and falls back to the handle.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// ProfileUpdate is the partial payload for PUT /user/me.
// Zero-valued fields are omitted so the backend only touches what was set.
type ProfileUpdate struct {
	Name      string   `json:"name,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Birthday  string   `json:"birthday,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Height    float64  `json:"height,omitempty"`
	Weight    float64  `json:"weight,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (p ProfileUpdate) Empty() bool {
	return p.Name == "" && p.Bio == "" && p.Birthday == "" && p.Gender == "" &&
		p.Height == 0 && p.Weight == 0 && len(p.Interests) == 0
}
