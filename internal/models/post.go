package models

import "time"

// Post is a feed entry returned by the /posts endpoints.
type Post struct {
	ID        string   `json:"_id"`
	Caption   string   `json:"caption"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	User      User     `json:"user"`
	Likes     []string `json:"likes"`
	CreatedAt string   `json:"createdAt"`
}

// LikedBy reports whether the given user has liked the post.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// Created parses the RFC 3339 creation timestamp.
// A zero time is returned when the backend sent an unparseable value.
func (p *Post) Created() time.Time {
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
