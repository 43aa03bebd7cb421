// Package backend provides interfaces and implementations for communicating with the Nexus backend service.
// It defines the API contract for authentication, profile, and post operations.
// The package includes both interface definitions and the HTTP-based implementation.
package backend

import (
	"context"
	"io"

	"nexus/cli/internal/models"
)

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide mocks for tests.
type API interface {
	// Login exchanges an identifier (email or username) and password for a
	// bearer access token.
	Login(ctx context.Context, identifier, password string) (accessToken string, err error)
	// Register creates a new account.
	Register(ctx context.Context, username, email, password string) error
	// GetMe retrieves the profile of the authenticated user.
	GetMe(ctx context.Context) (*models.User, error)
	// GetUser retrieves any user's public profile.
	GetUser(ctx context.Context, userID string) (*models.User, error)
	// UpdateProfile applies a partial profile update and returns the result.
	UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (*models.User, error)
	// UploadAvatar replaces the authenticated user's avatar image.
	UploadAvatar(ctx context.Context, filename string, image io.Reader) (*models.User, error)
	// Feed returns the home feed.
	Feed(ctx context.Context) ([]models.Post, error)
	// UserPosts returns the posts of a single user.
	UserPosts(ctx context.Context, userID string) ([]models.Post, error)
	// CreatePost publishes a post with a caption and an optional image.
	CreatePost(ctx context.Context, caption, imageName string, image io.Reader) (*models.Post, error)
	// ToggleLike flips the authenticated user's like on a post.
	ToggleLike(ctx context.Context, postID string) (*models.Post, error)
	// Follow subscribes the authenticated user to another user.
	Follow(ctx context.Context, userID string) error
	// Unfollow removes the subscription.
	Unfollow(ctx context.Context, userID string) error
}

// TokenSource supplies the current bearer token at request dispatch time.
// It must reflect the latest value held by the session manager, not a value
// captured once at construction.
type TokenSource func() string

// Endpoints contains the REST API endpoint paths.
type Endpoints struct {
	Login       string // POST
	Register    string // POST
	Me          string // GET / PUT
	Avatar      string // PUT multipart
	UserProfile string // GET /user/{id}
	Follow      string // POST/DELETE /user/{id}/follow
	Feed        string // GET
	Posts       string // POST
	LikePost    string // PUT /posts/{id}/like
	UserPosts   string // GET /posts/user/{id}
}

// DefaultEndpoints returns the fixed Nexus API paths.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Login:       "/auth/login",
		Register:    "/auth/register",
		Me:          "/user/me",
		Avatar:      "/user/avatar",
		UserProfile: "/user/%s",
		Follow:      "/user/%s/follow",
		Feed:        "/posts/feed",
		Posts:       "/posts",
		LikePost:    "/posts/%s/like",
		UserPosts:   "/posts/user/%s",
	}
}
