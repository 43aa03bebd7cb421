package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	nexuserrors "nexus/cli/internal/errors"
	"nexus/cli/internal/models"
)

// Feed calls GET /posts/feed and returns the home feed.
func (h *HTTP) Feed(ctx context.Context) ([]models.Post, error) {
	req, err := h.newRequest(ctx, http.MethodGet, h.endpoints.Feed, nil)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := h.doJSON(req, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UserPosts calls GET /posts/user/{id}.
func (h *HTTP) UserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	req, err := h.newRequest(ctx, http.MethodGet, fmt.Sprintf(h.endpoints.UserPosts, userID), nil)
	if err != nil {
		return nil, err
	}
	var posts []models.Post
	if err := h.doJSON(req, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost calls POST /posts with a multipart payload: a "caption" field
// and an optional image under "file". Pass a nil image for text-only posts.
func (h *HTTP) CreatePost(ctx context.Context, caption, imageName string, image io.Reader) (*models.Post, error) {
	if strings.TrimSpace(caption) == "" {
		return nil, nexuserrors.New(nexuserrors.Validation, "caption is required")
	}
	body, contentType, err := multipartBody(map[string]string{"caption": caption}, imageName, image)
	if err != nil {
		return nil, err
	}
	req, err := h.newRequest(ctx, http.MethodPost, h.endpoints.Posts, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	var post models.Post
	if err := h.doJSON(req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ToggleLike calls PUT /posts/{id}/like and returns the updated post.
func (h *HTTP) ToggleLike(ctx context.Context, postID string) (*models.Post, error) {
	req, err := h.newRequest(ctx, http.MethodPut, fmt.Sprintf(h.endpoints.LikePost, postID), nil)
	if err != nil {
		return nil, err
	}
	var post models.Post
	if err := h.doJSON(req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
