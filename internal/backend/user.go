package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"nexus/cli/internal/models"
)

// GetMe calls GET /user/me and returns the authenticated user's profile.
func (h *HTTP) GetMe(ctx context.Context) (*models.User, error) {
	req, err := h.newRequest(ctx, http.MethodGet, h.endpoints.Me, nil)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := h.doJSON(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser calls GET /user/{id} and returns a public profile.
func (h *HTTP) GetUser(ctx context.Context, userID string) (*models.User, error) {
	req, err := h.newRequest(ctx, http.MethodGet, fmt.Sprintf(h.endpoints.UserProfile, userID), nil)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := h.doJSON(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile calls PUT /user/me with the partial update payload and
// returns the updated profile.
func (h *HTTP) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (*models.User, error) {
	b, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	req, err := h.newRequest(ctx, http.MethodPut, h.endpoints.Me, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	var user models.User
	if err := h.doJSON(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadAvatar calls PUT /user/avatar with a multipart payload carrying the
// image under the "file" field and returns the updated profile.
func (h *HTTP) UploadAvatar(ctx context.Context, filename string, image io.Reader) (*models.User, error) {
	body, contentType, err := multipartBody(nil, filename, image)
	if err != nil {
		return nil, err
	}
	req, err := h.newRequest(ctx, http.MethodPut, h.endpoints.Avatar, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	var user models.User
	if err := h.doJSON(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Follow calls POST /user/{id}/follow.
func (h *HTTP) Follow(ctx context.Context, userID string) error {
	req, err := h.newRequest(ctx, http.MethodPost, fmt.Sprintf(h.endpoints.Follow, userID), nil)
	if err != nil {
		return err
	}
	return h.doJSON(req, nil)
}

// Unfollow calls DELETE /user/{id}/follow.
func (h *HTTP) Unfollow(ctx context.Context, userID string) error {
	req, err := h.newRequest(ctx, http.MethodDelete, fmt.Sprintf(h.endpoints.Follow, userID), nil)
	if err != nil {
		return err
	}
	return h.doJSON(req, nil)
}
