package backend

import (
	"context"
	"strings"

	nexuserrors "nexus/cli/internal/errors"
)

// Login calls POST /auth/login. The identifier is sent as "email" when it
// contains an "@" and as "username" otherwise, matching the backend's DTO.
// Returns the issued bearer access token.
func (h *HTTP) Login(ctx context.Context, identifier, password string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", nexuserrors.New(nexuserrors.Validation, "identifier and password are required")
	}

	body := map[string]string{"password": password}
	if strings.Contains(identifier, "@") {
		body["email"] = identifier
	} else {
		body["username"] = identifier
	}

	var out struct {
		AccessToken string `json:"access_token"`
		Token       string `json:"token"`
	}
	if err := h.postJSON(ctx, h.endpoints.Login, body, &out); err != nil {
		return "", err
	}
	token := out.AccessToken
	if token == "" {
		token = out.Token
	}
	if token == "" {
		return "", nexuserrors.New(nexuserrors.Validation, "login response carried no access token")
	}
	return token, nil
}

// Register calls POST /auth/register. Required fields are checked before
// dispatch so an obviously incomplete payload never reaches the network.
func (h *HTTP) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	switch {
	case username == "":
		return nexuserrors.New(nexuserrors.Validation, "username is required")
	case email == "" || !strings.Contains(email, "@"):
		return nexuserrors.New(nexuserrors.Validation, "a valid email is required")
	case password == "":
		return nexuserrors.New(nexuserrors.Validation, "password is required")
	}

	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	return h.postJSON(ctx, h.endpoints.Register, body, nil)
}
