package backend

// New creates a backend API implementation bound to the given base URL.
// The token source is consulted on every protected request.
func New(baseURL string, endpoints Endpoints, tokens TokenSource) API {
	return newHTTP(baseURL, endpoints, tokens)
}
