package api

import "strings"

// ResolveImageURL builds a display URL for an image path returned by the API.
// Absolute URLs pass through unchanged; relative paths resolve against the
// API origin with a trailing /api segment stripped (static files are served
// from the origin root, not under the API prefix).
func (c *Client) ResolveImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	origin := strings.TrimSuffix(c.baseURL, "/api")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return origin + path
}
