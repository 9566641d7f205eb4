package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseGitHubURL splits https://github.com/<owner>/<name>(.git) into owner and name.
// URLs on any other host are rejected.
func ParseGitHubURL(raw string) (string, string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("invalid repository URL: %w", err)
	}

	host := strings.ToLower(u.Hostname())
	if host != "github.com" && host != "www.github.com" {
		return "", "", fmt.Errorf("repository URL %q is not hosted on github.com", raw)
	}

	// Remove .git suffix if present
	path := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repository URL %q has no owner/name path", raw)
	}
	return parts[0], parts[1], nil
}
