package platform

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// NewGitHub returns a checker for https://api.github.com/users/{username}.
func NewGitHub(httpClient *http.Client, baseURL string) *Checker {
	return &Checker{
		name:       NameGitHub,
		httpClient: httpClient,
		baseURL:    orDefault(baseURL, "https://api.github.com"),
		endpoint: func(base, username string) string {
			return base + "/users/" + url.PathEscape(username)
		},
		decode: func(body []byte, _ string) (profile, error) {
			var u struct {
				HTMLURL   string `json:"html_url"`
				AvatarURL string `json:"avatar_url"`
			}
			if err := json.Unmarshal(body, &u); err != nil {
				return profile{}, decodeErr(NameGitHub, err)
			}

			return profile{Found: true, ProfileURL: u.HTMLURL, AvatarURL: u.AvatarURL}, nil
		},
	}
}
