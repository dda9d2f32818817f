package platform

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// NewGitLab returns a checker for https://gitlab.com/api/v4/users?username={username}.
// The endpoint answers 200 with an empty list for unknown users.
func NewGitLab(httpClient *http.Client, baseURL string) *Checker {
	return &Checker{
		name:       NameGitLab,
		httpClient: httpClient,
		baseURL:    orDefault(baseURL, "https://gitlab.com"),
		endpoint: func(base, username string) string {
			return base + "/api/v4/users?" + url.Values{"username": {username}}.Encode()
		},
		decode: func(body []byte, _ string) (profile, error) {
			var users []struct {
				WebURL    string `json:"web_url"`
				AvatarURL string `json:"avatar_url"`
			}
			if err := json.Unmarshal(body, &users); err != nil {
				return profile{}, decodeErr(NameGitLab, err)
			}
			if len(users) == 0 {
				return profile{}, nil
			}

			return profile{Found: true, ProfileURL: users[0].WebURL, AvatarURL: users[0].AvatarURL}, nil
		},
	}
}
