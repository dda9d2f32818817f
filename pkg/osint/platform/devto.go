package platform

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// NewDevTo returns a checker for https://dev.to/api/users/by_username?url={username}.
// The API does not return a profile link, it is derived from the username.
func NewDevTo(httpClient *http.Client, baseURL string) *Checker {
	return &Checker{
		name:       NameDevTo,
		httpClient: httpClient,
		baseURL:    orDefault(baseURL, "https://dev.to"),
		endpoint: func(base, username string) string {
			return base + "/api/users/by_username?" + url.Values{"url": {username}}.Encode()
		},
		decode: func(body []byte, username string) (profile, error) {
			var u struct {
				ProfileImage string `json:"profile_image"`
			}
			if err := json.Unmarshal(body, &u); err != nil {
				return profile{}, decodeErr(NameDevTo, err)
			}

			return profile{
				Found:      true,
				ProfileURL: "https://dev.to/" + url.PathEscape(username),
				AvatarURL:  u.ProfileImage,
			}, nil
		},
	}
}
