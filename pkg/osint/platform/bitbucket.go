package platform

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// NewBitbucket returns a checker for https://api.bitbucket.org/2.0/users/{username}.
func NewBitbucket(httpClient *http.Client, baseURL string) *Checker {
	return &Checker{
		name:       NameBitbucket,
		httpClient: httpClient,
		baseURL:    orDefault(baseURL, "https://api.bitbucket.org"),
		endpoint: func(base, username string) string {
			return base + "/2.0/users/" + url.PathEscape(username)
		},
		decode: func(body []byte, _ string) (profile, error) {
			var u struct {
				Links struct {
					HTML struct {
						Href string `json:"href"`
					} `json:"html"`
					Avatar struct {
						Href string `json:"href"`
					} `json:"avatar"`
				} `json:"links"`
			}
			if err := json.Unmarshal(body, &u); err != nil {
				return profile{}, decodeErr(NameBitbucket, err)
			}

			return profile{Found: true, ProfileURL: u.Links.HTML.Href, AvatarURL: u.Links.Avatar.Href}, nil
		},
	}
}
