package news

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// trackingParams are query parameters that identify a referral, not an article.
var trackingParams = map[string]struct{}{ //nolint: gochecknoglobals
	"fbclid": {},
	"gclid":  {},
	"mc_cid": {},
	"mc_eid": {},
	"ref":    {},
}

// NormalizeURL returns the canonical form of an article URL so that the same
// article syndicated with different decorations is stored once:
//   - Lower-case the scheme and host
//   - Clean the path and drop a trailing slash except for the root path
//   - Drop default ports (http:80, https:443)
//   - Remove utm_* and other tracking parameters, sort the rest
//   - Remove the fragment
//
// Only absolute http(s) URLs are accepted.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL %q has no host", raw)
	}

	if u.Path == "" {
		u.Path = "/"
	}
	cleaned := path.Clean(u.Path)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	u.Path = cleaned
	u.RawPath = ""

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	u.Host = host

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			if _, ok := trackingParams[strings.ToLower(k)]; ok || strings.HasPrefix(strings.ToLower(k), "utm_") {
				q.Del(k)

				continue
			}
			sort.Strings(q[k])
		}
		// url.Values.Encode() sorts keys lexicographically
		u.RawQuery = q.Encode()
	}
	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}
