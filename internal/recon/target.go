package recon

import (
	"recon/pkg/domain"
	"recon/pkg/serrors"
	"strings"
)

// ParseTarget splits email into the local part and the domain. The address
// must contain exactly one "@" with non-empty text on both sides. Nothing else
// is normalized: the local part is used verbatim as a platform username.
func ParseTarget(email string) (domain.Target, error) {
	if strings.Count(email, "@") != 1 {
		return domain.Target{}, serrors.With(serrors.ErrBadRequest, "email must contain exactly one @")
	}
	local, host, _ := strings.Cut(email, "@")
	if local == "" {
		return domain.Target{}, serrors.With(serrors.ErrBadRequest, "email local part is empty")
	}
	if host == "" {
		return domain.Target{}, serrors.With(serrors.ErrBadRequest, "email domain is empty")
	}

	return domain.Target{Email: email, LocalPart: local, Domain: host}, nil
}
