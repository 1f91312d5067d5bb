package format

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// LinkLabel returns a short human label for a profile or website URL:
// scheme, "www." and trailing slashes are dropped, query and fragment are
// ignored. Input whose host has no registrable domain is returned trimmed.
func LinkLabel(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	u, err := url.Parse(Href(s))
	if err != nil || u.Hostname() == "" {
		return s
	}
	host := strings.ToLower(u.Hostname())
	if _, err := publicsuffix.EffectiveTLDPlusOne(host); err != nil {
		return s
	}
	host = strings.TrimPrefix(host, "www.")
	return host + strings.TrimRight(u.Path, "/")
}

// Href turns a stored link into something usable as an anchor target.
func Href(raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return ""
	case strings.Contains(s, "://"), strings.HasPrefix(s, "mailto:"), strings.HasPrefix(s, "tel:"):
		return s
	}
	return "https://" + s
}

// MailHref returns a mailto: target for an email address.
func MailHref(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

// PhoneHref returns a tel: target keeping only digits and a leading plus.
func PhoneHref(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "tel:" + b.String()
}
