// Package chatlink builds the deep-link URIs handed to the OS for outreach:
// three WhatsApp variants plus mailto. Pure string construction, no network.
package chatlink

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/phone"
)

// Variant selects which WhatsApp handler the link targets.
type Variant string

const (
	// VariantWeb is the universal link; works without an installed app.
	VariantWeb Variant = "web"
	// VariantApp deep-links straight into an installed WhatsApp.
	VariantApp Variant = "app"
	// VariantBusiness is an Android intent pinned to the Business package.
	VariantBusiness Variant = "business"
)

// ParseVariant maps a query value to a Variant, defaulting to web.
func ParseVariant(s string) Variant {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantApp:
		return VariantApp
	case VariantBusiness:
		return VariantBusiness
	default:
		return VariantWeb
	}
}

// BuildLink constructs the chat URI for one normalized phone number and a
// message body. The number is cleaned via phone.Normalize first, so callers
// can pass raw segments; a malformed number still yields a best-effort URI
// and the resolving app decides whether it is dialable.
func BuildLink(rawNumber, body string, variant Variant) string {
	digits := phone.Digits(rawNumber)
	text := encode(body)

	switch variant {
	case VariantApp:
		return fmt.Sprintf("whatsapp://send?phone=%s&text=%s", digits, text)
	case VariantBusiness:
		return fmt.Sprintf(
			"intent://send?phone=%s&text=%s#Intent;scheme=whatsapp;package=com.whatsapp.w4b;end",
			digits, text)
	default:
		return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", digits, text)
	}
}

// BuildMailto constructs a mailto: URI with percent-encoded subject and body.
func BuildMailto(email, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", email, encode(subject), encode(body))
}

// encode percent-encodes for URI embedding. QueryEscape turns spaces into
// "+", which mail clients and wa.me both render literally, so re-encode
// them as %20.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
