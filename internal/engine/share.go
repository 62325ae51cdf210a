package engine

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/TeQuac/Gratulations/internal/config"
	"github.com/TeQuac/Gratulations/internal/model"
)

// MailtoLink builds a mailto URL carrying the wish as subject and body.
// It returns "" when the contact has no email address.
func MailtoLink(c model.Contact, wishText string) string {
	if c.Email == "" {
		return ""
	}
	subject := fmt.Sprintf(config.FormatMailSubject, c.PersonName)
	return config.SchemeMailto + c.Email +
		"?subject=" + encodeComponent(subject) +
		"&body=" + encodeComponent(wishText)
}

// WhatsAppLink builds a wa.me URL with the wish prefilled. It returns ""
// when the contact has no phone number or the number contains no digits.
func WhatsAppLink(c model.Contact, wishText string) string {
	phone := NormalizePhone(c.WhatsApp)
	if phone == "" {
		return ""
	}
	return config.WhatsAppBase + phone + "?text=" + encodeComponent(wishText)
}

// NormalizePhone strips every non-digit character, turning numbers like
// "+49 151 234-5678" into the bare digit form wa.me expects.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeComponent percent-encodes like JavaScript's encodeURIComponent:
// spaces become %20, not '+', so the text survives mailto and wa.me clients.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
