package sanitizer

import (
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"'", "&#x27;",
		"<", "&lt;",
		">", "&gt;",
		"/", "&#x2F;",
		`\`, "&#x5C;",
		"`", "&#96;",
	)

	gmailDomains = map[string]struct{}{
		"gmail.com":      {},
		"googlemail.com": {},
	}

	plusAddressDomains = map[string]struct{}{
		"outlook.com": {},
		"hotmail.com": {},
		"live.com":    {},
		"icloud.com":  {},
		"me.com":      {},
		"mac.com":     {},
	}

	hyphenAddressDomains = map[string]struct{}{
		"yahoo.com":      {},
		"ymail.com":      {},
		"rocketmail.com": {},
	}
)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// EscapeHTML replaces markup-significant characters with HTML entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func lower(s string) string {
	return strings.ToLower(s)
}

// SanitizeText trims and escapes free text taken from a public form.
func SanitizeText(input string) string {
	p := Pipeline{
		Trim,
		EscapeHTML,
	}
	return p.Apply(input)
}

// NormalizeEmail lowercases an address and folds provider-specific aliases
// into the canonical mailbox. Input without exactly one usable "@" is only
// trimmed.
func NormalizeEmail(input string) string {
	s := Trim(input)

	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return s
	}

	original := lower(s)
	local, domain := lower(s[:at]), lower(s[at+1:])

	if _, ok := gmailDomains[domain]; ok {
		local = cutSubaddress(local, "+")
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"
	} else if _, ok := plusAddressDomains[domain]; ok {
		local = cutSubaddress(local, "+")
	} else if _, ok := hyphenAddressDomains[domain]; ok {
		local = cutLastSegment(local, "-")
	}

	if local == "" {
		return original
	}

	return local + "@" + domain
}

func cutSubaddress(local, sep string) string {
	before, _, _ := strings.Cut(local, sep)
	return before
}

// cutLastSegment drops only the final sep-delimited segment.
func cutLastSegment(local, sep string) string {
	i := strings.LastIndex(local, sep)
	if i < 0 {
		return local
	}
	return local[:i]
}
