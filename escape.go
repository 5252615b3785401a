package twir

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces the characters that are significant to the message markup
// (ampersand and angle brackets) with their entity form.
// It is not idempotent: escaping "&amp;" again yields "&amp;amp;".
func Escape(raw string) string {
	return escaper.Replace(raw)
}
