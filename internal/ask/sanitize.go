package ask

import "regexp"

// Emphasis markers only; double-delimiter forms must run before single ones
// so ** is not half-eaten by the * pattern. Whitespace and punctuation are
// left untouched.
var emphasisPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\*\*(.+?)\*\*`),
	regexp.MustCompile(`__(.+?)__`),
	regexp.MustCompile(`\*(.+?)\*`),
	regexp.MustCompile(`_(.+?)_`),
}

// Sanitize strips markdown bold/italic markers from explanation text. It is
// applied only to the explanation stage's final output, never to SQL.
func Sanitize(text string) string {
	for _, re := range emphasisPatterns {
		text = re.ReplaceAllString(text, "$1")
	}
	return text
}
