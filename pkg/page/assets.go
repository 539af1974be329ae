package page

import (
	"strings"
)

// InjectStylesheet folds CSS into a rendered document as a <style> block:
// appended inside an existing <head>, inside a synthesized <head> when the
// document has an <html> element but no head, or prepended for fragments.
func InjectStylesheet(document, css string) string {
	css = strings.TrimSpace(css)
	if css == "" {
		return document
	}
	style := "<style>\n" + css + "\n</style>"

	lower := strings.ToLower(document)

	if idx := strings.Index(lower, "</head>"); idx >= 0 {
		return document[:idx] + style + "\n" + document[idx:]
	}

	if idx := strings.Index(lower, "<html"); idx >= 0 {
		if end := strings.Index(lower[idx:], ">"); end >= 0 {
			cut := idx + end + 1
			return document[:cut] + "\n<head>" + style + "</head>" + document[cut:]
		}
	}

	return style + "\n" + document
}
