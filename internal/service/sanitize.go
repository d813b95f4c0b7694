package service

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// sanitizeText strips any markup from user-supplied text. Guestbook entries
// end up on a public page, so tags never reach storage. The unescape restores
// plain-text characters the policy entity-encodes (&, <, quotes).
func sanitizeText(s string) string {
	return html.UnescapeString(textPolicy.Sanitize(s))
}
