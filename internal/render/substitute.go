// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "strings"

const (
	// DocumentToken is replaced by the converted note.
	DocumentToken = "{document}"
	// TitleToken is replaced by the note title.
	TitleToken = "{title}"
)

// Substitute replaces every literal DocumentToken in tmpl with fragment and
// every literal TitleToken with title, in a single left-to-right pass over
// tmpl. Tokens that appear inside fragment or title are copied verbatim and
// never substituted. A template without tokens is returned unchanged.
func Substitute(tmpl, fragment, title string) string {
	return strings.NewReplacer(DocumentToken, fragment, TitleToken, title).Replace(tmpl)
}
