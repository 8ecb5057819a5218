package pipeline

import "github.com/microcosm-cc/bluemonday"

// Sanitizer strips scripts, event handlers and other active content from
// rendered notes before they are embedded next to other files.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer built on bluemonday's UGC policy, widened
// for highlighted code spans, ==marks== and GFM task lists.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("pre", "code", "span", "div", "sup", "section", "li", "a")
	policy.AllowAttrs("type", "checked", "disabled").OnElements("input")
	policy.AllowElements("input", "section", "mark")
	policy.RequireNoFollowOnLinks(true)
	return &Sanitizer{policy: policy}
}

// Sanitize returns the cleaned fragment.
func (s *Sanitizer) Sanitize(fragment string) string {
	return s.policy.Sanitize(fragment)
}
