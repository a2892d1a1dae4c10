// Package htmlsanitize strips dangerous markup from user-supplied HTML.
//
// Member bios may contain basic formatting; everything else (scripts,
// event handlers, javascript: URLs) is removed before storage.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// Sanitize returns s with unsafe HTML removed. Safe formatting tags and
// links are preserved (links gain rel="nofollow").
func Sanitize(s string) string {
	once.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy.Sanitize(s)
}
