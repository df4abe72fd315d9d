// Package validate contains pure input-format checks shared by the use cases.
package validate

import "regexp"

// emailRx is a permissive RFC-5322-style grammar: a local part of atext
// characters and dots, then a domain of dot-separated labels, or a bracketed
// IPv4 literal. Dotless domains ("user@example") do not match.
var emailRx = regexp.MustCompile(
	"^[A-Za-z0-9!#$%&'*+/=?^_`{|}~.-]+@" +
		"(?:(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\\.)+[A-Za-z]{2,}" +
		"|\\[(?:[0-9]{1,3}\\.){3}[0-9]{1,3}\\])$",
)

// Email reports whether s looks like a deliverable email address.
// Matching is case-insensitive by construction; no side effects.
func Email(s string) bool {
	return emailRx.MatchString(s)
}
