package censor

import (
	"fmt"
	"regexp"
	"strings"
)

// numberingScheme describes one regional mobile-numbering plan. Phone and
// messaging patterns are generated from this table instead of being written
// out by hand per separator style.
type numberingScheme struct {
	name        string
	countryCode string // dialing prefix without the plus sign
	lead        string // leading digit(s) of the mobile range, regex fragment
	groups      []int  // digit group sizes of the grouped form, lead included in the first
	compact     []int  // total digit counts of the ungrouped forms, lead included
}

// The two plans the feeds actually carry. Separator tolerance (space, dot,
// hyphen, single or repeated) is identical across schemes, so it lives in the
// generator rather than the table.
var schemes = []numberingScheme{
	{
		name:        "it-mobile",
		countryCode: "39",
		lead:        "3",
		groups:      []int{3, 3, 4},
		compact:     []int{9, 10},
	},
	{
		name:        "es-mobile",
		countryCode: "34",
		lead:        "[67]",
		groups:      []int{3, 3, 3},
		compact:     []int{9},
	},
}

// sep matches the separator between digit groups: optional runs of
// whitespace around an optional dot, hyphen or space.
const sep = `\s*[-.\s]?`

var messagingKeyword = `\b(?:whatsapp|telegram|wa|tg)\s*:?\s*`

// groupedNumber renders the spaced/dotted/hyphenated form of a scheme,
// e.g. 3\d{2}\s*[-.\s]?\d{3}\s*[-.\s]?\d{4} for the Italian plan.
// The first group tolerates surrounding parentheses, a common way of
// setting off the mobile prefix.
func (s numberingScheme) groupedNumber() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`\(?%s\d{%d}\)?`, s.lead, s.groups[0]-1))
	for _, g := range s.groups[1:] {
		b.WriteString(sep)
		b.WriteString(fmt.Sprintf(`\d{%d}`, g))
	}
	return b.String()
}

// compactNumbers renders the unseparated forms, one per total length.
func (s numberingScheme) compactNumbers() []string {
	out := make([]string, 0, len(s.compact))
	for _, total := range s.compact {
		out = append(out, fmt.Sprintf(`%s\d{%d}`, s.lead, total-1))
	}
	return out
}

// countryPrefix renders the optional international prefix, tolerated with or
// without the plus sign and with or without parentheses,
// e.g. (?:\(?\+39\)?\s*)?(?:39\s*)?.
func (s numberingScheme) countryPrefix() string {
	return fmt.Sprintf(`(?:\(?\+%s\)?\s*)?(?:%s\s*)?`, s.countryCode, s.countryCode)
}

// phonePatterns generates the full union of phone regexes for every scheme:
// grouped and compact forms, each with and without the country prefix. The
// union is deliberately over-inclusive; every alternative bottoms out at nine
// digits or more, so shorter numeric tokens such as prices can never match.
func phonePatterns() []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, s := range schemes {
		forms := append([]string{s.groupedNumber()}, s.compactNumbers()...)
		for _, form := range forms {
			out = append(out,
				regexp.MustCompile(`(?i)`+s.countryPrefix()+form+`\b`),
				regexp.MustCompile(`(?i)\b`+form+`\b`),
			)
		}
	}
	return out
}

// messagingPatterns generates the keyword-prefixed variants. These must be
// applied before the bare phone pass so the keyword and number are consumed
// as a single messaging contact.
func messagingPatterns() []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, s := range schemes {
		forms := append([]string{s.groupedNumber()}, s.compactNumbers()...)
		alternation := `(?:` + strings.Join(forms, `|`) + `)`
		out = append(out, regexp.MustCompile(
			`(?i)`+messagingKeyword+s.countryPrefix()+alternation+`\b`,
		))
	}
	return out
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Italian codice fiscale: 6 letters, 2 digits, letter, 2 digits, letter,
	// 3 digits, letter. 16 characters total. Redaction only takes the
	// canonical uppercase form; detection also accepts lowercase.
	fiscalCodePattern      = regexp.MustCompile(`\b[A-Z]{6}\d{2}[A-Z]\d{2}[A-Z]\d{3}[A-Z]\b`)
	fiscalCodeLoosePattern = regexp.MustCompile(`(?i)\b[A-Z]{6}\d{2}[A-Z]\d{2}[A-Z]\d{3}[A-Z]\b`)

	// Candidate Italian VAT numbers. RE2 has no lookahead, so the exclusion
	// of phone-shaped 11-digit runs (leading 3, 6 or 7) happens at match time
	// via isVATNumber.
	vatCandidatePattern = regexp.MustCompile(`\b\d{11}\b`)
)

// isVATNumber reports whether an 11-digit candidate should be treated as a
// VAT number rather than left for the phone pass.
func isVATNumber(digits string) bool {
	switch digits[0] {
	case '3', '6', '7':
		return false
	}
	return true
}
