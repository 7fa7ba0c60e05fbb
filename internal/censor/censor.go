// Package censor masks contact details in free-text listing descriptions:
// messaging-app handles, phone numbers, email addresses, fiscal codes and
// VAT numbers. Location references are left untouched so zone inference
// still works on censored text.
package censor

import "regexp"

// Placeholders substituted for each category of match.
const (
	PlaceholderMessaging  = "[MESSAGING CONTACT CENSORED]"
	PlaceholderEmail      = "[EMAIL CENSORED]"
	PlaceholderFiscalCode = "[FISCAL CODE CENSORED]"
	PlaceholderVAT        = "[VAT NUMBER CENSORED]"
	PlaceholderPhone      = "[PHONE NUMBER CENSORED]"
)

// Stats counts the sensitive items found in a text, per category.
type Stats struct {
	MessagingContacts int `json:"messaging_contacts"`
	PhoneNumbers      int `json:"phone_numbers"`
	Emails            int `json:"emails"`
	FiscalCodes       int `json:"fiscal_codes"`
	VATNumbers        int `json:"vat_numbers"`
}

// Total returns the number of censored items across all categories.
func (s Stats) Total() int {
	return s.MessagingContacts + s.PhoneNumbers + s.Emails + s.FiscalCodes + s.VATNumbers
}

// Censor holds the compiled pattern tables. Construction panics on an
// invalid table; after that every method is a pure function over the text.
type Censor struct {
	messaging []*regexp.Regexp
	phone     []*regexp.Regexp
}

// New compiles the pattern tables for the supported numbering plans.
func New() *Censor {
	return &Censor{
		messaging: messagingPatterns(),
		phone:     phonePatterns(),
	}
}

// Redact returns text with all sensitive matches replaced by placeholders.
// Empty input comes back unchanged. Censoring is best effort and never fails.
//
// The pass order is load-bearing: messaging patterns run before the bare
// phone pass so a "whatsapp 632338093" phrase is consumed whole instead of
// leaving the keyword dangling next to a phone placeholder, and the phone
// pass runs last so it cannot see digits inside earlier replacements.
func (c *Censor) Redact(text string) string {
	if text == "" {
		return text
	}

	for _, re := range c.messaging {
		text = re.ReplaceAllString(text, PlaceholderMessaging)
	}

	text = emailPattern.ReplaceAllString(text, PlaceholderEmail)
	text = fiscalCodePattern.ReplaceAllString(text, PlaceholderFiscalCode)

	text = vatCandidatePattern.ReplaceAllStringFunc(text, func(m string) string {
		if isVATNumber(m) {
			return PlaceholderVAT
		}
		return m
	})

	for _, re := range c.phone {
		text = re.ReplaceAllString(text, PlaceholderPhone)
	}

	return text
}

// HasSensitiveData reports whether the text carries contact details.
// Slightly broader than Redact: fiscal codes are detected in any case
// while only the canonical uppercase form gets replaced.
func (c *Censor) HasSensitiveData(text string) bool {
	if text == "" {
		return false
	}

	for _, re := range c.messaging {
		if re.MatchString(text) {
			return true
		}
	}
	for _, re := range c.phone {
		if re.MatchString(text) {
			return true
		}
	}
	if emailPattern.MatchString(text) || fiscalCodeLoosePattern.MatchString(text) {
		return true
	}
	for _, m := range vatCandidatePattern.FindAllString(text, -1) {
		if isVATNumber(m) {
			return true
		}
	}
	return false
}

// Stats analyzes the text without modifying it and returns per-category
// counts. Messaging matches are stripped from a scratch copy before counting
// phones, so a number already claimed by a messaging pattern is not counted
// twice.
func (c *Censor) Stats(text string) Stats {
	var stats Stats
	if text == "" {
		return stats
	}

	scratch := text
	for _, re := range c.messaging {
		stats.MessagingContacts += len(re.FindAllString(scratch, -1))
		scratch = re.ReplaceAllString(scratch, "")
	}

	for _, re := range c.phone {
		matches := re.FindAllString(scratch, -1)
		stats.PhoneNumbers += len(matches)
		scratch = re.ReplaceAllString(scratch, "")
	}

	stats.Emails = len(emailPattern.FindAllString(text, -1))
	stats.FiscalCodes = len(fiscalCodePattern.FindAllString(text, -1))
	for _, m := range vatCandidatePattern.FindAllString(text, -1) {
		if isVATNumber(m) {
			stats.VATNumbers++
		}
	}

	return stats
}
