package censor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact_ItalianMobileSeparatorStyles(t *testing.T) {
	c := New()

	// Cartesian coverage of the separator styles the generator claims to
	// support for the 3-prefix plan.
	numbers := []string{
		"333 123 4567",
		"333.123.4567",
		"333-123-4567",
		"333  123  4567",
		"3331234567",
		"333123456",
		"+39 333 123 4567",
		"+39 3331234567",
		"39 333 123 4567",
		"(333) 123 4567",
		"(+39) 333 123 4567",
	}

	for _, number := range numbers {
		t.Run(number, func(t *testing.T) {
			text := "Chiamami al " + number + " per info"

			redacted := c.Redact(text)

			assert.Contains(t, redacted, PlaceholderPhone)
			assert.NotContains(t, redacted, number)
			assert.True(t, c.HasSensitiveData(text))
		})
	}
}

func TestRedact_SpanishMobileSeparatorStyles(t *testing.T) {
	c := New()

	numbers := []string{
		"632 338 093",
		"632.338.093",
		"632-338-093",
		"632338093",
		"+34 632 338 093",
		"712345678",
		"712 345 678",
	}

	for _, number := range numbers {
		t.Run(number, func(t *testing.T) {
			text := "Escribe al " + number + " solo llamadas"

			redacted := c.Redact(text)

			assert.Contains(t, redacted, PlaceholderPhone)
			assert.True(t, c.HasSensitiveData(text))
		})
	}
}

func TestRedact_PricesAreNeverRedacted(t *testing.T) {
	c := New()

	texts := []string{
		"Habitación por 400 al mes",
		"Precio 350€ todo incluido",
		"650€/mes gastos incluidos",
		"Fianza de 1200 y un mes por adelantado",
		"Piso de 85m2, 3 habitaciones, 2 baños",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, text, c.Redact(text))
			assert.False(t, c.HasSensitiveData(text))
		})
	}
}

func TestRedact_MessagingContactConsumedWhole(t *testing.T) {
	c := New()

	text := "Hola buenas tengo una habitacion disponible para el mes de septiembre " +
		"precio 400 todo incluido, para mas informcion escriba solo al whatsApp 632338093"

	redacted := c.Redact(text)

	assert.Contains(t, redacted, PlaceholderMessaging)
	assert.NotContains(t, redacted, PlaceholderPhone)
	assert.NotContains(t, redacted, "632338093")
	// The price survives.
	assert.Contains(t, redacted, "400")
}

func TestRedact_MessagingVariants(t *testing.T) {
	c := New()

	cases := []string{
		"whatsapp 632338093",
		"WhatsApp: 632 338 093",
		"telegram 3331234567",
		"wa: +34 612345678",
		"tg 345 678 9012",
	}

	for _, text := range cases {
		t.Run(text, func(t *testing.T) {
			redacted := c.Redact(text)

			assert.Equal(t, PlaceholderMessaging, redacted)
		})
	}
}

func TestRedact_Email(t *testing.T) {
	c := New()

	redacted := c.Redact("Contact me at mario.rossi@gmail.com or call +39 333 123 4567")

	assert.Contains(t, redacted, PlaceholderEmail)
	assert.Contains(t, redacted, PlaceholderPhone)
	assert.NotContains(t, redacted, "mario.rossi@gmail.com")
}

func TestRedact_FiscalCode(t *testing.T) {
	c := New()

	redacted := c.Redact("Il mio codice fiscale RSSMRA85M01H501Z per il contratto")

	assert.Contains(t, redacted, PlaceholderFiscalCode)
	assert.NotContains(t, redacted, "RSSMRA85M01H501Z")
}

func TestHasSensitiveData_LowercaseFiscalCodeDetected(t *testing.T) {
	c := New()

	text := "codice fiscale rssmra85m01h501z"

	// Detection accepts any case, redaction only the uppercase form.
	assert.True(t, c.HasSensitiveData(text))
	assert.Equal(t, text, c.Redact(text))
}

func TestRedact_VATNumber(t *testing.T) {
	c := New()

	// 11 digits not starting with a mobile prefix digit.
	redacted := c.Redact("Partita IVA 12345678901 intestata alla società")

	assert.Contains(t, redacted, PlaceholderVAT)
	assert.NotContains(t, redacted, "12345678901")
}

func TestRedact_VATExcludesPhoneShapedRuns(t *testing.T) {
	c := New()

	// 11 digits starting with 3: phone territory, must not become a VAT.
	redacted := c.Redact("chiama 33312345678 subito")

	assert.NotContains(t, redacted, PlaceholderVAT)
}

func TestRedact_EmptyInput(t *testing.T) {
	c := New()

	assert.Equal(t, "", c.Redact(""))
	assert.False(t, c.HasSensitiveData(""))
	assert.Equal(t, Stats{}, c.Stats(""))
}

func TestRedact_Idempotent(t *testing.T) {
	c := New()

	texts := []string{
		"whatsapp 632338093 o chiama 333 123 4567",
		"mario.rossi@gmail.com / RSSMRA85M01H501Z / 12345678901",
		"niente di sensibile, 400€ al mese",
	}

	for _, text := range texts {
		once := c.Redact(text)
		twice := c.Redact(once)

		assert.Equal(t, once, twice, "Redact must be idempotent for %q", text)
	}
}

func TestStats_MessagingNotDoubleCountedAsPhone(t *testing.T) {
	c := New()

	stats := c.Stats("Hola... whatsApp 632338093")

	assert.Equal(t, 1, stats.MessagingContacts)
	assert.Equal(t, 0, stats.PhoneNumbers)
	assert.Equal(t, 1, stats.Total())
}

func TestStats_CountsPerCategory(t *testing.T) {
	c := New()

	text := "whatsapp 632338093, llama al 641919781 o escribe a test@example.com"

	stats := c.Stats(text)

	assert.Equal(t, 1, stats.MessagingContacts)
	assert.Equal(t, 1, stats.PhoneNumbers)
	assert.Equal(t, 1, stats.Emails)
	assert.Equal(t, 3, stats.Total())
}

func TestRedact_RealListingSamples(t *testing.T) {
	c := New()

	// Samples lifted from actual feed content.
	samples := map[string]string{
		"Alquilo habitación en igualada para alquilar ya 603597082": PlaceholderPhone,
		"Se alquila habitación individual, 400€ con todos los gastos incluidos. 641919781 solo llamadas.": PlaceholderPhone,
	}

	for text, placeholder := range samples {
		redacted := c.Redact(text)

		require.Contains(t, redacted, placeholder)
		assert.True(t, strings.Contains(redacted, "400€") || !strings.Contains(text, "400€"))
	}
}
