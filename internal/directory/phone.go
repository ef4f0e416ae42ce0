package directory

import (
	"strings"
	"unicode"
)

const (
	countryCodePrefix = "+82"
	mobilePrefix      = "010"

	phoneLabel     = "Phone : "
	extensionLabel = "EXT : "
	canonicalExt   = "EXT:"
)

// parseExtension extracts the extension from "<office> x<ext>" forms such as
// "582 x400" and "582x400".
func parseExtension(raw, officeCode string) (string, bool) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, officeCode) {
		return "", false
	}
	s = strings.TrimLeftFunc(s[len(officeCode):], unicode.IsSpace)
	if s == "" || (s[0] != 'x' && s[0] != 'X') {
		return "", false
	}
	ext := strings.TrimSpace(s[1:])
	if ext == "" {
		return "", false
	}
	for _, r := range ext {
		if !isASCIIAlnum(r) && r != '-' {
			return "", false
		}
	}
	return ext, true
}

// IsExtension reports whether raw is an internal extension number.
func IsExtension(raw string, opts Options) bool {
	_, ok := parseExtension(raw, opts.officeCode())
	return ok
}

func formatMobile(digits string) (string, bool) {
	if !strings.HasPrefix(digits, mobilePrefix) {
		return "", false
	}
	switch len(digits) {
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:], true
	case 10:
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:], true
	}
	return "", false
}

// displayPhone returns the unlabeled display form and whether raw is an extension.
func displayPhone(raw string, opts Options) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if ext, ok := parseExtension(s, opts.officeCode()); ok {
		return ext, true
	}

	collapsed := strings.Join(strings.Fields(s), " ")
	if strings.HasPrefix(collapsed, countryCodePrefix) {
		d := OnlyDigits(collapsed[len(countryCodePrefix):])
		if strings.HasPrefix(d, "10") {
			d = "0" + d
		}
		if formatted, ok := formatMobile(d); ok {
			return formatted, false
		}
		return d, false
	}

	if formatted, ok := formatMobile(OnlyDigits(s)); ok {
		return formatted, false
	}
	return s, false
}

// FormatPhone renders a raw phone string for display.
//
//	"582 x400"          -> "400"            ("EXT : 400" with LabelExtension)
//	"+82 10-5755-2576"  -> "010-5755-2576"  ("Phone : 010-..." with LabelPhone)
//	"01057552576"       -> "010-5755-2576"
//
// Other country-code numbers reduce to their digits without the +82
// ("+82 2-1234-5678" -> "212345678"). Anything else is returned trimmed but
// otherwise unchanged.
func FormatPhone(raw string, opts Options) string {
	display, ext := displayPhone(raw, opts)
	if display == "" {
		return ""
	}
	if ext {
		if opts.LabelExtension {
			return extensionLabel + display
		}
		return display
	}
	if opts.LabelPhone && strings.HasPrefix(display, mobilePrefix+"-") {
		return phoneLabel + display
	}
	return display
}

// CanonicalPhone strips formatting for duplicate detection: "EXT:<value>" for
// extensions, otherwise the digits of the display form.
func CanonicalPhone(raw string, opts Options) string {
	display, ext := displayPhone(raw, opts)
	if ext {
		return canonicalExt + display
	}
	return OnlyDigits(display)
}

// ShowSecondaryPhone decides whether a secondary phone is worth displaying next
// to the primary one. It is hidden when blank or when it duplicates a
// non-extension primary.
func ShowSecondaryPhone(primary, secondary string, opts Options) bool {
	if strings.TrimSpace(secondary) == "" {
		return false
	}
	if IsExtension(primary, opts) {
		return true
	}
	return CanonicalPhone(primary, opts) != CanonicalPhone(secondary, opts)
}
