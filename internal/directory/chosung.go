package directory

import "strings"

const (
	hangulBase   = 0xAC00
	hangulLast   = 0xD7A3
	chosungCycle = 588 // 21 medial vowels * 28 finals

	jamoFirst = 'ㄱ'
	jamoLast  = 'ㅎ'
)

var chosungTable = [19]rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

func isHangulSyllable(r rune) bool {
	return r >= hangulBase && r <= hangulLast
}

func isConsonant(r rune) bool {
	return r >= jamoFirst && r <= jamoLast
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Chosung reduces s to its initial consonants. Latin letters and digits are kept
// lower-cased, bare consonants are kept, everything else is dropped.
func Chosung(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case isHangulSyllable(r):
			b.WriteRune(chosungTable[(r-hangulBase)/chosungCycle])
		case isASCIIAlnum(r):
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			b.WriteRune(r)
		case isConsonant(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsChosungQuery reports whether q is non-empty and made only of bare consonants.
func IsChosungQuery(q string) bool {
	if q == "" {
		return false
	}
	for _, r := range q {
		if !isConsonant(r) {
			return false
		}
	}
	return true
}

func containsHangulSyllable(s string) bool {
	for _, r := range s {
		if isHangulSyllable(r) {
			return true
		}
	}
	return false
}
