package domain

import "strings"

// Language is a supported interface language
type Language int

const (
	English Language = iota
	SimplifiedChinese
	Japanese
)

var (
	languageCodes = map[Language]string{
		English:           "en",
		SimplifiedChinese: "zh",
		Japanese:          "jp",
	}
	languagesByCode = map[string]Language{
		"en": English,
		"zh": SimplifiedChinese,
		"jp": Japanese,
	}
)

// Code returns the short language code used in tokens
func (l Language) Code() string {
	if code, ok := languageCodes[l]; ok {
		return code
	}
	return languageCodes[English]
}

// String returns the language code
func (l Language) String() string {
	return l.Code()
}

// ParseLanguage maps a code to a Language, falling back to English
func ParseLanguage(code string) Language {
	if l, ok := languagesByCode[code]; ok {
		return l
	}
	return English
}

// LanguageFromAcceptHeader picks a language from an Accept-Language value
func LanguageFromAcceptHeader(header string) Language {
	switch {
	case strings.Contains(header, "zh"):
		return SimplifiedChinese
	case strings.Contains(header, "jp"):
		return Japanese
	default:
		return English
	}
}
