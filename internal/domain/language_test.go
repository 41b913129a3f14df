package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code     string
		expected Language
	}{
		{code: "en", expected: English},
		{code: "zh", expected: SimplifiedChinese},
		{code: "jp", expected: Japanese},
		{code: "fr", expected: English},
		{code: "", expected: English},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			lang := ParseLanguage(tt.code)
			assert.Equal(t, tt.expected, lang)
		})
	}
}

func TestLanguage_CodeRoundTrip(t *testing.T) {
	for _, lang := range []Language{English, SimplifiedChinese, Japanese} {
		assert.Equal(t, lang, ParseLanguage(lang.Code()))
	}
	assert.Equal(t, "en", Language(42).Code())
}

func TestLanguageFromAcceptHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected Language
	}{
		{name: "chinese", header: "zh-CN,zh;q=0.9,en;q=0.8", expected: SimplifiedChinese},
		{name: "japanese", header: "jp", expected: Japanese},
		{name: "english", header: "en-US,en;q=0.9", expected: English},
		{name: "missing header", header: "", expected: English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LanguageFromAcceptHeader(tt.header))
		})
	}
}
