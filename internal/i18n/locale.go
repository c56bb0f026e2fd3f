package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/AlexZinkM/tos-paper-wallet/internal/i18n/catalog"
)

// DefaultLocaleTag is written to <html lang> for codes outside localeTags.
const DefaultLocaleTag = "en"

// localeTags maps short catalog codes to document locale tags.
var localeTags = map[string]string{
	"en": "en",
	"zh": "zh-CN",
	"ja": "ja",
	"ko": "ko",
	"ar": "ar",
	"bg": "bg",
	"de": "de",
	"es": "es",
	"fr": "fr",
	"hi": "hi",
	"it": "it",
	"ms": "ms",
	"nl": "nl",
	"pl": "pl",
	"pt": "pt",
	"ru": "ru",
	"tr": "tr",
	"uk": "uk",
}

// LocaleTag returns the document locale tag for a short language code.
func LocaleTag(lang string) string {
	if tag, ok := localeTags[lang]; ok {
		return tag
	}
	return DefaultLocaleTag
}

// MatchAcceptLanguage picks the best catalog language for an Accept-Language
// header. The bool is false when nothing matched with any confidence.
func MatchAcceptLanguage(c *catalog.Catalog, header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return "", false
	}

	codes := c.Languages()
	if len(codes) == 0 {
		return "", false
	}
	supported := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		supported = append(supported, language.Make(code))
	}

	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return "", false
	}
	return codes[index], true
}
