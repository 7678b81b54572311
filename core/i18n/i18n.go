package i18n

import "strings"

// DefaultLanguage matches the original UI default.
const DefaultLanguage = "fr"

// Languages returns the supported language codes.
func Languages() []string {
	return []string{"fr", "en", "ar"}
}

// T resolves a dotted key (e.g. "table.columns.product") for a language.
// Unknown languages return the key as-is; a key that resolves partway falls
// back to its last path segment. Either way the caller always gets a string
// it can render.
func T(lang, key string) string {
	if lang == "" || key == "" {
		return key
	}
	table, ok := translations[lang]
	if !ok {
		return key
	}
	parts := strings.Split(key, ".")
	var node interface{} = table
	for _, part := range parts {
		m, ok := node.(map[string]interface{})
		if !ok {
			return parts[len(parts)-1]
		}
		node, ok = m[part]
		if !ok {
			return parts[len(parts)-1]
		}
	}
	if s, ok := node.(string); ok {
		return s
	}
	return parts[len(parts)-1]
}

// Translator binds a language, so call sites read like the original
// translate(key) helper.
func Translator(lang string) func(key string) string {
	if _, ok := translations[lang]; !ok {
		lang = DefaultLanguage
	}
	return func(key string) string {
		return T(lang, key)
	}
}
