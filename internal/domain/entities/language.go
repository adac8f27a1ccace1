package entities

const DefaultLanguage = "en"

var SupportedLanguages = []string{"en", "es"}

// NormalizeLanguage returns lang when it is supported and DefaultLanguage otherwise.
func NormalizeLanguage(lang string) string {
	for _, l := range SupportedLanguages {
		if l == lang {
			return lang
		}
	}
	return DefaultLanguage
}
