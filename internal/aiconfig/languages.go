package aiconfig

// Language describes one supported response language.
type Language struct {
	Name        string // native display name
	Code        string // ISO 639-1 code
	Instruction string // directive appended to system messages
	Direction   string // "ltr" or "rtl"
}

// DefaultLanguageCode is used whenever a language name or code is missing
// or unrecognized.
const DefaultLanguageCode = "en"

var languages = map[string]Language{
	"en": {
		Name:        "English",
		Code:        "en",
		Instruction: "Respond in English.",
		Direction:   "ltr",
	},
	"de": {
		Name:        "Deutsch",
		Code:        "de",
		Instruction: "Antworte auf Deutsch.",
		Direction:   "ltr",
	},
	"ar": {
		Name:        "العربية",
		Code:        "ar",
		Instruction: "Respond in Arabic (العربية). Use proper Arabic script.",
		Direction:   "rtl",
	},
	"fr": {
		Name:        "Français",
		Code:        "fr",
		Instruction: "Répondez en français.",
		Direction:   "ltr",
	},
}

// Language names as presented by the onboarding questionnaire.
var languageNameToCode = map[string]string{
	"English":           "en",
	"Deutsch":           "de",
	"العربية (Arabic)":  "ar",
	"Français":          "fr",
}

// CodeForName converts a questionnaire language name to its code.
// Unknown names fall back to English.
func CodeForName(name string) string {
	if code, ok := languageNameToCode[name]; ok {
		return code
	}
	return DefaultLanguageCode
}

// LanguageFor returns the language entry for a code, falling back to English
// for missing or unsupported codes.
func LanguageFor(code string) Language {
	if lang, ok := languages[code]; ok {
		return lang
	}
	return languages[DefaultLanguageCode]
}

// InstructionFor returns the response-language directive for a code.
func InstructionFor(code string) string {
	return LanguageFor(code).Instruction
}

// SupportedLanguages lists the selectable languages in questionnaire order.
func SupportedLanguages() []Language {
	return []Language{languages["en"], languages["de"], languages["ar"], languages["fr"]}
}
