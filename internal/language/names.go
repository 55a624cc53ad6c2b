package language

import "strings"

var names = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"ar": "Arabic",
	"hi": "Hindi",
	"vi": "Vietnamese",
}

// Name maps a language code to its English name, or returns the code.
func Name(code string) string {
	if name, ok := names[strings.ToLower(code)]; ok {
		return name
	}
	return code
}
