package translate

import "sort"

// Language pairs a translation code with its display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages maps every translation target this package accepts to
// its display name. Requests for codes outside this table return the input
// text unchanged.
var SupportedLanguages = map[string]string{
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"pt":    "Portuguese",
	"nl":    "Dutch",
	"pl":    "Polish",
	"ru":    "Russian",
	"ar":    "Arabic",
	"hi":    "Hindi",
	"ta":    "Tamil",
	"te":    "Telugu",
	"bn":    "Bengali",
	"mr":    "Marathi",
	"zh-CN": "Chinese (Simplified)",
	"zh-TW": "Chinese (Traditional)",
	"ja":    "Japanese",
	"ko":    "Korean",
	"vi":    "Vietnamese",
	"th":    "Thai",
	"id":    "Indonesian",
	"tr":    "Turkish",
	"sv":    "Swedish",
	"da":    "Danish",
	"fi":    "Finnish",
	"no":    "Norwegian",
	"cs":    "Czech",
	"el":    "Greek",
	"he":    "Hebrew",
	"ro":    "Romanian",
	"uk":    "Ukrainian",
}

// IsSupported reports whether the code is a valid translation target.
func IsSupported(code string) bool {
	_, ok := SupportedLanguages[code]
	return ok
}

// Supported returns the language table as a slice sorted by code.
func Supported() []Language {
	langs := make([]Language, 0, len(SupportedLanguages))
	for code, name := range SupportedLanguages {
		langs = append(langs, Language{Code: code, Name: name})
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Code < langs[j].Code })
	return langs
}
