package language

import (
	"strings"
	"unicode"
)

// Code is a supported document language.
type Code string

const (
	Ukrainian Code = "uk"
	Russian   Code = "ru"
	English   Code = "en"
)

// DefaultCode is the system-wide fallback for unsupported or undetectable
// languages.
const DefaultCode = Ukrainian

// Locale carries the fixed label set and style choices for one language.
// Values are static; Resolve is safe to call repeatedly.
type Locale struct {
	Code Code

	ReportTitle     string
	ConclusionLabel string
	Recommendations string
	ContentsLabel   string
	TranscriptLabel string

	// Style flags. The header row of every table is bold regardless of
	// language; the base font is locale independent.
	HeaderRowBold bool
	BaseFont      string
	BaseFontSize  uint64
}

const (
	baseFont     = "Times New Roman"
	baseFontSize = 13
)

var locales = map[Code]Locale{
	Ukrainian: {
		Code:            Ukrainian,
		ReportTitle:     "Діагностичний звіт",
		ConclusionLabel: "Висновок",
		Recommendations: "Рекомендації",
		ContentsLabel:   "Зміст",
		TranscriptLabel: "Транскрипт",
	},
	Russian: {
		Code:            Russian,
		ReportTitle:     "Диагностический отчет",
		ConclusionLabel: "Заключение",
		Recommendations: "Рекомендации",
		ContentsLabel:   "Содержание",
		TranscriptLabel: "Транскрипт",
	},
	English: {
		Code:            English,
		ReportTitle:     "Diagnostic Report",
		ConclusionLabel: "Conclusion",
		Recommendations: "Recommendations",
		ContentsLabel:   "Table of Contents",
		TranscriptLabel: "Transcript",
	},
}

// Resolve maps a language code to its locale. Any code outside uk/ru/en
// falls back to Ukrainian.
func Resolve(code string) Locale {
	loc, ok := locales[Code(strings.ToLower(strings.TrimSpace(code)))]
	if !ok {
		loc = locales[DefaultCode]
	}
	loc.HeaderRowBold = true
	loc.BaseFont = baseFont
	loc.BaseFontSize = baseFontSize
	return loc
}

// Character classes that separate Ukrainian from Russian orthography.
var (
	ukrainianMarkers = "іїєґІЇЄҐ"
	russianMarkers   = "ыэъёЫЭЪЁ"
)

// Detect guesses the transcript language from character classes. Ukrainian
// and Russian are told apart by letters unique to each alphabet; text with
// no Cyrillic at all is treated as English. Ambiguous input defaults to
// Ukrainian.
func Detect(text string) Code {
	var ukCount, ruCount, cyrillic, latin int

	for _, r := range text {
		switch {
		case strings.ContainsRune(ukrainianMarkers, r):
			ukCount++
			cyrillic++
		case strings.ContainsRune(russianMarkers, r):
			ruCount++
			cyrillic++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case r < 128 && unicode.IsLetter(r):
			latin++
		}
	}

	switch {
	case ukCount > ruCount && ukCount > 0:
		return Ukrainian
	case ruCount > ukCount && ruCount > 0:
		return Russian
	case cyrillic == 0 && latin > 0:
		return English
	default:
		return DefaultCode
	}
}
