package domain

import "fmt"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(raw string) (Theme, error) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw), nil
	}
	return "", fmt.Errorf("unknown theme %q", raw)
}

// Opposite flips between the two themes.
func (t Theme) Opposite() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

type Language string

const (
	LanguageEN Language = "en"
	LanguageRU Language = "ru"
	LanguageUZ Language = "uz"
)

func ParseLanguage(raw string) (Language, error) {
	switch Language(raw) {
	case LanguageEN, LanguageRU, LanguageUZ:
		return Language(raw), nil
	}
	return "", fmt.Errorf("unknown language %q", raw)
}
