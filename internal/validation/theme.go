package validation

import (
	"encoding/json"
	"slices"

	"healthmonitor/internal/domain"
)

func ParseTheme(s string) (domain.Theme, error) {
	t := domain.Theme(s)
	if !slices.Contains(domain.Themes, t) {
		return "", ErrUnknownTheme
	}
	return t, nil
}

// ThemeFromBody extracts the theme field from a request body. Anything that is
// not a JSON object with a string theme yields an empty string.
func ThemeFromBody(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	var theme string
	if err := json.Unmarshal(fields["theme"], &theme); err != nil {
		return ""
	}
	return theme
}
