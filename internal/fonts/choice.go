package fonts

import "strings"

// Generic fallback keywords.
const (
	GenericSansSerif = "sans-serif"
	GenericMonospace = "monospace"
)

// Choice is a selected font.
type Choice struct {
	Family  string
	Generic bool
}

// Concrete returns a Choice for a named family. Surrounding quotes and
// whitespace are stripped so stored values are never double-quoted.
func Concrete(family string) Choice {
	family = strings.TrimSpace(family)
	if len(family) >= 2 && family[0] == '"' && family[len(family)-1] == '"' {
		family = strings.TrimSpace(family[1 : len(family)-1])
	}
	return Choice{Family: family}
}

// GenericChoice returns a Choice for a generic keyword.
func GenericChoice(token string) Choice {
	return Choice{Family: token, Generic: true}
}

// String renders the choice for the styling layer.
func (c Choice) String() string {
	if c.Generic {
		return c.Family
	}
	return `"` + c.Family + `"`
}
