package render

import (
	"fmt"
	"html/template"
)

func MakeTemplateFuncmap() template.FuncMap {
	return template.FuncMap{
		"meters": FormatMeters,
	}
}

// FormatMeters prints a length with two decimals, as shown in route listings.
func FormatMeters(m float64) string {
	return fmt.Sprintf("%.2f meters", m)
}
