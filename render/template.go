package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/bgraf/routetracker/geotrack"
)

//go:embed templates
var templateFS embed.FS

func ReadTemplates() (*template.Template, error) {
	templates, err := template.New("").Funcs(MakeTemplateFuncmap()).ParseFS(templateFS, "templates/*")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return templates, nil
}

// WriteMapHTML renders a standalone HTML page showing all routes.
func WriteMapHTML(w io.Writer, coll geotrack.Collection, view View, tiles string) error {
	templates, err := ReadTemplates()
	if err != nil {
		return err
	}

	return templates.ExecuteTemplate(w, "map.html", NewMapPayload(coll, view, tiles))
}
