package profile

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// DefaultSuggestionTemplate names extracted profiles after the current time.
const DefaultSuggestionTemplate = `save-{{ now | date "20060102-150405" }}`

// SuggestionData is available to suggestion templates.
type SuggestionData struct {
	// Storage is the name of the storage, empty for an unregistered directory.
	Storage string
	// StorageDir is the storage directory path.
	StorageDir string
}

// RenderSuggestion executes tmpl with the sprig function map. An empty
// template renders to an empty suggestion.
func RenderSuggestion(tmpl string, data SuggestionData) (string, error) {
	if strings.TrimSpace(tmpl) == "" {
		return "", nil
	}

	t, err := template.New("suggestion").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse name template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render name template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
