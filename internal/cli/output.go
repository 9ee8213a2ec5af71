package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"xatsw/internal/config"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the supported output formats for listing commands.
type OutputFormat string

const (
	// OutputFormatText prints "name -> path" lines
	OutputFormatText OutputFormat = "text"
	// OutputFormatTable prints a bordered table
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON prints a JSON array
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML prints a YAML sequence
	OutputFormatYAML OutputFormat = "yaml"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatText,
	OutputFormatTable,
	OutputFormatJSON,
	OutputFormatYAML,
}

// ValidateOutputFormat validates that the given format string is a supported output format.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case OutputFormatText, OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (valid: text, table, json, yaml)", format)
	}
}

// StorageEntry is one row of the storage listing.
type StorageEntry struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Current bool   `json:"current" yaml:"current"`
}

// StorageEntries flattens the registry into entries sorted by name.
func StorageEntries(cfg *config.Config) []StorageEntry {
	entries := make([]StorageEntry, 0, cfg.Len())
	for _, name := range cfg.Names() {
		path, _ := cfg.Lookup(name)
		entries = append(entries, StorageEntry{
			Name:    name,
			Path:    path,
			Current: name == cfg.CurrentStorage,
		})
	}
	return entries
}

// RenderStorages writes the registry to w in the requested format.
func RenderStorages(w io.Writer, cfg *config.Config, format OutputFormat) error {
	entries := StorageEntries(cfg)

	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case OutputFormatYAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(data)
		return err

	case OutputFormatTable:
		if len(entries) == 0 {
			return nil
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"CURRENT", "NAME", "PATH"})
		for _, e := range entries {
			current := ""
			if e.Current {
				current = "*"
			}
			t.AppendRow(table.Row{current, e.Name, e.Path})
		}
		t.Render()
		return nil

	case OutputFormatText, "":
		for _, e := range entries {
			line := fmt.Sprintf("%s -> %s", e.Name, e.Path)
			if e.Current {
				line += " (default)"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil

	default:
		return ValidateOutputFormat(string(format))
	}
}
