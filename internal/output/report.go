package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lsdca/strategy-simulator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ExtensionFor maps a canonical formatter name to its file extension.
func ExtensionFor(name string) string {
	switch {
	case name == "console":
		return "txt"
	case strings.Contains(name, "csv"):
		return "csv"
	default:
		return name
	}
}

// GenerateReport formats the comparison and writes it to a timestamped file
// in the working directory. Format "all" writes the console, detailed CSV
// and HTML variants in one go.
func GenerateReport(results *domain.ScenarioComparison, format string) error {
	name := NormalizeFormatName(format)

	if name == "all" {
		for _, f := range []Formatter{ConsoleFormatter{}, CSVDetailedExporter{}, HTMLFormatter{}} {
			if _, err := WriteFormatted(f, results, ExtensionFor(f.Name())); err != nil {
				return err
			}
		}
		return nil
	}

	if f := GetFormatterByName(name); f != nil {
		_, err := WriteFormatted(f, results, ExtensionFor(f.Name()))
		return err
	}

	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes a configuration back out as YAML (used to emit
// the example configuration).
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
