package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an output file format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatNMap Format = "nmap"
)

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatNMap:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q: must be 'png' or 'nmap'", s)
	}
}

// ResolveFormat returns explicit when it is set and otherwise infers the
// format from the extension of path.
func ResolveFormat(path, explicit string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer output format of %q: no file extension and no format given", path)
	}
	return ParseFormat(ext)
}
