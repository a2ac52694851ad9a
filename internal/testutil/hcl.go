package testutil

import (
	"path/filepath"
	"strings"
)

// expandDir substitutes the {{dir}} placeholder with a slash-separated
// form of dir, which is safe inside an HCL string literal.
func expandDir(content, dir string) string {
	return strings.ReplaceAll(content, "{{dir}}", filepath.ToSlash(dir))
}
