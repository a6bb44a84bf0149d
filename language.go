package diffplus

import (
	"path/filepath"
	"strings"
)

// languageByExt maps lowercase file extensions to display-layer language
// tags. The tag is opaque to the diff core.
var languageByExt = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".jsx":   "jsx",
	".tsx":   "tsx",
	".php":   "php",
	".java":  "java",
	".cpp":   "cpp",
	".c":     "c",
	".cs":    "csharp",
	".rb":    "ruby",
	".go":    "go",
	".rs":    "rust",
	".swift": "swift",
	".kt":    "kotlin",
	".html":  "html",
	".css":   "css",
	".scss":  "scss",
	".sql":   "sql",
	".sh":    "bash",
	".yaml":  "yaml",
	".yml":   "yaml",
	".json":  "json",
	".xml":   "xml",
	".md":    "markdown",
}

// DetectLanguage returns the language tag for a filename based on its
// extension, or "" when the extension is not recognized.
func DetectLanguage(filename string) string {
	return languageByExt[strings.ToLower(filepath.Ext(filename))]
}
