package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/twir"
)

// IssuePath returns the archive file name for an issue.
// Example: issue 250 → issue-250.txt
func IssuePath(id int) string {
	return fmt.Sprintf("issue-%d.txt", id)
}

// FormatArticle joins the rendered messages of an article, separated by a
// line of dashes so the archive mirrors what was posted.
func FormatArticle(a *twir.Article) string {
	return strings.Join(twir.Messages(a), "\n-----\n")
}

// Writer archives rendered issues as text files in a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArticle writes the rendered article and returns the file path.
func (w *Writer) WriteArticle(a *twir.Article) (string, error) {
	if a.ID <= 0 {
		return "", twir.Errorf(twir.EINVALID, "article ID must be positive")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, IssuePath(a.ID))
	if err := os.WriteFile(fullPath, []byte(FormatArticle(a)), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
