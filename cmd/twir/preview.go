package main

import (
	"fmt"

	"github.com/fwojciec/twir"
	"github.com/fwojciec/twir/fs"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	results := deps.Publisher.LoadAll(deps.Ctx, c.Sources)

	var writer *fs.Writer
	if c.Out != "" {
		writer = fs.NewWriter(c.Out)
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %v\n", r.URL, r.Err)
			continue
		}

		fmt.Fprintln(deps.Stdout, fs.FormatArticle(r.Article))
		fmt.Fprintln(deps.Stdout)

		if writer == nil {
			continue
		}
		path, err := writer.WriteArticle(r.Article)
		if err != nil {
			return fmt.Errorf("archive issue #%d: %w", r.Article.ID, err)
		}
		fmt.Fprintf(deps.Stderr, "Archived issue #%d to %s\n", r.Article.ID, path)
	}

	if failed > 0 {
		return twir.Errorf(twir.EINVALID, "%d of %d issues failed", failed, len(results))
	}
	return nil
}
