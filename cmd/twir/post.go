package main

import (
	"fmt"

	"github.com/fwojciec/twir"
)

// Run executes the post command.
func (c *PostCmd) Run(deps *Dependencies) error {
	article, err := deps.Publisher.Publish(deps.Ctx, c.URL, c.Force)
	if twir.ErrorCode(err) == twir.ECONFLICT {
		fmt.Fprintln(deps.Stderr, "Hint: Use --force to post it again.")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Posted issue #%d (%d messages)\n", article.ID, len(twir.Messages(article)))
	return nil
}
