package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/twir"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	issues, err := deps.Issues.FindIssues(deps.Ctx, twir.IssueFilter{Limit: c.Limit})
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		fmt.Fprintln(deps.Stdout, "No issues posted yet. Use 'twir post' to post one.")
		return nil
	}

	for _, i := range issues {
		fmt.Fprintf(deps.Stdout, "#%d  %s  posted %s  %s\n", i.ID, i.Date, i.PostedAt.Format(time.DateOnly), i.Link)
	}

	return nil
}
