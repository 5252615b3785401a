package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/twir"
	"github.com/fwojciec/twir/publish"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Publisher *publish.Publisher
	Issues    twir.IssueStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Layout  string `type:"path" env:"TWIR_LAYOUT" help:"YAML file overriding section heading ids"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Preview PreviewCmd `cmd:"" help:"Render issues without posting them"`
	Post    PostCmd    `cmd:"" help:"Post an issue to the Telegram channel"`
	History HistoryCmd `cmd:"" help:"List issues already posted"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Sources     []string `arg:"" help:"Issue URLs or saved HTML files"`
	Out         string   `short:"o" type:"path" help:"Also archive rendered issues into this directory"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// PostCmd is the "post" subcommand.
type PostCmd struct {
	URL    string `arg:"" help:"Issue URL or saved HTML file"`
	Token  string `required:"" env:"TWIR_BOT_TOKEN" help:"Telegram bot token"`
	ChatID string `required:"" name:"chat-id" env:"TWIR_CHAT_ID" help:"Telegram chat ID or @channel"`
	Force  bool   `short:"f" help:"Post again even if the issue was already posted"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Number of issues to show"`
}
