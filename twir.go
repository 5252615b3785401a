// Package twir extracts the contents of a "This Week in Rust" issue from
// its HTML page and renders it as a series of chat messages using the small
// HTML subset understood by the Telegram Bot API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, telegram/).
package twir
