// Package telegram implements twir.Poster using the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/twir"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Telegram Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// DefaultRate is the sustained message rate for a single chat.
const DefaultRate = 1.0

// MaxMessageLength is the longest text the Bot API accepts in one message,
// in characters.
const MaxMessageLength = 4096

// Ensure Poster implements twir.Poster at compile time.
var _ twir.Poster = (*Poster)(nil)

// Poster sends messages to a single chat.
type Poster struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Poster.
type Option func(*Poster)

// WithBaseURL overrides the Bot API endpoint.
func WithBaseURL(u string) Option {
	return func(p *Poster) {
		p.baseURL = u
	}
}

// WithRate sets how many messages per second may be sent. Bursts are not
// allowed.
func WithRate(rps float64) Option {
	return func(p *Poster) {
		p.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Poster) {
		p.client = c
	}
}

// NewPoster creates a Poster for the bot token and chat.
func NewPoster(token, chatID string, opts ...Option) *Poster {
	p := &Poster{
		token:   token,
		chatID:  chatID,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(DefaultRate), 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// Post sends text as an HTML-formatted message without link previews.
// Text longer than MaxMessageLength is sent as several messages, split
// between paragraphs.
func (p *Poster) Post(ctx context.Context, text string) error {
	if p.token == "" {
		return twir.Errorf(twir.EINVALID, "telegram bot token required")
	}
	if p.chatID == "" {
		return twir.Errorf(twir.EINVALID, "telegram chat ID required")
	}

	chunks := Split(text, MaxMessageLength)
	for i, chunk := range chunks {
		if err := p.send(ctx, chunk); err != nil {
			if len(chunks) > 1 {
				return fmt.Errorf("part %d of %d: %w", i+1, len(chunks), err)
			}
			return err
		}
	}
	return nil
}

func (p *Poster) send(ctx context.Context, text string) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:                p.chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", p.baseURL, p.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode response (HTTP %d): %w", resp.StatusCode, err)
	}

	if !result.OK {
		if result.ErrorCode == http.StatusBadRequest {
			return twir.Errorf(twir.EINVALID, "telegram rejected message: %s", result.Description)
		}
		return fmt.Errorf("telegram error %d: %s", result.ErrorCode, result.Description)
	}
	return nil
}

// Split breaks text into chunks of at most limit characters. Chunks end on
// paragraph boundaries ("\n\n", which separates link items); a single
// paragraph longer than limit is cut at a character boundary.
func Split(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	var curLen int

	for _, part := range strings.SplitAfter(text, "\n\n") {
		n := utf8.RuneCountInString(part)
		if curLen > 0 && curLen+n > limit {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
		for n > limit {
			cut := runeOffset(part, limit)
			chunks = append(chunks, part[:cut])
			part = part[cut:]
			n -= limit
		}
		cur.WriteString(part)
		curLen += n
	}
	if curLen > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

// runeOffset returns the byte offset of the n-th rune in s.
func runeOffset(s string, n int) int {
	var count int
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
