package mock

import "github.com/fwojciec/twir"

var _ twir.ArticleParser = (*ArticleParser)(nil)

// ArticleParser is a mock implementation of twir.ArticleParser.
type ArticleParser struct {
	ParseFn func(html string) (*twir.Article, error)
}

func (p *ArticleParser) Parse(html string) (*twir.Article, error) {
	return p.ParseFn(html)
}
