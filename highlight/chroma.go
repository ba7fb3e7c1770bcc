package highlight

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

const chromaCacheLimit = 2000

// Chroma is a Highlighter backed by the chroma lexer library.
//
// The language identifier selects a chroma lexer by name or alias; unknown
// languages fall back to plain text. Lines are tokenized independently,
// which holds for the line-oriented lexers chroma ships.
type Chroma struct {
	lexer chroma.Lexer
	style *chroma.Style

	mu    sync.Mutex
	cache map[string][]Span
}

// NewChroma returns a chroma-backed highlighter for the given language and
// chroma style name (for example "monokai").
func NewChroma(language, styleName string) *Chroma {
	lex := lexers.Get(language)
	if lex == nil {
		lex = lexers.Fallback
	}
	sty := styles.Get(styleName)
	if sty == nil {
		sty = styles.Fallback
	}
	return &Chroma{
		lexer: chroma.Coalesce(lex),
		style: sty,
		cache: make(map[string][]Span),
	}
}

// HighlightLine implements Highlighter.
func (c *Chroma) HighlightLine(ctx LineContext) ([]Span, error) {
	c.mu.Lock()
	if spans, ok := c.cache[ctx.Text]; ok {
		c.mu.Unlock()
		return spans, nil
	}
	c.mu.Unlock()

	it, err := c.lexer.Tokenise(nil, ctx.Text)
	if err != nil {
		return nil, err
	}

	lineLen := utf8.RuneCountInString(ctx.Text)
	spans := make([]Span, 0, 8)
	col := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		// Lexers append a terminator the line never had; drop it so
		// columns stay within the line.
		value := strings.TrimRight(tok.Value, "\n")
		n := utf8.RuneCountInString(value)
		if n == 0 {
			continue
		}
		if st, ok := c.styleFor(tok.Type); ok {
			spans = append(spans, Span{StartCol: col, EndCol: col + n, Style: st})
		}
		col += n
	}
	spans = NormalizeSpans(spans, lineLen)

	c.mu.Lock()
	if len(c.cache) >= chromaCacheLimit {
		c.cache = make(map[string][]Span)
	}
	c.cache[ctx.Text] = spans
	c.mu.Unlock()
	return spans, nil
}

func (c *Chroma) styleFor(tt chroma.TokenType) (lipgloss.Style, bool) {
	entry := c.style.Get(tt)
	st := lipgloss.NewStyle()
	set := false
	if entry.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
		set = true
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
		set = true
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
		set = true
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
		set = true
	}
	return st, set
}
