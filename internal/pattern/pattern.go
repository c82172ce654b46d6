// Package pattern compiles strftime-style format patterns into Go time
// layouts so the same pattern can render and parse instants.
package pattern

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"reactor.de/timehandler/internal/domain"
)

// layouts maps each supported directive to the Go layout element that
// formats it.
var layouts = map[byte]string{
	'Y': "2006",    // 4-digit year
	'y': "06",      // 2-digit year
	'm': "01",      // zero-padded month
	'd': "02",      // zero-padded day
	'e': "_2",      // space-padded day
	'H': "15",      // hour, 24h clock
	'I': "03",      // hour, 12h clock
	'M': "04",      // minute
	'S': "05",      // second
	'f': "000000",  // microseconds, must follow '.' or ','
	'p': "PM",      // AM/PM
	'B': "January", // full month name
	'b': "Jan",     // abbreviated month name
	'h': "Jan",
	'A': "Monday", // full weekday name
	'a': "Mon",    // abbreviated weekday name
	'j': "002",    // day of year
	'z': "-0700",  // numeric offset
	'Z': "MST",    // zone abbreviation
}

// parseLayouts overrides layouts for parsing. Numeric fields accept input
// with or without zero padding, and %f accepts one or more digits.
var parseLayouts = map[byte]string{
	'm': "1",
	'd': "2",
	'I': "3",
	'M': "4",
	'S': "5",
	'j': "__2",
	'f': "999999",
}

func parseElement(verb byte) string {
	if elem, ok := parseLayouts[verb]; ok {
		return elem
	}
	return layouts[verb]
}

// shorthands expand to other directives before tokenizing.
var shorthands = map[byte]string{
	'F': "%Y-%m-%d",
	'T': "%H:%M:%S",
}

// probes are formatted through the parse layout and token by token to detect
// literal text that Go would misread as a layout element. Every field is
// distinct; one probe is AM and one PM so "am"/"pm" literals show up.
var probes = []time.Time{
	time.Date(1987, time.November, 28, 21, 37, 48, 123456000, time.FixedZone("XYZ", 3*3600+1800)),
	time.Date(1987, time.November, 28, 9, 37, 48, 123456000, time.FixedZone("XYZ", 3*3600+1800)),
}

type token struct {
	literal string
	verb    byte // zero for literal tokens
}

// Pattern is a compiled strftime pattern. It is immutable and safe for
// concurrent use.
type Pattern struct {
	source   string
	tokens   []token
	layout   string
	parseErr error
}

// Compile tokenizes p. Unknown directives and a trailing '%' are rejected.
func Compile(p string) (*Pattern, error) {
	tokens, err := tokenize(p, p, 0)
	if err != nil {
		return nil, err
	}

	compiled := &Pattern{source: p, tokens: tokens}

	var layout strings.Builder
	hasHour12, meridiem := false, -1
	for i, tok := range tokens {
		switch tok.verb {
		case 0:
			layout.WriteString(tok.literal)
			continue
		case 'f':
			if compiled.parseErr == nil && !followsFractionSeparator(tokens, i) {
				compiled.parseErr = &domain.PatternError{Pattern: p, Offset: offsetOf(tokens, i), Reason: "%f must follow '.' or ',' to be parsed"}
			}
		case 'I':
			hasHour12 = true
		case 'p':
			if meridiem < 0 {
				meridiem = i
			}
		}
		layout.WriteString(parseElement(tok.verb))
	}
	compiled.layout = layout.String()

	// Go applies AM/PM to a 24-hour field as well; only %I may carry it.
	if compiled.parseErr == nil && meridiem >= 0 && !hasHour12 {
		compiled.parseErr = &domain.PatternError{Pattern: p, Offset: offsetOf(tokens, meridiem), Reason: "%p needs %I to be parsed"}
	}

	if compiled.parseErr == nil {
		for _, probe := range probes {
			if probe.Format(compiled.layout) != compiled.render(probe, parseElement) {
				compiled.parseErr = &domain.PatternError{Pattern: p, Reason: "literal text collides with layout elements and cannot be parsed"}
				break
			}
		}
	}

	return compiled, nil
}

func tokenize(p, source string, base int) ([]token, error) {
	var tokens []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(p); i++ {
		c := p[i]
		if c != '%' {
			lit.WriteByte(c)
			continue
		}
		if i+1 >= len(p) {
			return nil, &domain.PatternError{Pattern: source, Offset: base + i, Reason: "dangling '%'"}
		}
		i++
		verb := p[i]
		switch {
		case verb == '%':
			lit.WriteByte('%')
		case shorthands[verb] != "":
			flush()
			expanded, err := tokenize(shorthands[verb], source, base+i-1)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, expanded...)
		case layouts[verb] != "":
			flush()
			tokens = append(tokens, token{verb: verb})
		default:
			return nil, &domain.PatternError{Pattern: source, Offset: base + i - 1, Reason: fmt.Sprintf("unknown directive %%%c", verb)}
		}
	}
	flush()

	return tokens, nil
}

func followsFractionSeparator(tokens []token, i int) bool {
	if i == 0 || tokens[i-1].verb != 0 {
		return false
	}
	prev := tokens[i-1].literal
	return strings.HasSuffix(prev, ".") || strings.HasSuffix(prev, ",")
}

// offsetOf approximates the byte offset of token i in the expanded pattern.
func offsetOf(tokens []token, i int) int {
	n := 0
	for _, tok := range tokens[:i] {
		if tok.verb == 0 {
			n += len(tok.literal)
		} else {
			n += 2
		}
	}
	return n
}

// String returns the source pattern.
func (p *Pattern) String() string { return p.source }

// Layout returns the Go reference layout used for parsing.
func (p *Pattern) Layout() string { return p.layout }

// Format renders t. Literal text is copied verbatim.
func (p *Pattern) Format(t time.Time) string {
	return p.render(t, func(verb byte) string { return layouts[verb] })
}

// render formats each token on its own with the element chosen by elem.
func (p *Pattern) render(t time.Time, elem func(verb byte) string) string {
	var b strings.Builder
	for _, tok := range p.tokens {
		switch tok.verb {
		case 0:
			b.WriteString(tok.literal)
		case 'f':
			fmt.Fprintf(&b, "%06d", t.Nanosecond()/1000)
		default:
			b.WriteString(t.Format(elem(tok.verb)))
		}
	}
	return b.String()
}

// Parse reads text in loc. Wall-clock values without an offset directive
// are interpreted in loc. Errors are *domain.DateParseError, or
// *domain.PatternError when the pattern cannot be parsed at all.
func (p *Pattern) Parse(text string, loc *time.Location) (time.Time, error) {
	if p.parseErr != nil {
		return time.Time{}, p.parseErr
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(p.layout, text, loc)
	if err != nil {
		return time.Time{}, &domain.DateParseError{Text: text, Pattern: p.source, Err: err}
	}
	return t, nil
}

const maxCached = 256

var (
	cache     sync.Map // source -> *Pattern
	cacheSize atomic.Int32
)

// Lookup returns the compiled form of p, compiling it on first use.
// Once maxCached patterns are held, further patterns are compiled per call.
func Lookup(p string) (*Pattern, error) {
	if v, ok := cache.Load(p); ok {
		return v.(*Pattern), nil
	}
	compiled, err := Compile(p)
	if err != nil {
		return nil, err
	}
	if cacheSize.Load() >= maxCached {
		return compiled, nil
	}
	actual, loaded := cache.LoadOrStore(p, compiled)
	if !loaded {
		cacheSize.Add(1)
	}
	return actual.(*Pattern), nil
}

// Format is a convenience for Lookup followed by Pattern.Format.
func Format(t time.Time, p string) (string, error) {
	compiled, err := Lookup(p)
	if err != nil {
		return "", err
	}
	return compiled.Format(t), nil
}

// Parse is a convenience for Lookup followed by Pattern.Parse.
func Parse(text, p string, loc *time.Location) (time.Time, error) {
	compiled, err := Lookup(p)
	if err != nil {
		return time.Time{}, err
	}
	return compiled.Parse(text, loc)
}
