package richtext

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const bulletMarker = "• "

// entities is the fixed set of references decoded during normalization.
// Anything else is left as written.
var entities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
)

type emphasis struct {
	tag    string
	marker string
	start  int
	nested bool
}

type normalizer struct {
	buf  bytes.Buffer
	open []emphasis
}

// Normalize rewrites the supported HTML subset into the line-oriented
// markdown form understood by Parse:
//
//   - <ul>/<ol> boundaries, </li>, </p>, </div> and <br> become newlines
//   - <li> starts a new line prefixed with "• "
//   - <strong>/<b> become ** and <em>/<i> become *
//   - other tags are dropped, keeping their text
//   - a "<" that does not open a known element stays a literal character
//
// Only the outermost emphasis is emitted and empty emphasis emits nothing,
// so the result never contains markers Inline could not pair.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if strings.TrimSpace(s) == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	n := &normalizer{}
	z := html.NewTokenizer(strings.NewReader(escapeStrayBrackets(s)))
	skip := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			n.closeAll()
			return n.buf.String()
		case html.TextToken:
			if skip == 0 {
				n.buf.WriteString(entities.Replace(string(z.Raw())))
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			n.start(tag)
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if skip > 0 {
					skip--
				}
				continue
			}
			n.end(tag)
		}
	}
}

func (n *normalizer) start(tag string) {
	switch tag {
	case "ul", "ol", "br":
		n.lineBreak("")
	case "li":
		n.lineBreak(bulletMarker)
	case "p", "div":
		n.lineBreak("")
	case "strong", "b":
		n.push(tag, "**")
	case "em", "i":
		n.push(tag, "*")
	}
}

func (n *normalizer) end(tag string) {
	switch tag {
	case "ul", "ol", "li", "p", "div":
		n.lineBreak("")
	case "strong", "b", "em", "i":
		n.pop(tag)
	}
}

func (n *normalizer) push(tag, marker string) {
	if len(n.open) > 0 {
		n.open = append(n.open, emphasis{tag: tag, nested: true})
		return
	}
	n.open = append(n.open, emphasis{tag: tag, marker: marker, start: n.buf.Len()})
	n.buf.WriteString(marker)
}

func (n *normalizer) pop(tag string) {
	for i := len(n.open) - 1; i >= 0; i-- {
		if !sameEmphasis(n.open[i].tag, tag) {
			continue
		}
		e := n.open[i]
		n.open = n.open[:i]
		if !e.nested {
			n.closeMark(e)
		}
		return
	}
}

// closeMark writes the closing marker, or removes the opening one when the
// emphasis turned out to be empty.
func (n *normalizer) closeMark(e emphasis) {
	if n.buf.Len() == e.start+len(e.marker) {
		n.buf.Truncate(e.start)
		return
	}
	n.buf.WriteString(e.marker)
}

func (n *normalizer) closeAll() {
	if len(n.open) > 0 && !n.open[0].nested {
		n.closeMark(n.open[0])
	}
	n.open = nil
}

// lineBreak ends the current line. Open emphasis is closed before the break
// and reopened after it so markers never span lines.
func (n *normalizer) lineBreak(prefix string) {
	if len(n.open) == 0 || n.open[0].nested {
		n.buf.WriteString("\n" + prefix)
		return
	}
	outer := n.open[0]
	n.closeMark(outer)
	n.buf.WriteString("\n" + prefix)
	n.open[0].start = n.buf.Len()
	n.buf.WriteString(outer.marker)
}

func sameEmphasis(a, b string) bool {
	return emphasisKind(a) == emphasisKind(b)
}

func emphasisKind(tag string) string {
	switch tag {
	case "strong", "b":
		return "bold"
	case "em", "i":
		return "italic"
	}
	return tag
}

// escapeStrayBrackets escapes every "<" that does not open an HTML element,
// end tag or comment, so text such as "a<b" or "load<budget and cost>0"
// reaches the output instead of being read as an unknown tag.
func escapeStrayBrackets(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '<' && !opensTag(s[i+1:]) {
			b.WriteString("&lt;")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// opensTag reports whether rest, the text after a "<", is a known element
// name followed by the end of a complete tag.
func opensTag(rest string) bool {
	if strings.HasPrefix(rest, "!--") {
		return true
	}
	rest = strings.TrimPrefix(rest, "/")
	end := 0
	for end < len(rest) && isTagNameByte(rest[end]) {
		end++
	}
	if end == 0 || end == len(rest) {
		return false
	}
	switch rest[end] {
	case '>', '/', ' ', '\t', '\n', '\r', '\f':
	default:
		return false
	}
	if !strings.Contains(rest[end:], ">") {
		return false
	}
	return atom.Lookup([]byte(strings.ToLower(rest[:end]))) != 0
}

func isTagNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
