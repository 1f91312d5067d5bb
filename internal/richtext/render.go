package richtext

import (
	"html/template"
	"strings"
)

// HTML renders s as escaped markup: bullet blocks become
// <ul class="rt-list"> lists and text blocks <p class="rt-text"> paragraphs,
// with <strong> and <em> for styled segments. Empty input renders nothing.
func HTML(s string) template.HTML {
	blocks := Parse(s)
	if len(blocks) == 0 {
		return ""
	}

	var b strings.Builder
	for _, blk := range blocks {
		if blk.Kind == BulletBlock {
			b.WriteString(`<ul class="rt-list">`)
			for _, item := range blk.Items {
				b.WriteString("<li>")
				writeSegments(&b, item)
				b.WriteString("</li>")
			}
			b.WriteString("</ul>")
			continue
		}
		b.WriteString(`<p class="rt-text">`)
		for _, item := range blk.Items {
			writeSegments(&b, item)
		}
		b.WriteString("</p>")
	}
	return template.HTML(b.String()) //nolint:gosec // every text run is escaped in writeSegments
}

func writeSegments(b *strings.Builder, segs []Segment) {
	for _, seg := range segs {
		text := template.HTMLEscapeString(seg.Text)
		switch seg.Style {
		case Bold:
			b.WriteString("<strong>" + text + "</strong>")
		case Italic:
			b.WriteString("<em>" + text + "</em>")
		default:
			b.WriteString(text)
		}
	}
}

// PlainText flattens s to unstyled text: one line per paragraph and one
// "• "-prefixed line per bullet.
func PlainText(s string) string {
	blocks := Parse(s)
	lines := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		for _, item := range blk.Items {
			line := flatten(item)
			if blk.Kind == BulletBlock {
				line = bulletMarker + line
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func flatten(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// IsEmpty reports whether s renders nothing.
func IsEmpty(s string) bool {
	return len(Parse(s)) == 0
}
