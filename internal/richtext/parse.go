package richtext

import "strings"

// Parse normalizes s and groups its non-blank lines into blocks. Lines
// starting with "• " or "- " are bullets; all other lines are text.
// Consecutive lines of the same class share a block, and the lines of a
// text block are joined with single spaces. Empty input yields nil.
func Parse(s string) []Block {
	norm := Normalize(s)
	if norm == "" {
		return nil
	}

	var (
		blocks  []Block
		kind    BlockKind
		pending []string
	)
	flush := func() {
		if len(pending) == 0 {
			return
		}
		blk := Block{Kind: kind}
		if kind == BulletBlock {
			for _, line := range pending {
				blk.Items = append(blk.Items, Inline(line))
			}
		} else {
			blk.Items = [][]Segment{Inline(strings.Join(pending, " "))}
		}
		blocks = append(blocks, blk)
		pending = nil
	}

	for _, raw := range strings.Split(norm, "\n") {
		line, k, ok := classify(raw)
		if !ok {
			continue
		}
		if k != kind && len(pending) > 0 {
			flush()
		}
		kind = k
		pending = append(pending, line)
	}
	flush()
	return blocks
}

var bulletPrefixes = []string{bulletMarker, "- "}

func classify(raw string) (string, BlockKind, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return "", TextBlock, false
	}
	for _, prefix := range bulletPrefixes {
		// an empty bullet is trimmed down to its bare marker
		if line == strings.TrimSpace(prefix) {
			return "", BulletBlock, false
		}
		if strings.HasPrefix(line, prefix) {
			item := strings.TrimSpace(strings.TrimPrefix(line, prefix))
			if item == "" {
				return "", BulletBlock, false
			}
			return item, BulletBlock, true
		}
	}
	return line, TextBlock, true
}

// Inline splits one line into plain, bold and italic segments in reading
// order. It scans left to right for non-overlapping **bold** and *italic*
// spans with non-empty content; a marker without a partner stays literal.
func Inline(line string) []Segment {
	if line == "" {
		return nil
	}

	var (
		segs  []Segment
		plain strings.Builder
	)
	emit := func(text string, style Style) {
		if plain.Len() > 0 {
			segs = append(segs, Segment{Text: plain.String(), Style: Plain})
			plain.Reset()
		}
		segs = append(segs, Segment{Text: text, Style: style})
	}

	for i := 0; i < len(line); {
		if strings.HasPrefix(line[i:], "**") {
			if j := strings.Index(line[i+2:], "**"); j > 0 {
				emit(line[i+2:i+2+j], Bold)
				i += j + 4
				continue
			}
		}
		if line[i] == '*' {
			if j := strings.IndexByte(line[i+1:], '*'); j > 0 {
				emit(line[i+1:i+1+j], Italic)
				i += j + 2
				continue
			}
		}
		plain.WriteByte(line[i])
		i++
	}
	if plain.Len() > 0 {
		segs = append(segs, Segment{Text: plain.String(), Style: Plain})
	}
	return segs
}
