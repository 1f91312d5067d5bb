// Package richtext turns the limited HTML/markdown accepted in resume
// descriptions into styled text runs grouped into paragraphs and bullet lists.
//
// The pipeline has three steps:
//
//  1. Normalize rewrites list, paragraph and break tags into newlines and
//     bullet markers, bold/italic tags into markdown markers, and decodes a
//     fixed set of entities.
//  2. Parse splits the normalized text into lines, classifies each line as a
//     bullet or plain text and groups consecutive lines of the same class.
//  3. Inline splits a single line into plain, bold and italic segments.
//
// Every template renders descriptions through HTML, which applies all three.
package richtext

// Style is the emphasis applied to a Segment.
type Style uint8

const (
	Plain Style = iota
	Bold
	Italic
)

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "plain"
	}
}

// Segment is a run of text sharing one style.
type Segment struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// BlockKind distinguishes paragraphs from bullet lists.
type BlockKind uint8

const (
	TextBlock BlockKind = iota
	BulletBlock
)

func (k BlockKind) String() string {
	if k == BulletBlock {
		return "bullets"
	}
	return "text"
}

// Block is a group of consecutive lines of the same kind. A text block has
// exactly one item (its lines joined with spaces); a bullet block has one
// item per bullet line.
type Block struct {
	Kind  BlockKind   `json:"kind"`
	Items [][]Segment `json:"items"`
}
