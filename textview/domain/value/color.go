package value

// RGBA is a color expressed as four channels in [0, 1], the representation
// selection highlights and styled chunks carry so a renderer can convert to
// whatever color space its output target needs.
type RGBA struct {
	R, G, B, A float64
}

// Attributes are the text-decoration flags a Styled chunk can carry,
// independent of color.
type Attributes struct {
	Bold      bool
	Italic    bool
	Underline bool
	Reverse   bool
}

// Chunk is a run of text carrying optional foreground/background color and
// attributes. The View keeps its placeholder as plain text and its tab
// indicator as a glyph plus color; it does not build chunks.
type Chunk struct {
	Text       string
	Foreground *RGBA
	Background *RGBA
	Attributes Attributes
}
