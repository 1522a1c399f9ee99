package model

import (
	"hash/fnv"

	textcore "github.com/phoenix-tui/textcore"
	"github.com/phoenix-tui/textcore/grapheme"
	"github.com/phoenix-tui/textcore/textbuffer/domain/value"
	"github.com/phoenix-tui/textcore/utf8scan"
)

var errAllocation = textcore.ErrAllocation

// defaultMaxBufferBytes bounds the byte store so the allocation-failure error kind
// in is observable instead of purely theoretical; production callers can
// raise this via SetMaxBytes.
const defaultMaxBufferBytes = 256 << 20 // 256 MiB

// cachedLine is what the content-addressed grapheme cache stores: the
// display width and cluster list for one logical line's exact byte content
// under one (tabWidth, method) pair (cache key).
type cachedLine struct {
	width    uint32
	clusters []grapheme.GraphemeInfo
	ascii    bool
}

// Buffer owns the document as a growable byte array plus the derived
// logical-line index and grapheme cache.
type Buffer struct {
	bytes     []byte
	lines     []LogicalLine
	method    grapheme.WidthMethod
	tabWidth  int
	engine    grapheme.Engine
	destroyed bool
	maxBytes  int
	cache     map[uint64]cachedLine
}

// New creates an empty buffer (one empty logical line) bound to method and
// tabWidth.
func New(method grapheme.WidthMethod, tabWidth int) *Buffer {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	b := &Buffer{
		method:   method,
		tabWidth: tabWidth,
		engine:   grapheme.New(method, tabWidth),
		maxBytes: defaultMaxBufferBytes,
		cache:    make(map[uint64]cachedLine),
	}
	b.rebuildLines()
	return b
}

// SetMaxBytes overrides the allocation-failure threshold (default 256 MiB).
func (b *Buffer) SetMaxBytes(n int) {
	b.maxBytes = n
}

// Destroy releases the buffer's grapheme cache. After Destroy, the
// error-returning methods of the caller-visible wrapper in package
// textbuffer return ErrDestroyed; this type itself does not check.
func (b *Buffer) Destroy() {
	b.destroyed = true
	b.bytes = nil
	b.lines = nil
	b.cache = nil
}

// Destroyed reports whether Destroy has been called.
func (b *Buffer) Destroyed() bool {
	return b.destroyed
}

// WidthMethod returns the buffer's fixed width policy.
func (b *Buffer) WidthMethod() grapheme.WidthMethod {
	return b.method
}

// SetTabWidth updates the tab width used for subsequent width/layout
// queries. It invalidates the grapheme cache, since cache entries are keyed
// by (content, tabWidth, method).
func (b *Buffer) SetTabWidth(tabWidth int) {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	if tabWidth == b.tabWidth {
		return
	}
	b.tabWidth = tabWidth
	b.engine = grapheme.New(b.method, tabWidth)
	b.cache = make(map[uint64]cachedLine)
	b.recomputeAllLines()
}

// ByteSize returns the total byte length of the document.
func (b *Buffer) ByteSize() uint64 {
	return uint64(len(b.bytes))
}

// LineCount returns the number of logical lines.
func (b *Buffer) LineCount() uint32 {
	return uint32(len(b.lines))
}

// Line returns logical line row, clamped to a valid index. An empty buffer
// has exactly one (empty) line at row 0.
func (b *Buffer) Line(row int) LogicalLine {
	if row < 0 {
		row = 0
	}
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	if row < 0 {
		return LogicalLine{}
	}
	return b.lines[row]
}

// Bytes returns the raw document bytes. Callers must not mutate the
// returned slice.
func (b *Buffer) Bytes() []byte {
	return b.bytes
}

// LineBytes returns the content bytes (excluding the terminator) of
// logical line row.
func (b *Buffer) LineBytes(row int) []byte {
	l := b.Line(row)
	return b.bytes[l.Start:l.End()]
}

// SetText replaces the entire document.
func (b *Buffer) SetText(data []byte) error {
	if len(data) > b.maxBytes {
		return errAllocation
	}
	b.bytes = append([]byte(nil), data...)
	b.rebuildLines()
	return nil
}

// Insert inserts data at byteOffset, clamped to [0, len(bytes)] (insert
// beyond EOF appends instead).
func (b *Buffer) Insert(byteOffset int, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if len(b.bytes)+len(data) > b.maxBytes {
		return errAllocation
	}
	off := clamp(byteOffset, 0, len(b.bytes))
	next := make([]byte, 0, len(b.bytes)+len(data))
	next = append(next, b.bytes[:off]...)
	next = append(next, data...)
	next = append(next, b.bytes[off:]...)
	b.bytes = next
	b.rebuildLines()
	return nil
}

// Append adds data to the end of the document.
func (b *Buffer) Append(data []byte) error {
	return b.Insert(len(b.bytes), data)
}

// Delete removes the byte range [start, end), clamped so delete past EOF
// truncates at EOF and an inverted range is treated as empty.
func (b *Buffer) Delete(start, end int) error {
	start = clamp(start, 0, len(b.bytes))
	end = clamp(end, 0, len(b.bytes))
	if end <= start {
		return nil
	}
	next := make([]byte, 0, len(b.bytes)-(end-start))
	next = append(next, b.bytes[:start]...)
	next = append(next, b.bytes[end:]...)
	b.bytes = next
	b.rebuildLines()
	return nil
}

// LogicalLineInfo exports the parallel-array line description.
// Buffer-level export never produces wrap points (wrapping is the Wrap &
// Layout Engine's concern) — Wraps is always empty and len(Starts) equals
// the logical line count.
func (b *Buffer) LogicalLineInfo() value.LineInfo {
	info := value.LineInfo{
		Starts:  make([]uint32, len(b.lines)),
		Widths:  make([]uint32, len(b.lines)),
		Sources: make([]uint32, len(b.lines)),
	}
	for i, l := range b.lines {
		info.Starts[i] = l.Start
		info.Widths[i] = l.Width
		info.Sources[i] = uint32(i)
		if l.Width > info.MaxWidth {
			info.MaxWidth = l.Width
		}
	}
	return info
}

// rebuildLines recomputes the logical-line index from scratch (a cheap
// linear scan) and reuses cached width/cluster data for any line whose
// exact byte content was seen before under the current (tabWidth, method)
// pair.
func (b *Buffer) rebuildLines() {
	breaks := utf8scan.FindLineBreaks(b.bytes)
	var lines []LogicalLine
	start := 0
	for _, br := range breaks {
		var termLen uint8
		var contentEnd int
		switch br.Kind {
		case utf8scan.CRLF:
			termLen = 2
			contentEnd = br.Pos - 1
		case utf8scan.CR, utf8scan.LF:
			termLen = 1
			contentEnd = br.Pos
		}
		line := b.makeLine(start, contentEnd)
		line.TermLen = termLen
		lines = append(lines, line)
		start = contentEnd + int(termLen)
	}
	lines = append(lines, b.makeLine(start, len(b.bytes)))
	b.lines = lines
}

func (b *Buffer) makeLine(start, end int) LogicalLine {
	content := b.bytes[start:end]
	fp := fingerprint(content, b.tabWidth, b.method)

	if cached, ok := b.cache[fp]; ok {
		return LogicalLine{
			Start: uint32(start), Length: uint32(end - start),
			Width: cached.width, Clusters: cached.clusters, ASCII: cached.ascii,
			fingerprint: fp, fpValid: true,
		}
	}

	ascii := utf8scan.IsASCIIOnly(content) && b.method != grapheme.Wcwidth
	width := b.engine.CalculateTextWidth(string(content))
	clusters := b.engine.FindGraphemeInfo(string(content))
	if len(clusters) == 0 {
		ascii = true
	}

	b.cache[fp] = cachedLine{width: width, clusters: clusters, ascii: ascii}
	return LogicalLine{
		Start: uint32(start), Length: uint32(end - start),
		Width: width, Clusters: clusters, ASCII: ascii,
		fingerprint: fp, fpValid: true,
	}
}

func (b *Buffer) recomputeAllLines() {
	for i, l := range b.lines {
		b.lines[i] = b.makeLine(int(l.Start), int(l.End()))
	}
}

func fingerprint(content []byte, tabWidth int, method grapheme.WidthMethod) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(content)
	var buf [8]byte
	buf[0] = byte(tabWidth)
	buf[1] = byte(method)
	_, _ = h.Write(buf[:2])
	return h.Sum64()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
