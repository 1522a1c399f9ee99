package service

import (
	"unicode"
	"unicode/utf8"

	"github.com/phoenix-tui/textcore/grapheme"
	tbmodel "github.com/phoenix-tui/textcore/textbuffer/domain/model"
	tbvalue "github.com/phoenix-tui/textcore/textbuffer/domain/value"
	"github.com/phoenix-tui/textcore/wraplayout/domain/model"
)

// Measure is the viewport-measurement export.
type Measure struct {
	LineCount uint32
	MaxWidth  uint32
}

// Layout is the Wrap & Layout Engine bound to one text buffer. It caches
// each logical line's virtual-line span and only recomputes the rows an
// edit (or a wrap config change) marks dirty, plus rows whose start offset
// an edit has shifted — "Incremental re-layout" in
// . Re-layout is lazy: it runs on the next read of the virtual-line
// count or a render/position query, not at invalidation time.
type Layout struct {
	buf    *tbmodel.Buffer
	engine grapheme.Engine
	mode   WrapMode
	width  uint32

	perRow []([]model.VirtualLine)
	dirty  []bool
}

// New binds a Layout to buf using engine for width/segmentation (normally
// the same policy the buffer itself was constructed with).
func New(buf *tbmodel.Buffer, engine grapheme.Engine, mode WrapMode, width uint32) *Layout {
	return &Layout{buf: buf, engine: engine, mode: mode, width: width}
}

// SetWrapMode changes the wrap algorithm, invalidating every row.
func (l *Layout) SetWrapMode(mode WrapMode) {
	if mode == l.mode {
		return
	}
	l.mode = mode
	l.invalidateAll()
}

// SetWrapWidth changes the wrap width, invalidating every row.
func (l *Layout) SetWrapWidth(width uint32) {
	if width == l.width {
		return
	}
	l.width = width
	l.invalidateAll()
}

// WrapMode returns the current wrap mode.
func (l *Layout) WrapMode() WrapMode { return l.mode }

// WrapWidth returns the current wrap width.
func (l *Layout) WrapWidth() uint32 { return l.width }

// InvalidateLine marks logical row as needing re-wrap on the next read.
// Callers (editbuffer, textview) call this after an edit touching that row.
func (l *Layout) InvalidateLine(row uint32) {
	l.sync()
	if int(row) < len(l.dirty) {
		l.dirty[row] = true
	}
}

func (l *Layout) invalidateAll() {
	for i := range l.dirty {
		l.dirty[i] = true
	}
}

// sync reconciles the per-row cache length with the buffer's current
// logical line count. A line-count change (split/merge from an edit)
// conservatively invalidates every row from the first point the two line
// counts diverge onward; rows strictly before that point, whose content is
// unchanged, keep their cached virtual spans.
func (l *Layout) sync() {
	n := int(l.buf.LineCount())
	if n == len(l.perRow) {
		return
	}
	grownFrom := len(l.perRow)
	if n < grownFrom {
		grownFrom = n
	}
	newPerRow := make([][]model.VirtualLine, n)
	newDirty := make([]bool, n)
	copy(newPerRow, l.perRow)
	copy(newDirty, l.dirty)
	for i := grownFrom; i < n; i++ {
		newDirty[i] = true
	}
	// Re-wrap the row at the divergence point too: its content may have
	// changed shape even though its index didn't.
	if grownFrom > 0 {
		newDirty[grownFrom-1] = true
	}
	l.perRow = newPerRow
	l.dirty = newDirty
}

func (l *Layout) ensureRow(row int) []model.VirtualLine {
	l.sync()
	if row < 0 || row >= len(l.perRow) {
		return nil
	}
	// Cached virtual lines hold absolute offsets, so a row whose logical
	// line start has moved (an edit earlier in the buffer) is re-wrapped.
	if !l.dirty[row] && l.perRow[row] != nil && l.perRow[row][0].ByteStart == l.buf.Line(row).Start {
		return l.perRow[row]
	}
	lineBytes := l.buf.LineBytes(row)
	vls := wrapLine(lineBytes, l.engine, l.mode, l.width)
	logicalStart := l.buf.Line(row).Start
	for i := range vls {
		vls[i].LogicalRow = uint32(row)
		vls[i].ByteStart += logicalStart
		vls[i].ByteEnd += logicalStart
	}
	l.perRow[row] = vls
	l.dirty[row] = false
	return vls
}

// allLines rebuilds the flat virtual-line index across the whole buffer,
// refreshing any dirty row along the way.
func (l *Layout) allLines() []model.VirtualLine {
	l.sync()
	var out []model.VirtualLine
	for row := range l.perRow {
		out = append(out, l.ensureRow(row)...)
	}
	return out
}

// VirtualLineCount returns the number of virtual lines across the buffer.
func (l *Layout) VirtualLineCount() uint32 {
	return uint32(len(l.allLines()))
}

// VirtualLine returns virtual line k, or ok=false if k is out of range.
func (l *Layout) VirtualLine(k int) (model.VirtualLine, bool) {
	lines := l.allLines()
	if k < 0 || k >= len(lines) {
		return model.VirtualLine{}, false
	}
	return lines[k], true
}

// VirtualLines returns every virtual line.
func (l *Layout) VirtualLines() []model.VirtualLine {
	return l.allLines()
}

// MeasureForDimensions returns the virtual-line count that fits in h and the
// maximum virtual width over those lines. An empty buffer measures as one
// line of width 0 (zero lines when h is 0); ok is always true. w is not
// used: the layout's own wrap width applies.
func (l *Layout) MeasureForDimensions(w, h uint32) (Measure, bool) {
	if l.buf.ByteSize() == 0 && l.buf.LineCount() <= 1 {
		line := l.buf.Line(0)
		if line.Length == 0 {
			if h >= 1 {
				return Measure{LineCount: 1, MaxWidth: 0}, true
			}
			return Measure{}, true
		}
	}
	_ = w
	lines := l.allLines()
	n := uint32(len(lines))
	if n > h {
		n = h
	}
	var maxWidth uint32
	for i := uint32(0); i < n; i++ {
		if lines[i].Width > maxWidth {
			maxWidth = lines[i].Width
		}
	}
	return Measure{LineCount: n, MaxWidth: maxWidth}, true
}

// LineInfo exports the virtual-line index in the parallel-array format:
// one entry per virtual line in Starts/Widths/Sources, and a
// sentinel-separated list per logical line of the byte offsets (relative to
// that logical line) where a soft wrap occurs. Under WrapNone, Wraps is
// empty.
func (l *Layout) LineInfo() tbvalue.LineInfo {
	lines := l.allLines()
	info := tbvalue.LineInfo{
		Starts:  make([]uint32, len(lines)),
		Widths:  make([]uint32, len(lines)),
		Sources: make([]uint32, len(lines)),
	}
	for i, vl := range lines {
		info.Starts[i] = vl.ByteStart
		info.Widths[i] = vl.Width
		info.Sources[i] = vl.LogicalRow
		if vl.Width > info.MaxWidth {
			info.MaxWidth = vl.Width
		}
		if vl.WrapKind != model.Hard {
			lineStart := l.buf.Line(int(vl.LogicalRow)).Start
			info.Wraps = append(info.Wraps, vl.ByteEnd-lineStart)
		}
		if l.mode != WrapNone && (i == len(lines)-1 || lines[i+1].LogicalRow != vl.LogicalRow) {
			info.Wraps = append(info.Wraps, tbvalue.WrapSentinel)
		}
	}
	return info
}

// VisualToLogical maps a visual (row, displayCol) to a logical (row,
// byteCol, byteOffset). displayCol is a terminal column, snapped backward
// through any cluster it falls inside (never past it).
func (l *Layout) VisualToLogical(visualRow, displayCol int) (logicalRow, logicalCol uint32, offset uint32) {
	lines := l.allLines()
	if len(lines) == 0 {
		return 0, 0, 0
	}
	if visualRow < 0 {
		visualRow = 0
	}
	if visualRow >= len(lines) {
		visualRow = len(lines) - 1
	}
	vl := lines[visualRow]
	lineStart := l.buf.Line(int(vl.LogicalRow)).Start
	if displayCol < 0 {
		displayCol = 0
	}
	data := l.buf.Bytes()
	segment := string(data[vl.ByteStart:vl.ByteEnd])
	res := l.engine.FindPosByWidth(segment, uint32(displayCol), false)
	target := vl.ByteStart + res.ByteOffset
	return vl.LogicalRow, target - lineStart, target
}

// VisualToLogicalSnapped is VisualToLogical with an explicit snap
// direction: forward=true snaps forward through a wide cluster the column
// falls inside (selection end / focus), forward=false snaps backward
// (selection start / anchor). anchor/focus direction rule decides
// which one applies to a given selection endpoint.
func (l *Layout) VisualToLogicalSnapped(visualRow, displayCol int, forward bool) (logicalRow, logicalCol uint32, offset uint32) {
	lines := l.allLines()
	if len(lines) == 0 {
		return 0, 0, 0
	}
	if visualRow < 0 {
		visualRow = 0
	}
	if visualRow >= len(lines) {
		visualRow = len(lines) - 1
	}
	vl := lines[visualRow]
	lineStart := l.buf.Line(int(vl.LogicalRow)).Start
	if displayCol < 0 {
		displayCol = 0
	}
	data := l.buf.Bytes()
	segment := string(data[vl.ByteStart:vl.ByteEnd])
	res := l.engine.FindPosByWidth(segment, uint32(displayCol), forward)
	target := vl.ByteStart + res.ByteOffset
	return vl.LogicalRow, target - lineStart, target
}

// LogicalToVisual maps a logical (row, byteCol) to a visual (row,
// displayCol).
func (l *Layout) LogicalToVisual(logicalRow, logicalCol uint32) (visualRow, displayCol int) {
	lineStart := l.buf.Line(int(logicalRow)).Start
	offset := lineStart + logicalCol
	return l.OffsetToVisual(offset)
}

// OffsetToVisual maps a byte offset to a visual (row, displayCol).
func (l *Layout) OffsetToVisual(byteOffset uint32) (visualRow, displayCol int) {
	lines := l.allLines()
	data := l.buf.Bytes()
	for i, vl := range lines {
		if byteOffset >= vl.ByteStart && byteOffset <= vl.ByteEnd {
			col := l.engine.CalculateTextWidth(string(data[vl.ByteStart:byteOffset]))
			return i, int(col)
		}
	}
	if len(lines) == 0 {
		return 0, 0
	}
	last := lines[len(lines)-1]
	return len(lines) - 1, int(last.Width)
}

// VisualSOL returns the byte offset of the start of the virtual line
// containing from.
func (l *Layout) VisualSOL(from uint32) uint32 {
	row, _ := l.OffsetToVisual(from)
	vl, ok := l.VirtualLine(row)
	if !ok {
		return from
	}
	return vl.ByteStart
}

// VisualEOL returns the byte offset of the end of the virtual line
// containing from.
func (l *Layout) VisualEOL(from uint32) uint32 {
	row, _ := l.OffsetToVisual(from)
	vl, ok := l.VirtualLine(row)
	if !ok {
		return from
	}
	return vl.ByteEnd
}

// LogicalEOL returns the byte offset of the end of the logical line
// containing from.
func (l *Layout) LogicalEOL(from uint32) uint32 {
	for row := 0; row < int(l.buf.LineCount()); row++ {
		ll := l.buf.Line(row)
		if from >= ll.Start && from <= ll.End() {
			return ll.End()
		}
	}
	return from
}

// isWordRune reports whether r is in the Unicode "alphabetic or numeric"
// set used to define a word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// NextWordBoundary returns the byte offset of the next word boundary at or
// after from.
func (l *Layout) NextWordBoundary(from uint32) uint32 {
	data := l.buf.Bytes()
	pos := int(from)
	if pos >= len(data) {
		return uint32(len(data))
	}
	// Skip the current word (if inside one).
	pos = skipWhile(data, pos, isWordRune)
	// Skip non-word separators.
	pos = skipWhile(data, pos, func(r rune) bool { return !isWordRune(r) })
	return uint32(pos)
}

// PrevWordBoundary returns the byte offset of the previous word boundary at
// or before from.
func (l *Layout) PrevWordBoundary(from uint32) uint32 {
	data := l.buf.Bytes()
	pos := int(from)
	if pos <= 0 {
		return 0
	}
	pos = rskipWhile(data, pos, func(r rune) bool { return !isWordRune(r) })
	pos = rskipWhile(data, pos, isWordRune)
	return uint32(pos)
}

func skipWhile(data []byte, pos int, pred func(rune) bool) int {
	for pos < len(data) {
		r, size := utf8.DecodeRune(data[pos:])
		if !pred(r) {
			break
		}
		pos += size
	}
	return pos
}

func rskipWhile(data []byte, pos int, pred func(rune) bool) int {
	for pos > 0 {
		r, size := utf8.DecodeLastRune(data[:pos])
		if !pred(r) {
			break
		}
		pos -= size
	}
	return pos
}
