// Package textbuffer owns the UTF-8 document: append/insert/delete,
// the logical-line index, and the per-line grapheme cache. It is the
// facade over textbuffer/domain/model, adding the destroyed-access error
// kind from that the domain model itself doesn't track.
package textbuffer

import (
	textcore "github.com/phoenix-tui/textcore"
	"github.com/phoenix-tui/textcore/grapheme"
	"github.com/phoenix-tui/textcore/textbuffer/domain/model"
	"github.com/phoenix-tui/textcore/textbuffer/domain/value"
)

// LogicalLine re-exports the domain model's line type for callers.
type LogicalLine = model.LogicalLine

// LineInfo re-exports the parallel-array render export.
type LineInfo = value.LineInfo

// Buffer is a non-owning-safe wrapper around the domain model: every method
// that returns an error checks destroyed state first and returns
// textcore.ErrDestroyed instead of operating on or returning stale data.
// On a destroyed buffer ByteSize and LineCount return 0 without an error,
// and WidthMethod, SetMaxBytes and Inner do not check destroyed state.
type Buffer struct {
	inner *model.Buffer
}

// New creates an empty buffer (one empty logical line) under the given
// width policy and tab width.
func New(method grapheme.WidthMethod, tabWidth int) *Buffer {
	return &Buffer{inner: model.New(method, tabWidth)}
}

// Destroy releases the buffer's resources. Any view holding a reference to
// this buffer must be destroyed before or together with it (lifecycle).
func (b *Buffer) Destroy() {
	b.inner.Destroy()
}

func (b *Buffer) checkAlive() error {
	if b.inner == nil || b.inner.Destroyed() {
		return textcore.ErrDestroyed
	}
	return nil
}

// CheckAlive reports textcore.ErrDestroyed if the buffer has been
// destroyed, nil otherwise. Packages layered on top of a Buffer (wraplayout,
// textview, editbuffer) use this to enforce the same destroyed-access rule
// at their own facade without duplicating Buffer's internal state.
func (b *Buffer) CheckAlive() error {
	return b.checkAlive()
}

// SetText replaces the entire document.
func (b *Buffer) SetText(data []byte) error {
	if err := b.checkAlive(); err != nil {
		return err
	}
	return b.inner.SetText(data)
}

// Insert inserts data at byteOffset (clamped).
func (b *Buffer) Insert(byteOffset int, data []byte) error {
	if err := b.checkAlive(); err != nil {
		return err
	}
	return b.inner.Insert(byteOffset, data)
}

// Delete removes the byte range [start, end) (clamped).
func (b *Buffer) Delete(start, end int) error {
	if err := b.checkAlive(); err != nil {
		return err
	}
	return b.inner.Delete(start, end)
}

// Append adds data to the end of the document.
func (b *Buffer) Append(data []byte) error {
	if err := b.checkAlive(); err != nil {
		return err
	}
	return b.inner.Append(data)
}

// ByteSize returns the total byte length of the document. Returns 0 if the
// buffer has been destroyed (no stale numeric result is meaningful; callers
// that need to distinguish this from a genuinely empty buffer should call
// CheckAlive first).
func (b *Buffer) ByteSize() uint64 {
	if err := b.checkAlive(); err != nil {
		return 0
	}
	return b.inner.ByteSize()
}

// LineCount returns the number of logical lines.
func (b *Buffer) LineCount() uint32 {
	if err := b.checkAlive(); err != nil {
		return 0
	}
	return b.inner.LineCount()
}

// Line returns logical line row (clamped).
func (b *Buffer) Line(row int) (LogicalLine, error) {
	if err := b.checkAlive(); err != nil {
		return LogicalLine{}, err
	}
	return b.inner.Line(row), nil
}

// LineBytes returns the content bytes of logical line row (clamped,
// excluding the terminator).
func (b *Buffer) LineBytes(row int) ([]byte, error) {
	if err := b.checkAlive(); err != nil {
		return nil, err
	}
	return b.inner.LineBytes(row), nil
}

// Bytes returns the raw document bytes. Callers must not mutate the
// returned slice.
func (b *Buffer) Bytes() ([]byte, error) {
	if err := b.checkAlive(); err != nil {
		return nil, err
	}
	return b.inner.Bytes(), nil
}

// LogicalLineInfo exports the parallel-array line description.
func (b *Buffer) LogicalLineInfo() (LineInfo, error) {
	if err := b.checkAlive(); err != nil {
		return LineInfo{}, err
	}
	return b.inner.LogicalLineInfo(), nil
}

// SetTabWidth updates the tab width used for subsequent width/layout
// queries.
func (b *Buffer) SetTabWidth(tabWidth int) error {
	if err := b.checkAlive(); err != nil {
		return err
	}
	b.inner.SetTabWidth(tabWidth)
	return nil
}

// WidthMethod returns the buffer's fixed width policy.
func (b *Buffer) WidthMethod() grapheme.WidthMethod {
	return b.inner.WidthMethod()
}

// SetMaxBytes overrides the allocation-failure threshold.
func (b *Buffer) SetMaxBytes(n int) {
	b.inner.SetMaxBytes(n)
}

// Inner exposes the underlying domain model for packages within this
// module (wraplayout, textview, editbuffer) that need direct, allocation-free
// access to lines without re-checking destroyed state on every call inside
// a tight loop. External callers should use the checked methods above.
func (b *Buffer) Inner() *model.Buffer {
	return b.inner
}
