// Package textcore is the text engine core of a terminal UI toolkit: it
// owns an editable text document, computes its Unicode-correct display
// geometry, maintains logical and visual cursors, and projects a scrollable
// viewport onto a character grid for rendering.
//
// The engine is organized leaves-first, mirroring github.com/phoenix-tui/phoenix/core's
// layering:
//
//   - unicodewidth   — per-codepoint display width and grapheme-break state
//   - utf8scan       — line-break, tab-stop, and wrap-break scanning
//   - grapheme       — cluster segmentation + width under three policies
//   - graphemepool   — process-wide cluster interning
//   - textbuffer     — the editable UTF-8 document
//   - wraplayout     — {none, char, word} wrapping and the bidi position map
//   - textview       — viewport, selection, and render export
//   - editbuffer     — cursor-aware editing atop a text buffer
//
// Example:
//
//	buf := textbuffer.New(grapheme.Unicode, 4)
//	buf.SetText([]byte("Hello 世界! 👋"))
//	layout := wraplayout.New(buf, wraplayout.WrapChar, 20)
//	view := textview.New(buf, layout)
package textcore

import "errors"

// ErrDestroyed is returned by any operation on a buffer or view after its
// Destroy method has been called. The engine never
// silently no-ops on a destroyed handle, and never returns stale data.
var ErrDestroyed = errors.New("textcore: use of destroyed buffer or view")

// ErrAllocation represents an out-of-memory condition while growing the
// byte store, the virtual-line array, the cluster cache, or the grapheme
// pool. Mutating operations are transactional at the
// granularity of one call: no partial state is committed when this error
// is returned.
var ErrAllocation = errors.New("textcore: allocation failure")
