// Package grapheme is the Grapheme & Width Engine: it segments UTF-8 text
// into grapheme clusters and computes per-cluster display width under one
// of three configurable policies (see WidthMethod).
//
// This package fixes the same class of bug that github.com/phoenix-tui/phoenix/core's
// UnicodeService targets (lipgloss#562: emoji/CJK/combining-character width),
// generalized to a whole-buffer policy rather than a single StringWidth call,
// and extended with the wcwidth (tmux-compatible) and no_zwj policies.
//
// Example:
//
//	e := grapheme.New(grapheme.Unicode, 4)
//	e.CalculateTextWidth("Hello 世界! 👋") // 14
package grapheme

import (
	"github.com/phoenix-tui/textcore/grapheme/domain/service"
	"github.com/phoenix-tui/textcore/grapheme/domain/value"
)

// Re-exported value types so callers don't need to import the domain/value
// package directly.
type (
	WidthMethod       = value.WidthMethod
	GraphemeInfo      = value.GraphemeInfo
	EncodedChar       = value.EncodedChar
	WrapPosResult     = value.WrapPosResult
	PrevGraphemeStart = value.PrevGraphemeStart
)

const (
	Wcwidth = value.Wcwidth
	Unicode = value.Unicode
	NoZWJ   = value.NoZWJ
)

// Engine is the stateless, policy-bound width/segmentation engine.
type Engine = service.Engine

// New creates an Engine bound to a width method and tab width. Tab width is
// a fixed integer given per call; the engine does not compute tab stops
// relative to column position.
func New(method WidthMethod, tabWidth int) Engine {
	return service.New(method, tabWidth)
}
