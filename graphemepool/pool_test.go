package graphemepool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternSharesHandleForEqualBytes(t *testing.T) {
	p := New()
	h1 := p.Intern("世", 2)
	h2 := p.Intern("世", 2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, p.Len())
}

func TestLookupRoundTrip(t *testing.T) {
	p := New()
	h := p.Intern("👋", 2)

	bytes, width, ok := p.Lookup(h)
	require.True(t, ok)
	assert.Equal(t, "👋", bytes)
	assert.Equal(t, uint8(2), width)
}

func TestLookupUnknownHandleFails(t *testing.T) {
	p := New()
	_, _, ok := p.Lookup(Handle(42))
	assert.False(t, ok)
}

func TestReleaseThenResetClears(t *testing.T) {
	p := New()
	h := p.Intern("é", 1)
	p.Release(h)

	_, _, ok := p.Lookup(h)
	assert.False(t, ok, "fully released entry should not resolve")

	p.Reset()
	assert.Equal(t, 0, p.Len())
}

func TestGlobalIsSingleton(t *testing.T) {
	assert.Same(t, Global(), Global())
}
