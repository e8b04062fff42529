package lexer

import (
	"testing"

	"cisniff/internal/source"
)

func TestCursorPrefixes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.php", []byte("<?PHP x"))
	c := NewCursor(fs.Get(id))

	if !c.HasPrefixFold("<?php") {
		t.Error("HasPrefixFold must ignore case")
	}
	if c.HasPrefix("<?php") {
		t.Error("HasPrefix must be case-sensitive")
	}
	m := c.Mark()
	c.Advance(100)
	if !c.EOF() || c.Off != c.Limit {
		t.Errorf("Advance must clamp to limit, off=%d", c.Off)
	}
	if c.Peek() != 0 || c.PeekAt(1) != 0 {
		t.Error("peek past EOF must return 0")
	}
	c.Reset(m)
	if c.Bump() != '<' || !c.Eat('?') || c.Eat('?') {
		t.Error("Bump/Eat sequence mismatch")
	}
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Errorf("SpanFrom = %v", sp)
	}
}
