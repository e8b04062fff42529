// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"cisniff/internal/source"
	"cisniff/internal/token"
	"cisniff/internal/view"
)

// CheckTokenInvariants runs the stream invariants rules rely on:
// 1) tokens are non-empty, belong to sf and cover its content byte for byte
// 2) every token's Text is exactly its span of the content
// 3) there is no EOF token inside the stream
// 4) scope links point at brace pairs and nest (view.Validate)
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var off uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%s): empty span %v", i, tok.Kind, sp)
		}
		if sp.Start != off {
			return fmt.Errorf("token %d (%s): starts at %d, previous ended at %d", i, tok.Kind, sp.Start, off)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d (%s): span end beyond content: %d > %d", i, tok.Kind, sp.End, lenContent)
		}
		if tok.Kind == token.EOF {
			return fmt.Errorf("token %d: EOF inside stream", i)
		}
		if tok.Text != string(sf.Content[sp.Start:sp.End]) {
			return fmt.Errorf("token %d (%s): text %q differs from content %q", i, tok.Kind, tok.Text, sf.Content[sp.Start:sp.End])
		}
		off = sp.End
	}
	if off != lenContent {
		return fmt.Errorf("stream ends at %d, content has %d bytes", off, lenContent)
	}

	if err := view.New(toks).Validate(); err != nil {
		return fmt.Errorf("scope links: %w", err)
	}
	return nil
}
