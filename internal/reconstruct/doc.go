// Package reconstruct rebuilds question drafts from normalised paragraphs.
//
// Each stripped line is classified into a domain.LineKind by an ordered set
// of matchers, then folded into a State by Step. EndParagraph attaches stray
// images and Close ends the input. The reducer functions never mutate their
// input state, so a reconstruction can be replayed or tested line by line.
//
// Closed drafts are finalised by a driven.Finalizer after the fold.
package reconstruct
