package driven

import "github.com/custodia-labs/quizbank/internal/core/domain"

// Decoder turns raw document bytes into text.
// Implementations never fail: when no candidate encoding is accepted they
// fall back to a lossy decode and say so in the result.
type Decoder interface {
	Decode(data []byte) domain.Decoding
}
