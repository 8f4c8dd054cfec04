// Package charset resolves the text encoding of exported documents.
//
// Word-processor exports carry no reliable charset declaration, so the
// resolver tries an ordered list of candidate encodings and accepts the
// first one that decodes cleanly and yields text containing one of a few
// domain marker strings. When no candidate passes it decodes the bytes as
// UTF-8, dropping invalid sequences, and reports the fallback.
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	netcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"

	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
	"github.com/custodia-labs/quizbank/internal/logger"
)

// FallbackEncoding names the lossy decode used when no candidate is accepted.
const FallbackEncoding = "utf-8"

// Ensure Resolver implements the interface.
var _ driven.Decoder = (*Resolver)(nil)

// builtin maps candidate names that the WHATWG label index does not cover
// (cp936) or that need exact decoders (GB18030 rather than GBK).
var builtin = map[string]encoding.Encoding{
	"utf-8":   unicode.UTF8BOM,
	"utf8":    unicode.UTF8BOM,
	"gb18030": simplifiedchinese.GB18030,
	"gbk":     simplifiedchinese.GBK,
	"cp936":   simplifiedchinese.GBK,
}

type candidate struct {
	name string
	enc  encoding.Encoding
	utf8 bool
}

// Resolver implements the ordered-candidate decoding strategy.
type Resolver struct {
	candidates []candidate
	markers    []string
}

// NewResolver creates a resolver for the named encodings, tried in order.
// Returns domain.ErrUnknownEncoding if a name has no decoder.
func NewResolver(names, markers []string) (*Resolver, error) {
	r := &Resolver{markers: markers}
	for _, name := range names {
		c, err := lookup(name)
		if err != nil {
			return nil, err
		}
		r.candidates = append(r.candidates, c)
	}
	return r, nil
}

// ValidateName reports whether name selects a known decoder.
func ValidateName(name string) error {
	_, err := lookup(name)
	return err
}

func lookup(name string) (candidate, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if enc, ok := builtin[key]; ok {
		return candidate{name: key, enc: enc, utf8: key == "utf-8" || key == "utf8"}, nil
	}
	enc, canonical := netcharset.Lookup(key)
	if enc == nil {
		return candidate{}, fmt.Errorf("%w: %q", domain.ErrUnknownEncoding, name)
	}
	return candidate{name: key, enc: enc, utf8: canonical == "utf-8"}, nil
}

// Candidates returns the candidate names in trial order.
func (r *Resolver) Candidates() []string {
	names := make([]string, len(r.candidates))
	for i, c := range r.candidates {
		names[i] = c.name
	}
	return names
}

// Decode returns the first accepted decoding, or the lossy fallback.
func (r *Resolver) Decode(data []byte) domain.Decoding {
	for _, c := range r.candidates {
		text, ok := decodeStrict(c, data)
		if !ok || !r.hasMarker(text) {
			logger.Debug("encoding %s rejected", c.name)
			continue
		}
		logger.Info("successfully read with encoding: %s", c.name)
		return domain.Decoding{Text: text, Encoding: c.name}
	}

	logger.Warn("no candidate encoding accepted, falling back to %s with invalid bytes dropped", FallbackEncoding)
	return domain.Decoding{
		Text:     strings.ToValidUTF8(string(data), ""),
		Encoding: FallbackEncoding,
		Fallback: true,
	}
}

// decodeStrict decodes data and reports false on any undecodable input.
// The x/text decoders substitute U+FFFD instead of failing, so a
// replacement rune in the output counts as a decode error.
func decodeStrict(c candidate, data []byte) (string, bool) {
	if c.utf8 && !utf8.Valid(data) {
		return "", false
	}
	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	if !c.utf8 && bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

func (r *Resolver) hasMarker(text string) bool {
	for _, m := range r.markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
