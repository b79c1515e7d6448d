// Package encoding handles the ambient concern of getting raw input
// bytes into the UTF-8 text the tokenizer core requires: BOM sniffing
// and UTF-16 transcoding. The core itself never sees anything but
// decoded strings.
package encoding

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/spicery/uctogo/pkg/tokenizer"
)

// Kind names a detected or declared text encoding.
type Kind int

const (
	UTF8 Kind = iota
	UTF16LE
	UTF16BE
)

func (k Kind) String() string {
	switch k {
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	default:
		return "UTF-8"
	}
}

// Sniff peeks at up to 4 bytes to detect a byte-order mark, returning
// the detected Kind and the number of leading bytes the BOM occupies
// (0 if none was found, in which case UTF8 is assumed).
func Sniff(peek []byte) (Kind, int) {
	switch {
	case len(peek) >= 3 && peek[0] == 0xEF && peek[1] == 0xBB && peek[2] == 0xBF:
		return UTF8, 3
	case len(peek) >= 2 && peek[0] == 0xFF && peek[1] == 0xFE:
		return UTF16LE, 2
	case len(peek) >= 2 && peek[0] == 0xFE && peek[1] == 0xFF:
		return UTF16BE, 2
	default:
		return UTF8, 0
	}
}

// NewReader wraps r so it reads decoded UTF-8 text regardless of the
// input's actual encoding, auto-detecting a BOM when declared is UTF8
// and one is present. Returns a *tokenizer.CodingError if declared
// names an unsupported encoding.
func NewReader(r io.Reader, declared Kind) (io.Reader, error) {
	br := bufio.NewReader(r)
	peek, _ := br.Peek(4)
	kind, bomLen := Sniff(peek)
	if declared != UTF8 {
		kind = declared
		bomLen = 0
	}

	switch kind {
	case UTF8:
		if bomLen > 0 {
			br.Discard(bomLen)
		}
		return br, nil
	case UTF16LE:
		if bomLen > 0 {
			br.Discard(bomLen)
		}
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	case UTF16BE:
		if bomLen > 0 {
			br.Discard(bomLen)
		}
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		return transform.NewReader(br, dec), nil
	default:
		return nil, &tokenizer.CodingError{Encoding: kind.String(), Cause: errUnsupported}
	}
}

var errUnsupported = unsupportedEncoding{}

type unsupportedEncoding struct{}

func (unsupportedEncoding) Error() string { return "unsupported declared encoding" }
