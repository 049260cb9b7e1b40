package order

import (
	"crypto/rand"
	"io"
)

const (
	CodeLength   = 8
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// largest multiple of len(codeAlphabet) that fits in a byte
	codeRejectAbove = 252
)

// Code is the human-shareable order reference. Codes are random and not
// checked for uniqueness against existing orders.
type Code string

func (c Code) String() string {
	return string(c)
}

type CodeGenerator interface {
	Generate() (Code, error)
}

// RandomCodeGenerator draws each character uniformly from [A-Z0-9].
type RandomCodeGenerator struct {
	src io.Reader
}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{src: rand.Reader}
}

func NewCodeGeneratorFrom(src io.Reader) *RandomCodeGenerator {
	return &RandomCodeGenerator{src: src}
}

func (g *RandomCodeGenerator) Generate() (Code, error) {
	out := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength*2)
	for len(out) < CodeLength {
		if _, err := io.ReadFull(g.src, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= codeRejectAbove {
				continue
			}
			out = append(out, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(out) == CodeLength {
				break
			}
		}
	}
	return Code(out), nil
}

func ParseCode(s string) (Code, error) {
	if len(s) != CodeLength {
		return "", ErrInvalidOrderCode
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return "", ErrInvalidOrderCode
		}
	}
	return Code(s), nil
}
