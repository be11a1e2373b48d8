package ast27

import "github.com/Sumatoshi-tech/pyconv/internal/literal"

// StrValue is the content of a string literal: Text for unicode literals,
// ByteString for byte literals.
type StrValue interface {
	strValue()
}

// Text is unicode string content.
type Text string

// ByteString is byte string content.
type ByteString []byte

func (Text) strValue()       {}
func (ByteString) strValue() {}

// Number is a numeric literal kept in its textual form ("42", "0x1f",
// "10L", "1.5e3", "2j").
type Number string

// MarshalJSON emits the literal as a bare JSON number when it is one, and as
// a string otherwise.
func (n Number) MarshalJSON() ([]byte, error) {
	return literal.MarshalNumber(string(n))
}

// UnmarshalJSON accepts a JSON number or a JSON string.
func (n *Number) UnmarshalJSON(data []byte) error {
	text, err := literal.UnmarshalNumber(data)
	if err != nil {
		return err
	}

	*n = Number(text)

	return nil
}
