// Package nvp implements the Name=Value Pair wire format used by the gateway.
//
// A request is a flat list of NAME=value tokens joined by '&'. A value that
// contains '&' or '=' is written NAME[<bytes>]=value so the reader can take
// exactly that many bytes without looking for delimiters.
package nvp

import (
	"strconv"
	"strings"

	"github.com/oxipay/payflow/internal/pkg/currency"
)

const (
	// PairSeparator separates tokens
	PairSeparator = '&'
	// FieldDelimiter separates a name from its value
	FieldDelimiter = '='
)

// Writer accumulates the tokens of one request. The first token written has
// no leading separator no matter which node writes it. A Writer must not be
// shared between requests.
type Writer struct {
	buf   strings.Builder
	count int
	err   error
}

// NewWriter returns an empty writer
func NewWriter() *Writer {
	return &Writer{}
}

// AppendString writes name=value. Empty values write nothing.
func (w *Writer) AppendString(name string, value string) {
	if value == "" {
		return
	}
	w.writePair(name, value)
}

// AppendInt writes name=value. A nil value writes nothing.
func (w *Writer) AppendInt(name string, value *int) {
	if value == nil {
		return
	}
	w.writePair(name, strconv.Itoa(*value))
}

// AppendFlag writes Y or N. A nil value writes nothing.
func (w *Writer) AppendFlag(name string, value *bool) {
	if value == nil {
		return
	}
	if *value {
		w.writePair(name, "Y")
		return
	}
	w.writePair(name, "N")
}

// AppendCurrency renders value and writes it. A nil value writes nothing.
// Rendering errors are kept and reported by Err.
func (w *Writer) AppendCurrency(name string, value *currency.Currency) {
	if value == nil {
		return
	}
	rendered, err := value.Render()
	if err != nil {
		w.Fail(err)
		return
	}
	w.writePair(name, rendered)
}

// Fail records err. Only the first error is kept.
func (w *Writer) Fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Err returns the first error recorded while writing
func (w *Writer) Err() error {
	return w.err
}

// Len is the number of tokens written
func (w *Writer) Len() int {
	return w.count
}

// String returns the request text written so far
func (w *Writer) String() string {
	return w.buf.String()
}

func (w *Writer) writePair(name string, value string) {
	if w.count > 0 {
		w.buf.WriteByte(PairSeparator)
	}
	w.buf.WriteString(EncodePair(name, value))
	w.count++
}

// EncodePair returns a single token without any separator.
func EncodePair(name string, value string) string {
	if NeedsLengthPrefix(value) {
		return name + "[" + strconv.Itoa(len(value)) + "]" + string(FieldDelimiter) + value
	}
	return name + string(FieldDelimiter) + value
}

// NeedsLengthPrefix reports whether value contains a delimiter
func NeedsLengthPrefix(value string) bool {
	return strings.IndexByte(value, PairSeparator) >= 0 || strings.IndexByte(value, FieldDelimiter) >= 0
}

// Indexed appends the 0-based position to a field name, as line items do:
// Indexed("L_AMT", 1) is "L_AMT1".
func Indexed(name string, index int) string {
	return name + strconv.Itoa(index)
}
