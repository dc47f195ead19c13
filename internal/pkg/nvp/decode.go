package nvp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oxipay/payflow/internal/pkg/sdkerr"
)

// AnchorField is the first field of every gateway response
const AnchorField = "RESULT"

// Decode splits an NVP string into a Map. A NAME[n]= token takes exactly n
// bytes as its value, delimiters included.
func Decode(text string) (*Map, error) {
	m := NewMap()
	pos := 0

	for pos < len(text) {
		eq := strings.IndexByte(text[pos:], FieldDelimiter)
		if eq < 0 {
			return nil, fmt.Errorf("nvp: no value for %q at offset %d", text[pos:], pos)
		}
		name := text[pos : pos+eq]
		if name == "" || strings.IndexByte(name, PairSeparator) >= 0 {
			return nil, fmt.Errorf("nvp: invalid field name %q at offset %d", name, pos)
		}
		pos += eq + 1

		var value string
		if open := strings.IndexByte(name, '['); open >= 0 {
			length, err := parseLength(name[open:])
			if err != nil {
				return nil, fmt.Errorf("nvp: field %q: %w", name, err)
			}
			if pos+length > len(text) {
				return nil, fmt.Errorf("nvp: field %q: length %d exceeds remaining %d bytes", name, length, len(text)-pos)
			}
			name = name[:open]
			value = text[pos : pos+length]
			pos += length

			if pos < len(text) {
				if text[pos] != PairSeparator {
					return nil, fmt.Errorf("nvp: field %q: expected '&' after %d byte value at offset %d", name, length, pos)
				}
				pos++
			}
		} else {
			amp := strings.IndexByte(text[pos:], PairSeparator)
			if amp < 0 {
				value = text[pos:]
				pos = len(text)
			} else {
				value = text[pos : pos+amp]
				pos += amp + 1
			}
		}

		m.Add(name, value)
	}

	return m, nil
}

// parseLength reads "[n]"
func parseLength(s string) (int, error) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return 0, fmt.Errorf("malformed length %q", s)
	}
	n, err := strconv.Atoi(s[1 : len(s)-1])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("malformed length %q", s)
	}
	return n, nil
}

// LocateValue returns the value of name in an NVP string, or "" when the
// string cannot be read or has no such field.
func LocateValue(text string, name string) string {
	m, err := Decode(text)
	if err != nil {
		return ""
	}
	return m.Value(name)
}

// Synthesize builds a response carrying one of the reserved result codes.
// raw, when not empty, is appended to the message.
func Synthesize(result int, message string, raw string) string {
	if raw != "" {
		message = message + ": " + raw
	}
	w := NewWriter()
	w.AppendString(AnchorField, strconv.Itoa(result))
	w.AppendString("RESPMSG", message)
	return w.String()
}

// ParseResponse reads a gateway response. It always returns a usable map:
// empty text, text without a RESULT field and text that cannot be split are
// replaced with a reserved RESULT, and the problem is recorded in the
// returned context.
func ParseResponse(text string) (*Map, *sdkerr.Context) {
	ctx := sdkerr.NewContext()
	return parseResponse(text, ctx), ctx
}

func parseResponse(text string, ctx *sdkerr.Context) *Map {
	if strings.TrimSpace(text) == "" {
		ctx.Add(sdkerr.SeverityError, sdkerr.CodeEmptyResponse, "empty response from gateway")
		return parseResponse(Synthesize(sdkerr.ResultUnknownState, "Unknown state: empty response", ""), ctx)
	}

	at := anchorIndex(text)
	if at < 0 {
		ctx.Add(sdkerr.SeverityError, sdkerr.CodeMissingResult, "response has no RESULT field")
		return parseResponse(Synthesize(sdkerr.ResultUnknownState, "Unknown state: response has no RESULT field", text), ctx)
	}

	m, err := Decode(text[at:])
	if err != nil {
		ctx.Add(sdkerr.SeverityError, sdkerr.CodeMalformedNVP, err.Error())
		return parseResponse(Synthesize(sdkerr.ResultUnknownState, "Unknown state: malformed response", text), ctx)
	}
	return m
}

// anchorIndex finds RESULT= or RESULT[ where RESULT is a whole field name,
// so TRXRESULT and ORIGRESULT are skipped.
func anchorIndex(text string) int {
	from := 0
	for {
		i := strings.Index(text[from:], AnchorField)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(AnchorField)
		if (i == 0 || !isNameByte(text[i-1])) && end < len(text) && (text[end] == FieldDelimiter || text[end] == '[') {
			return i
		}
		from = end
	}
}

func isNameByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
