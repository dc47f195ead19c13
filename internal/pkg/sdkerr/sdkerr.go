// Package sdkerr holds the error context shared by the codec and the single
// domain error type returned when a request cannot be built or a response
// cannot be read.
package sdkerr

import (
	"errors"
	"fmt"
)

// Reserved result codes produced by the SDK itself rather than the gateway.
const (
	// ResultUnknownState is used when the response could not be understood
	ResultUnknownState = -99
	// ResultTransportFailure is used when the gateway could not be reached
	ResultTransportFailure = -1
)

// Error codes recorded into a Context
const (
	CodeEmptyResponse   = "E_EMPTY_RESPONSE"
	CodeMissingResult   = "E_MISSING_RESULT"
	CodeMalformedNVP    = "E_MALFORMED_NVP"
	CodeCurrencyProcess = "E_CURRENCY_PROCESS"
	CodeConfig          = "E_CONFIG"
	CodeEncode          = "E_ENCODE"
	CodeFraudXML        = "E_FRAUD_XML"
	CodeTransport       = "E_TRANSPORT"
)

// Severity of a Record
type Severity int

const (
	SeverityDebug Severity = iota + 1
	SeverityInfo
	SeverityWarn
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// Record is a single entry in a Context
type Record struct {
	Severity Severity
	Code     string
	Message  string
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s: %s", r.Severity, r.Code, r.Message)
}

// Context is an ordered list of records collected while a request is built
// or a response is read. It is not safe for concurrent use.
type Context struct {
	records []Record
}

// NewContext returns an empty context
func NewContext() *Context {
	return &Context{}
}

// Add appends a record
func (c *Context) Add(severity Severity, code string, message string) {
	c.records = append(c.records, Record{Severity: severity, Code: code, Message: message})
}

// AddError records err, using the code and kind of an *Error when err is one.
func (c *Context) AddError(err error) {
	if err == nil {
		return
	}
	var sdkErr *Error
	if errors.As(err, &sdkErr) {
		severity := SeverityError
		if sdkErr.Kind == KindConfig {
			severity = SeverityFatal
		}
		c.Add(severity, sdkErr.Code, sdkErr.Error())
		return
	}
	c.Add(SeverityError, CodeEncode, err.Error())
}

// Merge appends every record of other
func (c *Context) Merge(other *Context) {
	if other == nil {
		return
	}
	c.records = append(c.records, other.records...)
}

// Records returns a copy of the records in insertion order
func (c *Context) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len is the number of records
func (c *Context) Len() int {
	return len(c.records)
}

// Highest returns the most severe level recorded, or zero when empty.
func (c *Context) Highest() Severity {
	var highest Severity
	for _, r := range c.records {
		if r.Severity > highest {
			highest = r.Severity
		}
	}
	return highest
}

// HasErrors reports whether anything at SeverityError or above was recorded
func (c *Context) HasErrors() bool {
	return c.Highest() >= SeverityError
}

// Kind classifies an *Error
type Kind int

const (
	// KindConfig is a fatal configuration problem such as a conflicting
	// currency policy or missing connection settings.
	KindConfig Kind = iota + 1
	// KindCodec is an unexpected failure while building a request or reading
	// a response.
	KindCodec
	// KindTransport is a failure to reach the gateway.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindCodec:
		return "codec"
	case KindTransport:
		return "transport"
	}
	return "unknown"
}

// Error is the domain error returned by the SDK
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error %s: %s: %v", e.Kind, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error %s: %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config returns a configuration error
func Config(code string, message string) *Error {
	return &Error{Kind: KindConfig, Code: code, Message: message}
}

// Codec wraps err as a codec error. An *Error is returned unchanged so its
// original kind survives.
func Codec(code string, message string, err error) *Error {
	var sdkErr *Error
	if errors.As(err, &sdkErr) {
		return sdkErr
	}
	return &Error{Kind: KindCodec, Code: code, Message: message, Err: err}
}

// Transport wraps err as a transport error
func Transport(message string, err error) *Error {
	return &Error{Kind: KindTransport, Code: CodeTransport, Message: message, Err: err}
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var sdkErr *Error
	return errors.As(err, &sdkErr) && sdkErr.Kind == kind
}
