package sdkerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, Severity(0), ctx.Highest())
	assert.False(t, ctx.HasErrors())

	ctx.Add(SeverityWarn, CodeMalformedNVP, "odd")
	assert.False(t, ctx.HasErrors())

	ctx.AddError(Config(CodeCurrencyProcess, "round and truncate"))
	ctx.AddError(errors.New("plain"))
	ctx.AddError(nil)

	records := ctx.Records()
	require.Len(t, records, 3)
	assert.Equal(t, SeverityFatal, records[1].Severity)
	assert.Equal(t, CodeCurrencyProcess, records[1].Code)
	assert.Equal(t, Record{Severity: SeverityError, Code: CodeEncode, Message: "plain"}, records[2])
	assert.Equal(t, SeverityFatal, ctx.Highest())
	assert.True(t, ctx.HasErrors())

	records[0].Message = "changed"
	assert.Equal(t, "odd", ctx.Records()[0].Message)
	assert.Equal(t, "WARN E_MALFORMED_NVP: odd", ctx.Records()[0].String())
}

func TestContextMerge(t *testing.T) {
	a := NewContext()
	a.Add(SeverityInfo, CodeConfig, "a")
	b := NewContext()
	b.Add(SeverityError, CodeTransport, "b")

	a.Merge(b)
	a.Merge(nil)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "b", a.Records()[1].Message)
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := Codec(CodeEncode, "building request", cause)

	assert.Equal(t, "codec error E_ENCODE: building request: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindCodec))
	assert.False(t, IsKind(err, KindConfig))

	wrapped := fmt.Errorf("submit: %w", Config(CodeConfig, "host is required"))
	assert.True(t, IsKind(wrapped, KindConfig))
	assert.True(t, IsKind(Codec(CodeEncode, "again", wrapped), KindConfig))

	assert.Equal(t, "transport error E_TRANSPORT: timeout", Transport("timeout", nil).Error())
	assert.False(t, IsKind(cause, KindTransport))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "DEBUG", SeverityDebug.String())
	assert.Equal(t, "FATAL", SeverityFatal.String())
	assert.Equal(t, "UNKNOWN", Severity(0).String())
}
