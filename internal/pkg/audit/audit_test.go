package audit

import (
	"context"
	"os"
	"testing"

	"github.com/oxipay/payflow/internal/pkg/sdkerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	shortid "github.com/ventu-io/go-shortid"
)

func TestNewEntryMasks(t *testing.T) {
	e := NewEntry("id1", "S", 0, "V1", "TRXTYPE=S&ACCT=4111111111111111&PWD=secret", "RESULT=0&PNREF=V1", "vendor")

	assert.Equal(t, "TRXTYPE=S&ACCT=XXXXXXXXXXXX1111&PWD=XXXXXX", e.Request)
	assert.Equal(t, "RESULT=0&PNREF=V1", e.Response)
	assert.Equal(t, "id1 S RESULT=0", e.String())
}

func TestNewNullString(t *testing.T) {
	assert.False(t, newNullString("").Valid)
	assert.Equal(t, "x", newNullString("x").String)
	assert.True(t, newNullString("x").Valid)
}

func TestStoreWithoutDatabase(t *testing.T) {
	var s *Store
	assert.ErrorIs(t, s.Record(context.Background(), Entry{}), ErrNoDatabase)

	_, err := (&Store{}).FindByRequestID(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.NoError(t, s.Close())
}

func TestOpenInvalidDSN(t *testing.T) {
	_, err := Open("not a dsn")
	require.Error(t, err)
	assert.True(t, sdkerr.IsKind(err, sdkerr.KindConfig))
}

func TestStoreRoundTrip(t *testing.T) {
	dsn := os.Getenv("PAYFLOW_AUDIT_DSN")
	if dsn == "" {
		t.Skip("PAYFLOW_AUDIT_DSN not set")
	}

	s, err := Open(dsn)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Migrate(ctx))

	id, err := shortid.Generate()
	require.NoError(t, err)

	want := NewEntry(id, "A", 12, "", "TRXTYPE=A&CVV2=123", "RESULT=12&RESPMSG=Declined", "tester")
	require.NoError(t, s.Record(ctx, want))

	got, err := s.FindByRequestID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want.RequestID, got.RequestID)
	assert.Equal(t, want.Result, got.Result)
	assert.Empty(t, got.PNRef)
	assert.Equal(t, "TRXTYPE=A&CVV2=XXX", got.Request)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = s.FindByRequestID(ctx, id+"-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
