package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oxipay/payflow/internal/pkg/config"
	"github.com/oxipay/payflow/internal/pkg/sdkerr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransport(url string) *HTTPTransport {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &HTTPTransport{URL: url, Timeout: 30 * time.Second, Client: &http.Client{}, Log: log}
}

func TestSend(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, ContentType, r.Header.Get("Content-Type"))
		assert.Equal(t, "abc123", r.Header.Get(HeaderRequestID))
		assert.Equal(t, "30", r.Header.Get(HeaderClientTimeout))
		assert.Equal(t, Product, r.Header.Get(HeaderProduct))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, "TRXTYPE=S&ACCT=4111111111111111", string(body))

		_, _ = w.Write([]byte("RESULT=0&PNREF=V1&RESPMSG=Approved"))
	}))
	defer ts.Close()

	got, err := testTransport(ts.URL).Send(context.Background(), "abc123", "TRXTYPE=S&ACCT=4111111111111111")
	require.NoError(t, err)
	assert.Equal(t, "RESULT=0&PNREF=V1&RESPMSG=Approved", got)
}

func TestSendStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := testTransport(ts.URL).Send(context.Background(), "id", "TRXTYPE=S")
	require.Error(t, err)
	assert.True(t, sdkerr.IsKind(err, sdkerr.KindTransport))
	assert.Contains(t, err.Error(), "503")
}

func TestSendCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("RESULT=0"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testTransport(ts.URL).Send(ctx, "id", "TRXTYPE=S")
	require.Error(t, err)
	assert.True(t, sdkerr.IsKind(err, sdkerr.KindTransport))
}

func TestGatewayURL(t *testing.T) {
	assert.Equal(t, "https://pilot-payflowpro.paypal.com/", GatewayURL("pilot-payflowpro.paypal.com", 443))
	assert.Equal(t, "https://pilot-payflowpro.paypal.com/", GatewayURL("pilot-payflowpro.paypal.com", 0))
	assert.Equal(t, "https://localhost:8443/", GatewayURL("localhost", 8443))
	assert.Equal(t, "http://127.0.0.1:9000", GatewayURL("http://127.0.0.1:9000", 443))
}

func TestNewHTTPTransport(t *testing.T) {
	cfg := &config.Config{
		Host:    "pilot-payflowpro.paypal.com",
		Port:    443,
		Timeout: 20,
		Proxy:   config.ProxyConfig{Address: "proxy.internal", Port: 3128, Logon: "bob", Password: "pw"},
	}

	tr, err := NewHTTPTransport(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://pilot-payflowpro.paypal.com/", tr.URL)
	assert.Equal(t, 20*time.Second, tr.Client.Timeout)

	rt, ok := tr.Client.Transport.(*http.Transport)
	require.True(t, ok)
	req, err := http.NewRequest(http.MethodPost, tr.URL, nil)
	require.NoError(t, err)
	proxy, err := rt.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "proxy.internal:3128", proxy.Host)
	assert.Equal(t, "bob", proxy.User.Username())

	_, err = NewHTTPTransport(&config.Config{}, nil)
	assert.True(t, sdkerr.IsKind(err, sdkerr.KindConfig))
}
