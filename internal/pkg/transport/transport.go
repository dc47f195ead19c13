package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oxipay/payflow/internal/pkg/config"
	"github.com/oxipay/payflow/internal/pkg/logging"
	"github.com/oxipay/payflow/internal/pkg/sdkerr"
	"github.com/sirupsen/logrus"
)

const (
	// ContentType of every request body
	ContentType = "text/namevalue"
	// HeaderRequestID lets the gateway recognise a resubmitted request
	HeaderRequestID = "X-VPS-REQUEST-ID"
	// HeaderClientTimeout is the timeout in seconds the client will wait
	HeaderClientTimeout = "X-VPS-CLIENT-TIMEOUT"
	// HeaderProduct identifies the integration
	HeaderProduct = "X-VPS-VIT-INTEGRATION-PRODUCT"
	// HeaderVersion is the integration version
	HeaderVersion = "X-VPS-VIT-INTEGRATION-VERSION"

	// Product is sent in HeaderProduct
	Product = "payflow-go"
	// Version is sent in HeaderVersion
	Version = "1.0"
)

// Transport delivers one request body and returns the gateway's reply. It
// makes a single attempt.
type Transport interface {
	Send(ctx context.Context, requestID string, body string) (string, error)
}

// HTTPTransport posts NVP bodies to the gateway over HTTPS
type HTTPTransport struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
	Log     logrus.FieldLogger
}

// NewHTTPTransport builds a transport for cfg. The proxy, when configured,
// carries the logon as basic credentials.
func NewHTTPTransport(cfg *config.Config, log logrus.FieldLogger) (*HTTPTransport, error) {
	if cfg.Host == "" {
		return nil, sdkerr.Config(sdkerr.CodeConfig, "host is required")
	}

	rt := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Proxy.Address != "" {
		proxy := &url.URL{
			Scheme: "http",
			Host:   net.JoinHostPort(cfg.Proxy.Address, strconv.Itoa(cfg.Proxy.Port)),
		}
		if cfg.Proxy.Logon != "" {
			proxy.User = url.UserPassword(cfg.Proxy.Logon, cfg.Proxy.Password)
		}
		rt.Proxy = http.ProxyURL(proxy)
	}

	if log == nil {
		log = logrus.StandardLogger()
	}

	return &HTTPTransport{
		URL:     GatewayURL(cfg.Host, cfg.Port),
		Timeout: cfg.TimeoutDuration(),
		Client:  &http.Client{Transport: rt, Timeout: cfg.TimeoutDuration()},
		Log:     log,
	}, nil
}

// GatewayURL is the endpoint for host. A host that already carries a scheme
// is used as is.
func GatewayURL(host string, port int) string {
	if strings.Contains(host, "://") {
		return host
	}
	if port == 0 || port == 443 {
		return "https://" + host + "/"
	}
	return "https://" + net.JoinHostPort(host, strconv.Itoa(port)) + "/"
}

// Send will POST body and return the response text
func (t *HTTPTransport) Send(ctx context.Context, requestID string, body string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL, strings.NewReader(body))
	if err != nil {
		return "", sdkerr.Transport("building request", err)
	}

	req.Header.Set("Content-Type", ContentType)
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set(HeaderClientTimeout, strconv.Itoa(int(t.Timeout/time.Second)))
	req.Header.Set(HeaderProduct, Product)
	req.Header.Set(HeaderVersion, Version)

	log := t.Log.WithField("request_id", requestID)
	log.Debugf("POST to URL %s", t.URL)
	log.Debugf("Payload: %s", logging.Mask(body))

	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: t.Timeout}
	}

	response, err := client.Do(req)
	if err != nil {
		return "", sdkerr.Transport("posting to gateway", err)
	}
	defer response.Body.Close()

	log.Debug("Response Status: ", response.Status)

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return "", sdkerr.Transport("reading gateway response", err)
	}

	if response.StatusCode != http.StatusOK {
		return "", sdkerr.Transport(fmt.Sprintf("gateway returned %s", response.Status), nil)
	}

	log.Debugf("Response Body: %s", logging.Mask(string(raw)))
	return string(raw), nil
}
