// Package payflow is a client for the Payflow NVP payment gateway. Build a
// request tree with the constructors re-exported here, hand it to
// Client.Submit and read the typed response back.
package payflow

import (
	"context"
	"io"
	"os"
	"strings"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/oxipay/payflow/internal/pkg/audit"
	"github.com/oxipay/payflow/internal/pkg/config"
	"github.com/oxipay/payflow/internal/pkg/currency"
	"github.com/oxipay/payflow/internal/pkg/logging"
	"github.com/oxipay/payflow/internal/pkg/nvp"
	"github.com/oxipay/payflow/internal/pkg/request"
	"github.com/oxipay/payflow/internal/pkg/response"
	"github.com/oxipay/payflow/internal/pkg/transport"
	"github.com/sirupsen/logrus"
)

// Version which version of the SDK are we using
const Version = transport.Version

type (
	Config            = config.Config
	ProxyConfig       = config.ProxyConfig
	CredentialsConfig = config.CredentialsConfig
	Transaction       = request.Transaction
	Tender            = request.Tender
	Card              = request.Card
	BankAccount       = request.BankAccount
	Check             = request.Check
	ExpressCheckout   = request.ExpressCheckout
	Invoice           = request.Invoice
	Address           = request.Address
	LineItem          = request.LineItem
	RecurringInfo     = request.RecurringInfo
	UserInfo          = request.UserInfo
	Currency          = currency.Currency
	Response          = response.Response
	Transport         = transport.Transport
	Recorder          = audit.Recorder
)

var (
	ReadConfig = config.ReadApplicationConfig

	NewUserInfo               = request.NewUserInfo
	NewCardTender             = request.NewCardTender
	NewACHTender              = request.NewACHTender
	NewCheckTender            = request.NewCheckTender
	NewPayPalTender           = request.NewPayPalTender
	NewInvoice                = request.NewInvoice
	NewSale                   = request.NewSale
	NewAuthorization          = request.NewAuthorization
	NewCapture                = request.NewCapture
	NewCredit                 = request.NewCredit
	NewVoid                   = request.NewVoid
	NewInquiry                = request.NewInquiry
	NewVoiceAuthorization     = request.NewVoiceAuthorization
	NewRecurring              = request.NewRecurring
	NewSetExpressCheckout     = request.NewSetExpressCheckout
	NewGetExpressCheckout     = request.NewGetExpressCheckout
	NewDoExpressCheckout      = request.NewDoExpressCheckout
	NewUpdateBillingAgreement = request.NewUpdateBillingAgreement
	NewCurrency               = currency.New
	NewCurrencyFromFloat      = currency.NewFromFloat
	NewCurrencyFromString     = currency.NewFromString
)

// Client submits transactions to the gateway. It is safe for concurrent use
// as long as its Transport and Recorder are.
type Client struct {
	cfg       *config.Config
	transport transport.Transport
	log       logrus.FieldLogger
	recorder  audit.Recorder
	closers   []io.Closer
	newID     func() (string, error)
}

// Option configures a Client
type Option func(*Client)

// WithTransport replaces the HTTPS transport
func WithTransport(t transport.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger replaces the logger built from the configured level
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

// WithRecorder keeps an audit trail of every call. It takes precedence over
// AuditDSN.
func WithRecorder(r audit.Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient validates cfg and builds a client. Without options it logs to
// stderr, talks HTTPS to cfg.Host and audits to cfg.AuditDSN when set.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(nil); err != nil {
		return nil, err
	}

	c := &Client{cfg: cfg, newID: NewRequestID}
	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		log, err := logging.New(cfg.LogLevel, os.Stderr)
		if err != nil {
			return nil, err
		}
		c.log = log
	}

	if c.transport == nil {
		t, err := transport.NewHTTPTransport(cfg, c.log)
		if err != nil {
			return nil, err
		}
		c.transport = t
	}

	if c.recorder == nil && cfg.AuditDSN != "" {
		store, err := audit.Open(cfg.AuditDSN)
		if err != nil {
			return nil, err
		}
		c.recorder = store
		c.closers = append(c.closers, store)
	}

	return c, nil
}

// Close releases what NewClient opened
func (c *Client) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Submit sends txn and returns what came back. It never returns nil: a
// request that cannot be encoded, sent or read still yields a response with
// a reserved RESULT, and the cause is in its Context. txn itself is not
// modified; credentials and a secure-token ID are filled in on a copy.
func (c *Client) Submit(ctx context.Context, txn *request.Transaction) *response.Response {
	requestID, err := c.newID()
	if err != nil {
		log := c.log.WithField("trxtype", string(txn.TrxType))
		log.WithError(err).Error("unable to generate request id")
		return c.finish(ctx, log, response.Unknown("", trxTypeOnly(txn), err))
	}
	log := c.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"trxtype":    string(txn.TrxType),
	})

	out := *txn
	if out.User == nil {
		creds := c.cfg.Credentials
		out.User = request.NewUserInfo(creds.User, creds.Vendor, creds.Partner, creds.Password)
	}
	if out.CreateSecureToken != nil && *out.CreateSecureToken && out.SecureTokenID == "" {
		if out.SecureTokenID, err = c.newID(); err != nil {
			log.WithError(err).Error("unable to generate secure token id")
			return c.finish(ctx, log, response.Unknown(requestID, trxTypeOnly(txn), err))
		}
	}

	body, err := out.Encode()
	if err != nil {
		log.WithError(err).Error("unable to encode request")
		return c.finish(ctx, log, response.Unknown(requestID, trxTypeOnly(txn), err))
	}

	raw, err := c.transport.Send(ctx, requestID, body)
	if err != nil {
		log.WithError(err).Error("unable to reach gateway")
		return c.finish(ctx, log, response.Failed(requestID, body, err))
	}

	resp, err := response.Parse(requestID, body, raw)
	if err != nil {
		log.WithError(err).Error("unable to read gateway response")
	}
	return c.finish(ctx, log, resp)
}

// trxTypeOnly is the request text recorded when txn never got encoded
func trxTypeOnly(txn *request.Transaction) string {
	w := nvp.NewWriter()
	w.AppendString("TRXTYPE", string(txn.TrxType))
	return w.String()
}

func (c *Client) finish(ctx context.Context, log logrus.FieldLogger, resp *response.Response) *response.Response {
	tx := resp.Transaction()
	log = log.WithField("result", tx.Result)

	for _, rec := range resp.Context().Records() {
		log.WithField("code", rec.Code).Debug(rec.String())
	}
	log.Infof("%s: %s", tx.Status(), tx.RespMsg)

	if c.recorder != nil {
		entry := audit.NewEntry(resp.RequestID(), string(resp.TrxType()), tx.Result, tx.PNRef, resp.Request(), resp.Raw(), c.cfg.Credentials.Vendor)
		if err := c.recorder.Record(ctx, entry); err != nil {
			log.WithError(err).Warn("unable to record audit entry")
		}
	}
	return resp
}

// NewRequestID returns 32 hex characters, the form the gateway expects in
// X-VPS-REQUEST-ID and SECURETOKENID.
func NewRequestID() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(u.String(), "-", ""), nil
}
