package request

import (
	"errors"

	"github.com/oxipay/payflow/internal/pkg/nvp"
	"github.com/oxipay/payflow/internal/pkg/sdkerr"
)

// TrxType is the transaction type sent as TRXTYPE
type TrxType string

const (
	TrxSale          TrxType = "S"
	TrxAuthorization TrxType = "A"
	TrxCapture       TrxType = "D"
	TrxCredit        TrxType = "C"
	TrxVoid          TrxType = "V"
	TrxInquiry       TrxType = "I"
	TrxVoiceAuth     TrxType = "F"
	TrxRecurring     TrxType = "R"
	TrxOrder         TrxType = "O"
	TrxAccountVerify TrxType = "N"
)

// Transaction is the root of a request. Generate writes, in order: TRXTYPE,
// the credentials, the tender, the invoice, the recurring profile, the
// transaction level fields and finally any extension data.
type Transaction struct {
	TrxType   TrxType
	User      *UserInfo
	Tender    *Tender
	Invoice   *Invoice
	Recurring *RecurringInfo

	OrigID          string
	AuthCode        string
	CaptureComplete *bool
	Verbosity       string

	CreateSecureToken *bool
	SecureTokenID     string

	Extensions []ExtendData
}

// NewSale charges the tender for the invoice
func NewSale(user *UserInfo, tender *Tender, invoice *Invoice) *Transaction {
	return &Transaction{TrxType: TrxSale, User: user, Tender: tender, Invoice: invoice}
}

// NewAuthorization reserves the invoice amount without capturing it
func NewAuthorization(user *UserInfo, tender *Tender, invoice *Invoice) *Transaction {
	return &Transaction{TrxType: TrxAuthorization, User: user, Tender: tender, Invoice: invoice}
}

// NewCapture settles a prior authorization. invoice may be nil to capture
// the full authorized amount.
func NewCapture(user *UserInfo, origID string, invoice *Invoice) *Transaction {
	return &Transaction{TrxType: TrxCapture, User: user, OrigID: origID, Invoice: invoice}
}

// NewCredit refunds a prior transaction
func NewCredit(user *UserInfo, origID string, invoice *Invoice) *Transaction {
	return &Transaction{TrxType: TrxCredit, User: user, OrigID: origID, Invoice: invoice}
}

// NewVoid cancels a prior transaction that has not settled
func NewVoid(user *UserInfo, origID string) *Transaction {
	return &Transaction{TrxType: TrxVoid, User: user, OrigID: origID}
}

// NewInquiry looks up the status of a prior transaction
func NewInquiry(user *UserInfo, origID string) *Transaction {
	return &Transaction{TrxType: TrxInquiry, User: user, OrigID: origID}
}

// NewVoiceAuthorization records an authorization obtained over the phone
func NewVoiceAuthorization(user *UserInfo, authCode string, tender *Tender, invoice *Invoice) *Transaction {
	return &Transaction{TrxType: TrxVoiceAuth, User: user, AuthCode: authCode, Tender: tender, Invoice: invoice}
}

// NewRecurring manages a recurring billing profile. tender and invoice may
// be nil for inquiries and cancellations.
func NewRecurring(user *UserInfo, info *RecurringInfo, tender *Tender, invoice *Invoice) *Transaction {
	return &Transaction{TrxType: TrxRecurring, User: user, Recurring: info, Tender: tender, Invoice: invoice}
}

// AddExtension appends a raw field written after everything else
func (t *Transaction) AddExtension(name, value string) {
	t.Extensions = append(t.Extensions, ExtendData{Name: name, Value: value})
}

// Generate writes the whole request to w
func (t *Transaction) Generate(w *nvp.Writer) {
	w.AppendString("TRXTYPE", string(t.TrxType))
	t.User.Generate(w)
	t.Tender.Generate(w)
	t.Invoice.Generate(w)
	t.Recurring.Generate(w)

	w.AppendString("ORIGID", t.OrigID)
	w.AppendString("AUTHCODE", t.AuthCode)
	w.AppendFlag("CAPTURECOMPLETE", t.CaptureComplete)
	w.AppendString("VERBOSITY", t.Verbosity)
	w.AppendFlag("CREATESECURETOKEN", t.CreateSecureToken)
	w.AppendString("SECURETOKENID", t.SecureTokenID)

	for _, e := range t.Extensions {
		e.Generate(w)
	}
}

// Encode serializes the transaction. On failure nothing is returned but the
// error, which is always an *sdkerr.Error.
func (t *Transaction) Encode() (string, error) {
	if t.TrxType == "" {
		return "", sdkerr.Config(sdkerr.CodeConfig, "transaction type is required")
	}

	w := nvp.NewWriter()
	t.Generate(w)
	if err := w.Err(); err != nil {
		var sdkErr *sdkerr.Error
		if errors.As(err, &sdkErr) {
			return "", err
		}
		return "", sdkerr.Codec(sdkerr.CodeEncode, "building request", err)
	}
	return w.String(), nil
}
