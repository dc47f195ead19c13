package request

import (
	"github.com/oxipay/payflow/internal/pkg/currency"
	"github.com/oxipay/payflow/internal/pkg/nvp"
)

// ExpressCheckoutAction selects one of the four express checkout operations
type ExpressCheckoutAction string

const (
	ActionSet    ExpressCheckoutAction = "S"
	ActionGet    ExpressCheckoutAction = "G"
	ActionDo     ExpressCheckoutAction = "D"
	ActionUpdate ExpressCheckoutAction = "U"
)

// ExpressCheckout is the payment device of a PayPal tender. Only the fields of
// the selected Action are written.
type ExpressCheckout struct {
	Action ExpressCheckoutAction

	// set
	ReturnURL          string
	CancelURL          string
	ReqConfirmShipping string
	NoShipping         string
	AddrOverride       string
	LocaleCode         string
	PageStyle          string
	HeaderImage        string
	HeaderBorderColor  string
	HeaderBackColor    string
	PayflowColor       string
	MaxAmt             *currency.Currency
	BillingType        string
	PaymentType        string

	// get, do
	Token   string
	PayerID string

	// set, update
	BillingAgreementDesc   string
	BillingAgreementCustom string

	// update
	BillingAgreementID     string
	BillingAgreementStatus string
}

// NewSetExpressCheckout starts a checkout and sends the buyer to PayPal
func NewSetExpressCheckout(returnURL, cancelURL string) *ExpressCheckout {
	return &ExpressCheckout{Action: ActionSet, ReturnURL: returnURL, CancelURL: cancelURL}
}

// NewGetExpressCheckout fetches the buyer details for token
func NewGetExpressCheckout(token string) *ExpressCheckout {
	return &ExpressCheckout{Action: ActionGet, Token: token}
}

// NewDoExpressCheckout completes the payment for token
func NewDoExpressCheckout(token, payerID string) *ExpressCheckout {
	return &ExpressCheckout{Action: ActionDo, Token: token, PayerID: payerID}
}

// NewUpdateBillingAgreement changes the status of a billing agreement
func NewUpdateBillingAgreement(baid, status string) *ExpressCheckout {
	return &ExpressCheckout{Action: ActionUpdate, BillingAgreementID: baid, BillingAgreementStatus: status}
}

// Generate writes ACTION followed by the fields of that action
func (e *ExpressCheckout) Generate(w *nvp.Writer) {
	if e == nil {
		return
	}
	w.AppendString("ACTION", string(e.Action))

	switch e.Action {
	case ActionSet:
		w.AppendString("RETURNURL", e.ReturnURL)
		w.AppendString("CANCELURL", e.CancelURL)
		w.AppendString("REQCONFIRMSHIPPING", e.ReqConfirmShipping)
		w.AppendString("NOSHIPPING", e.NoShipping)
		w.AppendString("ADDROVERRIDE", e.AddrOverride)
		w.AppendString("LOCALECODE", e.LocaleCode)
		w.AppendString("PAGESTYLE", e.PageStyle)
		w.AppendString("HDRIMG", e.HeaderImage)
		w.AppendString("HDRBORDERCOLOR", e.HeaderBorderColor)
		w.AppendString("HDRBACKCOLOR", e.HeaderBackColor)
		w.AppendString("PAYFLOWCOLOR", e.PayflowColor)
		w.AppendCurrency("MAXAMT", e.MaxAmt)
		w.AppendString("BILLINGTYPE", e.BillingType)
		w.AppendString("BA_DESC", e.BillingAgreementDesc)
		w.AppendString("BA_CUSTOM", e.BillingAgreementCustom)
		w.AppendString("PAYMENTTYPE", e.PaymentType)
	case ActionGet:
		w.AppendString("TOKEN", e.Token)
	case ActionDo:
		w.AppendString("TOKEN", e.Token)
		w.AppendString("PAYERID", e.PayerID)
	case ActionUpdate:
		w.AppendString("BAID", e.BillingAgreementID)
		w.AppendString("BA_STATUS", e.BillingAgreementStatus)
		w.AppendString("BA_DESC", e.BillingAgreementDesc)
		w.AppendString("BA_CUSTOM", e.BillingAgreementCustom)
	}
}
