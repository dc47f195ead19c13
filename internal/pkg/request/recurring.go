package request

import (
	"github.com/oxipay/payflow/internal/pkg/currency"
	"github.com/oxipay/payflow/internal/pkg/nvp"
)

// RecurringAction is the profile operation of a recurring transaction
type RecurringAction string

const (
	RecurringAdd        RecurringAction = "A"
	RecurringModify     RecurringAction = "M"
	RecurringReactivate RecurringAction = "R"
	RecurringCancel     RecurringAction = "C"
	RecurringInquiry    RecurringAction = "I"
	RecurringPayment    RecurringAction = "P"
)

// Pay periods accepted by PAYPERIOD
const (
	PayPeriodWeekly       = "WEEK"
	PayPeriodBiweekly     = "BIWK"
	PayPeriodSemimonthly  = "SMMO"
	PayPeriodFourWeeks    = "FRWK"
	PayPeriodMonthly      = "MONT"
	PayPeriodQuarterly    = "QTER"
	PayPeriodSemiannually = "SMYR"
	PayPeriodYearly       = "YEAR"
	PayPeriodDays         = "DAYS"
)

// RecurringInfo describes a recurring billing profile. Term 0 bills until the
// profile is cancelled, so Term is a pointer and nil means "not sent".
type RecurringInfo struct {
	Action          RecurringAction
	ProfileName     string
	OrigProfileID   string
	Start           string // MMDDYYYY
	Term            *int
	PayPeriod       string
	Frequency       *int
	MaxFailPayments *int
	RetryNumDays    *int
	OptionalTrx     string
	OptionalTrxAmt  *currency.Currency
	// PaymentHistory is Y, N or O (optional transactions only) on inquiries
	PaymentHistory string
	PaymentNum     *int
	Email          string
	CompanyName    string
}

// Generate writes the profile fields
func (r *RecurringInfo) Generate(w *nvp.Writer) {
	if r == nil {
		return
	}
	w.AppendString("ACTION", string(r.Action))
	w.AppendString("PROFILENAME", r.ProfileName)
	w.AppendString("ORIGPROFILEID", r.OrigProfileID)
	w.AppendString("START", r.Start)
	w.AppendInt("TERM", r.Term)
	w.AppendString("PAYPERIOD", r.PayPeriod)
	w.AppendInt("FREQUENCY", r.Frequency)
	w.AppendInt("MAXFAILPAYMENTS", r.MaxFailPayments)
	w.AppendInt("RETRYNUMDAYS", r.RetryNumDays)
	w.AppendString("OPTIONALTRX", r.OptionalTrx)
	w.AppendCurrency("OPTIONALTRXAMT", r.OptionalTrxAmt)
	w.AppendString("PAYMENTHISTORY", r.PaymentHistory)
	w.AppendInt("PAYMENTNUM", r.PaymentNum)
	w.AppendString("EMAIL", r.Email)
	w.AppendString("COMPANYNAME", r.CompanyName)
}
