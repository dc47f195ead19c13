package response

import (
	"strconv"

	"github.com/oxipay/payflow/internal/pkg/nvp"
)

// RecurringHistory is one payment row of a profile inquiry with
// PAYMENTHISTORY=Y. Rows are numbered from 1.
type RecurringHistory struct {
	PaymentNum int
	PNRef      string
	TransTime  string
	Result     string
	Tender     string
	Amt        string
	TransState string
}

// RecurringResponse is the recurring billing part of a TRXTYPE=R response
type RecurringResponse struct {
	RPRef                string
	ProfileID            string
	ProfileName          string
	TrxPNRef             string
	TrxResult            string
	TrxRespMsg           string
	Status               string
	Start                string
	Term                 string
	End                  string
	PayPeriod            string
	Frequency            string
	PaymentsLeft         string
	NextPayment          string
	NumFailPayments      string
	MaxFailPayments      string
	RetryNumDays         string
	Tender               string
	Amt                  string
	AggregateAmt         string
	AggregateOptionalAmt string
	Acct                 string
	ExpDate              string
	Email                string
	CompanyName          string
	CreationDate         string
	LastChanged          string

	History []RecurringHistory

	duplicates map[string][]string
}

// Duplicates returns the second and later values of every field the gateway
// repeated, keyed by field name. The first value stays wherever it was
// claimed, typed field or extension.
func (r *RecurringResponse) Duplicates() map[string][]string {
	out := make(map[string][]string, len(r.duplicates))
	for name, values := range r.duplicates {
		out[name] = append([]string(nil), values...)
	}
	return out
}

func (r *RecurringResponse) addDuplicate(name, value string) {
	if r.duplicates == nil {
		r.duplicates = make(map[string][]string)
	}
	r.duplicates[name] = append(r.duplicates[name], value)
}

func (r *RecurringResponse) clone() *RecurringResponse {
	if r == nil {
		return nil
	}
	c := *r
	c.History = append([]RecurringHistory(nil), r.History...)
	c.duplicates = r.Duplicates()
	return &c
}

func newRecurringResponse(m *nvp.Map) *RecurringResponse {
	r := &RecurringResponse{
		RPRef:                m.Take("RPREF"),
		ProfileID:            m.Take("PROFILEID"),
		ProfileName:          m.Take("PROFILENAME"),
		TrxPNRef:             m.Take("TRXPNREF"),
		TrxResult:            m.Take("TRXRESULT"),
		TrxRespMsg:           m.Take("TRXRESPMSG"),
		Status:               m.Take("STATUS"),
		Start:                m.Take("START"),
		Term:                 m.Take("TERM"),
		End:                  m.Take("END"),
		PayPeriod:            m.Take("PAYPERIOD"),
		Frequency:            m.Take("FREQUENCY"),
		PaymentsLeft:         m.Take("PAYMENTSLEFT"),
		NextPayment:          m.Take("NEXTPAYMENT"),
		NumFailPayments:      m.Take("NUMFAILPAYMENTS"),
		MaxFailPayments:      m.Take("MAXFAILPAYMENTS"),
		RetryNumDays:         m.Take("RETRYNUMDAYS"),
		Tender:               m.Take("TENDER"),
		Amt:                  m.Take("AMT"),
		AggregateAmt:         m.Take("AGGREGATEAMT"),
		AggregateOptionalAmt: m.Take("AGGREGATEOPTIONALAMT"),
		Acct:                 m.Take("ACCT"),
		ExpDate:              m.Take("EXPDATE"),
		Email:                m.Take("EMAIL"),
		CompanyName:          m.Take("COMPANYNAME"),
		CreationDate:         m.Take("CREATIONDATE"),
		LastChanged:          m.Take("LASTCHANGED"),
	}

	for n := 1; hasHistoryRow(m, n); n++ {
		suffix := strconv.Itoa(n)
		r.History = append(r.History, RecurringHistory{
			PaymentNum: n,
			PNRef:      m.Take("P_PNREF" + suffix),
			TransTime:  m.Take("P_TRANSTIME" + suffix),
			Result:     m.Take("P_RESULT" + suffix),
			Tender:     m.Take("P_TENDER" + suffix),
			Amt:        m.Take("P_AMT" + suffix),
			TransState: m.Take("P_TRANSTATE" + suffix),
		})
	}

	return r
}

func hasHistoryRow(m *nvp.Map, n int) bool {
	suffix := strconv.Itoa(n)
	for _, name := range []string{"P_PNREF", "P_RESULT", "P_TRANSTIME", "P_AMT", "P_TENDER", "P_TRANSTATE"} {
		if m.Has(name + suffix) {
			return true
		}
	}
	return false
}
