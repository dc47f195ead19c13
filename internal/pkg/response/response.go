package response

import (
	"github.com/oxipay/payflow/internal/pkg/nvp"
	"github.com/oxipay/payflow/internal/pkg/request"
	"github.com/oxipay/payflow/internal/pkg/sdkerr"
)

// Response is everything read back from one gateway call. The typed parts
// are copied out by their accessors so callers cannot change them.
type Response struct {
	requestID string
	request   string
	raw       string
	trxType   request.TrxType

	transaction TransactionResponse
	fraud       FraudResponse
	recurring   *RecurringResponse

	setExpressCheckout    *SetExpressCheckoutResponse
	getExpressCheckout    *GetExpressCheckoutResponse
	doExpressCheckout     *DoExpressCheckoutResponse
	updateExpressCheckout *UpdateExpressCheckoutResponse

	extensions []request.ExtendData
	context    *sdkerr.Context
}

// Dispatch claims the typed parts of m. TRXTYPE is read from the request
// that produced the response: a recurring request fills Recurring, anything
// else fills all four Express Checkout results. Fields nothing claimed end up
// in Extensions, except repeated fields of a recurring response which go to
// its Duplicates.
func Dispatch(m *nvp.Map, requestText string) (*Response, error) {
	r := &Response{
		request: requestText,
		trxType: request.TrxType(nvp.LocateValue(requestText, "TRXTYPE")),
		context: sdkerr.NewContext(),
	}

	r.transaction = newTransactionResponse(m, r.context)

	fraud, err := newFraudResponse(m)
	if err != nil {
		return nil, err
	}
	r.fraud = fraud

	if r.trxType == request.TrxRecurring {
		r.recurring = newRecurringResponse(m)
	} else {
		r.setExpressCheckout = newSetExpressCheckoutResponse(m)
		r.getExpressCheckout = newGetExpressCheckoutResponse(m)
		r.doExpressCheckout = newDoExpressCheckoutResponse(m)
		r.updateExpressCheckout = newUpdateExpressCheckoutResponse(m)
	}

	for _, e := range m.Unclaimed() {
		name, dup := m.Origin(e.Name)
		m.Claim(e.Name)
		if dup && r.recurring != nil {
			r.recurring.addDuplicate(name, e.Value)
			continue
		}
		r.extensions = append(r.extensions, request.ExtendData{Name: name, Value: e.Value})
	}

	return r, nil
}

// Parse reads raw as the answer to requestText. A response is always
// returned: when the fraud rules cannot be read the error is returned as
// well and the response carries RESULT -99.
func Parse(requestID, requestText, raw string) (*Response, error) {
	m, ctx := nvp.ParseResponse(raw)

	r, err := Dispatch(m, requestText)
	if err != nil {
		ctx.AddError(err)
		fallback, _ := nvp.ParseResponse(nvp.Synthesize(sdkerr.ResultUnknownState, "Unknown state: "+err.Error(), raw))
		r, _ = Dispatch(fallback, requestText)
	}

	ctx.Merge(r.context)
	r.context = ctx
	r.requestID = requestID
	r.raw = raw
	return r, err
}

// Failed builds the response for a call that never reached the gateway
func Failed(requestID, requestText string, cause error) *Response {
	return synthetic(requestID, requestText, sdkerr.ResultTransportFailure, "Failed to connect to host", cause)
}

// Unknown builds the response for a request that could not be completed,
// such as one that failed to encode.
func Unknown(requestID, requestText string, cause error) *Response {
	return synthetic(requestID, requestText, sdkerr.ResultUnknownState, "Unknown state", cause)
}

func synthetic(requestID, requestText string, result int, message string, cause error) *Response {
	ctx := sdkerr.NewContext()
	detail := ""
	if cause != nil {
		ctx.AddError(cause)
		detail = cause.Error()
	}

	m, _ := nvp.ParseResponse(nvp.Synthesize(result, message, detail))
	r, _ := Dispatch(m, requestText)
	ctx.Merge(r.context)
	r.context = ctx
	r.requestID = requestID
	return r
}

// RequestID is the X-VPS-REQUEST-ID the request was sent with
func (r *Response) RequestID() string { return r.requestID }

// Request is the NVP text that was sent
func (r *Response) Request() string { return r.request }

// Raw is the text the gateway returned
func (r *Response) Raw() string { return r.raw }

// TrxType is the TRXTYPE of the request
func (r *Response) TrxType() request.TrxType { return r.trxType }

// Transaction returns the outcome fields
func (r *Response) Transaction() TransactionResponse { return r.transaction }

// Fraud returns the fraud filter results
func (r *Response) Fraud() FraudResponse { return r.fraud.clone() }

// Recurring is nil unless the request was TRXTYPE=R
func (r *Response) Recurring() *RecurringResponse { return r.recurring.clone() }

// SetExpressCheckout is nil for recurring requests
func (r *Response) SetExpressCheckout() *SetExpressCheckoutResponse {
	if r.setExpressCheckout == nil {
		return nil
	}
	c := *r.setExpressCheckout
	return &c
}

// GetExpressCheckout is nil for recurring requests
func (r *Response) GetExpressCheckout() *GetExpressCheckoutResponse {
	if r.getExpressCheckout == nil {
		return nil
	}
	c := *r.getExpressCheckout
	return &c
}

// DoExpressCheckout is nil for recurring requests
func (r *Response) DoExpressCheckout() *DoExpressCheckoutResponse {
	if r.doExpressCheckout == nil {
		return nil
	}
	c := *r.doExpressCheckout
	return &c
}

// UpdateExpressCheckout is nil for recurring requests
func (r *Response) UpdateExpressCheckout() *UpdateExpressCheckoutResponse {
	if r.updateExpressCheckout == nil {
		return nil
	}
	c := *r.updateExpressCheckout
	return &c
}

// Extensions returns the fields no typed part claimed, in response order
func (r *Response) Extensions() []request.ExtendData {
	return append([]request.ExtendData(nil), r.extensions...)
}

// Extension returns the first unclaimed value named name
func (r *Response) Extension(name string) (string, bool) {
	for _, e := range r.extensions {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// Context returns what was recorded while the response was read
func (r *Response) Context() *sdkerr.Context { return r.context }
