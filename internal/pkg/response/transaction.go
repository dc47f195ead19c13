package response

import (
	"strconv"

	"github.com/oxipay/payflow/internal/pkg/nvp"
	"github.com/oxipay/payflow/internal/pkg/sdkerr"
)

// TransactionResponse is the outcome every response carries
type TransactionResponse struct {
	Result         int
	PNRef          string
	RespMsg        string
	AuthCode       string
	AVSAddr        string
	AVSZip         string
	IAVS           string
	CVV2Match      string
	CardSecure     string
	PPRef          string
	CorrelationID  string
	FeeAmt         string
	PendingReason  string
	PaymentType    string
	Duplicate      string
	HostCode       string
	RespText       string
	ProcAVS        string
	ProcCVV2       string
	ProcCardSecure string
	AddlMsgs       string
	TransTime      string
	OrigResult     string
	OrigPNRef      string
	TransState     string
	CustRef        string
	BalAmt         string
	Amt            string
	CardType       string
	ExtRspMsg      string
	TxID           string
	SecureToken    string
	SecureTokenID  string
	RRN            string
}

// Approved reports RESULT=0
func (t TransactionResponse) Approved() bool {
	return t.Result == 0
}

// Status returns the generic status of Result
func (t TransactionResponse) Status() string {
	return ResultStatus(t.Result)
}

func newTransactionResponse(m *nvp.Map, ctx *sdkerr.Context) TransactionResponse {
	raw := m.Take("RESULT")
	result, err := strconv.Atoi(raw)
	if err != nil {
		ctx.Add(sdkerr.SeverityWarn, sdkerr.CodeMalformedNVP, "non numeric RESULT "+strconv.Quote(raw))
		result = sdkerr.ResultUnknownState
	}

	return TransactionResponse{
		Result:         result,
		PNRef:          m.Take("PNREF"),
		RespMsg:        m.Take("RESPMSG"),
		AuthCode:       m.Take("AUTHCODE"),
		AVSAddr:        m.Take("AVSADDR"),
		AVSZip:         m.Take("AVSZIP"),
		IAVS:           m.Take("IAVS"),
		CVV2Match:      m.Take("CVV2MATCH"),
		CardSecure:     m.Take("CARDSECURE"),
		PPRef:          m.Take("PPREF"),
		CorrelationID:  m.Take("CORRELATIONID"),
		FeeAmt:         m.Take("FEEAMT"),
		PendingReason:  m.Take("PENDINGREASON"),
		PaymentType:    m.Take("PAYMENTTYPE"),
		Duplicate:      m.Take("DUPLICATE"),
		HostCode:       m.Take("HOSTCODE"),
		RespText:       m.Take("RESPTEXT"),
		ProcAVS:        m.Take("PROCAVS"),
		ProcCVV2:       m.Take("PROCCVV2"),
		ProcCardSecure: m.Take("PROCCARDSECURE"),
		AddlMsgs:       m.Take("ADDLMSGS"),
		TransTime:      m.Take("TRANSTIME"),
		OrigResult:     m.Take("ORIGRESULT"),
		OrigPNRef:      m.Take("ORIGPNREF"),
		TransState:     m.Take("TRANSSTATE"),
		CustRef:        m.Take("CUSTREF"),
		BalAmt:         m.Take("BALAMT"),
		Amt:            m.Take("AMT"),
		CardType:       m.Take("CARDTYPE"),
		ExtRspMsg:      m.Take("EXTRSPMSG"),
		TxID:           m.Take("TXID"),
		SecureToken:    m.Take("SECURETOKEN"),
		SecureTokenID:  m.Take("SECURETOKENID"),
		RRN:            m.Take("RRN"),
	}
}
