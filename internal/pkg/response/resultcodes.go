package response

import "github.com/oxipay/payflow/internal/pkg/sdkerr"

const (
	// StatusApproved Transaction Successful
	StatusApproved = "APPROVED"
	// StatusDeclined Transaction Declined
	StatusDeclined = "DECLINED"
	// StatusReview Transaction held for fraud review
	StatusReview = "REVIEW"
	// StatusFailed Transaction Failed
	StatusFailed = "FAILED"
	// StatusUnknown the gateway returned a code we don't know
	StatusUnknown = "UNKNOWN"
)

// ResultCode maps a gateway RESULT to a generic status
type ResultCode struct {
	TxnStatus string
	Message   string
}

// ResultCodes provides a guarded lookup of the RESULT values the gateway
// documents. Unknown codes return nil.
func ResultCodes() func(int) *ResultCode {

	innerMap := map[int]*ResultCode{
		0:   {TxnStatus: StatusApproved, Message: "Approved"},
		1:   {TxnStatus: StatusFailed, Message: "User authentication failed"},
		2:   {TxnStatus: StatusFailed, Message: "Invalid tender type"},
		3:   {TxnStatus: StatusFailed, Message: "Invalid transaction type"},
		4:   {TxnStatus: StatusFailed, Message: "Invalid amount format"},
		5:   {TxnStatus: StatusFailed, Message: "Invalid merchant information"},
		7:   {TxnStatus: StatusFailed, Message: "Field format error"},
		12:  {TxnStatus: StatusDeclined, Message: "Declined"},
		13:  {TxnStatus: StatusDeclined, Message: "Referral"},
		23:  {TxnStatus: StatusDeclined, Message: "Invalid account number"},
		24:  {TxnStatus: StatusDeclined, Message: "Invalid expiration date"},
		26:  {TxnStatus: StatusFailed, Message: "Invalid vendor account"},
		50:  {TxnStatus: StatusDeclined, Message: "Insufficient funds available in account"},
		104: {TxnStatus: StatusFailed, Message: "Timeout waiting for processor response"},
		112: {TxnStatus: StatusDeclined, Message: "Failed AVS check"},
		125: {TxnStatus: StatusDeclined, Message: "Declined by fraud filters"},
		126: {TxnStatus: StatusReview, Message: "Flagged for review by fraud filters"},
		127: {TxnStatus: StatusReview, Message: "Not screened by fraud filters"},
		128: {TxnStatus: StatusDeclined, Message: "Declined by merchant after being flagged for review"},

		sdkerr.ResultTransportFailure: {TxnStatus: StatusFailed, Message: "Failed to connect to host"},
		sdkerr.ResultUnknownState:     {TxnStatus: StatusUnknown, Message: "Unknown state"},
	}

	return func(key int) *ResultCode {
		return innerMap[key]
	}
}

var lookupResult = ResultCodes()

// ResultStatus returns the generic status for a RESULT value
func ResultStatus(result int) string {
	if code := lookupResult(result); code != nil {
		return code.TxnStatus
	}
	if result < 0 {
		return StatusFailed
	}
	return StatusDeclined
}

// ResultMessage returns the documented meaning of a RESULT value, or "" for
// codes the table does not know.
func ResultMessage(result int) string {
	if code := lookupResult(result); code != nil {
		return code.Message
	}
	return ""
}
