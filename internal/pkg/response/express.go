package response

import "github.com/oxipay/payflow/internal/pkg/nvp"

// ExpressCheckout holds the fields every Express Checkout response shares
type ExpressCheckout struct {
	Token   string
	PayerID string
}

func newExpressCheckout(m *nvp.Map) ExpressCheckout {
	return ExpressCheckout{
		Token:   m.Take("TOKEN"),
		PayerID: m.Take("PAYERID"),
	}
}

// SetExpressCheckoutResponse is returned by ACTION=S
type SetExpressCheckoutResponse struct {
	ExpressCheckout
}

// GetExpressCheckoutResponse is returned by ACTION=G and describes the payer
type GetExpressCheckoutResponse struct {
	ExpressCheckout

	Email         string
	PayerStatus   string
	Salutation    string
	FirstName     string
	MiddleName    string
	LastName      string
	Suffix        string
	Business      string
	CountryCode   string
	PhoneNum      string
	ShipToName    string
	ShipToStreet  string
	ShipToStreet2 string
	ShipToCity    string
	ShipToState   string
	ShipToZip     string
	ShipToCountry string
	AddressStatus string
	Note          string
	Custom        string
	InvNum        string
	BAFlag        string
}

// DoExpressCheckoutResponse is returned by ACTION=D
type DoExpressCheckoutResponse struct {
	ExpressCheckout

	Amt           string
	FeeAmt        string
	TaxAmt        string
	SettleAmt     string
	ExchangeRate  string
	PaymentType   string
	PaymentStatus string
	PendingReason string
	ReasonCode    string
	OrderTime     string
	BAID          string
}

// UpdateExpressCheckoutResponse is returned by ACTION=U on a billing agreement
type UpdateExpressCheckoutResponse struct {
	ExpressCheckout

	BAID        string
	BAStatus    string
	BADesc      string
	BACustom    string
	Email       string
	PayerStatus string
	FirstName   string
	LastName    string
}

func newSetExpressCheckoutResponse(m *nvp.Map) *SetExpressCheckoutResponse {
	return &SetExpressCheckoutResponse{ExpressCheckout: newExpressCheckout(m)}
}

func newGetExpressCheckoutResponse(m *nvp.Map) *GetExpressCheckoutResponse {
	return &GetExpressCheckoutResponse{
		ExpressCheckout: newExpressCheckout(m),
		Email:           m.Take("EMAIL"),
		PayerStatus:     m.Take("PAYERSTATUS"),
		Salutation:      m.Take("SALUTATION"),
		FirstName:       m.Take("FIRSTNAME"),
		MiddleName:      m.Take("MIDDLENAME"),
		LastName:        m.Take("LASTNAME"),
		Suffix:          m.Take("SUFFIX"),
		Business:        m.Take("BUSINESS"),
		CountryCode:     m.Take("COUNTRYCODE"),
		PhoneNum:        m.Take("PHONENUM"),
		ShipToName:      m.Take("SHIPTONAME"),
		ShipToStreet:    m.Take("SHIPTOSTREET"),
		ShipToStreet2:   m.Take("SHIPTOSTREET2"),
		ShipToCity:      m.Take("SHIPTOCITY"),
		ShipToState:     m.Take("SHIPTOSTATE"),
		ShipToZip:       m.Take("SHIPTOZIP"),
		ShipToCountry:   m.Take("SHIPTOCOUNTRY"),
		AddressStatus:   m.Take("ADDRESSSTATUS"),
		Note:            m.Take("NOTE"),
		Custom:          m.Take("CUSTOM"),
		InvNum:          m.Take("INVNUM"),
		BAFlag:          m.Take("BA_FLAG"),
	}
}

func newDoExpressCheckoutResponse(m *nvp.Map) *DoExpressCheckoutResponse {
	return &DoExpressCheckoutResponse{
		ExpressCheckout: newExpressCheckout(m),
		Amt:             m.Take("AMT"),
		FeeAmt:          m.Take("FEEAMT"),
		TaxAmt:          m.Take("TAXAMT"),
		SettleAmt:       m.Take("SETTLEAMT"),
		ExchangeRate:    m.Take("EXCHANGERATE"),
		PaymentType:     m.Take("PAYMENTTYPE"),
		PaymentStatus:   m.Take("PAYMENTSTATUS"),
		PendingReason:   m.Take("PENDINGREASON"),
		ReasonCode:      m.Take("REASONCODE"),
		OrderTime:       m.Take("ORDERTIME"),
		BAID:            m.Take("BAID"),
	}
}

func newUpdateExpressCheckoutResponse(m *nvp.Map) *UpdateExpressCheckoutResponse {
	return &UpdateExpressCheckoutResponse{
		ExpressCheckout: newExpressCheckout(m),
		BAID:            m.Take("BAID"),
		BAStatus:        m.Take("BA_STATUS"),
		BADesc:          m.Take("BA_DESC"),
		BACustom:        m.Take("BA_CUSTOM"),
		Email:           m.Take("EMAIL"),
		PayerStatus:     m.Take("PAYERSTATUS"),
		FirstName:       m.Take("FIRSTNAME"),
		LastName:        m.Take("LASTNAME"),
	}
}
