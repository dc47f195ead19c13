package request

import (
	"testing"

	"github.com/oxipay/payflow/internal/pkg/currency"
	"github.com/oxipay/payflow/internal/pkg/nvp"
	"github.com/oxipay/payflow/internal/pkg/sdkerr"
	"github.com/stretchr/testify/require"
	shortid "github.com/ventu-io/go-shortid"
)

func testUser() *UserInfo {
	return NewUserInfo("", "vendor1", "PayPal", "pw")
}

func testCard() *Card {
	return &Card{Acct: "5105105105105100", ExpDate: "1230", CVV2: "123"}
}

func encode(t *testing.T, n Node) string {
	t.Helper()
	w := nvp.NewWriter()
	n.Generate(w)
	require.NoError(t, w.Err())
	return w.String()
}

func TestSaleFieldOrder(t *testing.T) {
	invoice := NewInvoice(currency.NewFromFloat(25.1))
	invoice.Comment1 = "a&b"
	invoice.BillTo = &Address{FirstName: "Joe", Zip: "95131"}
	invoice.Customer = &CustomerInfo{CustIP: "10.0.0.1"}
	invoice.AddLineItem(&LineItem{Name: "Hat", Amt: currency.NewFromFloat(10), Qty: Int(1)})
	invoice.AddLineItem(&LineItem{Name: "Scarf", Amt: currency.NewFromFloat(15.1), Qty: Int(2)})
	invoice.UserFields = []string{"u1"}

	sale := NewSale(testUser(), NewCardTender(testCard()), invoice)
	sale.Verbosity = "HIGH"

	got, err := sale.Encode()
	require.NoError(t, err)
	require.Equal(t,
		"TRXTYPE=S&USER=vendor1&VENDOR=vendor1&PARTNER=PayPal&PWD=pw"+
			"&ACCT=5105105105105100&EXPDATE=1230&CVV2=123&TENDER=C"+
			"&AMT=25.10&CURRENCY=USD&COMMENT1[3]=a&b"+
			"&BILLTOFIRSTNAME=Joe&BILLTOZIP=95131&CUSTIP=10.0.0.1"+
			"&L_NAME0=Hat&L_AMT0=10.00&L_QTY0=1&L_NAME1=Scarf&L_AMT1=15.10&L_QTY1=2"+
			"&USER1=u1&VERBOSITY=HIGH",
		got)
}

func TestInvoiceNestedOrder(t *testing.T) {
	invoice := &Invoice{
		InvNum:   "INV1",
		ShipTo:   &Address{City: "Austin"},
		BillTo:   &Address{City: "Boston"},
		Customer: &CustomerInfo{CustID: "C1"},
		Browser:  &BrowserInfo{BrowserUserAgent: "curl"},
		Items:    []*LineItem{{SKU: "S0"}},
	}

	require.Equal(t,
		"INVNUM=INV1&BILLTOCITY=Boston&SHIPTOCITY=Austin&BROWSERUSERAGENT=curl&CUSTID=C1&L_SKU0=S0",
		encode(t, invoice))
}

func TestInvoiceSkipsMissingChildren(t *testing.T) {
	invoice := &Invoice{InvNum: "INV1"}
	require.Equal(t, "INVNUM=INV1", encode(t, invoice))

	var none *Invoice
	require.Equal(t, "", encode(t, none))
}

func TestInvoiceCurrencyCode(t *testing.T) {
	invoice := NewInvoice(currency.NewFromFloat(5).WithCode("EUR"))
	require.Equal(t, "AMT=5.00&CURRENCY=EUR", encode(t, invoice))
}

func TestLineItemIndexFollowsListPosition(t *testing.T) {
	invoice := &Invoice{}
	invoice.AddLineItem(&LineItem{ItemNumber: "B"})
	invoice.AddLineItem(&LineItem{ItemNumber: "A"})
	require.Equal(t, "L_ITEMNUMBER0=B&L_ITEMNUMBER1=A", encode(t, invoice))

	invoice.Items = invoice.Items[1:]
	require.Equal(t, "L_ITEMNUMBER0=A", encode(t, invoice))
}

func TestTenderDeviceBeforeTenderFields(t *testing.T) {
	tests := []struct {
		name   string
		tender *Tender
		want   string
	}{
		{
			name:   "card",
			tender: NewCardTender(&Card{Swipe: ";4912000033330026=15121011000012345678?"}),
			want:   "SWIPE[39]=;4912000033330026=15121011000012345678?&TENDER=C",
		},
		{
			name: "ach",
			tender: func() *Tender {
				tn := NewACHTender(&BankAccount{Acct: "123456", ABA: "111000025", AcctType: Checking})
				tn.AuthType = "WEB"
				tn.PreNote = Bool(false)
				tn.ChkNum = "1001"
				return tn
			}(),
			want: "ACCT=123456&ABA=111000025&ACCTTYPE=C&TENDER=A&AUTHTYPE=WEB&PRENOTE=N&CHKNUM=1001",
		},
		{
			name: "check",
			tender: func() *Tender {
				tn := NewCheckTender(&Check{MICR: "3725000000000000000", Name: "Joe"})
				tn.ChkType = "P"
				tn.ChkNum = "42"
				tn.DL = "CAN12345678"
				return tn
			}(),
			want: "MICR=3725000000000000000&NAME=Joe&TENDER=K&CHKTYPE=P&CHKNUM=42&DL=CAN12345678",
		},
		{
			name:   "paypal",
			tender: NewPayPalTender(NewGetExpressCheckout("EC-123")),
			want:   "ACTION=G&TOKEN=EC-123&TENDER=P",
		},
		{
			name:   "card without device",
			tender: &Tender{Kind: TenderCard},
			want:   "TENDER=C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, encode(t, tt.tender))
		})
	}
}

func TestExpressCheckoutActions(t *testing.T) {
	set := NewSetExpressCheckout("https://shop/return?a=1", "https://shop/cancel")
	set.MaxAmt = currency.NewFromFloat(100)
	require.Equal(t,
		"ACTION=S&RETURNURL[23]=https://shop/return?a=1&CANCELURL=https://shop/cancel&MAXAMT=100.00",
		encode(t, set))

	require.Equal(t, "ACTION=D&TOKEN=EC-1&PAYERID=P1", encode(t, NewDoExpressCheckout("EC-1", "P1")))
	require.Equal(t, "ACTION=U&BAID=B-1&BA_STATUS=cancel", encode(t, NewUpdateBillingAgreement("B-1", "cancel")))
}

func TestRecurringAdd(t *testing.T) {
	info := &RecurringInfo{
		Action:      RecurringAdd,
		ProfileName: "Gold",
		Start:       "01012030",
		Term:        Int(0),
		PayPeriod:   PayPeriodMonthly,
	}
	txn := NewRecurring(testUser(), info, NewCardTender(testCard()), NewInvoice(currency.NewFromFloat(9.99)))

	got, err := txn.Encode()
	require.NoError(t, err)
	require.Equal(t,
		"TRXTYPE=R&USER=vendor1&VENDOR=vendor1&PARTNER=PayPal&PWD=pw"+
			"&ACCT=5105105105105100&EXPDATE=1230&CVV2=123&TENDER=C"+
			"&AMT=9.99&CURRENCY=USD"+
			"&ACTION=A&PROFILENAME=Gold&START=01012030&TERM=0&PAYPERIOD=MONT",
		got)
}

func TestFollowOnTransactions(t *testing.T) {
	user := testUser()
	credentials := "&USER=vendor1&VENDOR=vendor1&PARTNER=PayPal&PWD=pw"

	capture := NewCapture(user, "V1", nil)
	capture.CaptureComplete = Bool(true)

	tests := []struct {
		txn  *Transaction
		want string
	}{
		{capture, "TRXTYPE=D" + credentials + "&ORIGID=V1&CAPTURECOMPLETE=Y"},
		{NewVoid(user, "V2"), "TRXTYPE=V" + credentials + "&ORIGID=V2"},
		{NewInquiry(user, "V3"), "TRXTYPE=I" + credentials + "&ORIGID=V3"},
		{NewCredit(user, "V4", NewInvoice(currency.NewFromFloat(1))), "TRXTYPE=C" + credentials + "&AMT=1.00&CURRENCY=USD&ORIGID=V4"},
		{NewVoiceAuthorization(user, "123PNI", nil, nil), "TRXTYPE=F" + credentials + "&AUTHCODE=123PNI"},
	}
	for _, tt := range tests {
		got, err := tt.txn.Encode()
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestExtensionsAreLast(t *testing.T) {
	txn := NewInquiry(nil, "V1")
	txn.AddExtension("CUSTOM", "x")
	txn.AddExtension("", "ignored")
	txn.SecureTokenID = "tok"
	txn.CreateSecureToken = Bool(true)

	got, err := txn.Encode()
	require.NoError(t, err)
	require.Equal(t, "TRXTYPE=I&ORIGID=V1&CREATESECURETOKEN=Y&SECURETOKENID=tok&CUSTOM=x", got)
}

func TestUserInfoDefaultsUserToVendor(t *testing.T) {
	require.Equal(t, "vendor1", testUser().User)
	require.Equal(t, "clerk", NewUserInfo("clerk", "vendor1", "PayPal", "pw").User)
}

func TestEncodeCurrencyConflict(t *testing.T) {
	amt := currency.NewFromFloat(10)
	amt.Round = true
	amt.Truncate = true

	got, err := NewSale(testUser(), NewCardTender(testCard()), NewInvoice(amt)).Encode()
	require.Error(t, err)
	require.Empty(t, got)
	require.True(t, sdkerr.IsKind(err, sdkerr.KindConfig))
}

func TestEncodeRequiresTrxType(t *testing.T) {
	_, err := (&Transaction{}).Encode()
	require.True(t, sdkerr.IsKind(err, sdkerr.KindConfig))
}

func TestEncodeRoundTrip(t *testing.T) {
	invNum, err := shortid.Generate()
	require.NoError(t, err)

	invoice := NewInvoice(currency.NewFromFloat(42))
	invoice.InvNum = invNum
	invoice.Comment1 = "first=1&second=2"
	invoice.Desc = "widgets & gadgets"
	invoice.BillTo = &Address{Street: "1 Main St", City: "San Jose"}
	invoice.AddLineItem(&LineItem{Name: "a=b", Amt: currency.NewFromFloat(42), Qty: Int(1)})

	sale := NewSale(testUser(), NewCardTender(testCard()), invoice)
	text, err := sale.Encode()
	require.NoError(t, err)

	m, err := nvp.Decode(text)
	require.NoError(t, err)

	want := map[string]string{
		"TRXTYPE":      "S",
		"USER":         "vendor1",
		"VENDOR":       "vendor1",
		"PARTNER":      "PayPal",
		"PWD":          "pw",
		"ACCT":         "5105105105105100",
		"EXPDATE":      "1230",
		"CVV2":         "123",
		"TENDER":       "C",
		"INVNUM":        invNum,
		"AMT":          "42.00",
		"CURRENCY":     "USD",
		"COMMENT1":     "first=1&second=2",
		"DESC":         "widgets & gadgets",
		"BILLTOSTREET": "1 Main St",
		"BILLTOCITY":   "San Jose",
		"L_NAME0":      "a=b",
		"L_AMT0":       "42.00",
		"L_QTY0":       "1",
	}
	require.Equal(t, len(want), m.Len())
	for name, value := range want {
		require.Equal(t, value, m.Value(name), name)
	}
}
