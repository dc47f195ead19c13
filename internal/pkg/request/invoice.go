package request

import (
	"strconv"

	"github.com/oxipay/payflow/internal/pkg/currency"
	"github.com/oxipay/payflow/internal/pkg/nvp"
)

// Address is written with a BILLTO or SHIPTO prefix on every field name
type Address struct {
	FirstName  string
	MiddleName string
	LastName   string
	Company    string
	Street     string
	Street2    string
	City       string
	State      string
	Zip        string
	Country    string
	PhoneNum   string
	Phone2     string
	Fax        string
	Email      string
}

func (a *Address) generate(w *nvp.Writer, prefix string) {
	w.AppendString(prefix+"FIRSTNAME", a.FirstName)
	w.AppendString(prefix+"MIDDLENAME", a.MiddleName)
	w.AppendString(prefix+"LASTNAME", a.LastName)
	w.AppendString(prefix+"COMPANYNAME", a.Company)
	w.AppendString(prefix+"STREET", a.Street)
	w.AppendString(prefix+"STREET2", a.Street2)
	w.AppendString(prefix+"CITY", a.City)
	w.AppendString(prefix+"STATE", a.State)
	w.AppendString(prefix+"ZIP", a.Zip)
	w.AppendString(prefix+"COUNTRY", a.Country)
	w.AppendString(prefix+"PHONENUM", a.PhoneNum)
	w.AppendString(prefix+"PHONE2", a.Phone2)
	w.AppendString(prefix+"FAX", a.Fax)
	w.AppendString(prefix+"EMAIL", a.Email)
}

// BrowserInfo describes the buyer's browser
type BrowserInfo struct {
	BrowserTime        string
	BrowserCountryCode string
	BrowserUserAgent   string
	ButtonSource       string
	Custom             string
	NotifyURL          string
}

// Generate writes the browser fields
func (b *BrowserInfo) Generate(w *nvp.Writer) {
	if b == nil {
		return
	}
	w.AppendString("BROWSERTIME", b.BrowserTime)
	w.AppendString("BROWSERCOUNTRYCODE", b.BrowserCountryCode)
	w.AppendString("BROWSERUSERAGENT", b.BrowserUserAgent)
	w.AppendString("BUTTONSOURCE", b.ButtonSource)
	w.AppendString("CUSTOM", b.Custom)
	w.AppendString("NOTIFYURL", b.NotifyURL)
}

// CustomerInfo identifies the buyer
type CustomerInfo struct {
	CustCode      string
	CustID        string
	CustIP        string
	CustVATRegNum string
	DOB           string // MMDDYYYY
	CustHostName  string
	CustBrowser   string
	CustLangPref  string
	ReqName       string
}

// Generate writes the customer fields
func (c *CustomerInfo) Generate(w *nvp.Writer) {
	if c == nil {
		return
	}
	w.AppendString("CUSTCODE", c.CustCode)
	w.AppendString("CUSTID", c.CustID)
	w.AppendString("CUSTIP", c.CustIP)
	w.AppendString("CUSTVATREGNUM", c.CustVATRegNum)
	w.AppendString("DOB", c.DOB)
	w.AppendString("CUSTHOSTNAME", c.CustHostName)
	w.AppendString("CUSTBROWSER", c.CustBrowser)
	w.AppendString("CUSTLANGPREF", c.CustLangPref)
	w.AppendString("REQNAME", c.ReqName)
}

// LineItem is one row of an invoice. Every field name carries the row's
// position in Invoice.Items.
type LineItem struct {
	Name          string
	Description   string
	Amt           *currency.Currency
	Cost          *currency.Currency
	Qty           *int
	SKU           string
	TaxAmt        *currency.Currency
	UPC           string
	UOM           string
	CommCode      string
	Discount      *currency.Currency
	FreightAmt    *currency.Currency
	HandlingAmt   *currency.Currency
	ItemNumber    string
	Type          string
	PickupStreet  string
	PickupCity    string
	PickupState   string
	PickupZip     string
	PickupCountry string
}

func (l *LineItem) generate(w *nvp.Writer, i int) {
	w.AppendString(nvp.Indexed("L_NAME", i), l.Name)
	w.AppendString(nvp.Indexed("L_DESC", i), l.Description)
	w.AppendCurrency(nvp.Indexed("L_AMT", i), l.Amt)
	w.AppendCurrency(nvp.Indexed("L_COST", i), l.Cost)
	w.AppendInt(nvp.Indexed("L_QTY", i), l.Qty)
	w.AppendString(nvp.Indexed("L_SKU", i), l.SKU)
	w.AppendCurrency(nvp.Indexed("L_TAXAMT", i), l.TaxAmt)
	w.AppendString(nvp.Indexed("L_UPC", i), l.UPC)
	w.AppendString(nvp.Indexed("L_UOM", i), l.UOM)
	w.AppendString(nvp.Indexed("L_COMMCODE", i), l.CommCode)
	w.AppendCurrency(nvp.Indexed("L_DISCOUNT", i), l.Discount)
	w.AppendCurrency(nvp.Indexed("L_FREIGHTAMT", i), l.FreightAmt)
	w.AppendCurrency(nvp.Indexed("L_HANDLINGAMT", i), l.HandlingAmt)
	w.AppendString(nvp.Indexed("L_ITEMNUMBER", i), l.ItemNumber)
	w.AppendString(nvp.Indexed("L_TYPE", i), l.Type)
	w.AppendString(nvp.Indexed("L_PICKUPSTREET", i), l.PickupStreet)
	w.AppendString(nvp.Indexed("L_PICKUPCITY", i), l.PickupCity)
	w.AppendString(nvp.Indexed("L_PICKUPSTATE", i), l.PickupState)
	w.AppendString(nvp.Indexed("L_PICKUPZIP", i), l.PickupZip)
	w.AppendString(nvp.Indexed("L_PICKUPCOUNTRY", i), l.PickupCountry)
}

// Invoice is the purchase being paid for
type Invoice struct {
	InvNum      string
	Amt         *currency.Currency
	TaxAmt      *currency.Currency
	DutyAmt     *currency.Currency
	FreightAmt  *currency.Currency
	HandlingAmt *currency.Currency
	ShippingAmt *currency.Currency
	Discount    *currency.Currency
	ItemAmt     *currency.Currency
	Comment1    string
	Comment2    string
	CustRef     string
	PONum       string
	Desc        string
	OrderDate   string // MMDDYY
	VATRegNum   string
	VATTaxAmt   *currency.Currency
	MerchDescr  string
	MerchSvc    string
	Recurring   *bool

	BillTo   *Address
	ShipTo   *Address
	Browser  *BrowserInfo
	Customer *CustomerInfo
	Items    []*LineItem

	// UserFields are written as USER1, USER2, ...
	UserFields []string
}

// NewInvoice returns an invoice for amt
func NewInvoice(amt *currency.Currency) *Invoice {
	return &Invoice{Amt: amt}
}

// AddLineItem appends an item; its index is its position at Generate time.
func (inv *Invoice) AddLineItem(item *LineItem) {
	inv.Items = append(inv.Items, item)
}

// Generate writes the invoice fields and then the nested objects: billing
// address, shipping address, browser, customer, line items, user fields.
func (inv *Invoice) Generate(w *nvp.Writer) {
	if inv == nil {
		return
	}
	w.AppendString("INVNUM", inv.InvNum)
	w.AppendCurrency("AMT", inv.Amt)
	if inv.Amt != nil {
		w.AppendString("CURRENCY", inv.Amt.CurrencyCode())
	}
	w.AppendCurrency("TAXAMT", inv.TaxAmt)
	w.AppendCurrency("DUTYAMT", inv.DutyAmt)
	w.AppendCurrency("FREIGHTAMT", inv.FreightAmt)
	w.AppendCurrency("HANDLINGAMT", inv.HandlingAmt)
	w.AppendCurrency("SHIPPINGAMT", inv.ShippingAmt)
	w.AppendCurrency("DISCOUNT", inv.Discount)
	w.AppendCurrency("ITEMAMT", inv.ItemAmt)
	w.AppendString("COMMENT1", inv.Comment1)
	w.AppendString("COMMENT2", inv.Comment2)
	w.AppendString("CUSTREF", inv.CustRef)
	w.AppendString("PONUM", inv.PONum)
	w.AppendString("DESC", inv.Desc)
	w.AppendString("ORDERDATE", inv.OrderDate)
	w.AppendString("VATREGNUM", inv.VATRegNum)
	w.AppendCurrency("VATTAXAMT", inv.VATTaxAmt)
	w.AppendString("MERCHDESCR", inv.MerchDescr)
	w.AppendString("MERCHSVC", inv.MerchSvc)
	w.AppendFlag("RECURRING", inv.Recurring)

	if inv.BillTo != nil {
		inv.BillTo.generate(w, "BILLTO")
	}
	if inv.ShipTo != nil {
		inv.ShipTo.generate(w, "SHIPTO")
	}
	inv.Browser.Generate(w)
	inv.Customer.Generate(w)

	for i, item := range inv.Items {
		if item != nil {
			item.generate(w, i)
		}
	}
	for i, v := range inv.UserFields {
		w.AppendString("USER"+strconv.Itoa(i+1), v)
	}
}
