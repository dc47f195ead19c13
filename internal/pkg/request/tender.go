package request

import "github.com/oxipay/payflow/internal/pkg/nvp"

// TenderKind is the payment method category sent as TENDER
type TenderKind string

const (
	TenderACH    TenderKind = "A"
	TenderCard   TenderKind = "C"
	TenderCheck  TenderKind = "K"
	TenderPayPal TenderKind = "P"
)

// Card is a credit, debit or purchase card. Swipe holds raw track data for
// card present transactions and replaces ACCT/EXPDATE when set.
type Card struct {
	Acct      string
	ExpDate   string // MMYY
	CVV2      string
	CardStart string // MMYY, Switch/Solo cards
	CardIssue string
	Swipe     string
	Name      string
}

func (c *Card) generate(w *nvp.Writer) {
	w.AppendString("ACCT", c.Acct)
	w.AppendString("EXPDATE", c.ExpDate)
	w.AppendString("CVV2", c.CVV2)
	w.AppendString("CARDSTART", c.CardStart)
	w.AppendString("CARDISSUE", c.CardIssue)
	w.AppendString("SWIPE", c.Swipe)
	w.AppendString("NAME", c.Name)
}

// BankAccountType is sent as ACCTTYPE
type BankAccountType string

const (
	Checking BankAccountType = "C"
	Savings  BankAccountType = "S"
)

// BankAccount is the instrument of an ACH tender
type BankAccount struct {
	Acct     string
	ABA      string
	AcctType BankAccountType
	Name     string
}

func (b *BankAccount) generate(w *nvp.Writer) {
	w.AppendString("ACCT", b.Acct)
	w.AppendString("ABA", b.ABA)
	w.AppendString("ACCTTYPE", string(b.AcctType))
	w.AppendString("NAME", b.Name)
}

// Check is the instrument of a check tender
type Check struct {
	MICR string
	Name string
}

func (c *Check) generate(w *nvp.Writer) {
	w.AppendString("MICR", c.MICR)
	w.AppendString("NAME", c.Name)
}

// Tender is one of the four payment methods. Exactly one of Card, Bank,
// Check or PayPal is set, matching Kind; use the New*Tender constructors.
type Tender struct {
	Kind TenderKind

	Card   *Card
	Bank   *BankAccount
	Check  *Check
	PayPal *ExpressCheckout

	// ACH only
	AuthType string
	PreNote  *bool
	// check only
	ChkType string
	DL      string
	SS      string
	// ACH and check
	ChkNum string
}

// NewCardTender returns a card tender
func NewCardTender(card *Card) *Tender {
	return &Tender{Kind: TenderCard, Card: card}
}

// NewACHTender returns a bank account tender
func NewACHTender(account *BankAccount) *Tender {
	return &Tender{Kind: TenderACH, Bank: account}
}

// NewCheckTender returns a check tender
func NewCheckTender(check *Check) *Tender {
	return &Tender{Kind: TenderCheck, Check: check}
}

// NewPayPalTender returns an express checkout tender
func NewPayPalTender(ec *ExpressCheckout) *Tender {
	return &Tender{Kind: TenderPayPal, PayPal: ec}
}

// Generate writes the payment device fields followed by the tender fields
func (t *Tender) Generate(w *nvp.Writer) {
	if t == nil {
		return
	}

	switch t.Kind {
	case TenderCard:
		if t.Card != nil {
			t.Card.generate(w)
		}
	case TenderACH:
		if t.Bank != nil {
			t.Bank.generate(w)
		}
	case TenderCheck:
		if t.Check != nil {
			t.Check.generate(w)
		}
	case TenderPayPal:
		if t.PayPal != nil {
			t.PayPal.Generate(w)
		}
	}

	w.AppendString("TENDER", string(t.Kind))
	switch t.Kind {
	case TenderACH:
		w.AppendString("AUTHTYPE", t.AuthType)
		w.AppendFlag("PRENOTE", t.PreNote)
		w.AppendString("CHKNUM", t.ChkNum)
	case TenderCheck:
		w.AppendString("CHKTYPE", t.ChkType)
		w.AppendString("CHKNUM", t.ChkNum)
		w.AppendString("DL", t.DL)
		w.AppendString("SS", t.SS)
	}
}
