// Package request holds the data objects a caller composes into a gateway
// request. Each object writes its own fields in the order the gateway
// documents and then hands the writer to the objects it owns.
package request

import "github.com/oxipay/payflow/internal/pkg/nvp"

// Node is implemented by every data object that contributes fields to a
// request. Generate must write synchronously and keep no reference to w.
type Node interface {
	Generate(w *nvp.Writer)
}

// Int returns a pointer to v, for optional integer fields
func Int(v int) *int {
	return &v
}

// Bool returns a pointer to v, for optional Y/N fields
func Bool(v bool) *bool {
	return &v
}

// ExtendData is a caller supplied field the SDK has no typed home for
type ExtendData struct {
	Name  string
	Value string
}

// Generate writes the field
func (e ExtendData) Generate(w *nvp.Writer) {
	if e.Name == "" {
		return
	}
	w.AppendString(e.Name, e.Value)
}

// UserInfo carries the merchant credentials sent with every request
type UserInfo struct {
	User     string
	Vendor   string
	Partner  string
	Password string
}

// NewUserInfo returns credentials. When user is empty the vendor login is
// used, as the gateway expects for single user accounts.
func NewUserInfo(user, vendor, partner, password string) *UserInfo {
	if user == "" {
		user = vendor
	}
	return &UserInfo{User: user, Vendor: vendor, Partner: partner, Password: password}
}

// Generate writes USER, VENDOR, PARTNER and PWD
func (u *UserInfo) Generate(w *nvp.Writer) {
	if u == nil {
		return
	}
	w.AppendString("USER", u.User)
	w.AppendString("VENDOR", u.Vendor)
	w.AppendString("PARTNER", u.Partner)
	w.AppendString("PWD", u.Password)
}
