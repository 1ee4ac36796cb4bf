// Package payment holds the fixed table of manual transfer destinations.
// There is no electronic verification: a buyer transfers by hand and an
// admin confirms the order afterwards.
package payment

// Method is one manual payment destination.
type Method struct {
	Code    string // callback code, e.g. "dana"
	Display string // destination shown to the buyer, e.g. "DANA: 081234567890"
}

// Name is the short label for keyboard buttons ("DANA" out of
// "DANA: 081234567890").
func (m Method) Name() string {
	for i := 0; i < len(m.Display); i++ {
		if m.Display[i] == ':' {
			return m.Display[:i]
		}
	}
	return m.Display
}

var methods = []Method{
	{Code: "dana", Display: "DANA: 081234567890"},
	{Code: "gopay", Display: "GoPay: 081234567890"},
	{Code: "ovo", Display: "OVO: 081234567890"},
	{Code: "bank", Display: "BCA: 1234567890 a.n. Toko Premium Apps"},
}

// Methods returns the enumerated payment methods in display order.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// ByCode looks a method up by its callback code.
func ByCode(code string) (Method, bool) {
	for _, m := range methods {
		if m.Code == code {
			return m, true
		}
	}
	return Method{}, false
}
