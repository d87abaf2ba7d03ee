package payment

import "errors"

var ErrUnknownMethod = errors.New("unknown payment method")

// Method is a tag only. No card or account fields are validated anywhere;
// checkout is simulated end to end.
type Method string

const (
	MethodDebit   Method = "debit"
	MethodPaypal  Method = "paypal"
	MethodCashapp Method = "cashapp"
	MethodWire    Method = "wire"
)

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodDebit, MethodPaypal, MethodCashapp, MethodWire:
		return Method(s), nil
	default:
		return "", ErrUnknownMethod
	}
}

func (m Method) String() string {
	return string(m)
}
