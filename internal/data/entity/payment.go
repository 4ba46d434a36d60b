package entity

// PaymentMethod is the closed set of mobile-money providers the store
// accepts. Payments happen out-of-band; the buyer submits the transfer
// reference and an operator verifies it by hand.
type PaymentMethod string

const (
	PaymentMethodNagad PaymentMethod = "Nagad"
	PaymentMethodBkash PaymentMethod = "bKash"
)

// PaymentMode is the closed set of transfer types.
type PaymentMode string

const (
	PaymentModeSendMoney PaymentMode = "Send Money"
	PaymentModeCashOut   PaymentMode = "Cash Out"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodNagad, PaymentMethodBkash:
		return true
	}
	return false
}

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeSendMoney, PaymentModeCashOut:
		return true
	}
	return false
}
