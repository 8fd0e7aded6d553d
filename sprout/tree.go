package sprout

// KeyTree Every key derived from one SpendingKey
type KeyTree struct {
	SpendingKey     SpendingKey
	ReceivingKey    ReceivingKey
	PayingKey       PayingKey
	TransmissionKey TransmissionKey
}

func (k SpendingKey) Keys() KeyTree {
	receivingKey := k.ReceivingKey()
	return KeyTree{
		SpendingKey:     k,
		ReceivingKey:    receivingKey,
		PayingKey:       k.PayingKey(),
		TransmissionKey: receivingKey.TransmissionKey(),
	}
}

func (t KeyTree) IncomingViewingKey() IncomingViewingKey {
	return NewIncomingViewingKey(t.PayingKey, t.ReceivingKey)
}

func (t KeyTree) PaymentAddress() PaymentAddress {
	return PaymentAddress{
		PayingKey:       t.PayingKey,
		TransmissionKey: t.TransmissionKey,
	}
}
