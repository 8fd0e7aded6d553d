package sprout

import (
	"git.gammaspectra.live/P2Pool/sprout/types"
)

const IncomingViewingKeySize = KeySize * 2

// IncomingViewingKey ivk = (a_pk, sk_enc), enough to detect and decrypt incoming notes.
// Both keys are expected to come from the same SpendingKey, this is not checked.
type IncomingViewingKey struct {
	payingKey    PayingKey
	receivingKey ReceivingKey
}

func NewIncomingViewingKey(payingKey PayingKey, receivingKey ReceivingKey) IncomingViewingKey {
	return IncomingViewingKey{
		payingKey:    payingKey,
		receivingKey: receivingKey,
	}
}

// IncomingViewingKeyFromBytes Splits a_pk || sk_enc
func IncomingViewingKeyFromBytes(buf []byte) (ivk IncomingViewingKey, err error) {
	if len(buf) != IncomingViewingKeySize {
		return ivk, types.ErrWrongSize
	}
	copy(ivk.payingKey[:], buf[:KeySize])
	copy(ivk.receivingKey[:], buf[KeySize:])
	return ivk, nil
}

func (ivk IncomingViewingKey) PayingKey() PayingKey {
	return ivk.payingKey
}

func (ivk IncomingViewingKey) ReceivingKey() ReceivingKey {
	return ivk.receivingKey
}

// Bytes a_pk || sk_enc
func (ivk IncomingViewingKey) Bytes() (buf [IncomingViewingKeySize]byte) {
	copy(buf[:], ivk.payingKey[:])
	copy(buf[KeySize:], ivk.receivingKey[:])
	return buf
}

// PaymentAddress addr_pk = (a_pk, pk_enc)
func (ivk IncomingViewingKey) PaymentAddress() PaymentAddress {
	return PaymentAddress{
		PayingKey:       ivk.payingKey,
		TransmissionKey: ivk.receivingKey.TransmissionKey(),
	}
}

func (ivk IncomingViewingKey) String() string {
	return "IncomingViewingKey(" + ivk.payingKey.String() + ", " + redacted + ")"
}

func (ivk IncomingViewingKey) GoString() string {
	return ivk.String()
}

// PaymentAddress addr_pk = (a_pk, pk_enc). Text encoding is left to callers.
type PaymentAddress struct {
	PayingKey       PayingKey       `json:"paying_key"`
	TransmissionKey TransmissionKey `json:"transmission_key"`
}

// Bytes a_pk || pk_enc
func (a PaymentAddress) Bytes() (buf [KeySize * 2]byte) {
	copy(buf[:], a.PayingKey[:])
	copy(buf[KeySize:], a.TransmissionKey[:])
	return buf
}
