// Package sprout derives the Sprout shielded payment key tree from a root SpendingKey.
//
//	a_sk -> sk_enc = PRF^addr(a_sk, 0) -> pk_enc = X25519(sk_enc, 9)
//	     -> a_pk   = PRF^addr(a_sk, 1)
//	ivk = (a_pk, sk_enc)
//	addr_pk = (a_pk, pk_enc)
package sprout

import (
	"crypto/rand"
	"io"

	"git.gammaspectra.live/P2Pool/sprout/types"
)

const KeySize = 32

// spendingKeyMask clears the 4 high-order bits of byte 0, leaving 252 bits
const spendingKeyMask = 0b0000_1111

// SpendingKey a_sk, the root secret of the Sprout key tree. Actually 252 bits.
type SpendingKey [KeySize]byte

// NewSpendingKey Draws 32 bytes from rng and clamps them to 252 bits.
// Errors from rng are returned as-is, no other source is tried.
func NewSpendingKey(rng io.Reader) (k SpendingKey, err error) {
	var buf [KeySize]byte
	if _, err = io.ReadFull(rng, buf[:]); err != nil {
		return k, err
	}
	return SpendingKeyFromBytes(buf), nil
}

// GenerateSpendingKey NewSpendingKey using crypto/rand
func GenerateSpendingKey() (SpendingKey, error) {
	return NewSpendingKey(rand.Reader)
}

// SpendingKeyFromBytes Clamps buf to 252 bits. Clamping is idempotent.
func SpendingKeyFromBytes(buf [KeySize]byte) SpendingKey {
	buf[0] &= spendingKeyMask
	return SpendingKey(buf)
}

// SpendingKeyFromString Decodes a hex encoded key, then clamps it
func SpendingKeyFromString(s string) (SpendingKey, error) {
	buf, err := types.Bytes32FromString[[KeySize]byte](s)
	if err != nil {
		return SpendingKey{}, err
	}
	return SpendingKeyFromBytes(buf), nil
}

func (k SpendingKey) IsClamped() bool {
	return k[0]&^spendingKeyMask == 0
}

func (k SpendingKey) Slice() []byte {
	return k[:]
}

// Hex Explicit hex rendering, String is redacted
func (k SpendingKey) Hex() string {
	return types.Bytes32String(k)
}

func (k SpendingKey) String() string {
	return redacted
}

func (k SpendingKey) GoString() string {
	return "SpendingKey(" + redacted + ")"
}

// ReceivingKey sk_enc = PRF^addr(a_sk, 0)
func (k SpendingKey) ReceivingKey() ReceivingKey {
	return ReceivingKey(PRFAddr(k, PRFAddrReceivingKey))
}

// PayingKey a_pk = PRF^addr(a_sk, 1)
func (k SpendingKey) PayingKey() PayingKey {
	return PayingKey(PRFAddr(k, PRFAddrPayingKey))
}

// IncomingViewingKey Derives both halves of ivk from the same SpendingKey
func (k SpendingKey) IncomingViewingKey() IncomingViewingKey {
	return NewIncomingViewingKey(k.PayingKey(), k.ReceivingKey())
}

// PaymentAddress addr_pk = (a_pk, pk_enc)
func (k SpendingKey) PaymentAddress() PaymentAddress {
	return k.IncomingViewingKey().PaymentAddress()
}
