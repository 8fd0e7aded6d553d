package sprout

import (
	"git.gammaspectra.live/P2Pool/sprout/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/sprout/types"
)

const redacted = "<redacted>"

// ReceivingKey sk_enc, an X25519 private scalar. Stored unclamped, clamping happens on use.
type ReceivingKey [KeySize]byte

// DeriveReceivingKey sk_enc from a_sk
func DeriveReceivingKey(k SpendingKey) ReceivingKey {
	return k.ReceivingKey()
}

// TransmissionKey pk_enc = X25519(sk_enc, 9)
func (k ReceivingKey) TransmissionKey() (pub TransmissionKey) {
	curve25519.X25519ScalarBaseMult((*curve25519.X25519PublicKey)(&pub), k)
	return pub
}

// Agree KA^Sprout.Agree, X25519 between sk_enc and a peer public key
func (k ReceivingKey) Agree(pub TransmissionKey) (shared [KeySize]byte) {
	curve25519.X25519((*curve25519.X25519PublicKey)(&shared), k, curve25519.X25519PublicKey(pub))
	return shared
}

func (k ReceivingKey) Slice() []byte {
	return k[:]
}

func (k ReceivingKey) Hex() string {
	return types.Bytes32String(k)
}

func (k ReceivingKey) String() string {
	return redacted
}

func (k ReceivingKey) GoString() string {
	return "ReceivingKey(" + redacted + ")"
}

// PayingKey a_pk, an opaque identifier never used in curve arithmetic
type PayingKey [KeySize]byte

// DerivePayingKey a_pk from a_sk
func DerivePayingKey(k SpendingKey) PayingKey {
	return k.PayingKey()
}

func PayingKeyFromString(s string) (PayingKey, error) {
	return types.Bytes32FromString[PayingKey](s)
}

func (k PayingKey) Slice() []byte {
	return k[:]
}

func (k PayingKey) String() string {
	return types.Bytes32String(k)
}

func (k PayingKey) GoString() string {
	return "PayingKey(" + k.String() + ")"
}

func (k PayingKey) MarshalJSON() ([]byte, error) {
	return types.MarshalBytes32JSON(k)
}

func (k *PayingKey) UnmarshalJSON(b []byte) error {
	return types.UnmarshalBytes32JSON(k, b)
}

// TransmissionKey pk_enc, the public X25519 u-coordinate of sk_enc
type TransmissionKey [KeySize]byte

// DeriveTransmissionKey pk_enc from sk_enc
func DeriveTransmissionKey(k ReceivingKey) TransmissionKey {
	return k.TransmissionKey()
}

func TransmissionKeyFromString(s string) (TransmissionKey, error) {
	return types.Bytes32FromString[TransmissionKey](s)
}

func (k TransmissionKey) Slice() []byte {
	return k[:]
}

func (k TransmissionKey) String() string {
	return types.Bytes32String(k)
}

func (k TransmissionKey) GoString() string {
	return "TransmissionKey(" + k.String() + ")"
}

func (k TransmissionKey) MarshalJSON() ([]byte, error) {
	return types.MarshalBytes32JSON(k)
}

func (k *TransmissionKey) UnmarshalJSON(b []byte) error {
	return types.UnmarshalBytes32JSON(k, b)
}
