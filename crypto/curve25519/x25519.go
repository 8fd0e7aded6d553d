package curve25519

import (
	"git.gammaspectra.live/P2Pool/edwards25519"
	"git.gammaspectra.live/P2Pool/edwards25519/field"
)

const ScalarSize = 32

const PointSize = 32

type X25519PublicKey [PointSize]byte

var ZeroX25519PublicKey X25519PublicKey

var X25519Basepoint = X25519PublicKey{9}

// ClampScalar Applies RFC 7748 decodeScalar25519 clamping to a copy of scalar
func ClampScalar[T ~[ScalarSize]byte](scalar T) (out [ScalarSize]byte) {
	out = scalar
	out[0] &= 248
	out[31] &= 127
	out[31] |= 64
	return out
}

// X25519ScalarBaseMult Multiply a clamped scalar by the Basepoint, and place result in dst
// This is done by doing it in edwards then converting to Montgomery
func X25519ScalarBaseMult[T ~[ScalarSize]byte](dst *X25519PublicKey, scalar T) {
	clamped := ClampScalar(scalar)

	// clamping happens again here, result is reduced mod l which is fine as B has order l
	s, err := new(edwards25519.Scalar).SetBytesWithClamping(clamped[:])
	if err != nil {
		// only possible with wrong input length
		panic(err)
	}

	var p edwards25519.Point
	p.ScalarBaseMult(s)

	*dst = ConvertPointE(&p)
}

// X25519 Multiply a clamped scalar by the given point, and place result in dst
// Constant time
func X25519[T ~[ScalarSize]byte](dst *X25519PublicKey, scalar T, point X25519PublicKey) {
	X25519ScalarMult(dst, ClampScalar(scalar), point)
}

// X25519ScalarMult Multiply a Scalar by the given point, and place result in dst
// Note this is done unclamped, compared to common implementations
func X25519ScalarMult[T ~[ScalarSize]byte](dst *X25519PublicKey, scalar T, point X25519PublicKey) {
	var x1, x2, z2, x3, z3, tmp0, tmp1 field.Element
	// high bit is masked on decode
	_, _ = x1.SetBytes(point[:])
	x2.One()
	x3.Set(&x1)
	z3.One()

	swap := 0
	for pos := 254; pos >= 0; pos-- {
		b := scalar[pos/8] >> uint(pos&7)
		b &= 1
		swap ^= int(b)
		x2.Swap(&x3, swap)
		z2.Swap(&z3, swap)
		swap = int(b)

		tmp0.Subtract(&x3, &z3)
		tmp1.Subtract(&x2, &z2)
		x2.Add(&x2, &z2)
		z2.Add(&x3, &z3)
		z3.Multiply(&tmp0, &x2)
		z2.Multiply(&z2, &tmp1)
		tmp0.Square(&tmp1)
		tmp1.Square(&x2)
		x3.Add(&z3, &z2)
		z2.Subtract(&z3, &z2)
		x2.Multiply(&tmp1, &tmp0)
		tmp1.Subtract(&tmp1, &tmp0)
		z2.Square(&z2)

		z3.Mult32(&tmp1, 121666)
		x3.Square(&x3)
		tmp0.Add(&tmp0, &z3)
		z3.Multiply(&x1, &z2)
		z2.Multiply(&tmp1, &tmp0)
	}

	x2.Swap(&x3, swap)
	z2.Swap(&z3, swap)

	z2.Invert(&z2)
	x2.Multiply(&x2, &z2)

	copy(dst[:], x2.Bytes())
}

func ConvertPointE(v *edwards25519.Point) (out X25519PublicKey) {
	copy(out[:], v.BytesMontgomery())
	return out
}
