package sprout

import (
	"git.gammaspectra.live/P2Pool/sprout/crypto/sha256"
)

const (
	PRFAddrReceivingKey = uint8(0)
	PRFAddrPayingKey    = uint8(1)
)

// prfAddrDomain tags byte 0 so PRF^addr blocks never collide with other SHA256Compress uses
const prfAddrDomain = 0b1100_0000

// PRFAddr PRF^addr_x(t) = SHA256Compress(1100 || a_sk || t || 0^248)
// A single compression from the standard IV, state words are encoded little-endian.
func PRFAddr(k SpendingKey, t uint8) (out [KeySize]byte) {
	var block [sha256.BlockSize]byte

	copy(block[:], k[:])
	block[0] |= prfAddrDomain
	block[KeySize] = t

	state := sha256.CompressBlock(&block)
	sha256.PutStateLittleEndian(&out, &state)
	return out
}
