package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const Bytes32Size = 32

var (
	ErrWrongSize   = errors.New("wrong size")
	ErrInvalidJSON = errors.New("invalid hex string")
)

func MustBytes32FromString[T ~[32]byte](s string) T {
	if h, err := Bytes32FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Bytes32FromString[T ~[32]byte](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != Bytes32Size {
			return h, ErrWrongSize
		}
		copy(h[:], buf)
		return h, nil
	}
}

func Bytes32FromBytes[T ~[32]byte](buf []byte) (h T, err error) {
	if len(buf) != Bytes32Size {
		return h, ErrWrongSize
	}
	copy(h[:], buf)
	return h, nil
}

// Bytes32String Lowercase hex rendering of a 32-byte value
func Bytes32String[T ~[32]byte](h T) string {
	return fasthex.EncodeToString(h[:])
}

// MarshalBytes32JSON Encodes a 32-byte value as a quoted hex string
func MarshalBytes32JSON[T ~[32]byte](h T) ([]byte, error) {
	var buf [Bytes32Size*2 + 2]byte
	buf[0] = '"'
	buf[Bytes32Size*2+1] = '"'
	fasthex.Encode(buf[1:], h[:])
	return buf[:], nil
}

// UnmarshalBytes32JSON Decodes a quoted hex string into h
// An empty string or empty input leaves h untouched
func UnmarshalBytes32JSON[T ~[32]byte](h *T, b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != Bytes32Size*2+2 || b[0] != '"' || b[len(b)-1] != '"' {
		return ErrInvalidJSON
	}

	if _, err := fasthex.Decode((*h)[:], b[1:len(b)-1]); err != nil {
		return err
	}

	return nil
}

//nolint:recvcheck
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(b)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], b)
	return buf, nil
}

func (b Bytes) String() string {
	return fasthex.EncodeToString(b)
}

func (b *Bytes) UnmarshalJSON(buf []byte) error {
	if len(buf) < 2 || (len(buf)%2) != 0 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("invalid bytes")
	}

	*b = make(Bytes, (len(buf)-2)/2)

	if _, err := fasthex.Decode(*b, buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}
