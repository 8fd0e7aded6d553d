package sprout_test

import (
	"bytes"
	"testing"

	"git.gammaspectra.live/P2Pool/sprout/sprout"
	"git.gammaspectra.live/P2Pool/sprout/types"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/require"
)

func TestDerivation(t *testing.T) {
	spec.Run(t, "Sprout", func(t *testing.T, when spec.G, it spec.S) {
		var sk sprout.SpendingKey

		it.Before(func() {
			sk = types.MustBytes32FromString[sprout.SpendingKey]("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
		})

		when("deriving from a spending key", func() {
			it("produces the expected receiving key", func() {
				require.Equal(t, "40de76857ab981c64e902a994ac74ad375cc517e9570907f342a62eea9668869", sk.ReceivingKey().Hex())
			})

			it("produces the expected paying key", func() {
				require.Equal(t, "6b09f7836cbeb9e38dddeb7864e473d3d084efd233897dd4a40358958c4c4135", sk.PayingKey().String())
			})

			it("produces the expected transmission key", func() {
				require.Equal(t, "3ff0c3b2018589bfb9e8f6bcfec06e99b835c483314a8fd1b9e2c3efdba81c74", sk.ReceivingKey().TransmissionKey().String())
			})

			it("does not modify the spending key", func() {
				before := sk
				_ = sk.Keys()
				require.Equal(t, before, sk)
			})
		})

		when("generating a spending key", func() {
			it("clamps entropy to 252 bits", func() {
				generated, err := sprout.NewSpendingKey(bytes.NewReader(bytes.Repeat([]byte{0xf0}, sprout.KeySize)))
				require.NoError(t, err)
				require.Equal(t, byte(0x00), generated[0])
				require.Equal(t, byte(0xf0), generated[1])
			})

			it("fails on an exhausted source", func() {
				_, err := sprout.NewSpendingKey(bytes.NewReader(nil))
				require.Error(t, err)
			})
		})

		when("assembling an incoming viewing key", func() {
			it("keeps paying key first", func() {
				ivk := sk.IncomingViewingKey()
				buf := ivk.Bytes()
				pk := sk.PayingKey()
				rk := sk.ReceivingKey()
				require.Equal(t, pk[:], buf[:sprout.KeySize])
				require.Equal(t, rk[:], buf[sprout.KeySize:])
			})

			it("derives the payment address of the tree", func() {
				require.Equal(t, sk.Keys().PaymentAddress(), sk.IncomingViewingKey().PaymentAddress())
			})
		})
	}, spec.Report(report.Log{}), spec.Parallel(), spec.Random())
}
