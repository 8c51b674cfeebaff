package z256

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestPairingNonDegenerate(t *testing.T) {
	g := Pairing(P2(), P1())
	if fp12Equ(g, fp12One) {
		t.Fatal("e(P2, P1) should not be 1")
	}
}

func TestPairingBilinearInFirstArgument(t *testing.T) {
	a := Z256{3, 0, 0, 0}
	lhs := Pairing(TwistPointMul(a, P2()), P1())
	rhs := fp12Pow(Pairing(P2(), P1()), a)
	if !fp12Equ(lhs, rhs) {
		t.Fatal("e(aQ, P) != e(Q, P)^a")
	}
}

func TestPairingBilinearInSecondArgument(t *testing.T) {
	b := Z256{5, 0, 0, 0}
	lhs := Pairing(P2(), PointMul(b, P1()))
	rhs := fp12Pow(Pairing(P2(), P1()), b)
	if !fp12Equ(lhs, rhs) {
		t.Fatal("e(Q, bP) != e(Q, P)^b")
	}
}

// e(P2, P1), serialized per the (c2, c1, c0)/(a1, a0) wire order.
const pairingP2P1Hex = "" +
	"256943fbdb2bf87ab91ae7fbeaff14e146cf7e2279b9d155d13461e09b22f523" +
	"0167b0280051495c6af1ec23ba2cd2ff1cdcdeca461a5ab0b5449e9091308310" +
	"5e7addaddf7fbfe16291b4e89af50b8217ddc47ba3cba833c6e77c3fb027685e" +
	"79d0c8337072c93fef482bb055f44d6247ccac8e8e12525854b3566236337ebe" +
	"082cde173022da8cd09b28a2d80a8cee53894436a52007f978dc37f36116d39b" +
	"3fa7ed741eaed99a58f53e3df82df7ccd3407bcc7b1d44a9441920ced5fb824f" +
	"7fc6eb2aa771d99c9234fddd31752edfd60723e05a4ebfdeb5c33fbd47e0cf06" +
	"6fa6b6fa6dd6b6d3b19a959a110e748154eef796dc0fc2dd766ea414de786968" +
	"8ffe1c0e9de45fd0fed790ac26be91f6b3f0a49c084fe29a3fb6ed288ad7994d" +
	"1664a1366beb3196f0443e15f5f9042a947354a5678430d45ba031cff06db927" +
	"7f7c6d52b475e6aaa827fdc5b4175ac6929320f782d998f86b6b57cda42a0426" +
	"36a699de7c136f78eee2dbac4ca9727bff0cee02ee920f5822e65ea170aa9669"

// e(Ppubs, P1) with the GB/T 38635.2 Appendix A signature master public key:
// the published reference value g.
const pairingPpubsP1Hex = "" +
	"4e378fb5561cd0668f906b731ac58fee25738edf09cadc7a29c0abc0177aea6d" +
	"28b3404a61908f5d6198815c99af1990c8af38655930058c28c21bb539ce0000" +
	"38bffe40a22d529a0c66124b2c308dac9229912656f62b4facfced408e02380f" +
	"a01f2c8bee81769609462c69c96aa923fd863e209d3ce26dd889b55e2e3873db" +
	"67e0e0c2eed7a6993dce28fe9aa2ef56834307860839677f96685f2b44d0911f" +
	"5a1ae172102efd95df7338dbc577c66d8d6c15e0a0158c7507228efb078f42a6" +
	"1604a3fcfa9783e667ce9fcb1062c2a5c6685c316dda62de0548baa6ba30038b" +
	"93634f44fa13af76169f3cc8fbea880adaff8475d5fd28a75deb83c44362b439" +
	"b3129a75d31d17194675a1bc56947920898fbf390a5bf5d931ce6cbb3340f66d" +
	"4c744e69c4a2e1c8ed72f796d151a17ce2325b943260fc460b9f73cb57c9014b" +
	"84b87422330d7936eaba1109fa5a7a7181ee16f2438b0aeb2f38fd5f7554e57a" +
	"aab9f06a4eeba4323a7833db202e4e35639d93fa3305af73f0f071d7d284fcfb"

func TestPairingGeneratorsReferenceValue(t *testing.T) {
	g := Pairing(P2(), P1())
	var buf [384]byte
	Fp12ToBytes(g, buf[:])
	want, err := hex.DecodeString(pairingP2P1Hex)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf[:], want) {
		t.Fatalf("e(P2,P1) =\n%x\nwant\n%x", buf[:], want)
	}
}

func TestPairingMasterPublicReferenceValue(t *testing.T) {
	g := Pairing(Ppubs(), P1())
	var buf [384]byte
	Fp12ToBytes(g, buf[:])
	want, err := hex.DecodeString(pairingPpubsP1Hex)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf[:], want) {
		t.Fatalf("e(Ppubs,P1) =\n%x\nwant\n%x", buf[:], want)
	}
}
