package z256

import (
	"math/big"
	"testing"
)

func fnToBig(a Fn) *big.Int {
	var buf [32]byte
	ToBytes(a, buf[:])
	return new(big.Int).SetBytes(buf[:])
}

func bigToFn(x *big.Int) Fn {
	buf := make([]byte, 32)
	x.FillBytes(buf)
	return FromBytes(buf)
}

func nBig() *big.Int {
	return fnToBig(N)
}

func TestFnMulAgainstBigInt(t *testing.T) {
	a := Z256{0x1122334455667788, 0x99aabbccddeeff00, 0x1, 0}
	b := Z256{0xfedcba9876543210, 0x0123456789abcdef, 0, 0}

	got := fnMul(a, b)

	want := new(big.Int).Mul(fnToBig(a), fnToBig(b))
	want.Mod(want, nBig())

	if fnToBig(got).Cmp(want) != 0 {
		t.Fatalf("fnMul(a,b) = %s, want %s", fnToBig(got), want)
	}
}

func TestFnAddSubAgainstBigInt(t *testing.T) {
	a := Z256{0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0x1}
	b := Z256{0x1, 0, 0, 0}

	sum := fnAdd(a, b)
	wantSum := new(big.Int).Add(fnToBig(a), fnToBig(b))
	wantSum.Mod(wantSum, nBig())
	if fnToBig(sum).Cmp(wantSum) != 0 {
		t.Fatalf("fnAdd = %s, want %s", fnToBig(sum), wantSum)
	}

	diff := fnSub(a, b)
	wantDiff := new(big.Int).Sub(fnToBig(a), fnToBig(b))
	wantDiff.Mod(wantDiff, nBig())
	if fnToBig(diff).Cmp(wantDiff) != 0 {
		t.Fatalf("fnSub = %s, want %s", fnToBig(diff), wantDiff)
	}
}

func TestFnInv(t *testing.T) {
	a := Z256{12345, 0, 0, 0}
	inv := fnInv(a)
	if fnMul(a, inv) != One {
		t.Fatalf("a * a^-1 != 1 mod n")
	}
}

func TestFnFromBytesRejectsNonCanonical(t *testing.T) {
	var buf [32]byte
	ToBytes(N, buf[:])
	if _, err := FnFromBytes(buf[:]); err != ErrNotCanonical {
		t.Fatalf("FnFromBytes(n) error = %v, want ErrNotCanonical", err)
	}
}

func TestFnFromHashInRange(t *testing.T) {
	var ha [40]byte
	for i := range ha {
		ha[i] = byte(i * 7)
	}
	h := FnFromHash(ha)
	if IsZero(h) == 1 {
		t.Fatal("fn_from_hash should never produce 0")
	}
	if Cmp(h, N) >= 0 {
		t.Fatal("fn_from_hash result should be < n")
	}
	want := Z256{0xf00dffae42abe366, 0xc0983544c6ce2d80, 0xf940cfe78a128c2f, 0x99594d68514f45ff}
	if h != want {
		t.Fatalf("fn_from_hash = %x, want %x", fnToBig(h), fnToBig(want))
	}
}

func TestFnFromHashMatchesBigIntReduction(t *testing.T) {
	cases := [][40]byte{}
	var all0, all255 [40]byte
	for i := range all255 {
		all255[i] = 0xff
	}
	cases = append(cases, all0, all255)
	var mixed [40]byte
	for i := range mixed {
		mixed[i] = byte(i*37 + 11)
	}
	cases = append(cases, mixed)

	nm1 := new(big.Int).Sub(nBig(), big.NewInt(1))
	for _, ha := range cases {
		got := FnFromHash(ha)
		want := new(big.Int).SetBytes(ha[:])
		want.Mod(want, nm1)
		want.Add(want, big.NewInt(1))
		if fnToBig(got).Cmp(want) != 0 {
			t.Fatalf("fn_from_hash(%x) = %s, want %s", ha, fnToBig(got), want)
		}
	}
}
