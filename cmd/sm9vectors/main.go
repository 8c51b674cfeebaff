// Command sm9vectors runs the SM9 arithmetic-core known-answer tests
// against the GB/T 38635.2 Appendix A reference values and reports
// PASS/FAIL for each.
//
// Usage:
//
//	sm9vectors [flags]
//
// Flags:
//
//	--verbose  Print each vector's computed value alongside PASS/FAIL
//	--version  Print version and exit
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gmssl-go/sm9z256/z256"
)

var version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes every self-check vector and returns a process exit code,
// separated from main so it can be invoked directly in tests.
func run(args []string) int {
	fs := flag.NewFlagSet("sm9vectors", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "print computed values alongside PASS/FAIL")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if *showVersion {
		fmt.Printf("sm9vectors %s\n", version)
		return 0
	}

	log.SetFlags(0)

	ok := true
	for _, v := range vectors {
		if err := v.run(*verbose); err != nil {
			log.Printf("FAIL %-28s %v", v.name, err)
			ok = false
			continue
		}
		log.Printf("PASS %-28s", v.name)
	}
	if !ok {
		return 1
	}
	return 0
}

type vector struct {
	name string
	run  func(verbose bool) error
}

var vectors = []vector{
	{"S1 generator sanity", s1GeneratorSanity},
	{"S2 twist generator", s2TwistGenerator},
	{"S3 scalar times identity", s3ScalarTimesIdentity},
	{"S4 pairing reference value", s4PairingReferenceValue},
	{"S5 Fn reduction", s5FnReduction},
	{"S6 round trip", s6RoundTrip},
}

func s1GeneratorSanity(verbose bool) error {
	p1 := z256.P1()
	if !z256.PointIsOnCurve(p1) {
		return fmt.Errorf("point_is_on_curve(P1) = false")
	}
	var octets [65]byte
	z256.PointToUncompressedOctets(p1, octets[:])

	wantX := mustDecodeHex("93DE051D62BF718FF5ED0704487D01D6E1E4086909DC3280E8C4E4817C66DDDD")
	wantY := mustDecodeHex("21FE8DDA4F21E607631065125C395BBC1C1C00CBFA6024350C464CD70A3EA616")
	if !bytes.Equal(octets[1:33], wantX) {
		return fmt.Errorf("x(P1) = %x, want %x", octets[1:33], wantX)
	}
	if !bytes.Equal(octets[33:65], wantY) {
		return fmt.Errorf("y(P1) = %x, want %x", octets[33:65], wantY)
	}
	if verbose {
		log.Printf("  P1 = %x", octets[:])
	}
	return nil
}

func s2TwistGenerator(verbose bool) error {
	p2 := z256.P2()
	if !z256.TwistPointIsOnCurve(p2) {
		return fmt.Errorf("twist_point_is_on_curve(P2) = false")
	}
	var octets [129]byte
	z256.TwistPointToUncompressedOctets(p2, octets[:])
	if verbose {
		log.Printf("  P2 = %x", octets[:])
	}
	return nil
}

func s3ScalarTimesIdentity(verbose bool) error {
	p1 := z256.P1()
	if got := z256.PointMul(z256.Zero, p1); !isInfinity(got) {
		return fmt.Errorf("point_mul(0, P1) is not infinity")
	}
	if got := z256.PointMul(z256.One, p1); !z256.PointEqu(got, p1) {
		return fmt.Errorf("point_mul(1, P1) != P1")
	}
	nMinusOne, _ := z256.Sub(z256.N, z256.One)
	got := z256.PointMul(nMinusOne, p1)
	want := z256.PointNeg(p1)
	if !z256.PointEqu(got, want) {
		return fmt.Errorf("point_mul(n-1, P1) != -P1")
	}
	if verbose {
		log.Printf("  point_mul(n-1, P1) == -P1: ok")
	}
	return nil
}

// referenceG is e(Ppubs, P1) with the GB/T 38635.2 Appendix A signature
// master public key: the published reference value g, serialized per the
// (c2, c1, c0)/(a1, a0) wire order.
const referenceG = "" +
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

func s4PairingReferenceValue(verbose bool) error {
	g := z256.Pairing(z256.Ppubs(), z256.P1())
	var buf [384]byte
	z256.Fp12ToBytes(g, buf[:])
	want := mustDecodeHex(referenceG)
	if !bytes.Equal(buf[:], want) {
		return fmt.Errorf("e(Ppubs,P1) = %x, want %x", buf[:], want)
	}
	if verbose {
		log.Printf("  g = e(Ppubs,P1) = %x...", buf[0:32])
	}
	return nil
}

func s5FnReduction(verbose bool) error {
	var ha [40]byte
	ha[0] = 0x2A
	ha[39] = 0x0D
	h := z256.FnFromHash(ha)
	var out [32]byte
	z256.FnToBytes(h, out[:])
	want := mustDecodeHex("34c168c746259948dd9919774f3748af9bcfcc8e3e2222a6132489a79bcfbb9a")
	if !bytes.Equal(out[:], want) {
		return fmt.Errorf("fn_from_hash(Ha) = %x, want %x", out[:], want)
	}
	if z256.Cmp(h, z256.N) >= 0 {
		return fmt.Errorf("fn_from_hash result >= n")
	}
	if verbose {
		log.Printf("  fn_from_hash(Ha) = %x", out[:])
	}
	return nil
}

func s6RoundTrip(verbose bool) error {
	p1 := z256.P1()
	var octets [65]byte
	z256.PointToUncompressedOctets(p1, octets[:])

	decoded, err := z256.PointFromUncompressedOctets(octets[:])
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	var reencoded [65]byte
	z256.PointToUncompressedOctets(decoded, reencoded[:])
	if !bytes.Equal(octets[:], reencoded[:]) {
		return fmt.Errorf("re-encoded octets differ from original")
	}
	if verbose {
		log.Printf("  round-trip ok, %d bytes", len(octets))
	}
	return nil
}

func isInfinity(p z256.Point) bool {
	return z256.PointEqu(p, z256.PointInfinity())
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
