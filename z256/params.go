package z256

// Curve and field parameters for the SM9 BN curve (GB/T 38635.2). All
// "Mont" values are already in Montgomery form (value*R mod p); the plain
// values are not.

// P is the base field modulus.
var P = Z256{0xe56f9b27e351457d, 0x21f2934b1a7aeedb, 0xd603ab4ff58ec745, 0xb640000002a3a6f1}

// PMinusTwo is p-2, the Fermat inversion exponent.
var PMinusTwo = Z256{0xe56f9b27e351457b, 0x21f2934b1a7aeedb, 0xd603ab4ff58ec745, 0xb640000002a3a6f1}

// PPrime is -p^-1 mod 2^256, the Montgomery reduction constant.
var PPrime = Z256{0x892bc42c2f2ee42b, 0x181ae39613c8dbaf, 0x966a4b291522b137, 0xafd2bac5558a13b3}

// Modp2e512 is R^2 mod p = 2^512 mod p, used to enter Montgomery form.
var Modp2e512 = Z256{0x27dea312b417e2d2, 0x88f8105fae1a5d3f, 0xe479b522d6706e7b, 0x2ea795a656f62fbd}

// MontOne is R mod p = 1 in Montgomery form.
var MontOne = Z256{0x1a9064d81caeba83, 0xde0d6cb4e5851124, 0x29fc54b00a7138ba, 0x49bffffffd5c590e}

// MontFive is 5*R mod p = 5 in Montgomery form (the curve coefficient).
var MontFive = Z256{0xb9f2c1e8c8c71995, 0x125df8f246a377fc, 0x25e650d049188d1c, 0x043fffffed866f63}

// N is the order of the curve's prime-order subgroup.
var N = Z256{0xe56ee19cd69ecf25, 0x49f2934b18ea8bee, 0xd603ab4ff58ec744, 0xb640000002a3a6f1}

// NegN is 2^256 - n, used for fn_add's overflow branch.
var NegN = Z256{0x1a911e63296130db, 0xb60d6cb4e7157411, 0x29fc54b00a7138bb, 0x49bffffffd5c590e}

// NMinusOne is n-1.
var NMinusOne = Z256{0xe56ee19cd69ecf24, 0x49f2934b18ea8bee, 0xd603ab4ff58ec744, 0xb640000002a3a6f1}

// NBarrettMu is floor(2^512/n), stored as 5 64-bit limbs, little-endian.
var NBarrettMu = [5]uint64{0x74df4fd4dfc97c2f, 0x9c95d85ec9c073b0, 0x55f73aebdcd1312c, 0x67980e0beb5759a6, 0x1}

// NMinusOneBarrettMu is floor(2^512/(n-1)) truncated to 4 limbs; the top,
// 5th limb is always 1 for this modulus and is folded in by FnFromHash's
// own carry chain rather than carried as a field here.
var NMinusOneBarrettMu = Z256{0x74df4fd4dfc97c31, 0x9c95d85ec9c073b0, 0x55f73aebdcd1312c, 0x67980e0beb5759a6}

// Montgomery Frobenius constants for the Fp12 tower.
var (
	MontAlpha1 = Z256{0x1a98dfbd4575299f, 0x9ec8547b245c54fd, 0xf51f5eac13df846c, 0x9ef74015d5a16393}
	MontAlpha2 = Z256{0xb626197dce4736ca, 0x08296b3557ed0186, 0x9c705db2fd91512a, 0x1c753e748601c992}
	MontAlpha3 = Z256{0x39b4ef0f3ee72529, 0xdb043bf508582782, 0xb8554ab054ac91e3, 0x9848eec25498cab5}
	MontAlpha4 = Z256{0x81054fcd94e9c1c4, 0x4c0e91cb8ce2df3e, 0x4877b452e8aedfb4, 0x88f53e748b491776}
	MontAlpha5 = Z256{0x048baa79dcc34107, 0x5e2e7ac4fe76c161, 0x99399754365bd4bc, 0xaf91aeac819b0e13}
)

// MontBeta is the fp2 constant (MontAlpha3, 0) used by fp4's first-order
// Frobenius map.
var MontBeta = Fp2{MontAlpha3, Zero}

// Twist Frobenius scaling constants for pi1/pi2/neg_pi2, in Montgomery
// form.
var (
	TwistPi1C = Z256{0x1a98dfbd4575299f, 0x9ec8547b245c54fd, 0xf51f5eac13df846c, 0x9ef74015d5a16393}
	TwistPi2C = Z256{0xb626197dce4736ca, 0x08296b3557ed0186, 0x9c705db2fd91512a, 0x1c753e748601c992}
)

// Final-exponentiation hard-part constants.
var (
	hardA2   = Z256{0x0000b98b0cb27659, 0xd8000000019062ed, 0, 0}
	hardA3   = Z256{0x400000000215d941, 0x2, 0, 0}
	hardNine = Z256{9, 0, 0, 0}
)

// Base point P1 on E(F_p), in plain and Montgomery coordinates.
var (
	P1X = Z256{0xe8c4e4817c66dddd, 0xe1e4086909dc3280, 0xf5ed0704487d01d6, 0x93de051d62bf718f}
	P1Y = Z256{0x0c464cd70a3ea616, 0x1c1c00cbfa602435, 0x631065125c395bbc, 0x21fe8dda4f21e607}

	MontP1X = Z256{0x22e935e29860501b, 0xa946fd5e0073282c, 0xefd0cec817a649be, 0x5129787c869140b5}
	MontP1Y = Z256{0xee779649eb87f7c7, 0x15563cbdec30a576, 0x326353912824efbf, 0x7215717763c39828}
)

// Twist generator P2 on E'(F_p^2), plain and Montgomery.
var (
	P2Xa0 = Z256{0xF9B7213BAF82D65B, 0xEE265948D19C17AB, 0xD2AAB97FD34EC120, 0x3722755292130B08}
	P2Xa1 = Z256{0x54806C11D8806141, 0xF1DD2C190F5E93C4, 0x597B6027B441A01F, 0x85AEF3D078640C98}
	P2Ya0 = Z256{0x6215BBA5C999A7C7, 0x47EFBA98A71A0811, 0x5F3170153D278FF2, 0xA7CF28D519BE3DA6}
	P2Ya1 = Z256{0x856DC76B84EBEB96, 0x0736A96FA347C8BD, 0x66BA0D262CBEE6ED, 0x17509B092E845C12}

	MontP2Xa0 = Z256{0x260226a68ce2da8f, 0x7ee5645edbf6c06b, 0xf8f57c82b1495444, 0x61fcf018bc47c4d1}
	MontP2Xa1 = Z256{0xdb6db4822750a8a6, 0x84c6135a5121f134, 0x1874032f88791d41, 0x905112f2b85f3a37}
	MontP2Ya0 = Z256{0xc03f138f9171c24a, 0x92fbab45a15a3ca7, 0x2445561e2ff77cdb, 0x108495e0c0f62ece}
	MontP2Ya1 = Z256{0xf7b82dac4c89bfbb, 0x3706f3f6a49dc12f, 0x1e29de93d3eef769, 0x81e448c3c76a5d53}
)

// Ppubs: fixed system public point on the twist, plain and Montgomery.
var (
	PpubsXa0 = Z256{0x8F14D65696EA5E32, 0x414D2177386A92DD, 0x6CE843ED24A3B573, 0x29DBA116152D1F78}
	PpubsXa1 = Z256{0x0AB1B6791B94C408, 0x1CE0711C5E392CFB, 0xE48AFF4B41B56501, 0x9F64080B3084F733}
	PpubsYa0 = Z256{0x0E75C05FB4E3216D, 0x1006E85F5CDFF073, 0x1A7CE027B7A46F74, 0x41E00A53DDA532DA}
	PpubsYa1 = Z256{0xE89E1408D0EF1C25, 0xAD3E2FDB1A77F335, 0xB57329F447E3A0CB, 0x69850938ABEA0112}

	MontPpubsXa0 = Z256{0xb2e0a02b40b3d927, 0x153e2b9e897e44a0, 0x47cd0690d256c1a9, 0x5d3123b78630320e}
	MontPpubsXa1 = Z256{0x2c3c3f7ba9fc143e, 0x1f214aa16a4fa43f, 0x424e7e2f0dbc839b, 0x87eecef7fd6531c9}
	MontPpubsYa0 = Z256{0x07a059838aa95e77, 0x6e65e6d455509cae, 0xf921da6493e4f742, 0x9fcf05bded9f2d36}
	MontPpubsYa1 = Z256{0xdc4fea9a756fc34e, 0xe4e34e772312a7b1, 0xbfa26e7682b1f64a, 0x7f1337b7cda2bf5e}
)

// Fp2Mont5U is 5*u in Fp2, Montgomery form -- the twist curve coefficient
// b' such that y^2 = x^3 + Fp2Mont5U.
var Fp2Mont5U = Fp2{a0: Zero, a1: MontFive}
