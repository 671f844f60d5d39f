// Package bigint implements an arbitrary-precision signed integer on top of
// 31-bit digits packed into uint32 limbs, least significant first.
//
// The representation mirrors the original yadsl BigInt: the magnitude is a
// slice of limbs, each in [0, 2^31), with no leading (most-significant)
// zero limb, and the sign is carried separately so the limb-level add/
// subtract/multiply/divide routines stay unsigned. A zero value has no
// limbs and sign 0.
//
// Complexity: Add/Sub/Cmp are O(n); Mul is O(n*m) schoolbook; Div is a
// bit-at-a-time restoring long division, O(bits(a) * limbs(a)); String is
// O(n^2) via repeated divide-by-ten.
package bigint
