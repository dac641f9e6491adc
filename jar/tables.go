package jar

// log2Tbl, exp2Tbl and bigTbl are the three immutable lookup tables the
// LogPS80 conversions read from. Their contents are reproduced verbatim
// from the reference JAR implementation (jar_sim.c's exp2_tbl/log2_tbl and
// jar_utils.c's Big_tbl) rather than rederived from the (8,0,5,5,7)
// parameter string: the tie-breaking the tables actually encode is part of
// the format's definition, not an artifact anyone should reproduce by
// rounding afresh. cmd/gentables recomputes them from first principles for
// reproducibility, but these embedded copies are authoritative.
//
// All three are package-level literals, so Go's ordinary package
// initialization gives the "initialize once, read-only, process lifetime"
// guarantee spec.md asks for without any sync.Once guard.

// log2Tbl holds, for each 5-bit index i, the top 7 bits of
// log2(1 + i/32), packed into a mantissa-aligned BitCell (bits 22..16).
var log2Tbl = [32]BitCell{
	0x00000000, 0x00060000, 0x000B0000, 0x00110000,
	0x00160000, 0x001B0000, 0x00200000, 0x00250000,
	0x00290000, 0x002E0000, 0x00320000, 0x00370000,
	0x003B0000, 0x003F0000, 0x00430000, 0x00470000,
	0x004B0000, 0x004F0000, 0x00520000, 0x00560000,
	0x005A0000, 0x005D0000, 0x00610000, 0x00640000,
	0x00670000, 0x006B0000, 0x006E0000, 0x00710000,
	0x00740000, 0x00770000, 0x007A0000, 0x007D0000,
}

// exp2Tbl holds, for each 6-bit index i, the top 5 bits of 2^(i/64) - 1,
// packed into a mantissa-aligned BitCell (bits 22..18).
var exp2Tbl = [64]BitCell{
	0x00000000, 0x00000000, 0x00040000, 0x00040000,
	0x00040000, 0x00080000, 0x00080000, 0x000C0000,
	0x000C0000, 0x000C0000, 0x00100000, 0x00100000,
	0x00100000, 0x00140000, 0x00140000, 0x00180000,
	0x00180000, 0x00180000, 0x001C0000, 0x001C0000,
	0x00200000, 0x00200000, 0x00240000, 0x00240000,
	0x00240000, 0x00280000, 0x00280000, 0x002C0000,
	0x002C0000, 0x00300000, 0x00300000, 0x00340000,
	0x00340000, 0x00380000, 0x00380000, 0x003C0000,
	0x003C0000, 0x00400000, 0x00400000, 0x00440000,
	0x00440000, 0x00480000, 0x00480000, 0x004C0000,
	0x00500000, 0x00500000, 0x00540000, 0x00540000,
	0x00580000, 0x00580000, 0x005C0000, 0x00600000,
	0x00600000, 0x00640000, 0x00640000, 0x00680000,
	0x006C0000, 0x006C0000, 0x00700000, 0x00740000,
	0x00740000, 0x00780000, 0x007C0000, 0x007C0000,
}

// bigTbl is indexed by the 8-bit biased exponent of a LogPS80 value; each
// entry is the "add-a-big-number" rounding constant chosen so that a single
// (x+Big)-Big sequence in binary32 rounds x to the number of fractional
// bits Posit-(8,0) permits at that exponent, or saturates/zeroes it when
// the exponent lies outside Posit-(8,0)'s range.
var bigTbl = [256]BitCell{
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x20000000,
	0x20000000, 0x20000000, 0x20000000, 0x3C800000,
	0x3C800000, 0x3C800000, 0x3C800000, 0x3C800000,
	0x3C800000, 0x3C800000, 0x3C800000, 0x3C800000,
	0x3C800000, 0x3C800000, 0x3C800000, 0x3C800000,
	0x3C800000, 0x3C800000, 0x3C800000, 0x3C800000,
	0x3C800000, 0x3C800000, 0x3C800000, 0x3C800000,
	0x3C800000, 0x48000000, 0x48000000, 0x48000000,
	0x48000000, 0x48000000, 0x48000000, 0x48800000,
	0x49800000, 0x4A800000, 0x4B800000, 0x4C800000,
	0x4D800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
	0x42800000, 0x42800000, 0x42800000, 0x42800000,
}
