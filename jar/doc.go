// Package jar emulates Johnson Arithmetic's Posit-(8,0)-based logarithmic
// number format, LogPS80: an (N=8, s=1, a=0, b=5, c=5) log table
// configuration intended for low-precision neural-network inference, where
// multiplication degenerates into log-domain addition and products are
// accumulated exactly in an oversized linear (binary32) accumulator.
//
// Both the logarithmic-domain values (LogPS80) and their linear-domain
// counterparts (LinFP32) are carried inside [BitCell], a 32-bit cell that
// can be transparently reinterpreted as either an unsigned integer or an
// IEEE-754 binary32 value — the same bit pattern, two views, with no
// conversion in between. The format is non-IEEE: it reserves no NaN or
// Inf encodings, and out-of-range magnitudes saturate instead of
// overflowing.
//
// The three semantic interpretations a BitCell may carry — LinFP32,
// LogPS80, and the transient wider-range LogSum produced by [LogAdd] — are
// not runtime-tagged. Callers must track which interpretation is in force
// from context, exactly as the reference implementation does.
package jar
