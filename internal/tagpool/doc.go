// Package tagpool enumerates fixed-length tags over a small alphabet and
// hands them out to file pairs without reuse.
//
// Tags are ordered lexicographically by alphabet position with the rightmost
// symbol varying fastest: for A,T,C,G and length 2 the pool is AA, AT, AC,
// AG, TA, ... GG. The i-th tag is computed directly by writing i in base
// len(alphabet), so the pool is never materialized unless a caller asks for
// it with [Generate].
package tagpool
