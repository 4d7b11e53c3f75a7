// Package bufutil
// Author: momentics <momentics@gmail.com>
//
// Cross-implementation algorithms over api.Buf: byte-order-aware hashing,
// equality, lexicographic comparison, forward/backward byte search, hex
// dump rendering and 16/24/32/64-bit byte-order swaps.
//
// Every function here is parameterized only by the api.Buf capability
// interface, so any concrete view implementation gets them for free.
// All functions are pure; none allocate beyond their result.
package bufutil
