// Package factory
// Author: momentics <momentics@gmail.com>
//
// Construction entry point for buffer views. Every function maps its
// request to the cheapest representation that satisfies the requested
// semantics: a shared empty flyweight when the result would hold zero
// bytes, a zero-copy wrap or slice when aliasing is requested, a single
// contiguous allocation when an independent copy is. Wrap results share
// storage with their inputs; Copy results never do.
//
// Variadic wrap forms merge two or more sources into a composite view
// without copying, rejecting mixed byte orders and flattening composite
// inputs so composites never nest. Variadic copy forms merge sources
// into one freshly allocated buffer.
package factory
