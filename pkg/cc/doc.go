// Package cc implements ordinary strong/weak reference counting extended
// with a cycle collector capable of reclaiming unreachable reference
// cycles, using the synchronous trial-deletion algorithm of Bacon and
// Rajan (2001). A concurrent (scan-black) variant is sketched in
// concurrent.go, sharing the same Header contract.
package cc
