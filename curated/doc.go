// This file is part of n64cart.
//
// n64cart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64cart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64cart.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is what differentiates one curated error from
// another, so patterns that need to be checked for should be stored as an
// exported const string. For example, from the byteswap package:
//
//	const OddLength = "Not an even length for swapping"
//
//	err := byteswap.ConvertTo(byteswap.Native, data)
//	if curated.Is(err, byteswap.OddLength) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(checksum.NotLongEnough, len(data), layout.ChecksumEnd)
//	f := curated.Errorf("checksum: %v", e)
//
//	curated.Has(f, checksum.NotLongEnough) // true
//	curated.Is(f, checksum.NotLongEnough)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it separates 'expected' errors from
// 'unexpected' errors, such as those returned by the os package.
//
// The Error() function normalises the error chain. Specifically, the chain
// does not contain duplicate adjacent parts. For example, a loader that wraps
// an error from a function that itself wraps with the same prefix:
//
//	return curated.Errorf("cartridgeloader: %v", err)
//
// will print:
//
//	cartridgeloader: file not found
//
// and not:
//
//	cartridgeloader: cartridgeloader: file not found
//
// Parts of a chain are separated by the sub-string ': ' as suggested on p239
// of "The Go Programming Language" (Donovan, Kernighan).
//
// Curated errors also work with the standard errors package. The first error
// value given to Errorf() is returned by Unwrap(), so errors.Is() can see
// through a curated wrapping to, for example, io.ErrShortWrite.
package curated
