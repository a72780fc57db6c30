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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions report a fatal test error and should be used when
// the value being tested is needed for further tests. For example, testing
// that a buffer is the correct length before indexing into it.
//
// The nil value is considered a success by the ExpectSuccess() and
// ExpectFailure() functions. This is because of how errors usually work (nil
// to indicate no error).
//
// CompareWriter implements the io.Writer interface and should be used to
// capture output. CappedWriter is an io.Writer that fails once a predefined
// size has been reached and is useful for testing how a function handles a
// failing output sink.
package test
