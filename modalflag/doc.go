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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function. For example, handling
// exactly one argument:
//
//	switch len(md.RemainingArgs()) {
//	case 0:
//		return fmt.Errorf("cartridge image required")
//	case 1:
//		Process(md.GetArg(0))
//	default:
//		return fmt.Errorf("too many arguments")
//	}
//
// Adding flags is similar to the flag package:
//
//	fix := md.AddBool("fix", false, "write calculated checksum to the header")
//
// The important difference between the flag package and the modalflag
// package is the handling of "modes". A mode is a special command line
// argument that puts the program into a different mode of operation, with its
// own flags and arguments. Sub-modes are added with AddSubModes(), the first
// of which is the default mode:
//
//	md.AddSubModes("INFO", "SWAP", "CHECKSUM")
//
// All sub-mode comparisons are case insensitive.
//
// After Parse(), the Mode() function returns the selected mode. To parse the
// flags for the selected mode, call NewMode(), add the flags, and call
// Parse() again. The Path() function returns the series of modes selected so
// far and is useful in error and help messages.
package modalflag
