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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/n64cart/byteswap"
	"github.com/jetsetilly/n64cart/cartridgeloader"
	"github.com/jetsetilly/n64cart/checksum"
	"github.com/jetsetilly/n64cart/confirm"
	"github.com/jetsetilly/n64cart/curated"
	"github.com/jetsetilly/n64cart/header"
	"github.com/jetsetilly/n64cart/logger"
	"github.com/jetsetilly/n64cart/modalflag"
	"github.com/jetsetilly/n64cart/statsview"
	"github.com/jetsetilly/n64cart/version"
)

// exit values returned by launch()
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("INFO", "DETECT", "SWAP", "CHECKSUM", "HEADER", "SCAN", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("recognised file extensions: %s",
		strings.Join(cartridgeloader.FileExtensions[:], " ")))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "INFO":
		err = info(md)

	case "DETECT":
		err = detect(md)

	case "SWAP":
		err = swap(md)

	case "CHECKSUM":
		err = calculate(md)

	case "HEADER":
		err = makeHeader(md)

	case "SCAN":
		err = scan(md)

	case "VERSION":
		err = showVersion(md)
	}

	// echo is only ever set for the duration of a mode
	logger.SetEcho(nil)

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// parseMode is a wrapper for md.Parse() for use by the individual modes.
// returns true if processing should continue.
func parseMode(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	if err != nil {
		return false, err
	}
	return p == modalflag.ParseContinue, nil
}

func setEcho(md *modalflag.Modes, echo bool) {
	if echo {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}
}

// singleCartridge returns a loaded cartridge for modes that require exactly
// one argument.
func singleCartridge(md *modalflag.Modes) (cartridgeloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, fmt.Errorf("cartridge image required for %s mode", md)
	case 1:
	default:
		return cartridgeloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	err := cl.Load()
	if err != nil {
		return cartridgeloader.Loader{}, err
	}

	return cl, nil
}

// nativeCopy returns a copy of the data in native byte order along with the
// original byte swapping.
func nativeCopy(data []byte) ([]byte, byteswap.ByteSwapping, error) {
	s, ok := byteswap.Detect(data)
	if !ok {
		return nil, s, curated.Errorf(byteswap.UnknownSwapping)
	}

	d := make([]byte, len(data))
	copy(d, data)

	// native data needs no conversion, whatever its length
	if s == byteswap.Native {
		return d, s, nil
	}

	err := byteswap.ConvertTo(byteswap.Native, d)
	if err != nil {
		return nil, s, err
	}

	return d, s, nil
}

// writeImage writes data to filename. if overwrite is false the user is asked
// for confirmation if the file already exists.
func writeImage(md *modalflag.Modes, filename string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(filename); err == nil {
			ok, err := confirm.Ask(md.Output, fmt.Sprintf("overwrite %s?", filename))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("not overwriting %s", filename)
			}
		}
	}

	err := os.WriteFile(filename, data, 0644)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "n64cart", "written %d bytes to %s", len(data), filename)

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stdout")
	dot := md.AddBool("dot", false, "output header structure as a graphviz graph")

	if ok, err := parseMode(md); !ok {
		return err
	}

	setEcho(md, *log)

	cl, err := singleCartridge(md)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "file:        %s\n", cl.Filename)
	fmt.Fprintf(md.Output, "size:        %d bytes\n", len(cl.Data))
	fmt.Fprintf(md.Output, "sha1:        %s\n", cl.Hash)
	fmt.Fprintf(md.Output, "xxhash:      %016x\n", cl.Fingerprint)

	d, s, err := nativeCopy(cl.Data)
	if err != nil {
		if curated.Is(err, byteswap.UnknownSwapping) {
			fmt.Fprintf(md.Output, "swapping:    unrecognised\n")
			return nil
		}
		return err
	}
	fmt.Fprintf(md.Output, "swapping:    %s\n", s)

	hdr, err := header.FromBytes(d)
	if err != nil {
		return err
	}

	if *dot {
		memviz.Map(md.Output, &hdr)
		return nil
	}

	fmt.Fprintf(md.Output, "title:       %s\n", hdr.Title())
	fmt.Fprintf(md.Output, "cart timing: %08x\n", hdr.CartTiming)
	fmt.Fprintf(md.Output, "clock rate:  %08x\n", hdr.ClockRate)
	fmt.Fprintf(md.Output, "load addr:   %08x\n", hdr.LoadAddr)
	fmt.Fprintf(md.Output, "release:     %08x\n", hdr.Release)
	fmt.Fprintf(md.Output, "manuf id:    %08x\n", hdr.ManufID)
	fmt.Fprintf(md.Output, "cart id:     %04x\n", hdr.CartID)
	fmt.Fprintf(md.Output, "country:     %04x\n", hdr.CountryCode)
	fmt.Fprintf(md.Output, "header crc:  %08x %08x\n", hdr.CRC1, hdr.CRC2)

	crc1, crc2, err := checksum.Calculate(d)
	if err != nil {
		if curated.Is(err, checksum.NotLongEnough) {
			fmt.Fprintf(md.Output, "calculated:  image too short\n")
			return nil
		}
		return err
	}

	fmt.Fprintf(md.Output, "calculated:  %08x %08x\n", crc1, crc2)
	fmt.Fprintf(md.Output, "match:       %v\n", crc1 == hdr.CRC1 && crc2 == hdr.CRC2)

	return nil
}

func detect(md *modalflag.Modes) error {
	md.NewMode()

	if ok, err := parseMode(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("cartridge image required for %s mode", md)
	}

	for _, fn := range md.RemainingArgs() {
		cl := cartridgeloader.NewLoader(fn)
		if err := cl.Load(); err != nil {
			return err
		}

		if s, ok := byteswap.Detect(cl.Data); ok {
			fmt.Fprintf(md.Output, "%s: %s\n", fn, s)
		} else {
			fmt.Fprintf(md.Output, "%s: unrecognised\n", fn)
		}
	}

	return nil
}

func swap(md *modalflag.Modes) error {
	md.NewMode()

	to := md.AddString("to", "native", "target byte swapping: NATIVE, U16LE")
	out := md.AddString("out", "", "output file (default is to overwrite the input file)")
	yes := md.AddBool("yes", false, "overwrite files without confirmation")
	log := md.AddBool("log", false, "echo log to stdout")

	if ok, err := parseMode(md); !ok {
		return err
	}

	setEcho(md, *log)

	target, err := byteswap.Parse(*to)
	if err != nil {
		return err
	}

	cl, err := singleCartridge(md)
	if err != nil {
		return err
	}

	original, _ := byteswap.Detect(cl.Data)

	err = byteswap.ConvertTo(target, cl.Data)
	if err != nil {
		return err
	}

	if original == target {
		fmt.Fprintf(md.Output, "%s is already %s\n", cl.Filename, target)
		if *out == "" {
			return nil
		}
	}

	fn := cl.Filename
	if *out != "" {
		fn = *out
	}

	err = writeImage(md, fn, cl.Data, *yes)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "swap", "%s converted from %s to %s", cl.ShortName(), original, target)

	return nil
}

func calculate(md *modalflag.Modes) error {
	md.NewMode()

	fix := md.AddBool("fix", false, "write calculated checksum to the header")
	out := md.AddString("out", "", "output file for -fix (default is to overwrite the input file)")
	yes := md.AddBool("yes", false, "overwrite files without confirmation")
	log := md.AddBool("log", false, "echo log to stdout")

	if ok, err := parseMode(md); !ok {
		return err
	}

	setEcho(md, *log)

	cl, err := singleCartridge(md)
	if err != nil {
		return err
	}

	d, s, err := nativeCopy(cl.Data)
	if err != nil {
		return err
	}

	if !*fix {
		crc1, crc2, err := checksum.Calculate(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "%08x %08x\n", crc1, crc2)

		hdr, err := header.FromBytes(d)
		if err != nil {
			return err
		}
		if crc1 != hdr.CRC1 || crc2 != hdr.CRC2 {
			fmt.Fprintf(md.Output, "header does not match\n")
		}
		return nil
	}

	crc1, crc2, err := checksum.Update(d)
	if err != nil {
		return err
	}
	fmt.Fprintf(md.Output, "%08x %08x\n", crc1, crc2)

	// return data to the original byte swapping before writing
	err = byteswap.ConvertTo(s, d)
	if err != nil {
		return err
	}

	fn := cl.Filename
	if *out != "" {
		fn = *out
	}

	return writeImage(md, fn, d, *yes)
}

// headerValue checks that a flag value fits in a header field of the
// specified number of bits.
func headerValue(name string, v uint64, bits int) error {
	if v >= 1<<bits {
		return fmt.Errorf("value for -%s is too large for a %d bit field (%#x)", name, bits, v)
	}
	return nil
}

func makeHeader(md *modalflag.Modes) error {
	md.NewMode()

	name := md.AddString("name", "", fmt.Sprintf("cartridge name (%d characters maximum)", header.NameLen))
	timing := md.AddUint64("timing", uint64(header.DefaultCartTiming), "cart timing")
	clock := md.AddUint64("clockrate", uint64(header.DefaultClockRate), "clock rate")
	loadAddr := md.AddUint64("loadaddr", 0, "load address")
	release := md.AddUint64("release", 0, "release")
	manuf := md.AddUint64("manuf", 0, "manufacturer ID")
	cartID := md.AddUint64("cartid", 0, "cartridge ID")
	country := md.AddUint64("country", 0, "country code")
	out := md.AddString("out", "", "output file (default is stdout)")
	yes := md.AddBool("yes", false, "overwrite files without confirmation")
	dot := md.AddBool("dot", false, "output header structure as a graphviz graph")

	if ok, err := parseMode(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	checks := []struct {
		name string
		v    uint64
		bits int
	}{
		{"timing", *timing, 32},
		{"clockrate", *clock, 32},
		{"loadaddr", *loadAddr, 32},
		{"release", *release, 32},
		{"manuf", *manuf, 32},
		{"cartid", *cartID, 16},
		{"country", *country, 16},
	}
	for _, c := range checks {
		if err := headerValue(c.name, c.v, c.bits); err != nil {
			return err
		}
	}

	if len(*name) > header.NameLen {
		return fmt.Errorf("value for -name is too long for the %d byte name field (%d bytes)", header.NameLen, len(*name))
	}

	hdr := header.NewRomHeader()
	hdr.CartTiming = uint32(*timing)
	hdr.ClockRate = uint32(*clock)
	hdr.LoadAddr = uint32(*loadAddr)
	hdr.Release = uint32(*release)
	hdr.ManufID = uint32(*manuf)
	hdr.CartID = uint16(*cartID)
	hdr.CountryCode = uint16(*country)
	if *name != "" {
		hdr.SetTitle(*name)
	}

	if *dot {
		memviz.Map(md.Output, &hdr)
	}

	if *out != "" {
		return writeImage(md, *out, hdr.Bytes(), *yes)
	}

	if !*dot {
		return hdr.Serialize(md.Output)
	}

	return nil
}

func scan(md *modalflag.Modes) error {
	md.NewMode()

	stats := md.AddBool("statsview", false, "run stats server. the process stays alive until interrupted")
	log := md.AddBool("log", false, "echo log to stdout")

	if ok, err := parseMode(md); !ok {
		return err
	}

	setEcho(md, *log)

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one cartridge image required for %s mode", md)
	}

	var stayAlive bool
	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
			stayAlive = true
		} else {
			fmt.Fprintf(md.Output, "! stats server not available in this build\n")
		}
	}

	var failed int

	for _, fn := range md.RemainingArgs() {
		cl := cartridgeloader.NewLoader(fn)
		if err := cl.Load(); err != nil {
			fmt.Fprintf(md.Output, "%s: %v\n", fn, err)
			failed++
			continue
		}

		d, s, err := nativeCopy(cl.Data)
		if err != nil {
			if curated.Is(err, byteswap.UnknownSwapping) {
				fmt.Fprintf(md.Output, "%s: unrecognised %016x\n", fn, cl.Fingerprint)
			} else {
				fmt.Fprintf(md.Output, "%s: %v\n", fn, err)
			}
			failed++
			continue
		}

		var crc string
		switch err := checksum.Verify(d); {
		case err == nil:
			crc = "ok"
		case curated.Is(err, checksum.Mismatch):
			crc = "bad"
			failed++
		case curated.Is(err, checksum.NotLongEnough):
			crc = "short"
			failed++
		default:
			return err
		}

		fmt.Fprintf(md.Output, "%s: %s crc %s %016x\n", fn, strings.ToLower(s.String()), crc, cl.Fingerprint)
	}

	logger.Logf(logger.Allow, "scan", "%d of %d images failed", failed, len(md.RemainingArgs()))

	if stayAlive {
		fmt.Fprintf(md.Output, "stats server running. interrupt to exit\n")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		signal.Stop(sig)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	if ok, err := parseMode(md); !ok {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintf(md.Output, "%s\n", r)
	}

	return nil
}
