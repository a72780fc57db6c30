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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/jetsetilly/n64cart/byteswap"
	"github.com/jetsetilly/n64cart/curated"
	"github.com/jetsetilly/n64cart/logger"
)

// Sentinal error patterns.
const (
	LoadError       = "cartridgeloader: %v"
	UnexpectedHash  = "cartridgeloader: unexpected hash value (%s)"
	UnsupportedURL  = "cartridgeloader: unsupported URL scheme (%s)"
	UnexpectedHTTP  = "cartridgeloader: unexpected HTTP status (%s)"
	NothingToReload = "cartridgeloader: nothing to reload"
)

// Loader is used to specify and to load a cartridge image.
type Loader struct {
	// filename of cartridge to load. can be a URL with the http or https
	// scheme
	Filename string

	// expected sha1 hash of the loaded data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// xxhash of the loaded data. set by Load()
	Fingerprint uint64

	// copy of the loaded data. subsequent calls to Load() do nothing
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := filepath.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, filepath.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Filenames with a valid scheme will use that method
// to load the data. Currently supported schemes are HTTP and local files.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && len(u.Scheme) > 1 {
		// single letter schemes are windows drive letters
		scheme = strings.ToLower(u.Scheme)
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(UnexpectedHTTP, resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		data, err = os.ReadFile(strings.TrimPrefix(cl.Filename, "file://"))
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(UnsupportedURL, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Data = data
	cl.Hash = hash
	cl.Fingerprint = xxhash.Sum64(data)

	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s (%d bytes, sha1 %s)", cl.ShortName(), len(data), hash)

	if !recognisedExtension(cl.Filename) {
		logger.Logf(logger.Allow, "cartridgeloader", "%s does not have a recognised file extension", cl.ShortName())
	}

	if hint, ok := extensionHint(cl.Filename); ok {
		if s, ok := byteswap.Detect(data); ok && s != hint {
			logger.Logf(logger.Allow, "cartridgeloader", "%s has %s byte swapping despite the filename extension", cl.ShortName(), s)
		}
	}

	return nil
}

// Reload discards the loaded data and loads it again. The hash from the
// previous load is used to make sure the data has not changed.
func (cl *Loader) Reload() error {
	if !cl.HasLoaded() {
		return curated.Errorf(NothingToReload)
	}
	cl.Data = nil
	return cl.Load()
}
