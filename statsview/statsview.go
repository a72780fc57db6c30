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

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/n64cart/logger"
)

// Address the stats server listens on. Local connections only.
const Address = "localhost:12600"

// page showing the charts. pprof is served alongside under /debug/pprof/
const chartsPage = "/debug/statsview"

// Launch starts the stats server in its own goroutine and tells the user
// where to find it. Launch does not wait for the server. A SCAN over many
// images is what the charts are for, so the caller keeps the process alive
// while the user looks at them.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		statsview.New().Start()
	}()

	logger.Logf(logger.Allow, "statsview", "server started on %s", Address)
	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, chartsPage)
}

// Available is true in builds with the statsview tag.
func Available() bool {
	return true
}
