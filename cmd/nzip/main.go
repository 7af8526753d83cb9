/*
Copyright © 2026 the NZIP analysis authors.
This file is part of the NZIP analysis toolkit.

The NZIP analysis toolkit is free software: you can redistribute it
and/or modify it under the terms of the GNU General Public License as
published by the Free Software Foundation, either version 3 of the
License, or (at your option) any later version.

The NZIP analysis toolkit is distributed in the hope that it will be
useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with the NZIP analysis toolkit.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command nzip is a command-line interface for analyzing NZIP scenario
// results and UK point-source emissions.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/nzip/nziputil"
)

func main() {
	if err := nziputil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
