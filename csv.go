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

package nzip

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// ReadCSV reads a table from CSV data. The first record is the header
// row and every remaining record is one site. NZIP exports are encoded
// as Latin-1, so the input is decoded from Latin-1 before parsing;
// this is a no-op for plain-ASCII files.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("nzip: reading csv: %v", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("nzip: reading csv: no header row")
	}
	return NewTable(records[0], records[1:])
}

// ReadCSVFile reads a table from the CSV file at the given path,
// expanding any environment variables in the path.
func ReadCSVFile(filename string) (*Table, error) {
	f, err := os.Open(os.ExpandEnv(filename))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("nzip: reading %s: %v", filename, err)
	}
	return t, nil
}
