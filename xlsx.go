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
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/tealeg/xlsx"
)

// excelCache holds previously opened Microsoft Excel workbooks to
// avoid reading the same file multiple times.
var excelCache *requestcache.Cache

var loadExcelCacheOnce sync.Once

// loadExcelFile loads a Microsoft Excel workbook from disk, utilizing
// a cache to avoid loading the same file more than once.
func loadExcelFile(filename string) (*xlsx.File, error) {
	loadExcelCacheOnce.Do(func() {
		excelCache = requestcache.NewCache(func(ctx context.Context, req interface{}) (interface{}, error) {
			filename := req.(string)
			f, err := xlsx.OpenFile(filename)
			if err != nil {
				return nil, fmt.Errorf("nzip: opening xlsx file: %v", err)
			}
			return f, nil
		}, runtime.GOMAXPROCS(-1), requestcache.Memory(100))
	})
	r := excelCache.NewRequest(context.Background(), filename, filename)
	fI, err := r.Result()
	if err != nil {
		return nil, err
	}
	return fI.(*xlsx.File), nil
}

// ReadExcel reads a table from the named sheet of a Microsoft Excel
// workbook. The sheet's first row is the header row; rows shorter than
// the header are padded with missing values, the way spreadsheet tools
// leave trailing blanks off.
func ReadExcel(filename, sheet string) (*Table, error) {
	filename = os.ExpandEnv(filename)
	f, err := loadExcelFile(filename)
	if err != nil {
		return nil, err
	}
	s, ok := f.Sheet[sheet]
	if !ok {
		return nil, fmt.Errorf("nzip: workbook %s has no sheet %q", filename, sheet)
	}
	if len(s.Rows) == 0 {
		return nil, fmt.Errorf("nzip: workbook %s sheet %q has no header row", filename, sheet)
	}
	var header []string
	for _, c := range s.Rows[0].Cells {
		header = append(header, c.Value)
	}
	rows := make([][]string, 0, len(s.Rows)-1)
	for _, r := range s.Rows[1:] {
		row := make([]string, len(header))
		for i, c := range r.Cells {
			if i >= len(header) {
				break
			}
			row[i] = c.Value
		}
		rows = append(rows, row)
	}
	return NewTable(header, rows)
}
