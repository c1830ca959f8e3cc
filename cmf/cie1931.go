package cmf

import (
	_ "embed"
	"strings"
	"sync"
)

// CIE 1931 2-degree standard observer, 380-780 nm at 5 nm intervals.
//
//go:embed ciexyz31.csv
var cie1931Data string

var (
	cie1931Once  sync.Once
	cie1931Table *Table
)

// CIE1931 returns the embedded CIE 1931 2-degree standard-observer
// table. The table is parsed once and shared; callers must not mutate
// the returned columns.
func CIE1931() *Table {
	cie1931Once.Do(func() {
		t, err := Parse(strings.NewReader(cie1931Data))
		if err != nil {
			panic("cmf: embedded CIE 1931 table: " + err.Error())
		}

		cie1931Table = t
	})

	return cie1931Table
}
