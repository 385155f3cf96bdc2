package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a vertex index to its label. Labels must be non-empty, unique
// and free of whitespace and dashes so they survive the text format.
type IDFn func(idx int) string

// ExcelColumnIDFn returns spreadsheet-style column names: A … Z, AA, AB, ….
// This is the default scheme.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns an IDFn producing prefix followed by the decimal
// index: "N0", "N1", ….
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithExcelColumnIDs labels vertices A, B, …, Z, AA, ….
func WithExcelColumnIDs() Option {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbNumb labels vertices prefix0, prefix1, ….
func WithSymbNumb(prefix string) Option {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
