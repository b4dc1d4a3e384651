package stats

import (
	"path/filepath"
	"strings"
)

// Format of a tabular source file.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

// Source is a file containing registration data, typically a table of
// data in Excel format with Year, Month, Breed and Total columns.
type Source struct {
	Path string
	// Sheet to read from a workbook. Empty means the first sheet.
	Sheet string
}

// Format is derived from the file extension; anything unknown is read as XLSX.
func (s Source) Format() Format {
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".xls":
		return FormatXLS
	case ".csv":
		return FormatCSV
	default:
		return FormatXLSX
	}
}
