package stats

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"

	"github.com/anrid/dog-stats/pkg/logger"
)

// ExtractDataFromFile calls handler for every row of the source, header
// row included. A handler error stops extraction and is returned as is.
func ExtractDataFromFile(s Source, handler func(r []string) error) error {
	switch s.Format() {
	case FormatXLS:
		return ExtractDataFromXLS(s, handler)
	case FormatCSV:
		return ExtractDataFromCSV(s, handler)
	default:
		return ExtractDataFromXLSX(s, handler)
	}
}

func ExtractDataFromXLS(s Source, handler func(r []string) error) error {
	logger.Debug("Loading XLS data: %s", s.Path)

	f, err := os.Open(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return fmt.Errorf("could not read XLS file: %w", err)
	}

	var sheet *xls.WorkSheet
	for i := 0; i < wb.NumSheets(); i++ {
		if ws := wb.GetSheet(i); ws != nil && (s.Sheet == "" || ws.Name == s.Sheet) {
			sheet = ws
			break
		}
	}
	if sheet == nil {
		return fmt.Errorf("sheet '%s' not found", s.Sheet)
	}

	logger.Debug("Sheet name : %s", sheet.Name)
	logger.Debug("Sheet rows : %d", sheet.MaxRow)

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		if err := handler(cols); err != nil {
			return err
		}
	}
	return nil
}

func ExtractDataFromXLSX(s Source, handler func(r []string) error) error {
	logger.Debug("Loading XLSX data: %s", s.Path)

	f, err := os.Open(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	wb, err := xlsx.OpenReader(f)
	if err != nil {
		return fmt.Errorf("could not read XLSX file: %w", err)
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return errors.New("workbook has no sheets")
	}

	sheet := sheets[0]
	if s.Sheet != "" {
		sheet = ""
		for _, name := range sheets {
			if name == s.Sheet {
				sheet = name
				break
			}
		}
		if sheet == "" {
			return fmt.Errorf("sheet '%s' not found", s.Sheet)
		}
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("could not get rows for sheet '%s': %w", sheet, err)
	}

	logger.Debug("Sheet name : %s", sheet)
	logger.Debug("Sheet rows : %d", len(rows))

	for _, r := range rows {
		if err := handler(r); err != nil {
			return err
		}
	}
	return nil
}

func ExtractDataFromCSV(s Source, handler func(r []string) error) error {
	logger.Debug("Loading CSV data: %s", s.Path)

	f, err := os.Open(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Excel's "CSV UTF-8" export starts with a byte order mark.
	br := bufio.NewReader(f)
	if bom, _, err := br.ReadRune(); err == nil && bom != '\ufeff' {
		_ = br.UnreadRune()
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not read CSV file: %w", err)
		}
		if err := handler(row); err != nil {
			return err
		}
	}
}
