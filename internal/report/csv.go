package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/mcncl/jsoncompare/internal/compare"
	"github.com/mcncl/jsoncompare/internal/errors"
)

// ExportCSV writes the detailed comparison report to destPath as a
// seven-column CSV: field path, presence in each file, rendered value in
// each file, status label and difference description. The destination must
// end with a .csv extension.
func ExportCSV(rep *compare.Report, destPath string) error {
	if !strings.HasSuffix(strings.ToLower(destPath), ".csv") {
		return errors.NewExportError(
			fmt.Sprintf("invalid CSV file path '%s'", destPath),
			errors.ErrNotCSV,
		)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return errors.NewExportError(
			fmt.Sprintf("failed to create CSV file '%s'", destPath),
			err,
		)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{
		"Field Name",
		fmt.Sprintf("File 1 (%s)", rep.FirstName),
		fmt.Sprintf("File 2 (%s)", rep.SecondName),
		"Value in File 1",
		"Value in File 2",
		"Status",
		"Difference",
	}
	if err := writer.Write(header); err != nil {
		return errors.NewExportError("failed to write CSV header", err)
	}

	for _, field := range rep.Fields {
		row := []string{
			field.Path,
			presence(field.InFirst),
			presence(field.InSecond),
			field.First,
			field.Second,
			field.State.Label(),
			field.State.Difference(),
		}
		if err := writer.Write(row); err != nil {
			return errors.NewExportError(
				fmt.Sprintf("failed to write CSV row for field '%s'", field.Path),
				err,
			)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewExportError("failed to flush CSV output", err)
	}
	if err := file.Close(); err != nil {
		return errors.NewExportError(
			fmt.Sprintf("failed to close CSV file '%s'", destPath),
			err,
		)
	}
	return nil
}
