package report

import (
	"fmt"
	"path/filepath"
	"strconv"

	"lipidscan/internal/analysis"
	"lipidscan/internal/collection"

	"github.com/xuri/excelize/v2"
)

// WorkbookName is the filename of the Excel export.
const WorkbookName = "Analysis_Workbook.xlsx"

const (
	detailedSheet = "Detailed Data"
	summarySheet  = "Summary By Day"
)

// WriteWorkbook writes an Excel workbook mirroring the two CSV exports,
// for users who review results in a spreadsheet.
func WriteWorkbook(c *collection.Collection, results analysis.Results, path string) error {
	if results.Empty() {
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", detailedSheet); err != nil {
		return fmt.Errorf("workbook sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("workbook sheet: %w", err)
	}

	if err := writeDetailedSheet(f, c); err != nil {
		return err
	}
	if err := writeSummarySheet(f, results); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeDetailedSheet(f *excelize.File, c *collection.Collection) error {
	header := []interface{}{
		"Experiment", "Culture", "Day", "Image_Number", "File_Name",
		"Lipid_Percentage", "Original_Path", "Fused_Path", "Comparison_Path",
	}
	if err := f.SetSheetRow(detailedSheet, "A1", &header); err != nil {
		return fmt.Errorf("workbook detailed header: %w", err)
	}

	exp := c.Experiment
	row := 2
	for _, rec := range c.Records() {
		for i, img := range rec.Records {
			if img.FusedPath == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return fmt.Errorf("workbook detailed row %d: %w", row, err)
			}
			values := []interface{}{
				exp.Name, exp.Culture, rec.Day, i + 1,
				filepath.Base(img.OriginalPath), img.Percentage,
				img.OriginalPath, img.FusedPath, img.ComparisonPath,
			}
			if err := f.SetSheetRow(detailedSheet, cell, &values); err != nil {
				return fmt.Errorf("workbook detailed row %d: %w", row, err)
			}
			row++
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, results analysis.Results) error {
	header := []interface{}{
		"Day", "Num_Images", "Average_Lipids", "Standard_Deviation",
		"Standard_Error", "Error_Margin_95%", "Minimum", "Maximum",
	}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("workbook summary header: %w", err)
	}

	for i, s := range results {
		cell := "A" + strconv.Itoa(i+2)
		values := []interface{}{
			s.Day, s.Count, s.Mean, s.StdDev,
			s.StandardError, s.ErrorMargin95, s.Min, s.Max,
		}
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return fmt.Errorf("workbook summary row %d: %w", i+2, err)
		}
	}
	return nil
}
