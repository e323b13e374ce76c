// Package export renders dashboard tables as downloadable spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// PrioritySheet is the worksheet holding the priority list.
const PrioritySheet = "Prioritas Tinggi"

// PriorityHeader is the column header row of the priority export.
var PriorityHeader = []string{
	model.ColStudentID,
	model.ColAge,
	model.ColGender,
	model.ColVulnerableGroup,
	model.ColPlatformType,
	model.ColAvgDailyUsageHours,
	model.ColAddictedScore,
	model.ColMentalHealthScore,
	model.ColAcademicImpactLabel,
}

// scoreColumn is the 1-based column of Addicted_Score.
const scoreColumn = 7

var highlightFills = map[string]string{
	model.HighlightCritical: "F44336",
	model.HighlightHigh:     "FF9800",
}

// WritePriorityXLSX writes the priority list as a workbook with one sheet.
// Addiction scores are coloured by highlight band.
func WritePriorityXLSX(w io.Writer, rows []model.PriorityRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), PrioritySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	styles := make(map[string]int, len(highlightFills))
	for band, color := range highlightFills {
		id, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Color: "FFFFFF", Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return fmt.Errorf("create %s style: %w", band, err)
		}
		styles[band] = id
	}

	if err := f.SetSheetRow(PrioritySheet, "A1", &PriorityHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(PriorityHeader), 1)
	if err := f.SetCellStyle(PrioritySheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, r := range rows {
		line := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, line)
		values := []interface{}{
			r.StudentID,
			r.Age,
			r.Gender,
			r.VulnerableGroup,
			r.PlatformType,
			r.AvgDailyUsageHours,
			r.AddictedScore,
			r.MentalHealthScore,
			r.AcademicImpactLabel,
		}
		if err := f.SetSheetRow(PrioritySheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", line, err)
		}
		if style, ok := styles[r.Highlight]; ok {
			score, _ := excelize.CoordinatesToCellName(scoreColumn, line)
			if err := f.SetCellStyle(PrioritySheet, score, score, style); err != nil {
				return fmt.Errorf("style row %d: %w", line, err)
			}
		}
	}

	if err := f.SetColWidth(PrioritySheet, "A", "I", 18); err != nil {
		return fmt.Errorf("set widths: %w", err)
	}
	if err := f.SetPanes(PrioritySheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
