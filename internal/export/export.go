// Package export renders a day schedule as an xlsx workbook: one row per
// timeslot, one column per arena, each cell naming the assigned group.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gravadigital/turnier-api/internal/domain/common"
	"github.com/gravadigital/turnier-api/internal/domain/schedule"
)

// ContentType of the rendered workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GroupLabel is the cell text of an assigned group, with 1-based round and group numbers
func GroupLabel(id common.GroupID) string {
	return fmt.Sprintf("%s R%d G%d", id.BewerbName, id.RoundID+1, id.GroupID+1)
}

// Day renders the schedule of one day
func Day(day schedule.DayData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := day.Date.String()
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	nArenas := 0
	for _, ts := range day.Timeslots {
		nArenas = max(nArenas, len(ts.Arenas))
	}

	header := make([]any, 0, nArenas+1)
	header = append(header, "Timeslot")
	for i := range nArenas {
		header = append(header, fmt.Sprintf("Arena %d", i+1))
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	for i, ts := range day.Timeslots {
		row := make([]any, 0, len(ts.Arenas)+1)
		row = append(row, fmt.Sprintf("Slot %d", ts.ID.TimeslotID+1))
		for _, arena := range ts.Arenas {
			if arena.Group == nil {
				row = append(row, "")
				continue
			}
			row = append(row, GroupLabel(*arena.Group))
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, XSplit: 1, YSplit: 1, TopLeftCell: "B2", ActivePane: "bottomRight"}); err != nil {
		return nil, fmt.Errorf("freezing header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	axis, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}
