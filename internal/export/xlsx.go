// Package export writes dashboard reports to spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/waylo/companion/backend/internal/report"
	"github.com/waylo/companion/backend/internal/service"
)

// Sheet names, in workbook order.
const (
	SheetDaily            = "Daily"
	SheetWeekly           = "Weekly"
	SheetWeekdaySentiment = "Weekday Sentiments"
	SheetDateSentiment    = "Date Sentiments"
)

// WriteWorkbook renders d as an XLSX workbook with one sheet per section.
func WriteWorkbook(w io.Writer, d *service.Dashboard) error {
	f, err := build(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the workbook to path.
func SaveWorkbook(path string, d *service.Dashboard) error {
	f, err := build(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func build(d *service.Dashboard) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetDaily); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetWeekly, SheetWeekdaySentiment, SheetDateSentiment} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("new sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{SheetDaily, dailyRows(d.Daily)},
		{SheetWeekly, weeklyRows(d.Weekly)},
		{SheetWeekdaySentiment, weekdayRows(d.WeekdaySentiments)},
		{SheetDateSentiment, dateRows(d.DateSentiments)},
	}
	for _, s := range sheets {
		if err := writeRows(f, s.name, s.rows, bold); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}

func dailyRows(days []report.DailyDuration) [][]interface{} {
	rows := [][]interface{}{{"Date", "Hours"}}
	for _, d := range days {
		rows = append(rows, []interface{}{d.Date.String(), d.Hours})
	}
	return rows
}

func weeklyRows(weeks []report.WeeklyBucket) [][]interface{} {
	rows := [][]interface{}{{"Week", "Date", "Hours"}}
	for _, w := range weeks {
		for _, d := range w.Entries {
			rows = append(rows, []interface{}{w.Week, d.Date.String(), d.Hours})
		}
	}
	return rows
}

// weekdayRows lays the fixed vocabulary out as columns, Mon to Sun.
func weekdayRows(hist report.WeekdaySentiments) [][]interface{} {
	header := []interface{}{"Weekday"}
	for _, s := range report.Sentiments {
		header = append(header, s)
	}
	rows := [][]interface{}{header}

	for _, day := range report.Weekdays {
		counts, ok := hist[day]
		if !ok {
			continue
		}
		row := []interface{}{day}
		for _, s := range report.Sentiments {
			row = append(row, counts[s])
		}
		rows = append(rows, row)
	}
	return rows
}

// dateRows is long format since the by-date vocabulary is open.
func dateRows(hist report.DateSentiments) [][]interface{} {
	rows := [][]interface{}{{"Date", "Sentiment", "Count"}}

	dates := make([]string, 0, len(hist))
	for date := range hist {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		tags := make([]string, 0, len(hist[date]))
		for tag := range hist[date] {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			rows = append(rows, []interface{}{date, tag, hist[date][tag]})
		}
	}
	return rows
}
