package workbook

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/ukaji3/a1notation-go/pkg/a1notation"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/models"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/parser"
	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrSheetNotFound indicates a requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// Scan opens the workbook at path and reports its ranges.
func Scan(path string, opts Options) (*models.WorkbookRanges, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ScanFile(f, filepath.Base(path), opts)
}

// ScanFile reports the ranges of an already opened workbook.
// Failures in one component of a sheet are logged and leave that component
// empty; the rest of the scan continues.
func ScanFile(f *excelize.File, bookName string, opts Options) (*models.WorkbookRanges, error) {
	sheetList := f.GetSheetList()
	if len(opts.Sheets) > 0 {
		missing, _ := lo.Difference(lo.Uniq(opts.Sheets), sheetList)
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrSheetNotFound, missing)
		}
		sheetList = lo.Intersect(sheetList, opts.Sheets)
	}

	sheets := make(map[string]models.SheetRanges, len(sheetList))
	for _, sheetName := range sheetList {
		var sheet models.SheetRanges

		used, ok, err := parser.UsedRange(f, sheetName)
		if err != nil {
			logScanError(a1notation.NewScanError(sheetName, "used_range", err))
		} else if ok {
			sheet.UsedRange = &used
		}

		if opts.ShouldDetectTables() {
			tables, err := parser.DetectTables(f, sheetName, opts.Tables)
			if err != nil {
				logScanError(a1notation.NewScanError(sheetName, "tables", err))
			}
			sheet.TableCandidates = tables
		}

		if opts.ShouldIncludeCells() {
			rows, err := parser.ExtractCells(f, sheetName)
			if err != nil {
				logScanError(a1notation.NewScanError(sheetName, "cells", err))
			}
			sheet.Rows = rows
		}

		sheets[sheetName] = sheet
	}

	if opts.ShouldIncludePrintAreas() {
		printAreas, err := parser.ExtractPrintAreas(f)
		if err != nil {
			logScanError(a1notation.NewScanError("", "print_areas", err))
		}
		for sheetName, areas := range printAreas {
			sheet, ok := sheets[sheetName]
			if !ok {
				slog.Debug("print area for unscanned sheet", "sheet", sheetName)
				continue
			}
			sheet.PrintAreas = areas
			sheets[sheetName] = sheet
		}
	}

	slog.Debug("scanned workbook", "book", bookName, "sheets", len(sheets))

	return &models.WorkbookRanges{
		BookName: bookName,
		Sheets:   sheets,
	}, nil
}

func logScanError(err *a1notation.ScanError) {
	slog.Warn("scan component failed", "sheet", err.SheetName, "component", err.Component, "err", err.Err)
}
