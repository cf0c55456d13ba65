package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/gallusnever/asc842-calculator/internal/apperrors"
	"github.com/gallusnever/asc842-calculator/internal/core/domain"
	portssvc "github.com/gallusnever/asc842-calculator/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const exportDateLayout = "2006-01-02"

// exportService renders calculation results as an xlsx workbook.
type exportService struct{}

// NewExportService creates the export facade.
func NewExportService() portssvc.ExportSvcFacade {
	return &exportService{}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// sheetWriter appends rows to one worksheet, tracking the current row and the
// first error. All amounts are rounded to cents on write; the engine keeps
// full precision internally.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func newSheetWriter(f *excelize.File, sheet string) (*sheetWriter, error) {
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	return &sheetWriter{f: f, sheet: sheet}, nil
}

func (w *sheetWriter) writeRow(values ...interface{}) {
	if w.err != nil {
		return
	}
	w.row++
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, w.row)
		if err != nil {
			w.err = err
			return
		}
		if d, ok := v.(decimal.Decimal); ok {
			v = d.Round(2).InexactFloat64()
		}
		if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
			w.err = err
			return
		}
	}
}

// CompleteWorkbook builds the five-sheet analysis workbook: Summary,
// Classification Tests, Amortization Schedule, Initial Journal Entry, and
// Monthly Journal Entries.
func (s *exportService) CompleteWorkbook(ctx context.Context, results *domain.CalculationResult, in domain.LeaseInputs) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("%w: no calculation results to export", apperrors.ErrValidation)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, results, in); err != nil {
		return nil, fmt.Errorf("writing summary sheet: %w", err)
	}
	if err := writeClassificationSheet(f, results.Classification); err != nil {
		return nil, fmt.Errorf("writing classification sheet: %w", err)
	}
	if err := writeScheduleSheet(f, results.Schedule); err != nil {
		return nil, fmt.Errorf("writing schedule sheet: %w", err)
	}
	if err := writeJournalSheet(f, "Initial Journal Entry", results.JournalEntries.Initial, false); err != nil {
		return nil, fmt.Errorf("writing initial entries sheet: %w", err)
	}
	if err := writeJournalSheet(f, "Monthly Journal Entries", results.JournalEntries.Periodic, true); err != nil {
		return nil, fmt.Errorf("writing periodic entries sheet: %w", err)
	}

	// The sheet excelize creates by default is replaced by Summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	if idx, err := f.GetSheetIndex("Summary"); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, results *domain.CalculationResult, in domain.LeaseInputs) error {
	w, err := newSheetWriter(f, "Summary")
	if err != nil {
		return err
	}

	money := func(d decimal.Decimal) string { return "$" + d.StringFixed(2) }
	fairValue := "N/A"
	if in.FairValue != nil {
		fairValue = money(*in.FairValue)
	}
	assetLife := "N/A"
	if in.AssetLifeMonths != nil {
		assetLife = fmt.Sprintf("%d", *in.AssetLifeMonths)
	}

	w.writeRow("Parameter", "Value")
	w.writeRow("Lease Commencement Date", in.CommencementDate.Format(exportDateLayout))
	w.writeRow("Monthly Payment", money(in.MonthlyPayment))
	w.writeRow("Lease Term (months)", in.LeaseTermMonths)
	w.writeRow("Payment Timing", string(in.PaymentTiming))
	w.writeRow("Discount Rate", formatPercent(in.DiscountRate))
	w.writeRow("Fair Value", fairValue)
	w.writeRow("Asset Life (months)", assetLife)
	w.writeRow("Fiscal Year End", fmt.Sprintf("%02d/%02d", int(in.FiscalYearEnd.Month), in.FiscalYearEnd.Day))
	w.writeRow("Lease Classification", string(results.Classification.LeaseType))
	w.writeRow("Initial Liability", money(results.InitialRecognition.LeaseLiability))
	w.writeRow("Initial ROU Asset", money(results.InitialRecognition.ROUAsset))
	w.writeRow("Total Payments", money(results.Summary.TotalPayments))
	w.writeRow("Total Interest", money(results.Summary.TotalInterest))
	if w.err != nil {
		return w.err
	}
	return f.SetColWidth(w.sheet, "A", "B", 28)
}

func writeClassificationSheet(f *excelize.File, classification domain.ClassificationResult) error {
	w, err := newSheetWriter(f, "Classification Tests")
	if err != nil {
		return err
	}

	w.writeRow("Test", "Result", "Threshold", "Met")
	for _, t := range classification.Tests.Ordered() {
		result := "N/A"
		if t.Result.Value != nil {
			result = formatPercent(*t.Result.Value)
		} else if t.Result.Threshold == nil {
			// Boolean tests carry no ratio; the outcome is the result.
			result = yesNo(t.Result.Met)
		}
		threshold := ""
		if t.Result.Threshold != nil {
			threshold = formatPercent(*t.Result.Threshold)
		}
		w.writeRow(testTitle(t.Name), result, threshold, yesNo(t.Result.Met))
	}
	if w.err != nil {
		return w.err
	}
	return f.SetColWidth(w.sheet, "A", "D", 22)
}

func writeScheduleSheet(f *excelize.File, schedule domain.Schedule) error {
	w, err := newSheetWriter(f, "Amortization Schedule")
	if err != nil {
		return err
	}

	w.writeRow("Month",
		"ROU Asset - Beginning", "ROU Asset - Amortization", "ROU Asset - Ending",
		"Liability - Beginning", "Liability - Interest", "Liability - Principal", "Liability - Ending",
		"Payment", "Total Expense")
	for _, row := range schedule.Rows {
		w.writeRow(row.Month,
			row.ROUAsset.Beginning, row.ROUAsset.Amortization, row.ROUAsset.Ending,
			row.Liability.Beginning, row.Liability.Interest, row.Liability.Principal, row.Liability.Ending,
			row.Payment, row.TotalExpense)
	}
	if w.err != nil {
		return w.err
	}
	return f.SetColWidth(w.sheet, "A", "J", 20)
}

// writeJournalSheet lays entries out as one row per line, with a blank row
// between entries.
func writeJournalSheet(f *excelize.File, sheet string, entries []domain.JournalEntry, withMonth bool) error {
	w, err := newSheetWriter(f, sheet)
	if err != nil {
		return err
	}

	if withMonth {
		w.writeRow("Date", "Month", "Description", "Account", "Debit", "Credit")
	} else {
		w.writeRow("Date", "Description", "Account", "Debit", "Credit")
	}
	for _, entry := range entries {
		for _, line := range entry.Lines {
			debit, credit := amountOrBlank(line.Debit), amountOrBlank(line.Credit)
			if withMonth {
				w.writeRow(entry.Date.Format(exportDateLayout), entry.Month, entry.Description, line.Account, debit, credit)
			} else {
				w.writeRow(entry.Date.Format(exportDateLayout), entry.Description, line.Account, debit, credit)
			}
		}
		w.writeRow()
	}
	if w.err != nil {
		return w.err
	}
	return f.SetColWidth(sheet, "A", "F", 24)
}

// amountOrBlank keeps zero sides of a line empty, the way accountants read
// entries.
func amountOrBlank(d decimal.Decimal) interface{} {
	if d.IsZero() {
		return ""
	}
	return d
}

func formatPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// testTitle renders a test name like "transfer_ownership" as
// "Transfer Ownership".
func testTitle(name domain.TestName) string {
	words := strings.Split(string(name), "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
