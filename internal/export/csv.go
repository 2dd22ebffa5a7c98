package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"severance-engine/internal/model"
)

const (
	csvSeparator = ';'
	utf8BOM      = "\ufeff"
)

// Row labels of the CSV sheet.
const (
	RowServiceMonths          = "Meses trabalhados"
	RowSalaryBalance          = "Saldo de salario"
	RowNoticePay              = "Aviso previo indenizado"
	RowSalaryNoticeDeductions = "Descontos INSS + IRRF"
	RowNetSalaryNotice        = "Saldo + Aviso liquido"
	RowThirteenth             = "13o proporcional bruto"
	RowThirteenthDeductions   = "Descontos sobre 13o"
	RowNetThirteenth          = "13o liquido"
	RowProratedVacation       = "Ferias proporcionais"
	RowProratedVacationBonus  = "Adicional ferias proporcionais"
	RowExpiredVacation        = "Ferias vencidas"
	RowExpiredVacationBonus   = "Adicional ferias vencidas"
	RowDirectTotal            = "TOTAL DIRETO"
	RowFundWithdrawal         = "Saldo FGTS"
	RowFundPenalty            = "Multa FGTS"
	RowFundTotal              = "TOTAL VIA CAIXA"
	RowGrandTotal             = "TOTAL GERAL"
)

// SheetRow is one Item;Valor line of the CSV export.
type SheetRow struct {
	Item  string `csv:"Item"`
	Value string `csv:"Valor"`
}

// Sheet returns the CSV rows of a settlement in file order.
func Sheet(r model.SettlementResult) []SheetRow {
	amounts := []struct {
		item   string
		amount decimal.Decimal
	}{
		{RowSalaryBalance, r.SalaryBalance},
		{RowNoticePay, r.NoticePay},
		{RowSalaryNoticeDeductions, r.SalaryNoticeDeductions()},
		{RowNetSalaryNotice, r.NetSalaryNotice},
		{RowThirteenth, r.Thirteenth},
		{RowThirteenthDeductions, r.ThirteenthDeductions()},
		{RowNetThirteenth, r.NetThirteenth},
		{RowProratedVacation, r.ProratedVacation},
		{RowProratedVacationBonus, r.ProratedVacationBonus},
		{RowExpiredVacation, r.ExpiredVacation},
		{RowExpiredVacationBonus, r.ExpiredVacationBonus},
		{RowDirectTotal, r.DirectTotal},
		{RowFundWithdrawal, r.FundWithdrawal},
		{RowFundPenalty, r.FundPenalty},
		{RowFundTotal, r.FundTotal},
		{RowGrandTotal, r.GrandTotal},
	}

	rows := make([]SheetRow, 0, len(amounts)+1)
	rows = append(rows, SheetRow{Item: RowServiceMonths, Value: strconv.Itoa(r.ServiceMonths)})
	for _, a := range amounts {
		rows = append(rows, SheetRow{Item: a.item, Value: FormatBRL(a.amount)})
	}
	return rows
}

// WriteCSV writes the settlement sheet with a UTF-8 BOM and ';' separators so
// spreadsheet tools in pt-BR locales open it directly.
func WriteCSV(w io.Writer, r model.SettlementResult) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = csvSeparator
	if err := gocsv.MarshalCSV(Sheet(r), gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// ReadCSV parses a sheet written by WriteCSV back into its rows.
func ReadCSV(r io.Reader) ([]SheetRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte(utf8BOM))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = csvSeparator

	var rows []SheetRow
	if err := gocsv.UnmarshalCSV(cr, &rows); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// SheetAmounts maps each amount row of a sheet to its parsed value. The
// service-months row is skipped.
func SheetAmounts(rows []SheetRow) (map[string]decimal.Decimal, error) {
	amounts := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		if row.Item == RowServiceMonths {
			continue
		}
		d, err := ParseBRL(row.Value)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", row.Item, err)
		}
		amounts[row.Item] = d
	}
	return amounts, nil
}
