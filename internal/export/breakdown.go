package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"severance-engine/internal/model"
)

type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisSubtotal
	EmphasisTotal
	EmphasisGrandTotal
)

// Line is one row of the rendered breakdown with its value already
// formatted.
type Line struct {
	Label    string
	Value    string
	Emphasis Emphasis
}

// Section groups lines that are shown together.
type Section []Line

func money(amount decimal.Decimal) string {
	return "R$ " + FormatBRL(amount)
}

func deduction(amount decimal.Decimal) string {
	return "-R$ " + FormatBRL(amount)
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// Breakdown lays out a settlement the way it is shown to the user. Notice,
// expired vacation and FGTS lines only appear when they carry a value.
func Breakdown(r model.SettlementResult) []Section {
	sections := []Section{
		{{Label: "Tempo de empresa", Value: fmt.Sprintf("%d %s", r.ServiceMonths, plural(r.ServiceMonths, "mês", "meses"))}},
	}

	salary := Section{
		{Label: fmt.Sprintf("Saldo de salário (%d dias)", r.DaysWorked), Value: money(r.SalaryBalance)},
	}
	if r.NoticePay.IsPositive() {
		salary = append(salary, Line{Label: fmt.Sprintf("Aviso prévio indenizado (%d dias)", r.NoticeDays), Value: money(r.NoticePay)})
	}
	salary = append(salary,
		Line{Label: "Descontos INSS + IRRF", Value: deduction(r.SalaryNoticeDeductions())},
		Line{Label: "Saldo + aviso líquido", Value: money(r.NetSalaryNotice), Emphasis: EmphasisSubtotal},
	)
	sections = append(sections, salary)

	sections = append(sections, Section{
		{Label: fmt.Sprintf("13º proporcional (%d %s de %d)", r.CurrentYearMonths, plural(r.CurrentYearMonths, "mês", "meses"), r.TerminationYear), Value: money(r.Thirteenth)},
		{Label: "Descontos INSS + IRRF sobre 13º", Value: deduction(r.ThirteenthDeductions())},
		{Label: "13º líquido", Value: money(r.NetThirteenth), Emphasis: EmphasisSubtotal},
	})

	vacation := Section{
		{Label: fmt.Sprintf("Férias proporcionais (%d %s do período aquisitivo)", r.AccrualMonths, plural(r.AccrualMonths, "mês", "meses")), Value: money(r.ProratedVacation)},
		{Label: "Adicional de férias proporcionais (1/3)", Value: money(r.ProratedVacationBonus)},
	}
	if r.ExpiredVacation.IsPositive() {
		vacation = append(vacation,
			Line{Label: fmt.Sprintf("Férias vencidas (%d %s)", r.ExpiredVacationPeriods, plural(r.ExpiredVacationPeriods, "período", "períodos")), Value: money(r.ExpiredVacation)},
			Line{Label: "Adicional de férias vencidas (1/3)", Value: money(r.ExpiredVacationBonus)},
		)
	}
	sections = append(sections, vacation)

	sections = append(sections, Section{
		{Label: "Total direto ao trabalhador", Value: money(r.DirectTotal), Emphasis: EmphasisTotal},
	})

	if r.FundTotal.IsPositive() {
		sections = append(sections, Section{
			{Label: "Saldo do FGTS disponível para saque", Value: money(r.FundWithdrawal)},
			{Label: "Multa sobre o FGTS", Value: money(r.FundPenalty)},
			{Label: "Total via Caixa", Value: money(r.FundTotal), Emphasis: EmphasisTotal},
		})
	}

	sections = append(sections, Section{
		{Label: "ESTIMATIVA TOTAL", Value: money(r.GrandTotal), Emphasis: EmphasisGrandTotal},
	})

	return sections
}

// WriteText prints the breakdown as plain text, one line per item and a rule
// between sections.
func WriteText(w io.Writer, r model.SettlementResult) error {
	for i, section := range Breakdown(r) {
		if i > 0 {
			if _, err := fmt.Fprintln(w, strings.Repeat("-", 48)); err != nil {
				return err
			}
		}
		for _, line := range section {
			if _, err := fmt.Fprintf(w, "%s: %s\n", line.Label, line.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
