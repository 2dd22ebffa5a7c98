package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"severance-engine/internal/export"
	"severance-engine/internal/model"
)

var errRejected = errors.New("settlement rejected")

type calcOptions struct {
	salary          string
	hireDate        string
	terminationDate string
	daysWorked      int
	terminationType string
	noticeType      string
	expiredVacation int
	dependents      int

	asJSON  bool
	csvPath string
	pdfPath string
}

func newCalcCommand(a *app) *cobra.Command {
	opts := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate one settlement and print the breakdown",
		Example: `  severance calc --salary 3.000,00 --hire 2022-01-10 --termination 2024-06-20 \
    --days-worked 20 --type semJustaCausa --notice indenizado --csv rescisao.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCalc(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.salary, "salary", "", "gross monthly salary, e.g. 3.000,00 or 3000.00")
	f.StringVar(&opts.hireDate, "hire", "", "hire date (YYYY-MM-DD)")
	f.StringVar(&opts.terminationDate, "termination", "", "termination date (YYYY-MM-DD)")
	f.IntVar(&opts.daysWorked, "days-worked", 0, "days worked in the final month (0-31)")
	f.StringVar(&opts.terminationType, "type", "", "termination type: semJustaCausa, acordo, pedidoDemissao, justaCausa")
	f.StringVar(&opts.noticeType, "notice", "", "notice type: indenizado, trabalhado or empty")
	f.IntVar(&opts.expiredVacation, "expired-vacation", 0, "expired vacation periods owed")
	f.IntVar(&opts.dependents, "dependents", 0, "dependents for income tax")
	f.BoolVar(&opts.asJSON, "json", false, "print the full JSON response instead of the breakdown")
	f.StringVar(&opts.csvPath, "csv", "", "also write the CSV sheet to this file")
	f.StringVar(&opts.pdfPath, "pdf", "", "also write the PDF summary to this file")
	_ = cmd.MarkFlagRequired("salary")
	_ = cmd.MarkFlagRequired("hire")
	_ = cmd.MarkFlagRequired("termination")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func (a *app) runCalc(cmd *cobra.Command, opts *calcOptions) error {
	salary, err := export.ParseBRL(opts.salary)
	if err != nil {
		return err
	}

	req := &model.CalculationRequest{
		Case: model.CaseInput{
			GrossSalary:            salary,
			HireDate:               opts.hireDate,
			TerminationDate:        opts.terminationDate,
			DaysWorkedInFinalMonth: opts.daysWorked,
			TerminationType:        opts.terminationType,
			NoticeType:             opts.noticeType,
			ExpiredVacationPeriods: opts.expiredVacation,
			Dependents:             opts.dependents,
		},
	}

	resp := a.engine().Process(req)
	out := cmd.OutOrStdout()

	if opts.asJSON {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		if _, err := fmt.Fprintln(out, string(data)); err != nil {
			return err
		}
	} else {
		printMessages(cmd.ErrOrStderr(), resp.CalculationResult.Messages)
	}

	result := resp.CalculationResult.Settlement
	if result == nil {
		return errRejected
	}

	if !opts.asJSON {
		if err := export.WriteText(out, *result); err != nil {
			return err
		}
	}

	if opts.csvPath != "" {
		if err := writeFile(opts.csvPath, *result, export.WriteCSV); err != nil {
			return err
		}
		a.logger.Debug("csv written", zap.String("path", opts.csvPath))
	}
	if opts.pdfPath != "" {
		if err := writeFile(opts.pdfPath, *result, export.WritePDF); err != nil {
			return err
		}
		a.logger.Debug("pdf written", zap.String("path", opts.pdfPath))
	}

	return nil
}

func printMessages(w io.Writer, msgs []model.CalculationMessage) {
	for _, m := range msgs {
		if m.Field != "" {
			fmt.Fprintf(w, "%s %s (%s): %s\n", m.Level, m.Code, m.Field, m.Message)
			continue
		}
		fmt.Fprintf(w, "%s %s: %s\n", m.Level, m.Code, m.Message)
	}
}

func writeFile(path string, r model.SettlementResult, write func(io.Writer, model.SettlementResult) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return write(f, r)
}
