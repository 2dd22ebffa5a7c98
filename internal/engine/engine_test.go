package engine

import (
	"testing"

	json "github.com/goccy/go-json"

	"severance-engine/internal/model"
)

func decodeRequest(t *testing.T, body string) *model.CalculationRequest {
	t.Helper()
	var req model.CalculationRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("invalid request fixture: %v", err)
	}
	return &req
}

func TestProcessWithoutCause(t *testing.T) {
	req := decodeRequest(t, `{
		"tenant_id": "test-tenant",
		"case": {
			"gross_salary": 3000.00,
			"hire_date": "2022-01-10",
			"termination_date": "2024-06-20",
			"days_worked_final_month": 20,
			"termination_type": "semJustaCausa",
			"notice_type": "indenizado",
			"expired_vacation_periods": 0,
			"dependents": 0
		}
	}`)

	resp := New(nil, nil).Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	if resp.CalculationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.CalculationMetadata.TenantID)
	}

	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("expected a calculation id")
	}

	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}

	s := resp.CalculationResult.Settlement
	if s == nil {
		t.Fatal("expected a settlement")
	}

	if s.ServiceMonths != 29 {
		t.Fatalf("expected 29 service months, got %d", s.ServiceMonths)
	}

	if s.NoticeDays != 36 {
		t.Fatalf("expected 36 notice days, got %d", s.NoticeDays)
	}

	if got := s.FundBalance.StringFixed(2); got != "6960.00" {
		t.Fatalf("expected fund balance 6960.00, got %s", got)
	}

	if got := s.FundPenalty.StringFixed(2); got != "2784.00" {
		t.Fatalf("expected fund penalty 2784.00, got %s", got)
	}

	// Amounts leave the engine rounded to centavos.
	if got := s.NetSalaryNotice.String(); got != "4525.64" {
		t.Fatalf("expected rounded net salary+notice 4525.64, got %s", got)
	}
}

func TestProcessRejectsExpiredVacationBeforeFullYear(t *testing.T) {
	req := decodeRequest(t, `{
		"tenant_id": "test-tenant",
		"case": {
			"gross_salary": "2500",
			"hire_date": "2024-01-02",
			"termination_date": "2024-07-20",
			"days_worked_final_month": 20,
			"termination_type": "pedidoDemissao",
			"expired_vacation_periods": 1
		}
	}`)

	resp := New(nil, nil).Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	if resp.CalculationResult.Settlement != nil {
		t.Fatal("expected no settlement on failure")
	}

	if len(resp.CalculationResult.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.CalculationResult.Messages))
	}

	msg := resp.CalculationResult.Messages[0]
	if msg.Code != model.CodeExpiredVacationTooSoon {
		t.Fatalf("expected %s, got %s", model.CodeExpiredVacationTooSoon, msg.Code)
	}
	if msg.Level != model.LevelCritical {
		t.Fatalf("expected CRITICAL, got %s", msg.Level)
	}
}

func TestProcessInvalidDates(t *testing.T) {
	req := decodeRequest(t, `{
		"case": {
			"gross_salary": 1000,
			"hire_date": "2024-02-30",
			"termination_date": "20-06-2024",
			"termination_type": "semJustaCausa"
		}
	}`)

	resp := New(nil, nil).Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Field != "hire_date" || msgs[1].Field != "termination_date" {
		t.Fatalf("unexpected fields %q, %q", msgs[0].Field, msgs[1].Field)
	}
	if msgs[0].ID != 0 || msgs[1].ID != 1 {
		t.Fatalf("message ids should be sequential, got %d, %d", msgs[0].ID, msgs[1].ID)
	}
}

func TestProcessInvalidDateStillReportsFieldErrors(t *testing.T) {
	req := decodeRequest(t, `{
		"case": {
			"gross_salary": 0,
			"hire_date": "2024-13-01",
			"termination_date": "2024-06-20",
			"days_worked_final_month": 40,
			"termination_type": "bogus"
		}
	}`)

	resp := New(nil, nil).Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	want := []string{"INVALID_DATE", model.CodeInvalidSalary, model.CodeInvalidTerminationType, model.CodeInvalidDaysWorked}
	msgs := resp.CalculationResult.Messages
	if len(msgs) != len(want) {
		t.Fatalf("expected %d messages, got %d: %+v", len(want), len(msgs), msgs)
	}
	for i, code := range want {
		if msgs[i].Code != code {
			t.Fatalf("message %d: expected %s, got %s", i, code, msgs[i].Code)
		}
		if msgs[i].Level != model.LevelCritical {
			t.Fatalf("message %d: expected CRITICAL, got %s", i, msgs[i].Level)
		}
	}
}

func TestProcessWarnsOnIneffectiveNotice(t *testing.T) {
	req := decodeRequest(t, `{
		"case": {
			"gross_salary": 2000,
			"hire_date": "2020-03-01",
			"termination_date": "2024-03-10",
			"days_worked_final_month": 10,
			"termination_type": "justaCausa",
			"notice_type": "indenizado"
		}
	}`)

	resp := New(nil, nil).Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	msgs := resp.CalculationResult.Messages
	if len(msgs) != 1 || msgs[0].Code != "NOTICE_NOT_APPLICABLE" || msgs[0].Level != model.LevelWarning {
		t.Fatalf("expected a single NOTICE_NOT_APPLICABLE warning, got %+v", msgs)
	}

	if !resp.CalculationResult.Settlement.NoticePay.IsZero() {
		t.Fatalf("expected no notice pay, got %s", resp.CalculationResult.Settlement.NoticePay)
	}
}

func TestParseDate(t *testing.T) {
	valid := []string{"2024-02-29", "1999-12-31", "2024-01-01"}
	for _, s := range valid {
		if _, ok := parseDate(s); !ok {
			t.Errorf("expected %s to parse", s)
		}
	}

	invalid := []string{"", "2023-02-29", "2024-13-01", "2024-00-10", "2024-1-01", "abcd-ef-gh", "2024/01/01"}
	for _, s := range invalid {
		if _, ok := parseDate(s); ok {
			t.Errorf("expected %s to be rejected", s)
		}
	}
}
