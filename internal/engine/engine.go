package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"severance-engine/internal/model"
	"severance-engine/internal/settlement"
)

type Engine struct {
	settler *settlement.Settler
	log     *zap.Logger
}

func New(settler *settlement.Settler, log *zap.Logger) *Engine {
	if settler == nil {
		settler = settlement.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{settler: settler, log: log}
}

// Process runs one settlement request. Validation problems never produce an
// error: they are reported as CRITICAL messages with a FAILURE outcome and no
// settlement.
func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	addMessage := func(msg model.CalculationMessage) {
		msg.ID = len(allMessages)
		allMessages = append(allMessages, msg)
	}

	outcome := model.OutcomeSuccess
	var result *model.SettlementResult

	c, dateMsgs := toCase(req.Case)
	for _, m := range dateMsgs {
		addMessage(m)
	}

	for _, w := range warnings(c) {
		addMessage(w)
	}

	if len(dateMsgs) > 0 {
		for _, m := range validationMessages(e.settler.ValidateFields(c)) {
			addMessage(m)
		}
	} else {
		settled, err := e.settler.Settle(c)
		var verrs model.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			for _, m := range validationMessages(verrs) {
				addMessage(m)
			}
		case err != nil:
			addMessage(model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    "CALCULATION_FAILED",
				Message: err.Error(),
			})
		default:
			rounded := settled.Rounded()
			result = &rounded
		}
	}

	if result == nil {
		outcome = model.OutcomeFailure
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	calculationID := uuid.New().String()
	e.log.Info("settlement calculated",
		zap.String("calculation_id", calculationID),
		zap.String("tenant_id", req.TenantID),
		zap.String("outcome", outcome),
		zap.Int("messages", len(allMessages)),
		zap.Duration("duration", elapsed),
	)

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          calculationID,
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:   allMessages,
			Settlement: result,
		},
	}
}

func toCase(in model.CaseInput) (model.EmploymentCase, []model.CalculationMessage) {
	var msgs []model.CalculationMessage

	hire, ok := parseDate(in.HireDate)
	if !ok {
		msgs = append(msgs, invalidDate("hire_date", in.HireDate))
	}
	termination, ok := parseDate(in.TerminationDate)
	if !ok {
		msgs = append(msgs, invalidDate("termination_date", in.TerminationDate))
	}

	return model.EmploymentCase{
		GrossSalary:            in.GrossSalary,
		HireDate:               hire,
		TerminationDate:        termination,
		DaysWorkedInFinalMonth: in.DaysWorkedInFinalMonth,
		TerminationType:        model.TerminationType(in.TerminationType),
		NoticeType:             model.NoticeType(in.NoticeType),
		ExpiredVacationPeriods: in.ExpiredVacationPeriods,
		Dependents:             in.Dependents,
	}, msgs
}

func validationMessages(errs model.ValidationErrors) []model.CalculationMessage {
	msgs := make([]model.CalculationMessage, 0, len(errs))
	for _, ve := range errs {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    ve.Code,
			Field:   ve.Field,
			Message: ve.Reason,
		})
	}
	return msgs
}

func invalidDate(field, value string) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    "INVALID_DATE",
		Field:   field,
		Message: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", value),
	}
}

func warnings(c model.EmploymentCase) []model.CalculationMessage {
	if c.NoticeType == model.NoticeNone || !c.TerminationType.Valid() || settlement.NoticeApplies(c.TerminationType) {
		return nil
	}
	return []model.CalculationMessage{{
		Level:   model.LevelWarning,
		Code:    "NOTICE_NOT_APPLICABLE",
		Field:   "notice_type",
		Message: fmt.Sprintf("notice type %q has no effect for termination type %q", c.NoticeType, c.TerminationType),
	}}
}
