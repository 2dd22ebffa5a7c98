package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TerminationType string

const (
	TerminationWithoutCause    TerminationType = "semJustaCausa"
	TerminationMutualAgreement TerminationType = "acordo"
	TerminationResignation     TerminationType = "pedidoDemissao"
	TerminationForCause        TerminationType = "justaCausa"
)

// TerminationTypes lists every accepted termination type in display order.
var TerminationTypes = []TerminationType{
	TerminationWithoutCause,
	TerminationMutualAgreement,
	TerminationResignation,
	TerminationForCause,
}

func (t TerminationType) Valid() bool {
	for _, known := range TerminationTypes {
		if t == known {
			return true
		}
	}
	return false
}

type NoticeType string

const (
	NoticeNone        NoticeType = ""
	NoticeIndemnified NoticeType = "indenizado"
	NoticeWorked      NoticeType = "trabalhado"
)

func (n NoticeType) Valid() bool {
	switch n {
	case NoticeNone, NoticeIndemnified, NoticeWorked:
		return true
	}
	return false
}

// EmploymentCase is the input of a single settlement. Dates carry no time of
// day; only year, month and day are read.
type EmploymentCase struct {
	GrossSalary            decimal.Decimal
	HireDate               time.Time
	TerminationDate        time.Time
	DaysWorkedInFinalMonth int
	TerminationType        TerminationType
	NoticeType             NoticeType
	ExpiredVacationPeriods int
	Dependents             int
}
