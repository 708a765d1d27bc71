package payroll

import "errors"

var (
	ErrBatchNotFound     = errors.New("payroll batch not found")
	ErrRatesNotFound     = errors.New("rate configuration not found")
	ErrCorruptAttendance = errors.New("corrupt attendance record")
	ErrInvalidPeriod     = errors.New("invalid payroll period")
)
