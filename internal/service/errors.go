package service

import "errors"

var (
	// ErrNotFound возвращается репозиториями, когда запись не найдена
	ErrNotFound = errors.New("not found")
	// ErrInvalidZone - геозона не задает ни круг, ни полигон
	ErrInvalidZone = errors.New("zone must define a positive radius or a polygon of at least 3 points")
	// ErrFIRNumberTaken - номер FIR уже занят, нужно сгенерировать новый
	ErrFIRNumberTaken = errors.New("fir number already taken")
	// ErrOpenReportExists - у туриста уже есть открытый отчет (нарушение уникального индекса)
	ErrOpenReportExists = errors.New("tourist already has an open report")
	// ErrPassInProgress - другой проход обнаружения еще выполняется
	ErrPassInProgress = errors.New("evaluation pass already in progress")
)
