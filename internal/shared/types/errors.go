package types

import "errors"

var (
	ErrInvalidHorizon          = errors.New("horizon must be zero or more months")
	ErrHorizonTooLong          = errors.New("horizon exceeds the maximum number of months")
	ErrInvalidStartMonth       = errors.New("start month must be between 1 and 12")
	ErrInvalidStartDate        = errors.New("start date must use the YYYY-MM layout")
	ErrInvalidUnitsPerDisplay  = errors.New("units per display must be greater than zero")
	ErrNegativeInterval        = errors.New("interval must not be negative")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	ErrUnsupportedReportType   = errors.New("unsupported report type")
	ErrCacheMiss               = errors.New("projection not found in cache")
)
