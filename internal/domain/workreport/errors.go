package workreport

import "errors"

var (
	ErrWorkReportNotFound = errors.New("work report not found")
	ErrNotReportOwner     = errors.New("you can only access your own work reports")
)
