package odk

import "time"

// Submission is one raw survey instance as returned by the ODK Central OData
// feed. Data holds the full nested payload untouched; the staging mappers pick
// it apart with explicit field paths.
type Submission struct {
	InstanceID  string
	SubmittedAt time.Time
	ReviewState string
	Data        map[string]interface{}
}

// Window bounds the submission-date filter of one fetch cycle. The scheduler
// re-scans overlapping windows on purpose — every downstream step is
// idempotent, so overlap is the cheap way to never miss a late submission.
type Window struct {
	From time.Time
	To   time.Time
}

// DefaultWindow covers the previous day through now.
func DefaultWindow(now time.Time) Window {
	return Window{From: now.AddDate(0, 0, -1), To: now}
}
