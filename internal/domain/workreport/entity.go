package workreport

import "time"

type Status string

const (
	StatusDraft        Status = "draft"
	StatusSubmitted    Status = "submitted"
	StatusInProgress   Status = "in_progress"
	StatusReviewNeeded Status = "review_needed"
	StatusCompleted    Status = "completed"
)

var Statuses = []string{
	string(StatusDraft),
	string(StatusSubmitted),
	string(StatusInProgress),
	string(StatusReviewNeeded),
	string(StatusCompleted),
}

type WorkReport struct {
	ID         string
	UserID     string
	Title      string
	ReportType string
	Department string
	Tasks      string
	Outcomes   string
	Challenges *string
	NextSteps  *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkReportUpdate is a partial update; nil fields are left untouched.
type WorkReportUpdate struct {
	Title      *string
	ReportType *string
	Department *string
	Tasks      *string
	Outcomes   *string
	Challenges *string
	NextSteps  *string
	Status     *Status
}

// Apply merges u into a copy of r.
func (r WorkReport) Apply(u WorkReportUpdate) WorkReport {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.ReportType != nil {
		r.ReportType = *u.ReportType
	}
	if u.Department != nil {
		r.Department = *u.Department
	}
	if u.Tasks != nil {
		r.Tasks = *u.Tasks
	}
	if u.Outcomes != nil {
		r.Outcomes = *u.Outcomes
	}
	if u.Challenges != nil {
		v := *u.Challenges
		r.Challenges = &v
	}
	if u.NextSteps != nil {
		v := *u.NextSteps
		r.NextSteps = &v
	}
	if u.Status != nil {
		r.Status = *u.Status
	}
	return r
}

// StatusCounts is the number of reports per status.
type StatusCounts map[Status]int64

func (c StatusCounts) Total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}
