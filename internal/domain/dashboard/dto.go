package dashboard

// ========== STATS ==========

// StatsResponse is the summary card block on the dashboard home page.
type StatsResponse struct {
	Date             string           `json:"date"` // Format: "YYYY-MM-DD"
	TodaySales       string           `json:"todaySales"`
	TodaySalesAmount float64          `json:"todaySalesAmount"`
	TransactionCount int64            `json:"transactionCount"`
	Attendance       AttendanceStat   `json:"attendance"`
	SalesTarget      SalesTargetStat  `json:"salesTarget"`
	WorkCompleted    WorkCompleteStat `json:"workCompleted"`
}

// AttendanceStat counts users with a check-in today against all users
type AttendanceStat struct {
	Present int64   `json:"present"`
	Total   int64   `json:"total"`
	Rate    float64 `json:"rate"` // percent, 0-100
}

type SalesTargetStat struct {
	Target    float64 `json:"target"`
	Formatted string  `json:"formatted"`
	Achieved  float64 `json:"achieved"`
	Progress  float64 `json:"progress"` // percent, capped at 100
}

type WorkCompleteStat struct {
	Completed int64   `json:"completed"`
	Total     int64   `json:"total"`
	Rate      float64 `json:"rate"`
}

// ========== ACTIVITIES ==========

const (
	ActivityAttendance = "attendance"
	ActivitySale       = "sale"
	ActivityReport     = "report"
)

// ActivityItem is one entry of the caller's recent activity feed
type ActivityItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	Timestamp   string `json:"timestamp"`
}

type ActivitiesResponse struct {
	Activities []ActivityItem `json:"activities"`
	TotalCount int64          `json:"totalCount"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}
