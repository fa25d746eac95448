package models

import "time"

// GamblerStatus is the subscription status of a gambler
type GamblerStatus string

const (
	GamblerStatusActive   GamblerStatus = "AC"
	GamblerStatusDisabled GamblerStatus = "DI"
	GamblerStatusExpired  GamblerStatus = "EX"
)

// Gambler is the betting profile of a user. There is at most one per user.
type Gambler struct {
	UserID           string        `json:"user_id"`
	Points           int64         `json:"points"`
	DateOfBirth      *time.Time    `json:"date_of_birth,omitempty"`
	Status           GamblerStatus `json:"status"`
	SubscriptionDate time.Time     `json:"subscription_date"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Date truncates t to midnight UTC of its calendar day
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds months to a calendar date, clamping to the last day of
// the target month (Jan 31 + 1 month is Feb 28/29, not Mar 3).
func AddMonths(date time.Time, months int) time.Time {
	date = Date(date)
	first := time.Date(date.Year(), date.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	day := date.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
