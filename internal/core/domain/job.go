package domain

import "time"

type Schedule string

const (
	ScheduleFullTime Schedule = "Full-time"
	SchedulePartTime Schedule = "Part-time"
	ScheduleFlexible Schedule = "Flexible"
)

// Schedules lists the accepted schedule values in form order.
var Schedules = []Schedule{ScheduleFullTime, SchedulePartTime, ScheduleFlexible}

func ValidSchedule(s string) bool {
	for _, schedule := range Schedules {
		if string(schedule) == s {
			return true
		}
	}
	return false
}

type Job struct {
	ID         int64     `db:"id"`
	EmployerID int64     `db:"employer_id"`
	Title      string    `db:"title"`
	Salary     string    `db:"salary"`
	Location   string    `db:"location"`
	Schedule   Schedule  `db:"schedule"`
	URL        string    `db:"url"`
	Featured   bool      `db:"featured"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`

	// Populated by eager-loading queries, never lazily.
	Employer *Employer `db:"-"`
	Tags     []*Tag    `db:"-"`
}

func NewJob(employerID int64, title, salary, location string, schedule Schedule, url string, featured bool) *Job {
	now := time.Now()
	return &Job{
		EmployerID: employerID,
		Title:      title,
		Salary:     salary,
		Location:   location,
		Schedule:   schedule,
		URL:        url,
		Featured:   featured,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
