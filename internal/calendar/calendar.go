package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/attendance"
	"github.com/2beens/fitlog/internal/sessions"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/weighins"
	"github.com/2beens/fitlog/pkg"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=$GOFILE -destination=calendar_mocks_test.go -package=calendar_test

type sessionsLister interface {
	List(ctx context.Context, userID primitive.ObjectID, from time.Time, to time.Time) ([]sessions.Session, error)
}

type attendanceLister interface {
	List(ctx context.Context, userID primitive.ObjectID, params attendance.ListParams) ([]attendance.Attendance, error)
}

type weighInsLister interface {
	List(ctx context.Context, userID primitive.ObjectID, params weighins.ListParams) ([]weighins.WeighIn, error)
}

const (
	DayStatusNone    = ""
	DayStatusPlanned = "planned"
	DayStatusCheckIn = "checked-in"
	DayStatusMadeUp  = "made-up"
	DayStatusMissed  = "missed"
)

const (
	monthLayout = "2006-01"
	daysInWeek  = 7
)

type Day struct {
	Date            time.Time         `json:"date"`
	InMonth         bool              `json:"inMonth"`
	Today           bool              `json:"today"`
	Status          string            `json:"status"`
	Session         *sessions.Session `json:"session,omitempty"`
	AttendanceCount int               `json:"attendanceCount"`
	WeighIn         *weighins.WeighIn `json:"weighIn,omitempty"`
}

type Stats struct {
	Sessions   int `json:"sessions"`
	CheckedIn  int `json:"checkedIn"`
	MadeUp     int `json:"madeUp"`
	Missed     int `json:"missed"`
	Attendance int `json:"attendance"`
}

// Month is a Monday to Sunday grid covering a whole calendar month.
type Month struct {
	Month    string  `json:"month"`
	Previous string  `json:"previous"`
	Next     string  `json:"next"`
	Weeks    [][]Day `json:"weeks"`
	Stats    Stats   `json:"stats"`
}

type Service struct {
	sessions   sessionsLister
	attendance attendanceLister
	weighIns   weighInsLister
	now        func() time.Time
}

func NewService(sessionsRepo sessionsLister, attendanceRepo attendanceLister, weighInsRepo weighInsLister) *Service {
	return &Service{
		sessions:   sessionsRepo,
		attendance: attendanceRepo,
		weighIns:   weighInsRepo,
		now:        time.Now,
	}
}

// Month builds the grid of the month starting at monthStart (UTC midnight of
// the first day), filled with the user's sessions, attendance and weigh-ins.
func (s *Service) Month(ctx context.Context, userID primitive.ObjectID, monthStart time.Time) (_ *Month, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.month")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	gridStart, gridEnd := gridBounds(monthStart)

	monthSessions, err := s.sessions.List(ctx, userID, gridStart, gridEnd)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	monthAttendance, err := s.attendance.List(ctx, userID, attendance.ListParams{From: &gridStart, To: &gridEnd})
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	monthWeighIns, err := s.weighIns.List(ctx, userID, weighins.ListParams{From: &gridStart, To: &gridEnd})
	if err != nil {
		return nil, fmt.Errorf("list weigh-ins: %w", err)
	}

	return buildMonth(monthStart, pkg.TruncateToDay(s.now()), monthSessions, monthAttendance, monthWeighIns), nil
}

// gridBounds returns the Monday on or before the first day of the month, and
// the day after the Sunday on or after its last day.
func gridBounds(monthStart time.Time) (time.Time, time.Time) {
	// time.Weekday starts on Sunday
	offset := (int(monthStart.Weekday()) + 6) % daysInWeek
	start := monthStart.AddDate(0, 0, -offset)

	monthEnd := monthStart.AddDate(0, 1, 0)
	end := monthEnd
	if rest := (int(monthEnd.Weekday()) + 6) % daysInWeek; rest != 0 {
		end = monthEnd.AddDate(0, 0, daysInWeek-rest)
	}
	return start, end
}

func buildMonth(
	monthStart, today time.Time,
	monthSessions []sessions.Session,
	monthAttendance []attendance.Attendance,
	monthWeighIns []weighins.WeighIn,
) *Month {
	sessionByDay := make(map[time.Time]*sessions.Session, len(monthSessions))
	for i := range monthSessions {
		sessionByDay[pkg.TruncateToDay(monthSessions[i].Date)] = &monthSessions[i]
	}
	attendanceByDay := make(map[time.Time]int)
	for _, a := range monthAttendance {
		attendanceByDay[pkg.TruncateToDay(a.Timestamp)]++
	}
	// weigh-ins come newest first, keep the first one seen per day
	weighInByDay := make(map[time.Time]*weighins.WeighIn)
	for i := range monthWeighIns {
		day := pkg.TruncateToDay(monthWeighIns[i].Date)
		if _, ok := weighInByDay[day]; !ok {
			weighInByDay[day] = &monthWeighIns[i]
		}
	}

	month := &Month{
		Month:    monthStart.Format(monthLayout),
		Previous: monthStart.AddDate(0, -1, 0).Format(monthLayout),
		Next:     monthStart.AddDate(0, 1, 0).Format(monthLayout),
	}

	gridStart, gridEnd := gridBounds(monthStart)
	var week []Day
	for day := gridStart; day.Before(gridEnd); day = day.AddDate(0, 0, 1) {
		d := Day{
			Date:            day,
			InMonth:         day.Month() == monthStart.Month(),
			Today:           day.Equal(today),
			Session:         sessionByDay[day],
			AttendanceCount: attendanceByDay[day],
			WeighIn:         weighInByDay[day],
		}
		d.Status = dayStatus(d.Session, day, today)

		if d.InMonth {
			month.Stats.Attendance += d.AttendanceCount
			if d.Session != nil {
				month.Stats.Sessions++
			}
			switch d.Status {
			case DayStatusCheckIn:
				month.Stats.CheckedIn++
			case DayStatusMadeUp:
				month.Stats.MadeUp++
			case DayStatusMissed:
				month.Stats.Missed++
			}
		}

		week = append(week, d)
		if len(week) == daysInWeek {
			month.Weeks = append(month.Weeks, week)
			week = nil
		}
	}

	return month
}

func dayStatus(session *sessions.Session, day, today time.Time) string {
	switch {
	case session == nil:
		return DayStatusNone
	case session.CheckIn:
		return DayStatusCheckIn
	case session.MadeUpBySessionID != nil:
		return DayStatusMadeUp
	case day.Before(today):
		return DayStatusMissed
	default:
		return DayStatusPlanned
	}
}
