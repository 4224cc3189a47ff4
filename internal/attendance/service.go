package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=$GOFILE -destination=attendance_mocks_test.go -package=attendance_test

type attendanceRepo interface {
	Add(ctx context.Context, entry *Attendance) (*Attendance, error)
	List(ctx context.Context, userID primitive.ObjectID, params ListParams) ([]Attendance, error)
	DeleteAllForUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type sessionsResetter interface {
	ResetCheckIns(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type Service struct {
	repo           attendanceRepo
	sessions       sessionsResetter
	metricsManager *metrics.Manager
}

func NewService(repo attendanceRepo, sessions sessionsResetter, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		sessions:       sessions,
		metricsManager: metricsManager,
	}
}

// Add records an attendance, now if timestamp is nil.
func (s *Service) Add(ctx context.Context, userID primitive.ObjectID, timestamp *time.Time, note string) (*Attendance, error) {
	ts := timeNow().UTC()
	if timestamp != nil {
		ts = timestamp.UTC()
	}
	return s.repo.Add(ctx, &Attendance{
		UserID:    userID,
		Timestamp: ts,
		Note:      note,
	})
}

func (s *Service) List(ctx context.Context, userID primitive.ObjectID, params ListParams) ([]Attendance, error) {
	return s.repo.List(ctx, userID, params)
}

// Reset deletes all the user's attendance, then clears check-ins and make-up
// links of all the user's sessions. The two steps are not atomic: when the
// second one fails the attendance is already gone.
func (s *Service) Reset(ctx context.Context, userID primitive.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.attendance.reset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := s.repo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}

	reset, err := s.sessions.ResetCheckIns(ctx, userID)
	if err != nil {
		log.Errorf("attendance reset [%s]: %d attendance deleted, but sessions not reset: %s", userID.Hex(), deleted, err)
		return fmt.Errorf("reset sessions: %w", err)
	}

	log.Debugf("attendance reset [%s]: %d attendance deleted, %d sessions reset", userID.Hex(), deleted, reset)
	if s.metricsManager != nil {
		s.metricsManager.CounterAttendanceResets.Inc()
	}
	return nil
}
