package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=$GOFILE -destination=sessions_mocks_test.go -package=sessions_test

type sessionsRepo interface {
	Create(ctx context.Context, session *Session) (*Session, error)
	List(ctx context.Context, userID primitive.ObjectID, from time.Time, to time.Time) ([]Session, error)
	Get(ctx context.Context, userID primitive.ObjectID, id primitive.ObjectID) (*Session, error)
	SetCheckIn(ctx context.Context, userID primitive.ObjectID, id primitive.ObjectID, checkIn bool) (*Session, error)
	SetMadeUpBy(ctx context.Context, userID primitive.ObjectID, id primitive.ObjectID, madeUpBy *primitive.ObjectID) (*Session, error)
	Delete(ctx context.Context, userID primitive.ObjectID, id primitive.ObjectID) error
	UnlinkMadeUpBy(ctx context.Context, userID primitive.ObjectID, madeUpBy primitive.ObjectID) (int64, error)
}

type Service struct {
	repo sessionsRepo
}

func NewService(repo sessionsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, userID primitive.ObjectID, date time.Time, note string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Create(ctx, &Session{
		UserID:    userID,
		Date:      pkg.TruncateToDay(date),
		Note:      note,
		CreatedAt: timeNow().UTC(),
	})
}

// ListMonth returns the user's sessions of the month starting at monthStart.
func (s *Service) ListMonth(ctx context.Context, userID primitive.ObjectID, monthStart time.Time) ([]Session, error) {
	return s.repo.List(ctx, userID, monthStart, monthStart.AddDate(0, 1, 0))
}

func (s *Service) SetCheckIn(ctx context.Context, userID, id primitive.ObjectID, checkIn bool) (*Session, error) {
	return s.repo.SetCheckIn(ctx, userID, id, checkIn)
}

// LinkMakeUp marks session id as made up by session madeUpBy. Both must
// exist for the user, and a session cannot make up for itself.
// The make-up session is checked again after the write: Delete removes a
// session before unlinking its referrers, so a delete racing with the link
// is seen by one of the two, and no link is left dangling.
func (s *Service) LinkMakeUp(ctx context.Context, userID, id, madeUpBy primitive.ObjectID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.linkMakeUp")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if id == madeUpBy {
		return nil, ErrSelfMakeUp
	}
	if _, err := s.repo.Get(ctx, userID, madeUpBy); err != nil {
		return nil, fmt.Errorf("get make-up session: %w", err)
	}

	session, err := s.repo.SetMadeUpBy(ctx, userID, id, &madeUpBy)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Get(ctx, userID, madeUpBy); err != nil {
		if !IsNotFound(err) {
			return nil, fmt.Errorf("recheck make-up session: %w", err)
		}
		// deleted meanwhile, undo only the links to it
		if _, unlinkErr := s.repo.UnlinkMadeUpBy(ctx, userID, madeUpBy); unlinkErr != nil {
			log.Errorf("make-up session [%s] deleted while linking, unlink: %s", madeUpBy.Hex(), unlinkErr)
		}
		return nil, fmt.Errorf("make-up session deleted while linking: %w", err)
	}

	return session, nil
}

func (s *Service) UnlinkMakeUp(ctx context.Context, userID, id primitive.ObjectID) (*Session, error) {
	return s.repo.SetMadeUpBy(ctx, userID, id, nil)
}

// Delete removes the session and the make-up links pointing to it, so no
// link is left dangling.
func (s *Service) Delete(ctx context.Context, userID, id primitive.ObjectID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	unlinked, err := s.repo.UnlinkMadeUpBy(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("session deleted, unlink referrers: %w", err)
	}
	if unlinked > 0 {
		log.Debugf("session [%s] deleted, unlinked %d make-up references", id.Hex(), unlinked)
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}
