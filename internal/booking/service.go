package booking

import (
	"context"
	"errors"
	"time"

	"gymcore/internal/logger"
	"gymcore/internal/member"
	"gymcore/internal/metrics"
	"gymcore/internal/schedule"
	"gymcore/internal/user"
)

var ErrMemberInactive = errors.New("member is not active")

const referenceAttempts = 3

// Mailer is the slice of the email service the booking flow needs.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, to, name, className string, startTime time.Time, reference string) error
}

type Service interface {
	BookClass(ctx context.Context, memberID, scheduleID int) (*Booking, error)
	BookForUser(ctx context.Context, userID, scheduleID int) (*Booking, error)
	GetBookingsForUser(ctx context.Context, userID int) ([]BookingWithDetails, error)
	GetUpcomingForUser(ctx context.Context, userID int) ([]BookingWithDetails, error)
	CancelBooking(ctx context.Context, bookingID int, reason string) (*Booking, error)
	MarkAttended(ctx context.Context, bookingID int) (*Booking, error)
	GetBooking(ctx context.Context, bookingID int) (*Booking, error)
	GetMemberBookings(ctx context.Context, memberID int) ([]BookingWithDetails, error)
	GetUpcomingBookings(ctx context.Context, memberID int) ([]BookingWithDetails, error)
	GetScheduleRoster(ctx context.Context, scheduleID int) ([]BookingWithDetails, error)
	ListAll(ctx context.Context) ([]BookingWithDetails, error)
}

type service struct {
	repo      Repository
	members   member.Repository
	schedules schedule.Repository
	users     user.Repository
	mailer    Mailer
	now       func() time.Time
}

func NewService(repo Repository, members member.Repository, schedules schedule.Repository, users user.Repository, mailer Mailer) Service {
	return &service{
		repo:      repo,
		members:   members,
		schedules: schedules,
		users:     users,
		mailer:    mailer,
		now:       time.Now,
	}
}

func (s *service) BookClass(ctx context.Context, memberID, scheduleID int) (*Booking, error) {
	m, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !m.Active {
		return nil, ErrMemberInactive
	}

	sched, err := s.schedules.GetScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !sched.Active {
		return nil, ErrScheduleInactive
	}
	if !sched.StartTime.After(s.now()) {
		return nil, ErrSchedulePast
	}

	class, err := s.schedules.GetClassByID(ctx, sched.ClassID)
	if err != nil {
		return nil, err
	}

	var b *Booking
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		b, err = s.repo.CreateConfirmed(ctx, memberID, scheduleID, GenerateReference(), &class.Price, s.now())
		if !errors.Is(err, ErrDuplicateReference) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking()
	logger.Info("class booked",
		"booking_id", b.ID, "member_id", memberID, "schedule_id", scheduleID, "reference", b.Reference)

	s.sendConfirmation(ctx, m, class.Name, sched.StartTime, b.Reference)
	return b, nil
}

func (s *service) sendConfirmation(ctx context.Context, m *member.Member, className string, startTime time.Time, reference string) {
	if s.mailer == nil {
		return
	}
	u, err := s.users.FindByID(ctx, m.UserID)
	if err != nil {
		logger.Warn("skipping booking confirmation, user lookup failed", "user_id", m.UserID, "error", err)
		return
	}
	if err := s.mailer.SendBookingConfirmation(ctx, u.Email, m.FullName, className, startTime, reference); err != nil {
		logger.Warn("failed to queue booking confirmation", "email", u.Email, "error", err)
	}
}

// BookForUser resolves the member profile behind an authenticated user
// and books on their behalf.
func (s *service) BookForUser(ctx context.Context, userID, scheduleID int) (*Booking, error) {
	m, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.BookClass(ctx, m.ID, scheduleID)
}

func (s *service) GetBookingsForUser(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	m, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByMember(ctx, m.ID)
}

func (s *service) GetUpcomingForUser(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	m, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetUpcomingByMember(ctx, m.ID, s.now())
}

func (s *service) CancelBooking(ctx context.Context, bookingID int, reason string) (*Booking, error) {
	b, err := s.repo.Cancel(ctx, bookingID, reason, s.now())
	if err != nil {
		return nil, err
	}
	metrics.RecordCancellation()
	logger.Info("booking cancelled", "booking_id", b.ID, "schedule_id", b.ScheduleID, "reason", reason)
	return b, nil
}

func (s *service) MarkAttended(ctx context.Context, bookingID int) (*Booking, error) {
	b, err := s.repo.MarkAttended(ctx, bookingID, s.now())
	if err != nil {
		return nil, err
	}
	metrics.RecordAttendance()
	logger.Info("attendance recorded", "booking_id", b.ID, "member_id", b.MemberID)
	return b, nil
}

func (s *service) GetBooking(ctx context.Context, bookingID int) (*Booking, error) {
	return s.repo.GetByID(ctx, bookingID)
}

func (s *service) GetMemberBookings(ctx context.Context, memberID int) ([]BookingWithDetails, error) {
	return s.repo.GetByMember(ctx, memberID)
}

func (s *service) GetUpcomingBookings(ctx context.Context, memberID int) ([]BookingWithDetails, error) {
	return s.repo.GetUpcomingByMember(ctx, memberID, s.now())
}

func (s *service) GetScheduleRoster(ctx context.Context, scheduleID int) ([]BookingWithDetails, error) {
	return s.repo.GetConfirmedBySchedule(ctx, scheduleID)
}

func (s *service) ListAll(ctx context.Context) ([]BookingWithDetails, error) {
	return s.repo.GetAll(ctx)
}
