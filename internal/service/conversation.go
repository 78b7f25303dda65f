package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/metrics"
	"github.com/dh139/venom-blood-test-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultSessionTTL = 15 * time.Minute

	minAge = 0
	maxAge = 120
)

var dateLiteral = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

type ConversationConfig struct {
	SessionTTL time.Duration
	Location   *time.Location
	Now        func() time.Time
}

// ConversationService drives the per-user booking dialogue: it collects the booking
// fields step by step and hands the finished draft to the commit sequence.
type ConversationService struct {
	repo     ports.BookingRepo
	sessions ports.SessionStore
	slots    *SlotService
	notifier ports.BookingNotifier
	tickets  ports.TicketRenderer
	metrics  *metrics.BookingMetrics
	logger   logger.Logger

	ttl time.Duration
	loc *time.Location
	now func() time.Time
}

func NewConversationService(
	repo ports.BookingRepo,
	sessions ports.SessionStore,
	slots *SlotService,
	notifier ports.BookingNotifier,
	tickets ports.TicketRenderer,
	m *metrics.BookingMetrics,
	logger logger.Logger,
	cfg ConversationConfig,
) *ConversationService {
	s := &ConversationService{
		repo:     repo,
		sessions: sessions,
		slots:    slots,
		notifier: notifier,
		tickets:  tickets,
		metrics:  m,
		logger:   logger,
		ttl:      cfg.SessionTTL,
		loc:      cfg.Location,
		now:      cfg.Now,
	}
	if s.ttl <= 0 {
		s.ttl = defaultSessionTTL
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Start opens a booking session. It fails with domain.ErrAlreadyBooked when the user
// has a stored booking, or domain.ErrSessionActive when a session is already open.
func (s *ConversationService) Start(ctx context.Context, userID string) (domain.Reply, error) {
	_, err := s.repo.GetByUser(ctx, userID)
	switch {
	case err == nil:
		return domain.Reply{Prompt: domain.PromptAlreadyBooked}, domain.ErrAlreadyBooked
	case !errors.Is(err, domain.ErrBookingNotFound):
		return domain.Reply{Prompt: domain.PromptCommitFailed}, fmt.Errorf("check existing booking: %w", err)
	}

	now := s.now()
	if err = s.sessions.Create(domain.NewSession(userID, now, s.ttl)); err != nil {
		reply := domain.Reply{Prompt: domain.PromptInProgress}
		if sess, ok := s.sessions.Get(userID, now); ok {
			reply.Step = sess.Step
		}
		return reply, err
	}

	s.metrics.SetOpenSessions(s.sessions.Len())
	s.logger.Info("booking session started", logger.String("user_id", userID))

	return domain.Reply{Step: domain.StepAwaitingName, Prompt: domain.PromptAskName}, nil
}

// SubmitText feeds a free-text answer into the user's session.
func (s *ConversationService) SubmitText(ctx context.Context, userID, text string) (domain.Reply, error) {
	return s.Handle(ctx, userID, domain.TextInput(text))
}

// SubmitChoice feeds a button selection into the user's session.
func (s *ConversationService) SubmitChoice(ctx context.Context, userID string, choice domain.Choice) (domain.Reply, error) {
	return s.Handle(ctx, userID, domain.ChoiceInput(choice))
}

// Handle applies one input to the user's session. The returned Reply is always
// meaningful and should be delivered even when the error is non-nil: validation,
// capacity and busy errors come with the prompt to show next.
func (s *ConversationService) Handle(ctx context.Context, userID string, in domain.Input) (domain.Reply, error) {
	if in.Kind == domain.InputChoice && in.Choice.Kind == domain.ChoiceTime {
		return s.commit(ctx, userID, in.Choice)
	}

	var reply domain.Reply
	sess, err := s.sessions.Update(userID, s.now(), func(sess *domain.Session) error {
		var terr error
		reply, terr = s.transition(sess, in)
		return terr
	})

	switch {
	case errors.Is(err, domain.ErrNoSession):
		return domain.Reply{Prompt: domain.PromptSessionExpired}, err
	case errors.Is(err, domain.ErrSessionBusy):
		s.metrics.ObserveRejection("busy")
		return domain.Reply{Step: sess.Step, Prompt: domain.PromptSessionBusy}, err
	case err != nil:
		s.metrics.ObserveRejection(rejectionReason(err))
	}

	reply.Step = sess.Step
	return reply, err
}

// transition advances sess by one input. It must not do I/O: it runs under the
// session store lock.
func (s *ConversationService) transition(sess *domain.Session, in domain.Input) (domain.Reply, error) {
	switch sess.Step {
	case domain.StepAwaitingName:
		if in.Kind != domain.InputText {
			return followProcess(sess.Step), domain.ErrUnexpectedInput
		}
		name := strings.TrimSpace(in.Text)
		if name == "" {
			return domain.Reply{Prompt: domain.PromptInvalidName}, fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		sess.Draft.Name = name
		sess.Step = domain.StepAwaitingAge
		return domain.Reply{Prompt: domain.PromptAskAge}, nil

	case domain.StepAwaitingAge:
		if in.Kind != domain.InputText {
			return followProcess(sess.Step), domain.ErrUnexpectedInput
		}
		age, err := parseAge(in.Text)
		if err != nil {
			return domain.Reply{Prompt: domain.PromptInvalidAge}, err
		}
		sess.Draft.Age = age
		sess.Step = domain.StepAwaitingGender
		return domain.Reply{Prompt: domain.PromptAskGender, Choices: domain.GenderChoices()}, nil

	case domain.StepAwaitingGender:
		if in.Kind != domain.InputChoice || in.Choice.Kind != domain.ChoiceGender {
			return followProcess(sess.Step), domain.ErrUnexpectedInput
		}
		gender, ok := domain.NormalizeGender(in.Choice.Value)
		if !ok {
			return domain.Reply{Prompt: domain.PromptAskGender, Choices: domain.GenderChoices()},
				fmt.Errorf("%w: unknown gender %q", domain.ErrValidation, in.Choice.Value)
		}
		sess.Draft.Gender = gender
		sess.Step = domain.StepAwaitingTest
		return domain.Reply{Prompt: domain.PromptAskTest, Selected: gender}, nil

	case domain.StepAwaitingTest:
		if in.Kind != domain.InputText {
			return followProcess(sess.Step), domain.ErrUnexpectedInput
		}
		test, err := parseTestChoice(in.Text)
		if err != nil {
			return domain.Reply{Prompt: domain.PromptInvalidTest}, err
		}
		sess.Draft.TestType = test
		sess.Step = domain.StepAwaitingDate
		return domain.Reply{Prompt: domain.PromptAskDate}, nil

	case domain.StepAwaitingDate:
		if in.Kind != domain.InputText {
			return followProcess(sess.Step), domain.ErrUnexpectedInput
		}
		date, err := parseDate(in.Text, s.now(), s.loc)
		if err != nil {
			return domain.Reply{Prompt: domain.PromptInvalidDate}, err
		}
		sess.Draft.Date = date
		sess.Step = domain.StepAwaitingTime
		return domain.Reply{Prompt: domain.PromptAskTime, Choices: domain.TimeChoices()}, nil

	default:
		return followProcess(sess.Step), domain.ErrUnexpectedInput
	}
}

// Cancel removes the user's stored booking and reports whether one existed. The open
// session is dropped only together with a booking; with nothing to cancel no state
// changes. While the user's commit is in flight it fails with domain.ErrSessionBusy.
func (s *ConversationService) Cancel(ctx context.Context, userID string) (bool, error) {
	if sess, ok := s.sessions.Get(userID, s.now()); ok && sess.Locked {
		s.metrics.ObserveRejection("busy")
		return false, domain.ErrSessionBusy
	}

	existed, err := s.repo.DeleteByUser(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("cancel booking: %w", err)
	}
	if !existed {
		return false, nil
	}

	s.closeSession(userID)
	s.logger.Info("booking cancelled", logger.String("user_id", userID))

	return true, nil
}

// Summary returns the user's stored booking.
func (s *ConversationService) Summary(ctx context.Context, userID string) (*domain.Booking, error) {
	return s.repo.GetByUser(ctx, userID)
}

// HasBooking reports whether the user holds a stored booking.
func (s *ConversationService) HasBooking(ctx context.Context, userID string) (bool, error) {
	_, err := s.repo.GetByUser(ctx, userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrBookingNotFound):
		return false, nil
	default:
		return false, err
	}
}

// SweepExpired drops abandoned sessions.
func (s *ConversationService) SweepExpired(now time.Time) int {
	removed := s.sessions.Sweep(now)
	if removed > 0 {
		s.logger.Debug("expired booking sessions removed", logger.Int("count", removed))
	}
	s.metrics.SetOpenSessions(s.sessions.Len())
	return removed
}

func followProcess(step domain.Step) domain.Reply {
	reply := domain.Reply{Prompt: domain.PromptFollowProcess}
	switch step {
	case domain.StepAwaitingGender:
		reply.Choices = domain.GenderChoices()
	case domain.StepAwaitingTime:
		reply.Choices = domain.TimeChoices()
	}
	return reply
}

func parseAge(text string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || age < minAge || age > maxAge {
		return 0, fmt.Errorf("%w: age must be a number between %d and %d", domain.ErrValidation, minAge, maxAge)
	}
	return age, nil
}

func parseTestChoice(text string) (string, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || idx < 1 || idx > len(domain.TestTypes) {
		return "", fmt.Errorf("%w: test number must be between 1 and %d", domain.ErrValidation, len(domain.TestTypes))
	}
	return domain.TestTypes[idx-1], nil
}

// parseDate accepts a strict YYYY-MM-DD literal naming today or a later day in loc.
func parseDate(text string, now time.Time, loc *time.Location) (string, error) {
	text = strings.TrimSpace(text)
	if !dateLiteral.MatchString(text) {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}

	d, err := time.ParseInLocation(domain.DateLayout, text, loc)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a calendar date", domain.ErrValidation, text)
	}

	y, m, day := now.In(loc).Date()
	if d.Before(time.Date(y, m, day, 0, 0, 0, 0, loc)) {
		return "", fmt.Errorf("%w: date %s is in the past", domain.ErrValidation, text)
	}

	return text, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrUnexpectedInput):
		return "unexpected_input"
	case errors.Is(err, domain.ErrSlotFull):
		return "slot_full"
	case errors.Is(err, domain.ErrAlreadyBooked):
		return "already_booked"
	case errors.Is(err, domain.ErrCommitFailed):
		return "commit_failed"
	default:
		return "other"
	}
}
