package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// commit turns the session draft into a stored booking once the user picks a time slot.
//
// The session is locked for the whole sequence so repeated taps from the same user are
// answered with domain.ErrSessionBusy. Capacity across users is enforced by
// BookingRepo.Create, which checks and inserts atomically; the read-only pre-check only
// spares the store a write for slots that are visibly full.
func (s *ConversationService) commit(ctx context.Context, userID string, choice domain.Choice) (domain.Reply, error) {
	slot, known := domain.TimeSlotAt(choice.Value)

	sess, err := s.sessions.Lock(userID, s.now(), func(sess *domain.Session) error {
		if sess.Step != domain.StepAwaitingTime {
			return domain.ErrUnexpectedInput
		}
		if !known {
			return fmt.Errorf("%w: unknown time slot %q", domain.ErrValidation, choice.Value)
		}
		sess.Draft.Time = slot
		return nil
	})
	switch {
	case errors.Is(err, domain.ErrNoSession):
		return domain.Reply{Prompt: domain.PromptSessionExpired}, err
	case errors.Is(err, domain.ErrSessionBusy):
		s.metrics.ObserveRejection("busy")
		return domain.Reply{Step: sess.Step, Prompt: domain.PromptSessionBusy}, err
	case errors.Is(err, domain.ErrUnexpectedInput):
		s.metrics.ObserveRejection(rejectionReason(err))
		reply := followProcess(sess.Step)
		reply.Step = sess.Step
		return reply, err
	case err != nil:
		s.metrics.ObserveRejection(rejectionReason(err))
		return domain.Reply{Step: sess.Step, Prompt: domain.PromptAskTime, Choices: domain.TimeChoices()}, err
	}

	draft := sess.Draft

	available, err := s.slots.IsAvailable(ctx, draft.Date, slot)
	if err != nil {
		// Create repeats the check atomically, so a failed read is not fatal.
		s.logger.Warn("slot pre-check failed",
			logger.String("user_id", userID),
			logger.String("date", draft.Date),
			logger.String("time", slot),
			logger.String("error", err.Error()),
		)
		available = true
	}
	if !available {
		return s.slotFull(userID, draft)
	}

	booking := draft.Booking(userID)
	booking.CreatedAt = s.now().UTC()

	err = s.repo.Create(ctx, booking, s.slots.Limit())
	switch {
	case errors.Is(err, domain.ErrSlotFull):
		return s.slotFull(userID, draft)
	case errors.Is(err, domain.ErrAlreadyBooked):
		s.closeSession(userID)
		s.metrics.ObserveRejection(rejectionReason(err))
		return domain.Reply{Step: domain.StepClosed, Prompt: domain.PromptAlreadyBooked}, err
	case err != nil:
		s.closeSession(userID)
		s.metrics.ObserveRejection("commit_failed")
		s.logger.Error("failed to store booking",
			logger.String("user_id", userID),
			logger.String("date", draft.Date),
			logger.String("time", slot),
			logger.String("error", err.Error()),
		)
		return domain.Reply{Step: domain.StepClosed, Prompt: domain.PromptCommitFailed},
			fmt.Errorf("%w: %w", domain.ErrCommitFailed, err)
	}

	s.closeSession(userID)
	s.metrics.ObserveCommitted()
	s.logger.Info("booking committed",
		logger.String("user_id", userID),
		logger.String("test", booking.TestType),
		logger.String("date", booking.Date),
		logger.String("time", booking.Time),
	)

	s.deliver(ctx, booking)

	return domain.Reply{
		Step:     domain.StepClosed,
		Prompt:   domain.PromptConfirmed,
		Selected: slot,
		Booking:  booking,
	}, nil
}

func (s *ConversationService) slotFull(userID string, draft domain.Draft) (domain.Reply, error) {
	s.sessions.Unlock(userID)
	s.metrics.ObserveRejection("slot_full")
	s.logger.Info("slot full",
		logger.String("user_id", userID),
		logger.String("date", draft.Date),
		logger.String("time", draft.Time),
	)
	return domain.Reply{
		Step:    domain.StepAwaitingTime,
		Prompt:  domain.PromptSlotFull,
		Choices: domain.TimeChoices(),
	}, domain.ErrSlotFull
}

func (s *ConversationService) closeSession(userID string) {
	s.sessions.Delete(userID)
	s.metrics.SetOpenSessions(s.sessions.Len())
}

// deliver sends the confirmation and the QR ticket. Failures are logged only:
// the booking is already stored.
func (s *ConversationService) deliver(ctx context.Context, b *domain.Booking) {
	if err := s.notifier.NotifyBookingConfirmed(ctx, b); err != nil {
		s.logger.Error("failed to send booking confirmation",
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
	}

	png, err := s.tickets.Render(b)
	if err == nil {
		err = s.notifier.NotifyTicket(ctx, b.UserID, png)
	}
	if err == nil {
		return
	}

	s.logger.Error("failed to deliver booking ticket",
		logger.String("user_id", b.UserID),
		logger.String("error", err.Error()),
	)
	if err = s.notifier.NotifyTicketFailed(ctx, b.UserID); err != nil {
		s.logger.Error("failed to send ticket failure notice",
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
	}
}
