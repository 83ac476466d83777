// Package notification contains the post-commit fan-out that turns domain
// events into per-user notification records, plus the read-side use cases.
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	notificationdomain "traindesk/internal/domain/notification"
	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/solution"
	"traindesk/internal/domain/ticket"
	"traindesk/internal/domain/user"
	"traindesk/internal/shared/logger"
)

// EmailSender delivers review verdicts by email. Implementations may be nil
// when email delivery is disabled.
type EmailSender interface {
	SendSolutionReviewedEmail(to, name, ticketTitle string, approved bool) error
}

// Fanout subscribes to the event dispatcher and writes notification records
// for the users affected by each event. Handlers run after commit on the
// dispatcher's goroutines; failures are logged and never propagate back into
// the workflow that emitted the event.
type Fanout struct {
	notificationRepo notificationdomain.Repository
	userRepo         user.Repository
	mailer           EmailSender
	publisher        events.EventPublisher
	logger           logger.Interface
}

func NewFanout(
	notificationRepo notificationdomain.Repository,
	userRepo user.Repository,
	mailer EmailSender,
	logger logger.Interface,
) *Fanout {
	return &Fanout{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		logger:           logger.Named("notification-fanout"),
	}
}

// Register subscribes the fan-out handlers on the dispatcher. The same
// dispatcher carries the notification_received events emitted after each
// stored record.
func (f *Fanout) Register(dispatcher events.EventDispatcher) error {
	f.publisher = dispatcher
	subscriptions := map[string]func(events.DomainEvent) error{
		ticket.TicketRedeemedEventType:     f.handleTicketRedeemed,
		ticket.TicketResolvedEventType:     f.handleTicketResolved,
		solution.SolutionApprovedEventType: f.handleSolutionReviewed,
		solution.SolutionRejectedEventType: f.handleSolutionReviewed,
		user.CreditUpdatedEventType:        f.handleCreditUpdated,
	}

	for eventType, handler := range subscriptions {
		if err := dispatcher.Subscribe(eventType, events.NewSimpleEventHandler(eventType, handler)); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}
	return nil
}

func (f *Fanout) handleTicketRedeemed(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}
	// The creator redeeming their own ticket needs no notification.
	if e.ActorID == e.Ticket.CreatedBy {
		return nil
	}
	title := fmt.Sprintf("Your ticket %q was picked up", e.Ticket.Title)
	return f.store(e.Ticket.CreatedBy, e, title)
}

func (f *Fanout) handleTicketResolved(event events.DomainEvent) error {
	e, ok := event.(*ticket.TicketEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}
	if e.ActorID == e.Ticket.CreatedBy {
		return nil
	}
	title := fmt.Sprintf("Your ticket %q was resolved", e.Ticket.Title)
	return f.store(e.Ticket.CreatedBy, e, title)
}

func (f *Fanout) handleSolutionReviewed(event events.DomainEvent) error {
	e, ok := event.(*solution.SolutionEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}
	// Auto-approved self-solves carry no reviewer and need no notification.
	if e.ReviewerID == 0 || e.ReviewerID == e.Solution.AuthorID {
		return nil
	}

	approved := event.GetEventType() == solution.SolutionApprovedEventType
	verdict := "approved"
	if !approved {
		verdict = "rejected"
	}
	title := fmt.Sprintf("Your solution for ticket #%d was %s", e.Solution.TicketID, verdict)

	if err := f.store(e.Solution.AuthorID, e, title); err != nil {
		return err
	}

	f.sendReviewEmail(e, approved)
	return nil
}

func (f *Fanout) handleCreditUpdated(event events.DomainEvent) error {
	e, ok := event.(*user.CreditUpdatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.GetEventType())
	}
	var title string
	if e.Amount >= 0 {
		title = fmt.Sprintf("You earned %d credits (%s)", e.Amount, e.Reason)
	} else {
		title = fmt.Sprintf("You spent %d credits (%s)", -e.Amount, e.Reason)
	}
	return f.store(e.User.ID, e, title)
}

func (f *Fanout) store(userID uint, event events.DomainEvent, title string) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	n, err := notificationdomain.NewNotification(userID, event.GetEventType(), title, payload)
	if err != nil {
		return err
	}

	if err := f.notificationRepo.Save(context.Background(), n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	f.logger.Debugw("notification stored",
		"user_id", userID,
		"event_type", event.GetEventType(),
		"notification_id", n.ID(),
	)

	if f.publisher != nil {
		if err := f.publisher.Publish(notificationdomain.NewReceivedEvent(n)); err != nil {
			f.logger.Warnw("failed to publish notification received event",
				"notification_id", n.ID(),
				"error", err,
			)
		}
	}
	return nil
}

func (f *Fanout) sendReviewEmail(e *solution.SolutionEvent, approved bool) {
	if f.mailer == nil {
		return
	}

	author, err := f.userRepo.GetByID(context.Background(), e.Solution.AuthorID)
	if err != nil {
		f.logger.Warnw("failed to load solution author for email",
			"author_id", e.Solution.AuthorID,
			"error", err,
		)
		return
	}
	if author.IsDeleted() {
		return
	}

	ticketTitle := fmt.Sprintf("#%d", e.Solution.TicketID)
	if err := f.mailer.SendSolutionReviewedEmail(author.Email(), author.Name(), ticketTitle, approved); err != nil {
		f.logger.Warnw("failed to send review email",
			"author_id", e.Solution.AuthorID,
			"error", err,
		)
	}
}
