package usecases

import (
	"context"

	"traindesk/internal/domain/shared/events"
	"traindesk/internal/domain/solution"
	"traindesk/internal/domain/ticket"
	ticketvo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/domain/user"
	"traindesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc          func(ctx context.Context, id uint) (*ticket.Ticket, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error)
	ListByRedeemerFunc   func(ctx context.Context, userID uint) ([]*ticket.Ticket, error)
	ListByCreatorFunc    func(ctx context.Context, userID uint) ([]*ticket.Ticket, error)
	CountByStatusFunc    func(ctx context.Context, status ticketvo.TicketStatus) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListByRedeemer(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	if m.ListByRedeemerFunc != nil {
		return m.ListByRedeemerFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByCreator(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	if m.ListByCreatorFunc != nil {
		return m.ListByCreatorFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, status ticketvo.TicketStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

type mockSolutionRepository struct {
	SaveFunc             func(ctx context.Context, s *solution.Solution) error
	GetByIDFunc          func(ctx context.Context, id uint) (*solution.Solution, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*solution.Solution, error)
	GetByTicketIDFunc    func(ctx context.Context, ticketID uint) (*solution.Solution, error)
	UpdateFunc           func(ctx context.Context, s *solution.Solution) error
	DeleteFunc           func(ctx context.Context, id uint) error
	SearchFunc           func(ctx context.Context, filter solution.SearchFilter) ([]*solution.Solution, int64, error)
	ListRecentFunc       func(ctx context.Context, limit int) ([]*solution.Solution, error)
	ListPendingFunc      func(ctx context.Context, offset, limit int) ([]*solution.Solution, int64, error)
	ListByAuthorFunc     func(ctx context.Context, authorID uint) ([]*solution.Solution, error)
	CountByStatusFunc    func(ctx context.Context, status string) (int64, error)
}

func (m *mockSolutionRepository) Save(ctx context.Context, s *solution.Solution) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSolutionRepository) GetByID(ctx context.Context, id uint) (*solution.Solution, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSolutionRepository) GetByIDForUpdate(ctx context.Context, id uint) (*solution.Solution, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSolutionRepository) GetByTicketID(ctx context.Context, ticketID uint) (*solution.Solution, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockSolutionRepository) Update(ctx context.Context, s *solution.Solution) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSolutionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSolutionRepository) Search(ctx context.Context, filter solution.SearchFilter) ([]*solution.Solution, int64, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockSolutionRepository) ListRecent(ctx context.Context, limit int) ([]*solution.Solution, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockSolutionRepository) ListPending(ctx context.Context, offset, limit int) ([]*solution.Solution, int64, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockSolutionRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*solution.Solution, error) {
	if m.ListByAuthorFunc != nil {
		return m.ListByAuthorFunc(ctx, authorID)
	}
	return nil, nil
}

func (m *mockSolutionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context, offset, limit int) ([]*user.User, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// mockTxManager runs the function inline, mirroring a committed transaction.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockPublisher struct {
	Published []events.DomainEvent
}

func (m *mockPublisher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	return nil
}

func (m *mockPublisher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	return nil
}

func (m *mockPublisher) EventTypes() []string {
	types := make([]string, 0, len(m.Published))
	for _, e := range m.Published {
		types = append(types, e.GetEventType())
	}
	return types
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any)            {}
func (noopLogger) Info(string, ...any)             {}
func (noopLogger) Warn(string, ...any)             {}
func (noopLogger) Error(string, ...any)            {}
func (l noopLogger) With(...any) logger.Interface  { return l }
func (l noopLogger) Named(string) logger.Interface { return l }
func (noopLogger) Debugw(string, ...interface{})   {}
func (noopLogger) Infow(string, ...interface{})    {}
func (noopLogger) Warnw(string, ...interface{})    {}
func (noopLogger) Errorw(string, ...interface{})   {}
