package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"traindesk/internal/domain/ticket"
	ticketvo "traindesk/internal/domain/ticket/valueobjects"
	"traindesk/internal/infrastructure/persistence/models"
	"traindesk/internal/shared/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.UserModel{},
		&models.TicketModel{},
		&models.SolutionModel{},
		&models.CouponModel{},
		&models.NotificationModel{},
	)
	require.NoError(t, err)

	return database
}

func createTestTicket(t *testing.T, repo *TicketRepository, title string, attachments []string, createdBy uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "how do I fix this", attachments, createdBy)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	t.Run("save assigns ID", func(t *testing.T) {
		tk := createTestTicket(t, repo, "DNS lookup fails", []string{"uploads/dig-output.txt"}, 1)
		assert.NotZero(t, tk.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		tk := createTestTicket(t, repo, "Printer offline", []string{"uploads/printer-log.txt"}, 2)

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, tk.Title(), found.Title())
		assert.Equal(t, tk.Description(), found.Description())
		assert.Equal(t, []string{"uploads/printer-log.txt"}, found.Attachments())
		assert.Equal(t, ticketvo.StatusOpen, found.Status())
		assert.Equal(t, uint(2), found.CreatedBy())
		assert.Nil(t, found.RedeemedBy())
	})

	t.Run("get non-existent ticket", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		assert.Error(t, err)
		assert.Nil(t, found)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestTicketRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	tk := createTestTicket(t, repo, "VPN drops hourly", nil, 1)

	require.NoError(t, tk.Redeem(5, false))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, ticketvo.StatusInProgress, found.Status())
	require.NotNil(t, found.RedeemedBy())
	assert.Equal(t, uint(5), *found.RedeemedBy())
}

func TestTicketRepository_SoftDelete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	tk := createTestTicket(t, repo, "Disk full", nil, 1)
	require.NoError(t, repo.Delete(ctx, tk.ID()))

	t.Run("deleted ticket still loads by ID", func(t *testing.T) {
		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.True(t, found.IsDeleted())
	})

	t.Run("deleted ticket hidden from default listing", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.ListFilter{Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, tickets)
	})

	t.Run("deleted ticket visible to its creator", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.ListFilter{IncludeDeletedFor: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("deleted ticket not surfaced for other users", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.ListFilter{IncludeDeletedFor: 2, Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestTicketRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	tk1 := createTestTicket(t, repo, "Build fails on CI", nil, 1)
	createTestTicket(t, repo, "Login loop on staging", nil, 2)
	tk3 := createTestTicket(t, repo, "Flaky integration test", nil, 1)

	require.NoError(t, tk3.Redeem(7, false))
	require.NoError(t, repo.Update(ctx, tk3))

	t.Run("list all", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.ListFilter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, tickets, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.ListFilter{Status: ticketvo.StatusOpen, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, tickets, 2)
	})

	t.Run("filter by creator", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.ListFilter{CreatedBy: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("filter by redeemer", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.ListFilter{RedeemedBy: 7, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, tk3.ID(), tickets[0].ID())
	})

	t.Run("pagination", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.ListFilter{Offset: 0, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, tickets, 2)

		tickets, _, err = repo.List(ctx, ticket.ListFilter{Offset: 2, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, tickets, 1)
	})

	t.Run("count by status", func(t *testing.T) {
		count, err := repo.CountByStatus(ctx, ticketvo.StatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	_ = tk1
}

func TestTicketRepository_ListByRedeemerAndCreator(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	ctx := context.Background()

	mine := createTestTicket(t, repo, "My ticket", nil, 1)
	theirs := createTestTicket(t, repo, "Their ticket", nil, 2)

	require.NoError(t, theirs.Redeem(1, false))
	require.NoError(t, repo.Update(ctx, theirs))
	require.NoError(t, repo.Delete(ctx, mine.ID()))

	t.Run("by redeemer excludes deleted", func(t *testing.T) {
		tickets, err := repo.ListByRedeemer(ctx, 1)
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, theirs.ID(), tickets[0].ID())
	})

	t.Run("by creator includes own deleted", func(t *testing.T) {
		tickets, err := repo.ListByCreator(ctx, 1)
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.True(t, tickets[0].IsDeleted())
	})
}

func TestTicketRepository_TransactionRollback(t *testing.T) {
	database := setupTestDB(t)
	repo := NewTicketRepository(database)
	txManager := db.NewTransactionManager(database)
	ctx := context.Background()

	t.Run("rollback discards the save", func(t *testing.T) {
		var savedID uint
		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			tk, err := ticket.NewTicket("Rolled back", "never persisted", nil, 1)
			require.NoError(t, err)
			if err := repo.Save(txCtx, tk); err != nil {
				return err
			}
			savedID = tk.ID()
			return assert.AnError
		})
		assert.Error(t, err)

		found, err := repo.GetByID(ctx, savedID)
		assert.Error(t, err)
		assert.Nil(t, found)
	})

	t.Run("commit persists the save", func(t *testing.T) {
		var savedID uint
		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			tk, err := ticket.NewTicket("Committed", "persisted", nil, 1)
			require.NoError(t, err)
			if err := repo.Save(txCtx, tk); err != nil {
				return err
			}
			savedID = tk.ID()
			return nil
		})
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, savedID)
		require.NoError(t, err)
		assert.Equal(t, "Committed", found.Title())
	})
}
