package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obsydia_retail/internal/config"
	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/infrastructure/database"
	"obsydia_retail/internal/usecase/interfaces"
)

var baseTime = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func sampleOrder(id string, createdAt time.Time) entities.Order {
	return entities.Order{
		ID:        id,
		FullName:  "Ana Ruiz",
		Email:     "ana@example.com",
		Phone:     "787-555-0100",
		Address:   "Calle Luna 12",
		Location:  "San Juan",
		Notes:     "Line one\nLine two",
		Services:  []string{"jellyfin", "immich"},
		Language:  "es",
		Status:    entities.OrderStatusNew,
		CreatedAt: createdAt,
	}
}

func sampleQuote() entities.Quote {
	return entities.Quote{
		Currency: "USD",
		Items: []entities.QuoteItem{
			{Key: "pc", Amount: 450},
			{Key: "other", Label: "HDMI cable", Amount: 12.5},
		},
		Total: 462.5,
		Notes: "Ships Monday",
	}
}

// exerciseRepository runs the behaviour every IOrderRepository must share.
func exerciseRepository(t *testing.T, repo interfaces.IOrderRepository, setNow func(time.Time)) {
	ctx := context.Background()

	older := sampleOrder("ORD-a", baseTime)
	newer := sampleOrder("ORD-b", baseTime.Add(time.Minute))
	newer.Notes = ""

	_, err := repo.Create(ctx, older)
	require.NoError(t, err)
	_, err = repo.Create(ctx, newer)
	require.NoError(t, err)

	_, err = repo.Create(ctx, older)
	assert.Error(t, err, "create must not overwrite an existing id")

	got, err := repo.GetByID(ctx, "ORD-a")
	require.NoError(t, err)
	assert.Equal(t, older.FullName, got.FullName)
	assert.Equal(t, older.Notes, got.Notes)
	assert.Equal(t, older.Services, got.Services)
	assert.Equal(t, entities.OrderStatusNew, got.Status)
	assert.True(t, got.CreatedAt.Equal(baseTime), "created_at %v", got.CreatedAt)
	assert.Nil(t, got.Quote)

	missing, err := repo.GetByID(ctx, "ORD-missing")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ORD-b", list[0].ID)
	assert.Equal(t, "ORD-a", list[1].ID)

	sentAt := baseTime.Add(time.Hour)
	setNow(sentAt)
	updated, err := repo.SaveQuote(ctx, "ORD-a", sampleQuote())
	require.NoError(t, err)
	assert.Equal(t, "ORD-a", updated.ID)
	assert.Equal(t, entities.OrderStatusQuoted, updated.Status)
	require.NotNil(t, updated.Quote)
	assert.Equal(t, sampleQuote(), *updated.Quote)
	require.NotNil(t, updated.QuoteSentAt)
	assert.True(t, updated.QuoteSentAt.Equal(sentAt))

	// re-quote replaces the previous quote
	q2 := sampleQuote()
	q2.Items = q2.Items[:1]
	q2.Total = 450
	updated, err = repo.SaveQuote(ctx, "ORD-a", q2)
	require.NoError(t, err)
	assert.Equal(t, 450.0, updated.Quote.Total)
	assert.Len(t, updated.Quote.Items, 1)

	none, err := repo.SaveQuote(ctx, "ORD-missing", sampleQuote())
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}

func TestOrderMemoryRepository(t *testing.T) {
	repo := NewOrderMemoryRepository()
	exerciseRepository(t, repo, func(now time.Time) { repo.now = func() time.Time { return now } })
}

func TestOrderMemoryRepository_CopiesServices(t *testing.T) {
	repo := NewOrderMemoryRepository()
	o := sampleOrder("ORD-a", baseTime)
	_, err := repo.Create(context.Background(), o)
	require.NoError(t, err)

	o.Services[0] = "mutated"
	got, _ := repo.GetByID(context.Background(), "ORD-a")
	assert.Equal(t, "jellyfin", got.Services[0])
}

func TestOrderMemoryRepository_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderMemoryRepository()
	repo.now = func() time.Time { return baseTime.Add(time.Hour) }
	_, err := repo.Create(ctx, sampleOrder("ORD-a", baseTime))
	require.NoError(t, err)
	saved, err := repo.SaveQuote(ctx, "ORD-a", sampleQuote())
	require.NoError(t, err)

	saved.Services[0] = "mutated"
	saved.Quote.Items[0].Amount = 1
	got, err := repo.GetByID(ctx, "ORD-a")
	require.NoError(t, err)
	assert.Equal(t, "jellyfin", got.Services[0])
	assert.Equal(t, 450.0, got.Quote.Items[0].Amount)

	got.Services[1] = "mutated"
	got.Quote.Items[1].Label = "mutated"
	got.Quote.Total = 0
	*got.QuoteSentAt = time.Time{}

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, []string{"jellyfin", "immich"}, listed[0].Services)
	assert.Equal(t, "HDMI cable", listed[0].Quote.Items[1].Label)
	assert.Equal(t, 462.5, listed[0].Quote.Total)
	assert.True(t, listed[0].QuoteSentAt.Equal(baseTime.Add(time.Hour)))

	listed[0].Services[0] = "mutated"
	listed[0].Quote.Items[0].Key = "mutated"
	again, err := repo.GetByID(ctx, "ORD-a")
	require.NoError(t, err)
	assert.Equal(t, "jellyfin", again.Services[0])
	assert.Equal(t, "pc", again.Quote.Items[0].Key)
}

func TestOrderSQLRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLiteDB(ctx, config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "orders.db")})
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseDB(db) })
	require.NoError(t, database.InitSchema(ctx, db, database.DialectSQLite))

	repo := NewOrderSQLRepository(db, database.DialectSQLite)
	exerciseRepository(t, repo, func(now time.Time) { repo.now = func() time.Time { return now } })
}

func TestOrderSQLRepository_Bind(t *testing.T) {
	pg := NewOrderSQLRepository(nil, database.DialectPostgres)
	assert.Equal(t, "UPDATE orders SET a = $1 WHERE id = $2", pg.bind("UPDATE orders SET a = ? WHERE id = ?"))

	lite := NewOrderSQLRepository(nil, database.DialectSQLite)
	assert.Equal(t, "WHERE id = ?", lite.bind("WHERE id = ?"))
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		in   any
		ok   bool
	}{
		{"time", baseTime, true},
		{"rfc3339", "2026-03-10T09:30:00Z", true},
		{"bytes", []byte("2026-03-10T09:30:00Z"), true},
		{"sqlite default", "2026-03-10 09:30:00", true},
		{"empty", "", false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseTime(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(baseTime), "got %v", got)
			}
		})
	}
}
