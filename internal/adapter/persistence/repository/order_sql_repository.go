package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/infrastructure/database"
	"obsydia_retail/internal/usecase/interfaces"
)

const orderColumns = "id, full_name, email, phone, address, location, services, notes, language, status, quote, quote_sent_at, created_at"

// OrderSQLRepository persists orders in PostgreSQL (pgx) or SQLite (modernc).
//
// services and quote are stored as JSON text; JSONB on Postgres.
type OrderSQLRepository struct {
	db      *sql.DB
	dialect database.Dialect
	now     func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderSQLRepository)(nil)

func NewOrderSQLRepository(db *sql.DB, dialect database.Dialect) *OrderSQLRepository {
	return &OrderSQLRepository{db: db, dialect: dialect, now: time.Now}
}

// bind rewrites ? markers for the dialect.
func (r *OrderSQLRepository) bind(query string) string {
	if r.dialect != database.DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString(r.dialect.Placeholder(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// timeArg keeps native timestamps on Postgres and RFC 3339 text on SQLite so
// lexical order matches chronological order.
func (r *OrderSQLRepository) timeArg(t time.Time) any {
	if r.dialect == database.DialectPostgres {
		return t.UTC()
	}
	return formatTime(t)
}

func (r *OrderSQLRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	services, err := json.Marshal(o.Services)
	if err != nil {
		return entities.Order{}, err
	}

	var notes sql.NullString
	if o.Notes != "" {
		notes = sql.NullString{String: o.Notes, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, r.bind(`
		INSERT INTO orders
			(id, full_name, email, phone, address, location, services, notes, language, status, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		o.ID, o.FullName, o.Email, o.Phone, o.Address, o.Location,
		string(services), notes, o.Language, string(o.Status), r.timeArg(o.CreatedAt),
	)
	if err != nil {
		return entities.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

func (r *OrderSQLRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	row := r.db.QueryRowContext(ctx, r.bind("SELECT "+orderColumns+" FROM orders WHERE id = ?"), id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, nil
	}
	return o, err
}

func (r *OrderSQLRepository) List(ctx context.Context) ([]entities.Order, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderSQLRepository) SaveQuote(ctx context.Context, id string, q entities.Quote) (entities.Order, error) {
	payload, err := json.Marshal(q)
	if err != nil {
		return entities.Order{}, err
	}

	res, err := r.db.ExecContext(ctx, r.bind(`
		UPDATE orders
		SET status = ?,
		    quote = ?,
		    quote_total = ?,
		    quote_sent_at = ?
		WHERE id = ?`),
		string(entities.OrderStatusQuoted), string(payload), q.Total, r.timeArg(r.now()), id,
	)
	if err != nil {
		return entities.Order{}, fmt.Errorf("save quote: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.Order{}, nil
	}
	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(s rowScanner) (entities.Order, error) {
	var (
		o           entities.Order
		status      string
		services    sql.NullString
		notes       sql.NullString
		quote       sql.NullString
		quoteSentAt any
		createdAt   any
	)
	err := s.Scan(&o.ID, &o.FullName, &o.Email, &o.Phone, &o.Address, &o.Location,
		&services, &notes, &o.Language, &status, &quote, &quoteSentAt, &createdAt)
	if err != nil {
		return entities.Order{}, err
	}

	o.Status = entities.OrderStatus(status)
	o.Notes = notes.String
	o.Services = []string{}
	if services.Valid && services.String != "" {
		if err := json.Unmarshal([]byte(services.String), &o.Services); err != nil {
			return entities.Order{}, fmt.Errorf("decode services for %s: %w", o.ID, err)
		}
	}
	if quote.Valid && quote.String != "" {
		var q entities.Quote
		if err := json.Unmarshal([]byte(quote.String), &q); err != nil {
			return entities.Order{}, fmt.Errorf("decode quote for %s: %w", o.ID, err)
		}
		o.Quote = &q
	}
	if t, ok := parseTime(createdAt); ok {
		o.CreatedAt = t
	}
	if t, ok := parseTime(quoteSentAt); ok {
		o.QuoteSentAt = &t
	}
	return o, nil
}
