package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/xavierca1/leadtrack/internal/entity"
)

// NewPostgresConnection opens a pooled connection and tests it with a ping.
func NewPostgresConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// PostgresLeadRepository is the relational rendition of the lead store,
// selected with STORE_DRIVER=postgres. It honors the same contract as the
// Mongo repository, including the unique-email conflict mapping.
type PostgresLeadRepository struct {
	DB *sql.DB
}

func NewPostgresLeadRepository(db *sql.DB) *PostgresLeadRepository {
	return &PostgresLeadRepository{DB: db}
}

func (r *PostgresLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, email, status, created_at
		FROM leads
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Status, &lead.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

func (r *PostgresLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := `
		SELECT id, name, email, status, created_at
		FROM leads
		WHERE email = $1
	`

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Status, &lead.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *PostgresLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	lead.ID = uuid.New().String()

	query := `
		INSERT INTO leads (id, name, email, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Status,
		lead.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}
