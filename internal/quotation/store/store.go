package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/fenestra/internal/quotation"
	"github.com/MrJamesThe3rd/fenestra/internal/window"
)

const sequenceName = "quotation"

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern matches q as a literal substring in an ILIKE ... ESCAPE '\' clause.
func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanQuotation reads a quotation row from the scanner.
// Expected column order matches selectQuotationColumns.
func scanQuotation(s scanner) (*quotation.Quotation, error) {
	var q quotation.Quotation

	var status string

	var client, company, specs []byte

	var notes sql.NullString

	if err := s.Scan(
		&q.ID, &q.Number, &status, &client, &company, &specs,
		&q.Charges.Transport, &q.Charges.Loading, &q.GSTRate, &notes,
		&q.CreatedAt, &q.UpdatedAt, &q.DeletedAt,
	); err != nil {
		return nil, err
	}

	q.Status = quotation.Status(status)
	q.Notes = notes.String

	if err := json.Unmarshal(client, &q.Client); err != nil {
		return nil, fmt.Errorf("decoding client: %w", err)
	}

	if err := json.Unmarshal(company, &q.Company); err != nil {
		return nil, fmt.Errorf("decoding company: %w", err)
	}

	if err := json.Unmarshal(specs, &q.Specs); err != nil {
		return nil, fmt.Errorf("decoding window specs: %w", err)
	}

	return &q, nil
}

const selectQuotationColumns = `
	id, number, status, client, company, window_specs,
	transport_cost, loading_cost, gst_rate, notes,
	created_at, updated_at, deleted_at
`

type encoded struct {
	client, company, specs string
}

func encode(q *quotation.Quotation) (encoded, error) {
	client, err := json.Marshal(q.Client)
	if err != nil {
		return encoded{}, fmt.Errorf("encoding client: %w", err)
	}

	company, err := json.Marshal(q.Company)
	if err != nil {
		return encoded{}, fmt.Errorf("encoding company: %w", err)
	}

	specs := q.Specs
	if specs == nil {
		specs = []window.Specification{}
	}

	specJSON, err := json.Marshal(specs)
	if err != nil {
		return encoded{}, fmt.Errorf("encoding window specs: %w", err)
	}

	return encoded{client: string(client), company: string(company), specs: string(specJSON)}, nil
}

// NextNumber increments the quotation sequence in a single statement, so
// concurrent callers never receive the same number.
func (s *Store) NextNumber(ctx context.Context) (int64, error) {
	query := `
		INSERT INTO sequences (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`

	var next int64
	if err := s.db.QueryRowContext(ctx, query, sequenceName).Scan(&next); err != nil {
		return 0, fmt.Errorf("incrementing sequence: %w", err)
	}

	return next, nil
}

func (s *Store) CreateQuotation(ctx context.Context, q *quotation.Quotation) error {
	enc, err := encode(q)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO quotations (number, status, client, company, window_specs, transport_cost, loading_cost, gst_rate, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		q.Number,
		q.Status,
		enc.client,
		enc.company,
		enc.specs,
		q.Charges.Transport,
		q.Charges.Loading,
		q.GSTRate,
		q.Notes,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating quotation: %w", err)
	}

	return nil
}

func (s *Store) GetQuotation(ctx context.Context, id uuid.UUID) (*quotation.Quotation, error) {
	query := `SELECT ` + selectQuotationColumns + `
		FROM quotations
		WHERE id = $1 AND deleted_at IS NULL`

	q, err := scanQuotation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, quotation.ErrNotFound
		}

		return nil, fmt.Errorf("getting quotation: %w", err)
	}

	return q, nil
}

func (s *Store) ListQuotations(ctx context.Context, filter quotation.ListFilter) ([]*quotation.Quotation, error) {
	query := `SELECT ` + selectQuotationColumns + `
		FROM quotations
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Query != "" {
		query += fmt.Sprintf(` AND (number ILIKE $%d ESCAPE '\' OR client->>'name' ILIKE $%d ESCAPE '\')`, argIdx, argIdx)

		args = append(args, likePattern(filter.Query))
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}
	defer rows.Close()

	var qs []*quotation.Quotation

	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning quotation: %w", err)
		}

		qs = append(qs, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotation rows: %w", err)
	}

	return qs, nil
}

func (s *Store) UpdateQuotation(ctx context.Context, q *quotation.Quotation) error {
	enc, err := encode(q)
	if err != nil {
		return err
	}

	query := `
		UPDATE quotations
		SET status = $1, client = $2, company = $3, window_specs = $4,
			transport_cost = $5, loading_cost = $6, gst_rate = $7, notes = $8, updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query,
		q.Status,
		enc.client,
		enc.company,
		enc.specs,
		q.Charges.Transport,
		q.Charges.Loading,
		q.GSTRate,
		q.Notes,
		q.ID,
	)
	if err != nil {
		return fmt.Errorf("updating quotation: %w", err)
	}

	return expectOne(res)
}

// UpdateStatus overwrites the status unconditionally; the last write wins.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status quotation.Status) error {
	query := `
		UPDATE quotations
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	return expectOne(res)
}

func (s *Store) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE quotations
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting quotation: %w", err)
	}

	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return quotation.ErrNotFound
	}

	return nil
}
