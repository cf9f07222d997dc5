package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ThellaPrasanthi/complain-system/internal/domain"
)

// ComplaintRepository encapsulates complaint persistence. UpdateStatus and
// Delete report the number of affected rows instead of an error so a missing
// id stays a silent no-op for callers.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	ListAll(ctx context.Context) ([]domain.Complaint, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates a Postgres-backed repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (owner_username, name, email, phone, category, title, description, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		complaint.Owner,
		complaint.Name,
		complaint.Email,
		complaint.Phone,
		complaint.Category,
		complaint.Title,
		complaint.Description,
		complaint.Status,
	).Scan(&complaint.ID)
}

func (r *complaintRepository) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	const query = `
        SELECT id, owner_username, name, email, phone, category, title, description, status
        FROM complaints ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Complaint, error) {
	const query = `
        SELECT id, owner_username, name, email, phone, category, title, description, status
        FROM complaints WHERE owner_username=$1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	const query = `UPDATE complaints SET status=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *complaintRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM complaints WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.Owner,
			&complaint.Name,
			&complaint.Email,
			&complaint.Phone,
			&complaint.Category,
			&complaint.Title,
			&complaint.Description,
			&complaint.Status,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}
