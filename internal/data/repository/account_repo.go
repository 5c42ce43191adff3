package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-api/internal/data/entity"
	"marketplace-api/pkg/apperror"
	"marketplace-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var accountTables = map[entity.RoleType]string{
	entity.RoleAdmin:  "admin_users",
	entity.RoleMember: "member_users",
	entity.RoleSeller: "seller_users",
	entity.RoleGuest:  "guest_users",
}

type AccountRepository interface {
	// FindAuthorized is the authorizer lookup: id match, not deleted and,
	// when requireActive, status = 'active'. Returns nil, nil when no row matches.
	FindAuthorized(ctx context.Context, id uuid.UUID, requireActive bool) (*entity.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	// FindUniqueOrThrow matches on id alone, deleted rows included.
	FindUniqueOrThrow(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Account, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus, at time.Time) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

type accountRepository struct {
	db    database.PgxIface
	role  entity.RoleType
	table string
	log   *zap.Logger
}

func NewAccountRepository(db database.PgxIface, role entity.RoleType, log *zap.Logger) AccountRepository {
	table, ok := accountTables[role]
	if !ok {
		panic(fmt.Sprintf("no account table for role %q", role))
	}

	return &accountRepository{
		db:    db,
		role:  role,
		table: table,
		log:   log.With(zap.String("repository", table)),
	}
}

const accountColumns = `id, email, name, status, created_at, updated_at, deleted_at`

func (r *accountRepository) scan(row pgx.Row) (*entity.Account, error) {
	var account entity.Account
	var deletedAt *time.Time

	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Role = r.role
	account.Lifecycle = entity.LifecycleFrom(deletedAt)
	return &account, nil
}

func (r *accountRepository) FindAuthorized(ctx context.Context, id uuid.UUID, requireActive bool) (*entity.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND %s`, accountColumns, r.table, notDeleted)
	args := []any{id}
	if requireActive {
		query += " AND status = $2"
		args = append(args, entity.AccountStatusActive)
	}
	query += " LIMIT 1"

	account, err := r.scan(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find authorized account",
			zap.Error(err),
			zap.String("account_id", id.String()),
			zap.Bool("require_active", requireActive),
		)
		return nil, fmt.Errorf("find authorized %s %s: %w", r.table, id.String(), err)
	}

	return account, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND %s`, accountColumns, r.table, notDeleted)

	account, err := r.scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find account by ID",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return nil, fmt.Errorf("find %s by ID %s: %w", r.table, id.String(), err)
	}

	return account, nil
}

func (r *accountRepository) FindUniqueOrThrow(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, accountColumns, r.table)

	account, err := r.scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NotFound(fmt.Sprintf("%s %s not found", r.role, id.String()))
	}
	if err != nil {
		r.log.Error("Failed to find unique account",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return nil, fmt.Errorf("find unique %s %s: %w", r.table, id.String(), err)
	}

	return account, nil
}

func (r *accountRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, accountColumns, r.table, notDeleted)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get all accounts",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all %s limit %d offset %d: %w", r.table, limit, offset, err)
	}
	defer rows.Close()

	var accounts []*entity.Account
	for rows.Next() {
		account, err := r.scan(rows)
		if err != nil {
			r.log.Error("Failed to scan account row", zap.Error(err))
			return nil, fmt.Errorf("scan %s row: %w", r.table, err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate %s rows: %w", r.table, err)
	}

	return accounts, nil
}

func (r *accountRepository) CountAll(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, r.table, notDeleted)

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Database error counting accounts", zap.Error(err))
		return 0, fmt.Errorf("count all %s: %w", r.table, err)
	}

	return count, nil
}

func (r *accountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $2, updated_at = $3 WHERE id = $1 AND %s`, r.table, notDeleted)

	result, err := r.db.Exec(ctx, query, id, status, at)
	if err != nil {
		r.log.Error("Failed to update account status",
			zap.Error(err),
			zap.String("account_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update %s status %s: %w", r.table, id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("%s %s not found", r.role, id.String()))
	}

	return nil
}

// SoftDelete writes the deletion timestamp unconditionally; a second call overwrites it.
func (r *accountRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET deleted_at = $2 WHERE id = $1`, r.table)

	result, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		r.log.Error("Failed to soft delete account",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return fmt.Errorf("soft delete %s %s: %w", r.table, id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound(fmt.Sprintf("%s %s not found", r.role, id.String()))
	}

	r.log.Info("Account soft deleted", zap.String("account_id", id.String()), zap.Time("deleted_at", at))
	return nil
}
