package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/snapix-app/snapix-api/infrastructure/database/postgres"
	"github.com/snapix-app/snapix-api/internal/domain"
)

const adAccountsTable = "ad_accounts"

type AdAccountRepository interface {
	GetConnectedAccount(userEmail string) (*domain.AdAccount, error)
	DeleteByCreator(userEmail string) error
	Insert(account *domain.AdAccount) error
	UpdateStatus(id string, status domain.AdAccountStatus, clearToken bool) error
	TouchLastSync(id string, at time.Time) error
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

// GetConnectedAccount resolve a conta conectada do usuário. A identidade do
// dono foi historicamente gravada em três colunas (created_by e os aliases
// legados created_by_email e owner_email); a precedência é fixa e expressa
// no ORDER BY: created_by, depois created_by_email, depois owner_email
func (r *adAccountRepository) GetConnectedAccount(userEmail string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("id, account_id, account_name, COALESCE(access_token, ''), currency, status, created_by, created_by_email, owner_email, last_sync, last_error, created_at, updated_at").
		From(adAccountsTable).
		Where(squirrel.And{
			squirrel.Eq{"status": domain.AdAccountStatusConnected},
			squirrel.Or{
				squirrel.Eq{"created_by": userEmail},
				squirrel.Eq{"created_by_email": userEmail},
				squirrel.Eq{"owner_email": userEmail},
			},
		}).
		OrderByClause(
			"CASE WHEN created_by = ? THEN 0 WHEN created_by_email = ? THEN 1 ELSE 2 END, updated_at DESC",
			userEmail, userEmail,
		).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(query, args...)

	account, err := r.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (r *adAccountRepository) deserializeAccount(row *sql.Row) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}

	if err := row.Scan(
		&account.ID,
		&account.AccountID,
		&account.AccountName,
		&account.AccessToken,
		&account.Currency,
		&account.Status,
		&account.CreatedBy,
		&account.CreatedByEmail,
		&account.OwnerEmail,
		&account.LastSync,
		&account.LastError,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteByCreator remove todos os registros do usuário em qualquer uma das
// colunas de identidade. Usado na reconexão (delete-then-insert), que é a
// garantia de no máximo uma conta conectada por usuário
func (r *adAccountRepository) DeleteByCreator(userEmail string) error {
	query, args, err := squirrel.
		Delete(adAccountsTable).
		Where(squirrel.Or{
			squirrel.Eq{"created_by": userEmail},
			squirrel.Eq{"created_by_email": userEmail},
			squirrel.Eq{"owner_email": userEmail},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *adAccountRepository) Insert(account *domain.AdAccount) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(adAccountsTable).
		Columns("id", "account_id", "account_name", "access_token", "currency", "status", "created_by", "created_at", "updated_at").
		Values(
			account.ID,
			account.AccountID,
			account.AccountName,
			account.AccessToken,
			account.Currency,
			account.Status,
			account.CreatedBy,
			squirrel.Expr("NOW()"),
			squirrel.Expr("NOW()"),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateStatus troca o status da conta e, no desconectar, limpa a credencial
func (r *adAccountRepository) UpdateStatus(id string, status domain.AdAccountStatus, clearToken bool) error {
	queryBuilder := squirrel.
		Update(adAccountsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if clearToken {
		queryBuilder = queryBuilder.Set("access_token", nil)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("ad account not found: %s", id)
	}

	return nil
}

func (r *adAccountRepository) TouchLastSync(id string, at time.Time) error {
	query, args, err := squirrel.
		Update(adAccountsTable).
		Set("last_sync", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}
