package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/snapix-app/snapix-api/infrastructure/database/postgres"
)

const cacheEntriesTable = "cache_entries"

type CacheEntryRepository interface {
	Get(key, userEmail string) ([]byte, bool, error)
	Put(key, userEmail string, payload []byte, expiresAt time.Time) error
	Delete(key, userEmail string) error
	DeleteByUser(userEmail string) error
	DeleteExpired() (int64, error)
}

type cacheEntryRepository struct {
	conn *postgres.Connection
}

func NewCacheEntryRepository(conn *postgres.Connection) CacheEntryRepository {
	return &cacheEntryRepository{
		conn: conn,
	}
}

// Get retorna o payload da entrada se ela ainda não expirou. A verificação
// de expiração na leitura é a autoritativa: a varredura periódica só
// recolhe o lixo que sobrou
func (r *cacheEntryRepository) Get(key, userEmail string) ([]byte, bool, error) {
	query, args, err := squirrel.
		Select("payload").
		From(cacheEntriesTable).
		Where(squirrel.And{
			squirrel.Eq{"key": key},
			squirrel.Eq{"user_email": userEmail},
			squirrel.Expr("expires_at > NOW()"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	var payload []byte
	if err := r.conn.QueryRow(query, args...).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to execute query: %w", err)
	}

	return payload, true, nil
}

func (r *cacheEntryRepository) Put(key, userEmail string, payload []byte, expiresAt time.Time) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(cacheEntriesTable).
		Columns("key", "user_email", "payload", "expires_at", "created_at").
		Values(key, userEmail, payload, expiresAt, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (key, user_email) DO UPDATE SET
			payload = EXCLUDED.payload,
			expires_at = EXCLUDED.expires_at,
			created_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *cacheEntryRepository) Delete(key, userEmail string) error {
	query, args, err := squirrel.
		Delete(cacheEntriesTable).
		Where(squirrel.Eq{"key": key, "user_email": userEmail}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

// DeleteByUser invalida todas as entradas do usuário. Usado no refresh
// forçado e na troca de conta conectada
func (r *cacheEntryRepository) DeleteByUser(userEmail string) error {
	query, args, err := squirrel.
		Delete(cacheEntriesTable).
		Where(squirrel.Eq{"user_email": userEmail}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

// DeleteExpired remove as entradas vencidas. Chamado pela rotina agendada
func (r *cacheEntryRepository) DeleteExpired() (int64, error) {
	query, args, err := squirrel.
		Delete(cacheEntriesTable).
		Where(squirrel.Expr("expires_at <= NOW()")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return result.RowsAffected()
}
