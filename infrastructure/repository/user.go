package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/snapix-app/snapix-api/infrastructure/database/postgres"
	"github.com/snapix-app/snapix-api/internal/domain"
)

const usersTable = "users"

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id string) (*domain.User, error)
	CreateUser(user *domain.User) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id, name, email, COALESCE(password_hash, ''), provider, active, created_at, updated_at").
		From(usersTable).
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.deserializeUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) GetUserByID(id string) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id, name, email, COALESCE(password_hash, ''), provider, active, created_at, updated_at").
		From(usersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.deserializeUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) deserializeUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}

	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Provider,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *userRepository) CreateUser(user *domain.User) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(usersTable).
		Columns("id", "name", "email", "password_hash", "provider", "active", "created_at", "updated_at").
		Values(
			user.ID,
			user.Name,
			user.Email,
			user.PasswordHash,
			user.Provider,
			user.Active,
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
			if pqErr.Code == "23505" {
				return fmt.Errorf("user already exists: %w", pqErr)
			}
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
