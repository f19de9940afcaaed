package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-adoptions/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (
			id, first_name, last_name, email, password, role,
			last_connection, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		toNullTime(u.LastConnection),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for _, petID := range u.Pets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO user_pets (user_id, pet_id) VALUES ($1,$2)
			ON CONFLICT DO NOTHING
		`, u.ID, petID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			password = $5,
			role = $6,
			last_connection = $7,
			updated_at = $8
		WHERE id = $1
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		u.Password,
		string(u.Role),
		toNullTime(u.LastConnection),
		u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return users.User{}, users.ErrNotFound
	}
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) getOne(ctx context.Context, where string, arg any) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, first_name, last_name, email, password, role,
			last_connection, created_at, updated_at
		FROM users
	`+where, arg)

	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}

	pets, err := r.petsOf(ctx, u.ID)
	if err != nil {
		return users.User{}, err
	}
	u.Pets = pets

	return u, nil
}

func (r *UsersRepo) ListAll(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, first_name, last_name, email, password, role,
			last_connection, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		u.Pets = []string{}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// una sola pasada por user_pets en vez de una query por usuario
	byUser := make(map[string][]string, len(out))
	prows, err := r.db.QueryContext(ctx, `SELECT user_id, pet_id FROM user_pets`)
	if err != nil {
		return nil, err
	}
	defer prows.Close()

	for prows.Next() {
		var userID, petID string
		if err := prows.Scan(&userID, &petID); err != nil {
			return nil, err
		}
		byUser[userID] = append(byUser[userID], petID)
	}
	if err := prows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if pets, ok := byUser[out[i].ID]; ok {
			out[i].Pets = pets
		}
	}

	return out, nil
}

// AddPet es idempotente vía la PK de user_pets.
func (r *UsersRepo) AddPet(ctx context.Context, userID, petID string) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return users.ErrNotFound
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_pets (user_id, pet_id) VALUES ($1,$2)
		ON CONFLICT DO NOTHING
	`, userID, petID)
	return err
}

func (r *UsersRepo) RemovePet(ctx context.Context, userID, petID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_pets WHERE user_id = $1 AND pet_id = $2`, userID, petID)
	return err
}

func (r *UsersRepo) petsOf(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT pet_id FROM user_pets WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var petID string
		if err := rows.Scan(&petID); err != nil {
			return nil, err
		}
		out = append(out, petID)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (users.User, error) {
	var u users.User
	var role string
	var lastConn sql.NullTime

	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&role,
		&lastConn,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, err
	}

	u.Role = users.Role(role)
	if lastConn.Valid {
		t := lastConn.Time
		u.LastConnection = &t
	}
	return u, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
