package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-adoptions/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, species, birth_date,
			adopted, owner_user_id, image,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		p.Species,
		toNullTime(p.BirthDate),
		p.Adopted,
		toNullString(p.OwnerUserID),
		p.Image,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// Update no toca adopted ni owner_user_id: esa transición es exclusiva
// de ClaimForAdoption/ReleaseClaim.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			birth_date = $4,
			image = $5,
			updated_at = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		toNullTime(p.BirthDate),
		p.Image,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, species, birth_date,
			adopted, owner_user_id, image,
			created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, species, birth_date,
			adopted, owner_user_id, image,
			created_at, updated_at
		FROM pets
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ClaimForAdoption es el check-and-set del workflow: el WHERE
// adopted = FALSE serializa a nivel de fila, así dos invocaciones
// concurrentes (incluso en procesos distintos) no pueden ganar ambas.
func (r *PetsRepo) ClaimForAdoption(ctx context.Context, petID, ownerUserID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adopted = TRUE, owner_user_id = $2, updated_at = $3
		WHERE id = $1 AND adopted = FALSE
	`, petID, ownerUserID, at)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n > 0 {
		return nil
	}

	// Sin match: o no existe, o ya estaba adoptada. Desambiguamos.
	var adopted bool
	err = r.db.QueryRowContext(ctx,
		`SELECT adopted FROM pets WHERE id = $1`, petID,
	).Scan(&adopted)
	if err == sql.ErrNoRows {
		return pets.ErrNotFound
	}
	if err != nil {
		return err
	}
	return pets.ErrAlreadyAdopted
}

// ReleaseClaim revierte solo el claim propio; si el owner no coincide
// (otro workflow ya adoptó) no toca nada.
func (r *PetsRepo) ReleaseClaim(ctx context.Context, petID, ownerUserID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adopted = FALSE, owner_user_id = NULL, updated_at = $3
		WHERE id = $1 AND owner_user_id = $2 AND adopted = TRUE
	`, petID, ownerUserID, at)
	return err
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var bd sql.NullTime
	var owner sql.NullString

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&bd,
		&p.Adopted,
		&owner,
		&p.Image,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	if bd.Valid {
		t := bd.Time
		p.BirthDate = &t
	}
	if owner.Valid {
		p.OwnerUserID = owner.String
	}
	return p, nil
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
