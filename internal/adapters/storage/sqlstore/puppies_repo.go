package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bordoodles-api/internal/domain/catalog"
	"bordoodles-api/internal/domain/puppies"
)

const puppyColumns = `id, name, breed, color, gender, price, status, dob, description, images`

type PuppiesRepo struct {
	db *sql.DB
	d  dialect
}

var _ puppies.Repository = (*PuppiesRepo)(nil)

func (r *PuppiesRepo) Insert(ctx context.Context, p puppies.Puppy) (puppies.Puppy, error) {
	q := fmt.Sprintf(`
		INSERT INTO puppies (
			name, breed, color, gender,
			price, status, dob,
			description, images
		) VALUES (%s)
		RETURNING id
	`, r.d.placeholders(1, 9))

	if p.Images == nil {
		p.Images = catalog.StringList{}
	}

	var id int64
	err := r.db.QueryRowContext(ctx, q,
		p.Name,
		p.Breed,
		p.Color,
		p.Gender,
		puppies.PriceArg(p.Price),
		p.Status,
		puppies.DOBArg(p.DOB),
		p.Description,
		p.Images.Text(),
	).Scan(&id)
	if err != nil {
		return puppies.Puppy{}, catalog.Storage(err)
	}

	p.ID = id
	return p, nil
}

func (r *PuppiesRepo) ListAll(ctx context.Context) ([]puppies.Puppy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+puppyColumns+` FROM puppies ORDER BY id ASC`)
	if err != nil {
		return nil, catalog.Storage(err)
	}
	defer rows.Close()

	out := make([]puppies.Puppy, 0)
	for rows.Next() {
		p, err := scanPuppy(rows)
		if err != nil {
			return nil, catalog.Storage(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, catalog.Storage(err)
	}
	return out, nil
}

func (r *PuppiesRepo) FetchByID(ctx context.Context, id int64) (puppies.Puppy, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+puppyColumns+` FROM puppies WHERE id = `+r.d.ph(1), id)

	p, err := scanPuppy(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return puppies.Puppy{}, fmt.Errorf("puppy %d: %w", id, catalog.ErrNotFound)
		}
		return puppies.Puppy{}, catalog.Storage(err)
	}
	return p, nil
}

func (r *PuppiesRepo) UpdateByID(ctx context.Context, id int64, patch puppies.Patch) (int64, error) {
	q, args := r.d.updateSQL("puppies", patch.Columns())
	res, err := r.db.ExecContext(ctx, q, append(args, id)...)
	if err != nil {
		return 0, catalog.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, catalog.Storage(err)
	}
	return n, nil
}

func (r *PuppiesRepo) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM puppies WHERE id = `+r.d.ph(1), id)
	if err != nil {
		return 0, catalog.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, catalog.Storage(err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPuppy(s scanner) (puppies.Puppy, error) {
	var (
		p     puppies.Puppy
		price sql.NullInt64
		dob   *catalog.Date
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Breed,
		&p.Color,
		&p.Gender,
		&price,
		&p.Status,
		&dob,
		&p.Description,
		&p.Images,
	); err != nil {
		return puppies.Puppy{}, err
	}

	if price.Valid {
		v := int(price.Int64)
		p.Price = &v
	}
	p.DOB = dob
	return p, nil
}
