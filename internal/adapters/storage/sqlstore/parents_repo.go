package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bordoodles-api/internal/domain/catalog"
	"bordoodles-api/internal/domain/parents"
)

const parentColumns = `id, name, role, breed, color, weight, description, image`

type ParentsRepo struct {
	db *sql.DB
	d  dialect
}

var _ parents.Repository = (*ParentsRepo)(nil)

func (r *ParentsRepo) Insert(ctx context.Context, p parents.Parent) (parents.Parent, error) {
	q := fmt.Sprintf(`
		INSERT INTO parents (
			name, role,
			breed, color, weight,
			description, image
		) VALUES (%s)
		RETURNING id
	`, r.d.placeholders(1, 7))

	var id int64
	err := r.db.QueryRowContext(ctx, q,
		p.Name,
		p.Role,
		p.Breed,
		p.Color,
		p.Weight,
		p.Description,
		p.Image,
	).Scan(&id)
	if err != nil {
		return parents.Parent{}, catalog.Storage(err)
	}

	p.ID = id
	return p, nil
}

func (r *ParentsRepo) ListAll(ctx context.Context) ([]parents.Parent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+parentColumns+` FROM parents ORDER BY id ASC`)
	if err != nil {
		return nil, catalog.Storage(err)
	}
	defer rows.Close()

	out := make([]parents.Parent, 0)
	for rows.Next() {
		p, err := scanParent(rows)
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

func (r *ParentsRepo) FetchByID(ctx context.Context, id int64) (parents.Parent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+parentColumns+` FROM parents WHERE id = `+r.d.ph(1), id)

	p, err := scanParent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return parents.Parent{}, fmt.Errorf("parent %d: %w", id, catalog.ErrNotFound)
		}
		return parents.Parent{}, catalog.Storage(err)
	}
	return p, nil
}

func (r *ParentsRepo) UpdateByID(ctx context.Context, id int64, patch parents.Patch) (int64, error) {
	q, args := r.d.updateSQL("parents", patch.Columns())
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

func (r *ParentsRepo) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM parents WHERE id = `+r.d.ph(1), id)
	if err != nil {
		return 0, catalog.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, catalog.Storage(err)
	}
	return n, nil
}

func scanParent(s scanner) (parents.Parent, error) {
	var p parents.Parent
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Role,
		&p.Breed,
		&p.Color,
		&p.Weight,
		&p.Description,
		&p.Image,
	)
	return p, err
}
