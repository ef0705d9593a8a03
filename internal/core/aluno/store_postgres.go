// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package aluno

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/aluno-api/internal/platform/database/schema"
	"github.com/taibuivan/aluno-api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]Aluno, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		columns(), schema.AlunoTable.Table, schema.AlunoTable.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_alunos")
	}

	alunos, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Aluno])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_alunos")
	}

	if alunos == nil {
		alunos = []Aluno{}
	}
	return alunos, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Aluno, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		columns(), schema.AlunoTable.Table, schema.AlunoTable.ID,
	)

	found := &Aluno{}
	err := repository.db.QueryRow(context, query, id).Scan(&found.ID, &found.RA, &found.Nome)
	if err := notFound(dberr.Wrap(err, "get_aluno")); err != nil {
		return nil, err
	}
	return found, nil
}

func (repository *PostgresRepository) Create(context context.Context, ra int64, nome string) (*Aluno, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.AlunoTable.Table, schema.AlunoTable.RA, schema.AlunoTable.Nome, schema.AlunoTable.ID,
	)

	created := &Aluno{RA: ra, Nome: nome}
	if err := repository.db.QueryRow(context, query, ra, nome).Scan(&created.ID); err != nil {
		return nil, dberr.Wrap(err, "create_aluno")
	}
	return created, nil
}

func (repository *PostgresRepository) Update(context context.Context, aluno Aluno) (*Aluno, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1 RETURNING %s`,
		schema.AlunoTable.Table, schema.AlunoTable.RA, schema.AlunoTable.Nome, schema.AlunoTable.ID,
		columns(),
	)

	updated := &Aluno{}
	err := repository.db.QueryRow(context, query, aluno.ID, aluno.RA, aluno.Nome).Scan(&updated.ID, &updated.RA, &updated.Nome)
	if err := notFound(dberr.Wrap(err, "update_aluno")); err != nil {
		return nil, err
	}
	return updated, nil
}

func columns() string {
	return strings.Join(schema.AlunoTable.Columns(), ", ")
}

// notFound turns the storage sentinel into the client-facing 404.
func notFound(err error) error {
	if errors.Is(err, dberr.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
