// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package aluno

import (
	"context"
	"log/slog"

	"github.com/taibuivan/aluno-api/internal/platform/ctxutil"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (service *Service) ListAlunos(context context.Context) ([]Aluno, error) {
	return service.repo.List(context)
}

func (service *Service) GetAluno(context context.Context, id int64) (*Aluno, error) {
	return service.repo.Get(context, id)
}

// CreateAluno stores the record under a new id; any id in the input is ignored.
func (service *Service) CreateAluno(context context.Context, input Aluno) (*Aluno, error) {
	created, err := service.repo.Create(context, input.RA, input.Nome)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "aluno_created", slog.Int64("aluno_id", created.ID))
	return created, nil
}

// UpdateAluno replaces every field of the record with the given id.
func (service *Service) UpdateAluno(context context.Context, id int64, input Aluno) (*Aluno, error) {
	input.ID = id
	updated, err := service.repo.Update(context, input)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "aluno_updated", slog.Int64("aluno_id", id))
	return updated, nil
}
