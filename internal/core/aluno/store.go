// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package aluno

import "context"

// Repository is implemented by the memory and Postgres stores. Lookups and
// updates of a missing id return [ErrNotFound]. Create assigns the id.
type Repository interface {
	List(context context.Context) ([]Aluno, error)
	Get(context context.Context, id int64) (*Aluno, error)
	Create(context context.Context, ra int64, nome string) (*Aluno, error)
	Update(context context.Context, aluno Aluno) (*Aluno, error)
}
