// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package aluno

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepository keeps alunos in insertion order behind a mutex.
type MemoryRepository struct {
	mu     sync.RWMutex
	alunos []Aluno
	lastID int64
}

// NewMemoryRepository creates a store holding the given records. The id
// counter resumes after the highest seeded id.
func NewMemoryRepository(seed ...Aluno) *MemoryRepository {
	repository := &MemoryRepository{alunos: slices.Clone(seed)}
	for _, record := range seed {
		repository.lastID = max(repository.lastID, record.ID)
	}
	return repository
}

func (repository *MemoryRepository) List(_ context.Context) ([]Aluno, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	// Never nil so the list always encodes as a JSON array.
	return append([]Aluno{}, repository.alunos...), nil
}

func (repository *MemoryRepository) Get(_ context.Context, id int64) (*Aluno, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	index := repository.indexOf(id)
	if index < 0 {
		return nil, ErrNotFound
	}
	found := repository.alunos[index]
	return &found, nil
}

func (repository *MemoryRepository) Create(_ context.Context, ra int64, nome string) (*Aluno, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.lastID++
	created := Aluno{ID: repository.lastID, RA: ra, Nome: nome}
	repository.alunos = append(repository.alunos, created)
	return &created, nil
}

func (repository *MemoryRepository) Update(_ context.Context, aluno Aluno) (*Aluno, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	index := repository.indexOf(aluno.ID)
	if index < 0 {
		return nil, ErrNotFound
	}
	repository.alunos[index] = aluno
	return &aluno, nil
}

// indexOf must be called with the lock held.
func (repository *MemoryRepository) indexOf(id int64) int {
	return slices.IndexFunc(repository.alunos, func(record Aluno) bool { return record.ID == id })
}
