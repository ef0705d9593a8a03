// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package aluno

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/aluno-api/internal/platform/request"
	"github.com/taibuivan/aluno-api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the handlers. The caller applies the auth gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAlunos)
	router.Post("/", handler.createAluno)
	router.Get("/{id}", handler.getAluno)
	router.Put("/{id}", handler.updateAluno)
}

func (handler *Handler) listAlunos(writer http.ResponseWriter, request *http.Request) {
	alunos, err := handler.service.ListAlunos(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, alunos)
}

func (handler *Handler) getAluno(writer http.ResponseWriter, request *http.Request) {
	alunoID, ok := requestutil.Int64Param(request, "id")
	if !ok {
		respond.Error(writer, request, ErrNotFound)
		return
	}

	found, err := handler.service.GetAluno(request.Context(), alunoID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createAluno(writer http.ResponseWriter, request *http.Request) {
	var input Aluno

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateAluno(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateAluno(writer http.ResponseWriter, request *http.Request) {
	// A non-numeric id can never match a record.
	alunoID, ok := requestutil.Int64Param(request, "id")
	if !ok {
		respond.Error(writer, request, ErrNotFound)
		return
	}

	var input Aluno
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateAluno(request.Context(), alunoID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}
