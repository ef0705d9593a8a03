// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// AlunoTableRef represents the 'aluno' table
type AlunoTableRef struct {
	Table string
	ID    string
	RA    string
	Nome  string
}

// AlunoTable is the schema definition for aluno
var AlunoTable = AlunoTableRef{
	Table: "aluno",
	ID:    "id",
	RA:    "ra",
	Nome:  "nome",
}

// Columns returns all columns in scan order.
func (t AlunoTableRef) Columns() []string {
	return []string{t.ID, t.RA, t.Nome}
}
