// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/aluno-api/internal/core/aluno"
	"github.com/taibuivan/aluno-api/internal/platform/constants"
	"github.com/taibuivan/aluno-api/internal/platform/middleware"
	"github.com/taibuivan/aluno-api/internal/users/auth"
)

// # OpenAPI Document

// OpenAPIDocument represents the OpenAPI 3.0 description served under /api-docs.
type OpenAPIDocument struct {
	OpenAPI    string              `yaml:"openapi" json:"openapi"`
	Info       InfoObject          `yaml:"info" json:"info"`
	Servers    []ServerObject      `yaml:"servers" json:"servers"`
	Tags       []TagObject         `yaml:"tags" json:"tags"`
	Paths      map[string]PathItem `yaml:"paths" json:"paths"`
	Components ComponentsObject    `yaml:"components" json:"components"`
}

// InfoObject contains API metadata.
type InfoObject struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Version     string `yaml:"version" json:"version"`
}

// ServerObject defines an API server.
type ServerObject struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description" json:"description"`
}

// TagObject defines an API tag.
type TagObject struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// ComponentsObject holds reusable schemas and the bearer security scheme.
type ComponentsObject struct {
	Schemas         map[string]*Schema        `yaml:"schemas" json:"schemas"`
	SecuritySchemes map[string]SecurityScheme `yaml:"securitySchemes" json:"securitySchemes"`
}

// SecurityScheme describes how protected operations authenticate.
type SecurityScheme struct {
	Type         string `yaml:"type" json:"type"`
	Scheme       string `yaml:"scheme" json:"scheme"`
	BearerFormat string `yaml:"bearerFormat" json:"bearerFormat"`
}

// PathItem describes operations available on a path.
type PathItem struct {
	Get  *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Post *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Put  *Operation `yaml:"put,omitempty" json:"put,omitempty"`
}

// Operation describes a single API operation.
type Operation struct {
	Summary     string                `yaml:"summary" json:"summary"`
	Tags        []string              `yaml:"tags,omitempty" json:"tags,omitempty"`
	Security    []map[string][]string `yaml:"security,omitempty" json:"security,omitempty"`
	Parameters  []Parameter           `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody          `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   map[string]Response   `yaml:"responses" json:"responses"`
}

// Parameter describes an operation parameter.
type Parameter struct {
	Name     string  `yaml:"name" json:"name"`
	In       string  `yaml:"in" json:"in"`
	Required bool    `yaml:"required,omitempty" json:"required,omitempty"`
	Schema   *Schema `yaml:"schema" json:"schema"`
}

// RequestBody describes a JSON request payload.
type RequestBody struct {
	Required bool                 `yaml:"required" json:"required"`
	Content  map[string]MediaType `yaml:"content" json:"content"`
}

// Response describes an operation response.
type Response struct {
	Description string               `yaml:"description" json:"description"`
	Content     map[string]MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// MediaType describes a media type and schema.
type MediaType struct {
	Schema *Schema `yaml:"schema" json:"schema"`
}

// Schema is the subset of JSON Schema the document needs.
type Schema struct {
	Ref         string             `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type        string             `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string             `yaml:"format,omitempty" json:"format,omitempty"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Example     any                `yaml:"example,omitempty" json:"example,omitempty"`
	Items       *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	Properties  map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// # Document Construction

const bearerSchemeName = "bearerAuth"

func ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func jsonContent(schema *Schema) map[string]MediaType {
	return map[string]MediaType{"application/json": {Schema: schema}}
}

func messageResponse(description string, example string) Response {
	return Response{
		Description: description,
		Content: jsonContent(&Schema{
			Ref: "#/components/schemas/Error", Example: map[string]string{constants.FieldMessage: example},
		}),
	}
}

// NewOpenAPIDocument describes every route mounted by [NewServer].
func NewOpenAPIDocument(serverURL string) OpenAPIDocument {
	protected := []map[string][]string{{bearerSchemeName: {}}}
	gateResponses := func(responses map[string]Response) map[string]Response {
		responses["401"] = messageResponse("Token ausente", middleware.MessageMissingToken)
		responses["403"] = messageResponse("Token inválido ou expirado", middleware.MessageAccessDenied)
		return responses
	}
	idParam := Parameter{Name: "id", In: "path", Required: true, Schema: &Schema{Type: "integer", Format: "int64"}}
	alunoBody := &RequestBody{Required: true, Content: jsonContent(ref("AlunoInput"))}

	return OpenAPIDocument{
		OpenAPI: "3.0.3",
		Info: InfoObject{
			Title:       "API de Alunos",
			Description: "CRUD de alunos protegido por token, com cadastro e login de usuários",
			Version:     constants.AppVersion,
		},
		Servers: []ServerObject{{URL: serverURL, Description: "Servidor local"}},
		Tags: []TagObject{
			{Name: "Alunos", Description: "Cadastro e consulta de alunos"},
			{Name: "Autenticação", Description: "Registro e login de usuários"},
		},
		Paths: map[string]PathItem{
			"/aluno": {
				Get: &Operation{
					Summary:  "Retorna todos os alunos",
					Tags:     []string{"Alunos"},
					Security: protected,
					Responses: gateResponses(map[string]Response{
						"200": {Description: "Lista de alunos", Content: jsonContent(&Schema{Type: "array", Items: ref("Aluno")})},
					}),
				},
				Post: &Operation{
					Summary:     "Cadastros de aluno",
					Tags:        []string{"Alunos"},
					Security:    protected,
					RequestBody: alunoBody,
					Responses: gateResponses(map[string]Response{
						"201": {Description: "Cadastro de alunos", Content: jsonContent(ref("Aluno"))},
					}),
				},
			},
			"/aluno/{id}": {
				Get: &Operation{
					Summary:    "Retorna um aluno",
					Tags:       []string{"Alunos"},
					Security:   protected,
					Parameters: []Parameter{idParam},
					Responses: gateResponses(map[string]Response{
						"200": {Description: "Aluno encontrado", Content: jsonContent(ref("Aluno"))},
						"404": messageResponse("Aluno não encontrado", aluno.MessageNotFound),
					}),
				},
				Put: &Operation{
					Summary:     "Atualização de aluno",
					Tags:        []string{"Alunos"},
					Security:    protected,
					Parameters:  []Parameter{idParam},
					RequestBody: alunoBody,
					Responses: gateResponses(map[string]Response{
						"200": {Description: "Aluno atualizado", Content: jsonContent(ref("Aluno"))},
						"404": messageResponse("Aluno não encontrado", aluno.MessageNotFound),
					}),
				},
			},
			"/auth/register": {
				Post: &Operation{
					Summary:     "Registra novo usuário",
					Tags:        []string{"Autenticação"},
					RequestBody: &RequestBody{Required: true, Content: jsonContent(ref("RegisterInput"))},
					Responses: map[string]Response{
						"201": messageResponse("Usuário criado com sucesso", auth.MessageRegistered),
						"400": messageResponse("Usuário já existe", auth.MessageDuplicateEmail),
					},
				},
			},
			"/auth/login": {
				Post: &Operation{
					Summary:     "Realiza login do usuário",
					Tags:        []string{"Autenticação"},
					RequestBody: &RequestBody{Required: true, Content: jsonContent(ref("LoginInput"))},
					Responses: map[string]Response{
						"200": {Description: "Login realizado com sucesso", Content: jsonContent(ref("Token"))},
						"401": messageResponse("Credenciais inválidas", auth.MessageInvalidCredentials),
					},
				},
			},
		},
		Components: ComponentsObject{
			Schemas: map[string]*Schema{
				"Aluno": {Type: "object", Properties: map[string]*Schema{
					"id":   {Type: "integer", Format: "int64", Description: "Identificador unico do aluno"},
					"nome": {Type: "string", Description: "Nome do aluno"},
					"ra":   {Type: "integer", Format: "int64", Description: "Número da matrícula"},
				}},
				"AlunoInput": {Type: "object", Properties: map[string]*Schema{
					"nome": {Type: "string", Description: "Nome do aluno"},
					"ra":   {Type: "integer", Format: "int64", Description: "Número da matrícula"},
				}},
				"RegisterInput": {Type: "object", Properties: map[string]*Schema{
					"nome":  {Type: "string"},
					"email": {Type: "string"},
					"senha": {Type: "string"},
				}},
				"LoginInput": {Type: "object", Properties: map[string]*Schema{
					"email": {Type: "string"},
					"senha": {Type: "string"},
				}},
				"Token": {Type: "object", Properties: map[string]*Schema{
					constants.FieldToken: {Type: "string", Description: "JWT válido por 1 hora"},
				}},
				"Error": {Type: "object", Properties: map[string]*Schema{
					constants.FieldMessage: {Type: "string"},
					constants.FieldCode:    {Type: "string"},
				}},
			},
			SecuritySchemes: map[string]SecurityScheme{
				bearerSchemeName: {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
			},
		},
	}
}

// # HTTP Delivery

// DocsHandler serves the catalog in YAML, JSON and as a Swagger UI page.
// Both encodings are rendered once at construction.
type DocsHandler struct {
	yamlBody []byte
	jsonBody []byte
}

// NewDocsHandler renders the document.
func NewDocsHandler(document OpenAPIDocument) (*DocsHandler, error) {
	yamlBody, err := yaml.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("api_docs_yaml_failed: %w", err)
	}

	jsonBody, err := json.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("api_docs_json_failed: %w", err)
	}

	return &DocsHandler{yamlBody: yamlBody, jsonBody: jsonBody}, nil
}

// Routes returns the /api-docs sub-router.
func (handler *DocsHandler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.page)
	router.Get("/openapi.yaml", handler.serve("application/yaml", handler.yamlBody))
	router.Get("/openapi.json", handler.serve(constants.ContentTypeJSON, handler.jsonBody))
	return router
}

func (handler *DocsHandler) serve(contentType string, body []byte) http.HandlerFunc {
	return func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set(constants.HeaderContentType, contentType)
		_, _ = writer.Write(body)
	}
}

const swaggerPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8">
  <title>API de Alunos</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({ url: "/api-docs/openapi.json", dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`

func (handler *DocsHandler) page(writer http.ResponseWriter, _ *http.Request) {
	writer.Header().Set(constants.HeaderContentType, "text/html; charset=utf-8")
	_, _ = writer.Write([]byte(swaggerPage))
}
