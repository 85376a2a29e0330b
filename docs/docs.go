// Package docs registers the OpenAPI document served at /swagger/*.
//
// Regenerate with `swag init -g cmd/api/main.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/usuario/login": {
            "post": {
                "tags": ["auth"],
                "summary": "User login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}}, "401": {"description": "Unauthorized"}, "403": {"description": "Blocked user"}}
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Admin login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            }
        },
        "/sessao": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current session",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            }
        },
        "/exercicios/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["exercicios"],
                "summary": "Get exercise",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}}, "404": {"description": "Not found"}}
            }
        },
        "/admin/logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["logs"],
                "summary": "List activity logs",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "limit", "type": "integer"},
                    {"in": "query", "name": "usuarioTipo", "type": "string"},
                    {"in": "query", "name": "acao", "type": "string"},
                    {"in": "query", "name": "usuarioNome", "type": "string"},
                    {"in": "query", "name": "startDate", "type": "string"},
                    {"in": "query", "name": "endDate", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/logsResponse"}}, "400": {"description": "Bad request"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            }
        },
        "/admin/logs/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["logs"],
                "summary": "Export activity logs",
                "produces": ["text/csv"],
                "parameters": [
                    {"in": "query", "name": "usuarioTipo", "type": "string"},
                    {"in": "query", "name": "acao", "type": "string"},
                    {"in": "query", "name": "usuarioNome", "type": "string"},
                    {"in": "query", "name": "startDate", "type": "string"},
                    {"in": "query", "name": "endDate", "type": "string"}
                ],
                "responses": {"200": {"description": "CSV file", "schema": {"type": "file"}}}
            }
        },
        "/admin/stats/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Admin dashboard",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/stats/atividades": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Activity report",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "dias", "type": "integer"},
                    {"in": "query", "name": "top", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/stats/usuarios": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "User statistics",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            }
        },
        "/admin/stats/exercicios": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Exercise statistics",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            }
        },
        "/admin/usuarios/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Block or unblock a user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/userStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response"}}, "404": {"description": "Not found"}}
            }
        },
        "/admin/exercicios/bulk-delete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Delete exercises in bulk",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/bulkDeleteRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/bulkResponse"}}, "400": {"description": "Bad request"}}
            }
        },
        "/admin/exercicios/bulk-update": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Update exercises in bulk",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/bulkUpdateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/bulkResponse"}}, "400": {"description": "Bad request"}}
            }
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Degraded"}}}
        }
    },
    "definitions": {
        "loginRequest": {
            "type": "object",
            "required": ["email", "senha"],
            "properties": {"email": {"type": "string"}, "senha": {"type": "string"}}
        },
        "response": {
            "type": "object",
            "properties": {
                "status": {"type": "boolean"},
                "msg": {"type": "string"},
                "codigo": {"type": "string"},
                "dados": {"type": "object"},
                "token": {"type": "string"}
            }
        },
        "userStatusRequest": {
            "type": "object",
            "required": ["ativo"],
            "properties": {"ativo": {"type": "boolean"}}
        },
        "bulkDeleteRequest": {
            "type": "object",
            "properties": {"ids": {"type": "array", "items": {"type": "integer"}}}
        },
        "bulkUpdateRequest": {
            "type": "object",
            "properties": {
                "ids": {"type": "array", "items": {"type": "integer"}},
                "updates": {"type": "object", "properties": {"dificuldade": {"type": "string"}, "tipo": {"type": "string"}}}
            }
        },
        "bulkResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "boolean"},
                "msg": {"type": "string"},
                "total": {"type": "integer"},
                "sucesso": {"type": "integer"},
                "token": {"type": "string"}
            }
        },
        "logsResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "boolean"},
                "logs": {"type": "array", "items": {"type": "object"}},
                "pagination": {
                    "type": "object",
                    "properties": {
                        "page": {"type": "integer"},
                        "limit": {"type": "integer"},
                        "total": {"type": "integer"},
                        "totalPages": {"type": "integer"}
                    }
                },
                "token": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Unifit API",
	Description:      "Authentication, activity log and admin panel API of the Unifit fitness app.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
