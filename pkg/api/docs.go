package api

import "github.com/swaggo/swag"

// Regenerate with: swag init -g server.go -d pkg/api -o pkg/api --packageName api --outputTypes go

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
        "/health": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/document": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["document"],
                "summary": "Describe the open log",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DocumentInfo"}}}
            }
        },
        "/document/adif": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["text/plain"],
                "tags": ["document"],
                "summary": "Generate ADIF",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/fields": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["schema"],
                "summary": "List schema fields",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/columns": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["schema"],
                "summary": "Grid column model",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/validate": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["schema"],
                "summary": "Validate a field value",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.ValidateRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/records": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "List records",
                "parameters": [
                    {"type": "string", "name": "filter", "in": "query"},
                    {"type": "string", "name": "sort", "in": "query"},
                    {"type": "boolean", "name": "desc", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Add a blank record",
                "responses": {"201": {"description": "Created"}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Delete records",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.DeleteRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/records/{id}/fields/{field}": {
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Commit a cell",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "field", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CellRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/file/open": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["file"],
                "summary": "Open a log file",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.PathRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/file/save": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["file"],
                "summary": "Save the log",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/file/save-as": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["file"],
                "summary": "Save the log to a new path",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.PathRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        }
    },
    "definitions": {
        "api.CellRequest": {"type": "object", "properties": {"value": {"type": "string"}}},
        "api.DeleteRequest": {"type": "object", "properties": {"ids": {"type": "array", "items": {"type": "string"}}}},
        "api.DocumentInfo": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "path": {"type": "string"},
                "modified": {"type": "boolean"},
                "header": {"type": "string"},
                "header_fields": {"type": "object"},
                "count": {"type": "integer"}
            }
        },
        "api.PathRequest": {"type": "object", "properties": {"path": {"type": "string"}}},
        "api.ValidateRequest": {"type": "object", "properties": {"field": {"type": "string"}, "value": {"type": "string"}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "LogMacster REST API",
	Description:      "HTTP grid API for editing an ADIF amateur radio log.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
