// Package docs registers the OpenAPI document served by Swagger UI.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Number of users to skip", "name": "skip", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Maximum number of users", "name": "take", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ReadUser"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ValidationProblem"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User to create", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateUser"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ValidationProblem"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ReadUser"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["users"],
                "summary": "Replace a user",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"description": "New values", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateUser"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ValidationProblem"}},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "consumes": ["application/json-patch+json"],
                "tags": ["users"],
                "summary": "Patch a user",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true},
                    {"description": "JSON Patch operations", "name": "patch", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.PatchOperation"}}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ValidationProblem"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "handlers.PatchOperation": {
            "type": "object",
            "properties": {
                "from": {"type": "string"},
                "op": {"type": "string", "example": "replace"},
                "path": {"type": "string", "example": "/name"},
                "value": {}
            }
        },
        "handlers.ValidationProblem": {
            "type": "object",
            "properties": {
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "traceId": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "models.CreateUser": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string", "example": "ann@x.com"},
                "name": {"type": "string", "example": "Ann"},
                "password": {"type": "string", "minLength": 8, "example": "abcdefgh"}
            }
        },
        "models.ReadUser": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "ann@x.com"},
                "name": {"type": "string", "example": "Ann"}
            }
        },
        "models.UpdateUser": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string", "example": "ann@x.com"},
                "name": {"type": "string", "example": "Ann"},
                "password": {"type": "string", "maxLength": 8, "minLength": 8, "example": "abcdefgh"}
            }
        },
        "models.User": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "password": {"type": "string", "minLength": 8}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Users API",
	Description:      "Create, list, fetch, update, patch and delete user records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
