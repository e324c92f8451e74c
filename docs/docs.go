// Package docs holds the committed Swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users/register": {
            "post": {
                "tags": ["users"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "email": {"type": "string", "example": "user@example.com"},
                                "password": {"type": "string", "example": "secret"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "User registered successfully"},
                    "400": {"description": "Missing fields or user already exists"}
                }
            }
        },
        "/users/login": {
            "post": {
                "tags": ["users"],
                "summary": "Login and receive a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "email": {"type": "string", "example": "user@example.com"},
                                "password": {"type": "string", "example": "secret"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Login successful, body carries token and user"},
                    "400": {"description": "Unknown user or invalid password"}
                }
            }
        },
        "/tasks": {
            "post": {
                "tags": ["tasks"],
                "summary": "Create a task",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created task"},
                    "400": {"description": "Validation error"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "get": {
                "tags": ["tasks"],
                "summary": "List tasks with optional filters",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "status", "type": "string", "enum": ["pending", "completed"]},
                    {"in": "query", "name": "category", "type": "string"},
                    {"in": "query", "name": "search", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Task list"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["tasks"],
                "summary": "Get a task by ID",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Task"},
                    "404": {"description": "Task not found"}
                }
            },
            "put": {
                "tags": ["tasks"],
                "summary": "Update a task",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Updated task"},
                    "404": {"description": "Task not found"}
                }
            },
            "delete": {
                "tags": ["tasks"],
                "summary": "Delete a task",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Task deleted successfully"},
                    "404": {"description": "Task not found"}
                }
            }
        },
        "/tasks/{id}/toggle": {
            "patch": {
                "tags": ["tasks"],
                "summary": "Toggle a task between pending and completed",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "Toggled task"},
                    "404": {"description": "Task not found"}
                }
            }
        },
        "/text/save": {
            "post": {
                "tags": ["text"],
                "summary": "Save a text note",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "responses": {
                    "201": {"description": "Text saved successfully"},
                    "400": {"description": "Empty text"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/text/texts": {
            "get": {
                "tags": ["text"],
                "summary": "List the caller's text notes",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Note list, newest first"},
                    "401": {"description": "Unauthorized"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Task Manager API",
	Description:      "Multi-user task tracker with auth, filters and text notes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
