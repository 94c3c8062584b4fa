// Package docs holds the OpenAPI document served at /swagger. Regenerate
// with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/calendar/id": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Resolve a calendar identifier",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Raw calendar input",
                        "name": "input",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/calendar/test": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "Test calendar connection",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Calendar ID, share URL, or base64 token",
                        "name": "calendar_id",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/cache": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Cache"],
                "summary": "Clear the calendar cache",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/cache/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cache"],
                "summary": "Cache statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Calendar"],
                "summary": "List calendar events",
                "description": "Fetch normalized events for a calendar and date range, served from cache when fresh",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Calendar ID, share URL, or base64 token",
                        "name": "calendar_id",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Window start (YYYY-MM-DD or a relative token like today, +1w)",
                        "name": "start_date",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Window end (YYYY-MM-DD or a relative token like today, +1w)",
                        "name": "end_date",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Calendar Gateway API",
	Description:      "Google Calendar event normalization and caching gateway.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
