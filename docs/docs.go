// Package docs registers the OpenAPI document served at /swagger.
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
        "/api/v1/messages": {
            "post": {
                "description": "Interprets the text and either schedules an event in Google Calendar or replies conversationally.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Send a message to the assistant",
                "parameters": [
                    {
                        "description": "User message",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.messageReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.messageResp"}},
                    "400": {"description": "Empty message", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/events/upcoming": {
            "get": {
                "description": "Returns the caller's events for the next days (default 7).",
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "List upcoming events",
                "parameters": [
                    {"type": "integer", "description": "Days ahead (1-31, default 7)", "name": "days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.upcomingResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Not signed in", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Calendar unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/auth/google": {
            "get": {
                "description": "Redirects the browser to the Google consent screen.",
                "tags": ["Auth"],
                "summary": "Start Google sign-in",
                "responses": {
                    "302": {"description": "Found"},
                    "503": {"description": "Sign-in not configured", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/auth/google/callback": {
            "get": {
                "description": "Exchanges the authorization code, creates a session and redirects to the UI.",
                "tags": ["Auth"],
                "summary": "Google sign-in callback",
                "parameters": [
                    {"type": "string", "description": "OAuth state", "name": "state", "in": "query", "required": true},
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query", "required": true}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/auth/status": {
            "get": {
                "description": "Reports whether the browser has a live Google Calendar session.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Connection status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.statusResp"}}}
            }
        },
        "/auth/login": {
            "post": {
                "description": "Tells the UI where to send the browser to connect Google Calendar.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Begin sign-in",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.loginResp"}}}
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Drops the server-side session and clears the cookie.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign out",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.logoutResp"}}}
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.messageReq": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "http.messageResp": {
            "type": "object",
            "properties": {
                "reply": {"type": "string"},
                "kind": {"type": "string"},
                "event_id": {"type": "string"},
                "link": {"type": "string"}
            }
        },
        "http.eventResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "all_day": {"type": "boolean"},
                "start": {"type": "string"},
                "end": {"type": "string"},
                "link": {"type": "string"}
            }
        },
        "http.upcomingResp": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/http.eventResp"}},
                "count": {"type": "integer"}
            }
        },
        "http.statusResp": {
            "type": "object",
            "properties": {
                "connected": {"type": "boolean"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "method": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.loginResp": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "redirect_to_oauth": {"type": "boolean"},
                "url": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "http.logoutResp": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Assistente Agenda API",
	Description:      "Conversational scheduling assistant: natural-language messages become Google Calendar events.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
