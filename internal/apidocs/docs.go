// Package apidocs registers the Swagger document of the Gradewise API.
package apidocs

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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Welcome message",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apihttp.HealthResponse"}}
                }
            }
        },
        "/db-test": {
            "get": {
                "description": "Reads the latest health check and records a new one.",
                "produces": ["application/json"],
                "summary": "Database connectivity test",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apihttp.DatabaseTestResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apihttp.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/apihttp.ErrorResponse"}}
                }
            }
        },
        "/greet": {
            "get": {
                "produces": ["application/json"],
                "summary": "Greet a user",
                "parameters": [
                    {"type": "string", "description": "Name to greet", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apihttp.GreetResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apihttp.ErrorResponse"}}
                }
            }
        },
        "/counter": {
            "get": {
                "produces": ["application/json"],
                "summary": "Current counter value",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apihttp.CounterResponse"}}
                }
            }
        },
        "/counter/increment": {
            "post": {
                "produces": ["application/json"],
                "summary": "Increment the counter",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apihttp.CounterResponse"}}
                }
            }
        },
        "/counter/decrement": {
            "post": {
                "produces": ["application/json"],
                "summary": "Decrement the counter",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apihttp.CounterResponse"}}
                }
            }
        },
        "/counter/add": {
            "post": {
                "produces": ["application/json"],
                "summary": "Add a value to the counter",
                "parameters": [
                    {"type": "integer", "description": "Value to add", "name": "value", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apihttp.CounterResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apihttp.ErrorResponse"}}
                }
            }
        },
        "/counter/reset": {
            "post": {
                "produces": ["application/json"],
                "summary": "Reset the counter to zero",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apihttp.CounterResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apihttp.CounterResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"}
            }
        },
        "apihttp.DatabaseStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "apihttp.DatabaseTestResponse": {
            "type": "object",
            "properties": {
                "current_time": {"type": "string"},
                "last_checked": {"type": "string"},
                "last_status": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "apihttp.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "apihttp.GreetResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "apihttp.HealthResponse": {
            "type": "object",
            "properties": {
                "database": {"$ref": "#/definitions/apihttp.DatabaseStatus"},
                "status": {"type": "string"},
                "time": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Gradewise API",
	Description:      "Backend API queried by the Gradewise front end.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
