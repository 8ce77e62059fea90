// Package docs registers the OpenAPI description served by gin-swagger.
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
        "/transactions": {
            "get": {"tags": ["transactions"], "summary": "List transactions", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["transactions"], "summary": "Create a transaction", "security": [{"ApiKeyAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/transactions/{id}": {
            "get": {"tags": ["transactions"], "summary": "Get a transaction", "security": [{"ApiKeyAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["transactions"], "summary": "Update a transaction", "security": [{"ApiKeyAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["transactions"], "summary": "Delete a transaction", "security": [{"ApiKeyAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/summary": {
            "get": {"tags": ["summary"], "summary": "Income, expense and category breakdown", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/summary/monthly": {
            "get": {"tags": ["summary"], "summary": "Totals for one calendar month", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/summary/comparison": {
            "get": {"tags": ["summary"], "summary": "Month over month comparison", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List categories", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categories"], "summary": "Create a category", "security": [{"ApiKeyAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/categories/{id}": {
            "delete": {"tags": ["categories"], "summary": "Delete a category", "security": [{"ApiKeyAuth": []}], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/categories/reset": {
            "post": {"tags": ["categories"], "summary": "Restore default categories", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/settings": {
            "get": {"tags": ["settings"], "summary": "Get settings", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["settings"], "summary": "Update settings", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/settings/reset": {
            "post": {"tags": ["settings"], "summary": "Reset settings", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/profile": {
            "get": {"tags": ["profile"], "summary": "Get the profile", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"tags": ["profile"], "summary": "Complete onboarding", "security": [{"ApiKeyAuth": []}], "responses": {"201": {"description": "Created"}}},
            "delete": {"tags": ["profile"], "summary": "Clear the profile", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/sample-data": {
            "get": {"tags": ["data"], "summary": "Sample data mode", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["data"], "summary": "Toggle sample data mode", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/data": {
            "delete": {"tags": ["data"], "summary": "Clear all data", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/format/currency": {
            "get": {"tags": ["format"], "summary": "Format an amount", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/format/date": {
            "get": {"tags": ["format"], "summary": "Format a date", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fintrack API",
	Description:      "Personal finance tracker: transactions, categories and monthly summaries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
