// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g internal/api/router.go
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/v1/accounts": {"post": {"tags": ["accounts"], "summary": "Create an account", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/v1/accounts/{id}": {
            "get": {"tags": ["accounts"], "summary": "Get an account", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["accounts"], "summary": "Replace an account", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/renters": {"post": {"tags": ["renters"], "summary": "Create a renter profile", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/v1/renters/{id}": {
            "get": {"tags": ["renters"], "summary": "Get a renter profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["renters"], "summary": "Replace a renter profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/memberships": {"post": {"tags": ["memberships"], "summary": "Create a membership tier", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/v1/memberships/tier": {"get": {"tags": ["memberships"], "summary": "Resolve the tier earned by a booking count", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/memberships/drafts": {
            "get": {"tags": ["memberships"], "summary": "List membership drafts", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["memberships"], "summary": "Save a membership draft locally", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/v1/memberships/{id}": {
            "get": {"tags": ["memberships"], "summary": "Get a membership tier", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["memberships"], "summary": "Replace a membership tier", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/memberships/{id}/renters": {"post": {"tags": ["memberships"], "summary": "Enrol a renter in a membership", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/rentals/validate": {"post": {"tags": ["rentals"], "summary": "Validate a rental interval", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/rentals/quote": {"post": {"tags": ["rentals"], "summary": "Price a rental interval", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/stations/nearby": {"get": {"tags": ["stations"], "summary": "Find stations around a point", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Rental Core API",
	Description:      "Accounts, renters, memberships, rental quotes and station lookup for the motorbike rental client.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
