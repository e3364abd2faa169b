package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Kosher Spots API",
        "description": "Kosher restaurant directory with live open/closed status",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Restaurants", "description": "Directory listings and live status"},
        {"name": "Auth", "description": "Operator login"},
        {"name": "Export", "description": "Directory downloads"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Operator login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/restaurants": {
            "get": {
                "tags": ["Restaurants"],
                "summary": "List restaurants",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "city", "in": "query", "type": "string"},
                    {"name": "state", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string", "enum": ["meat", "dairy", "pareve"]},
                    {"name": "agency", "in": "query", "type": "string"},
                    {"name": "min_rating", "in": "query", "type": "number"},
                    {"name": "with_status", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Restaurants"],
                "summary": "Create restaurant",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRestaurantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/restaurants/cities": {
            "get": {
                "tags": ["Restaurants"],
                "summary": "List cities with active entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/restaurants/{id}": {
            "get": {
                "tags": ["Restaurants"],
                "summary": "Fetch one restaurant",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Restaurants"],
                "summary": "Update restaurant",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateRestaurantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Restaurants"],
                "summary": "Delete restaurant",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/restaurants/{id}/status": {
            "get": {
                "tags": ["Restaurants"],
                "summary": "Compute current open/closed status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RestaurantStatus"}}
                }
            }
        },
        "/export/restaurants": {
            "get": {
                "tags": ["Export"],
                "summary": "Export the directory as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "city", "in": "query", "type": "string"},
                    {"name": "state", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateRestaurantRequest": {
            "type": "object",
            "required": ["name", "address", "city", "state", "certifying_agency", "kosher_category"],
            "properties": {
                "name": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "zip": {"type": "string"},
                "phone": {"type": "string"},
                "certifying_agency": {"type": "string"},
                "kosher_category": {"type": "string", "enum": ["meat", "dairy", "pareve"]},
                "hours_open": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "google_rating": {"type": "number"},
                "google_review_count": {"type": "integer"},
                "website": {"type": "string"},
                "image_url": {"type": "string"}
            }
        },
        "UpdateRestaurantRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "hours_open": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "RestaurantStatus": {
            "type": "object",
            "properties": {
                "is_open": {"type": "boolean"},
                "status": {"type": "string", "enum": ["OPEN", "CLOSED", "UNKNOWN"]},
                "status_reason": {"type": "string"},
                "current_time_local": {"type": "string", "format": "date-time"},
                "timezone": {"type": "string"},
                "next_open_time": {"type": "string", "format": "date-time"},
                "hours_parsed": {"type": "boolean"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
