// Package docs holds the OpenAPI document served under /swagger, in swag format.
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
        "/rest/ships": {
            "get": {
                "description": "Filter, sort and paginate ships",
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "List ships",
                "parameters": [
                    {"type": "string", "description": "Name substring", "name": "name", "in": "query"},
                    {"type": "string", "description": "Planet substring", "name": "planet", "in": "query"},
                    {"type": "string", "description": "TRANSPORT, MILITARY or MERCHANT", "name": "shipType", "in": "query"},
                    {"type": "integer", "description": "prodDate strictly after, epoch ms", "name": "after", "in": "query"},
                    {"type": "integer", "description": "prodDate strictly before, epoch ms", "name": "before", "in": "query"},
                    {"type": "boolean", "description": "Used flag", "name": "isUsed", "in": "query"},
                    {"type": "number", "description": "Minimum speed", "name": "minSpeed", "in": "query"},
                    {"type": "number", "description": "Maximum speed", "name": "maxSpeed", "in": "query"},
                    {"type": "integer", "description": "Minimum crew size", "name": "minCrewSize", "in": "query"},
                    {"type": "integer", "description": "Maximum crew size", "name": "maxCrewSize", "in": "query"},
                    {"type": "number", "description": "Minimum rating", "name": "minRating", "in": "query"},
                    {"type": "number", "description": "Maximum rating", "name": "maxRating", "in": "query"},
                    {"type": "string", "default": "ID", "description": "ID, DATE, SPEED or RATING", "name": "order", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Zero-based page", "name": "pageNumber", "in": "query"},
                    {"type": "integer", "default": 3, "description": "Page size", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ds.Ship"}}},
                    "400": {"description": "error: message", "schema": {"type": "object"}}
                }
            },
            "post": {
                "description": "Validate a ship, compute its rating and store it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Create ship",
                "parameters": [
                    {"description": "Ship", "name": "ship", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ds.ShipInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ds.Ship"}},
                    "400": {"description": "error: message", "schema": {"type": "object"}}
                }
            }
        },
        "/rest/ships/count": {
            "get": {
                "description": "Count ships matching the same filters as the list",
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Count ships",
                "parameters": [
                    {"type": "string", "description": "Name substring", "name": "name", "in": "query"},
                    {"type": "string", "description": "Planet substring", "name": "planet", "in": "query"},
                    {"type": "string", "description": "TRANSPORT, MILITARY or MERCHANT", "name": "shipType", "in": "query"},
                    {"type": "integer", "description": "prodDate strictly after, epoch ms", "name": "after", "in": "query"},
                    {"type": "integer", "description": "prodDate strictly before, epoch ms", "name": "before", "in": "query"},
                    {"type": "boolean", "description": "Used flag", "name": "isUsed", "in": "query"},
                    {"type": "number", "description": "Minimum speed", "name": "minSpeed", "in": "query"},
                    {"type": "number", "description": "Maximum speed", "name": "maxSpeed", "in": "query"},
                    {"type": "integer", "description": "Minimum crew size", "name": "minCrewSize", "in": "query"},
                    {"type": "integer", "description": "Maximum crew size", "name": "maxCrewSize", "in": "query"},
                    {"type": "number", "description": "Minimum rating", "name": "minRating", "in": "query"},
                    {"type": "number", "description": "Maximum rating", "name": "maxRating", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "integer"}},
                    "400": {"description": "error: message", "schema": {"type": "object"}}
                }
            }
        },
        "/rest/ships/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Get ship",
                "parameters": [
                    {"type": "string", "description": "Ship ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ds.Ship"}},
                    "400": {"description": "error: message", "schema": {"type": "object"}},
                    "404": {"description": "error: message", "schema": {"type": "object"}}
                }
            },
            "post": {
                "description": "Change the supplied fields and recompute the rating",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Update ship",
                "parameters": [
                    {"type": "string", "description": "Ship ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "ship", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ds.ShipInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ds.Ship"}},
                    "400": {"description": "error: message", "schema": {"type": "object"}},
                    "404": {"description": "error: message", "schema": {"type": "object"}}
                }
            },
            "delete": {
                "tags": ["ships"],
                "summary": "Delete ship",
                "parameters": [
                    {"type": "string", "description": "Ship ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "error: message", "schema": {"type": "object"}},
                    "404": {"description": "error: message", "schema": {"type": "object"}}
                }
            }
        },
        "/rest/ships/{id}/image": {
            "post": {
                "description": "Store the image in MinIO and replace the ship photo",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["ships"],
                "summary": "Upload ship image",
                "parameters": [
                    {"type": "string", "description": "Ship ID", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Image", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ds.Ship"}},
                    "400": {"description": "error: message", "schema": {"type": "object"}},
                    "404": {"description": "error: message", "schema": {"type": "object"}}
                }
            }
        },
        "/rest/users/register": {
            "post": {
                "description": "Register an operator with login and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new operator",
                "parameters": [
                    {"description": "User info", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ds.User"}}
                ],
                "responses": {
                    "201": {"description": "data: registered user", "schema": {"type": "object"}},
                    "400": {"description": "error: message", "schema": {"type": "object"}},
                    "409": {"description": "error: message", "schema": {"type": "object"}}
                }
            }
        },
        "/rest/users/login": {
            "post": {
                "description": "Check credentials and return a JWT",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Login operator",
                "responses": {
                    "200": {"description": "data: {token: string}", "schema": {"type": "object"}},
                    "400": {"description": "error: message", "schema": {"type": "object"}},
                    "401": {"description": "error: message", "schema": {"type": "object"}}
                }
            }
        },
        "/rest/users/logout": {
            "post": {
                "description": "Revoke the active JWT",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Logout operator",
                "responses": {
                    "200": {"description": "message: string", "schema": {"type": "object"}},
                    "401": {"description": "error: message", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "ds.Ship": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "planet": {"type": "string"},
                "shipType": {"type": "string", "enum": ["TRANSPORT", "MILITARY", "MERCHANT"]},
                "prodDate": {"type": "integer", "description": "epoch milliseconds"},
                "isUsed": {"type": "boolean"},
                "speed": {"type": "number"},
                "crewSize": {"type": "integer"},
                "rating": {"type": "number"},
                "photoUrl": {"type": "string"}
            }
        },
        "ds.ShipInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "planet": {"type": "string"},
                "shipType": {"type": "string", "enum": ["TRANSPORT", "MILITARY", "MERCHANT"]},
                "prodDate": {"type": "integer", "description": "epoch milliseconds"},
                "isUsed": {"type": "boolean"},
                "speed": {"type": "number"},
                "crewSize": {"type": "integer"}
            }
        },
        "ds.User": {
            "type": "object",
            "properties": {
                "userId": {"type": "integer"},
                "login": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Space Fleet API",
	Description:      "Registry of spaceships with filtering, rating and partial updates",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
