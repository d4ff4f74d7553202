package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tahfizh 8A API",
        "description": "Hafalan and murajaah records of the Tahfizh class",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Teacher session"},
        {"name": "Students", "description": "Class roster"},
        {"name": "Surahs", "description": "Chapter catalog and verse options"},
        {"name": "Quotes", "description": "Motivational quotes"},
        {"name": "Hafalan", "description": "Graded memorisation submissions"},
        {"name": "Murajaah", "description": "Revision sessions at home and in class"},
        {"name": "Recap", "description": "Class level aggregation"},
        {"name": "Reports", "description": "Printable documents"}
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"summary": "Readiness check", "responses": {"200": {"description": "Ready"}, "503": {"description": "Record store unreachable"}}}
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Open a teacher session",
                "parameters": [{"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {
                    "200": {"description": "Token issued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Wrong password", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {"tags": ["Authentication"], "summary": "Close the teacher session", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/students": {
            "get": {"tags": ["Students"], "summary": "List the class roster", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student",
                "parameters": [{"$ref": "#/parameters/studentId"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown student"}}
            }
        },
        "/surahs": {
            "get": {
                "tags": ["Surahs"],
                "summary": "List chapters",
                "parameters": [{"in": "query", "name": "studentId", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/surahs/{name}/ayat": {
            "get": {
                "tags": ["Surahs"],
                "summary": "List selectable verse numbers",
                "parameters": [{"in": "path", "name": "name", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/quotes": {
            "get": {"tags": ["Quotes"], "summary": "List quotes", "responses": {"200": {"description": "OK"}}}
        },
        "/quotes/random": {
            "get": {"tags": ["Quotes"], "summary": "Random quote", "responses": {"200": {"description": "OK"}}}
        },
        "/students/{id}/hafalan": {
            "get": {
                "tags": ["Hafalan"],
                "summary": "List hafalan records of a student, newest first",
                "parameters": [{"$ref": "#/parameters/studentId"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown student"}}
            },
            "post": {
                "tags": ["Hafalan"],
                "summary": "Record a hafalan submission",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/studentId"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/HafalanInput"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}, "401": {"description": "Teacher session required"}}
            }
        },
        "/hafalan/{id}": {
            "put": {
                "tags": ["Hafalan"],
                "summary": "Update a hafalan record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/recordId"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/HafalanInput"}}
                ],
                "responses": {"200": {"description": "Updated"}, "404": {"description": "Unknown record"}}
            },
            "delete": {
                "tags": ["Hafalan"],
                "summary": "Delete a hafalan record",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/recordId"}],
                "responses": {"200": {"description": "Deleted"}, "404": {"description": "Unknown record"}}
            }
        },
        "/students/{id}/murajaah": {
            "get": {
                "tags": ["Murajaah"],
                "summary": "List murajaah sessions of a student",
                "parameters": [{"$ref": "#/parameters/studentId"}, {"$ref": "#/parameters/murajaahType"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Murajaah"],
                "summary": "Log a murajaah session; class sessions need a teacher token",
                "parameters": [
                    {"$ref": "#/parameters/studentId"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/MurajaahInput"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error"}, "401": {"description": "Teacher session required"}}
            }
        },
        "/murajaah": {
            "get": {
                "tags": ["Murajaah"],
                "summary": "List murajaah sessions of the class",
                "parameters": [{"$ref": "#/parameters/murajaahType"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/murajaah/{id}": {
            "put": {
                "tags": ["Murajaah"],
                "summary": "Update a murajaah session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/recordId"},
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/MurajaahInput"}}
                ],
                "responses": {"200": {"description": "Updated"}}
            },
            "delete": {
                "tags": ["Murajaah"],
                "summary": "Delete a murajaah session",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/recordId"}],
                "responses": {"200": {"description": "Deleted"}}
            }
        },
        "/recap/dashboard": {
            "get": {"tags": ["Recap"], "summary": "Class dashboard statistics", "responses": {"200": {"description": "OK"}}}
        },
        "/recap/hafalan": {
            "get": {
                "tags": ["Recap"],
                "summary": "Class hafalan recap",
                "parameters": [{"$ref": "#/parameters/start"}, {"$ref": "#/parameters/end"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Malformed period"}}
            }
        },
        "/recap/murajaah": {
            "get": {
                "tags": ["Recap"],
                "summary": "Parent murajaah compliance",
                "parameters": [{"$ref": "#/parameters/start"}, {"$ref": "#/parameters/end"}, {"$ref": "#/parameters/target"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Malformed period or target"}}
            }
        },
        "/reports/students/{id}/hafalan": {
            "get": {
                "tags": ["Reports"],
                "summary": "Per-student hafalan report",
                "produces": ["text/html", "application/pdf", "text/csv"],
                "parameters": [{"$ref": "#/parameters/studentId"}, {"$ref": "#/parameters/format"}],
                "responses": {"200": {"description": "Document"}, "404": {"description": "Unknown student"}}
            }
        },
        "/reports/students/{id}/murajaah": {
            "get": {
                "tags": ["Reports"],
                "summary": "Per-student murajaah report",
                "produces": ["text/html", "application/pdf", "text/csv"],
                "parameters": [{"$ref": "#/parameters/studentId"}, {"$ref": "#/parameters/murajaahType"}, {"$ref": "#/parameters/format"}],
                "responses": {"200": {"description": "Document"}, "404": {"description": "Unknown student"}}
            }
        },
        "/reports/hafalan": {
            "get": {
                "tags": ["Reports"],
                "summary": "Class hafalan recap document",
                "produces": ["text/html", "application/pdf", "text/csv"],
                "parameters": [{"$ref": "#/parameters/start"}, {"$ref": "#/parameters/end"}, {"$ref": "#/parameters/format"}],
                "responses": {"200": {"description": "Document"}}
            }
        },
        "/reports/murajaah": {
            "get": {
                "tags": ["Reports"],
                "summary": "Parent murajaah compliance document",
                "produces": ["text/html", "application/pdf", "text/csv"],
                "parameters": [{"$ref": "#/parameters/start"}, {"$ref": "#/parameters/end"}, {"$ref": "#/parameters/target"}, {"$ref": "#/parameters/format"}],
                "responses": {"200": {"description": "Document"}}
            }
        }
    },
    "parameters": {
        "studentId": {"in": "path", "name": "id", "type": "string", "required": true, "description": "Student ID"},
        "recordId": {"in": "path", "name": "id", "type": "string", "required": true, "description": "Record ID"},
        "murajaahType": {"in": "query", "name": "type", "type": "string", "enum": ["home", "class"]},
        "start": {"in": "query", "name": "start", "type": "string", "format": "date"},
        "end": {"in": "query", "name": "end", "type": "string", "format": "date"},
        "target": {"in": "query", "name": "target", "type": "integer", "minimum": 1},
        "format": {"in": "query", "name": "format", "type": "string", "enum": ["html", "pdf", "csv", "xlsx"], "default": "html"}
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {"password": {"type": "string"}}
        },
        "HafalanInput": {
            "type": "object",
            "required": ["date"],
            "properties": {
                "date": {"type": "string", "format": "date"},
                "surah": {"type": "string"},
                "ayatStart": {"type": "integer"},
                "ayatEnd": {"type": "integer"},
                "score": {"type": "integer", "minimum": 1, "maximum": 100},
                "notes": {"type": "string"},
                "absent": {"type": "boolean"}
            }
        },
        "MurajaahInput": {
            "type": "object",
            "required": ["date", "surah", "status"],
            "properties": {
                "date": {"type": "string", "format": "date"},
                "surah": {"type": "string"},
                "status": {"type": "string", "enum": ["Lancar", "Kurang Lancar", "Tidak Lancar"]},
                "type": {"type": "string", "enum": ["home", "class"], "default": "home"}
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
