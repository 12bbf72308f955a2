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
        "/api/analyze-career": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["career"],
                "summary": "Recommend career paths for a profile",
                "parameters": [
                    {"description": "Profile", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProfileInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CareerAnalysisResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.MessageBody"}}
                }
            }
        },
        "/api/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Ask the career assistant",
                "parameters": [
                    {"type": "string", "description": "Chat session id", "name": "X-Session-ID", "in": "header"},
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ChatResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.MessageBody"}}
                }
            }
        },
        "/api/chat/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Transcript of the current chat session",
                "parameters": [
                    {"type": "string", "description": "Chat session id", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ChatHistoryResponse"}}
                }
            },
            "delete": {
                "tags": ["chat"],
                "summary": "Drop the transcript of the current chat session",
                "parameters": [
                    {"type": "string", "description": "Chat session id", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/api/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "User", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by id",
                "parameters": [{"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/users/by-username/{username}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by username",
                "parameters": [{"type": "string", "description": "Username", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/users/{id}/careers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Recorded career recommendations of a user",
                "parameters": [{"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/users/{id}/chat-history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Recorded chat history of a user",
                "parameters": [{"type": "integer", "description": "User id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/api/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "dto.ProfileInput": {
            "type": "object",
            "required": ["name", "education", "skills", "interests", "careerGoals"],
            "properties": {
                "name": {"type": "string"},
                "education": {"type": "string"},
                "skills": {"type": "string"},
                "interests": {"type": "string"},
                "careerGoals": {"type": "string"},
                "userId": {"type": "integer"}
            }
        },
        "dto.CareerRecommendation": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "matchPercentage": {"type": "integer"},
                "requiredSkills": {"type": "array", "items": {"type": "string"}},
                "skillGaps": {"type": "array", "items": {"type": "string"}},
                "recommendedCourses": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.CareerAnalysisResponse": {
            "type": "object",
            "properties": {
                "careers": {"type": "array", "items": {"$ref": "#/definitions/dto.CareerRecommendation"}}
            }
        },
        "dto.ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"},
                "userId": {"type": "integer"}
            }
        },
        "dto.ChatResponse": {
            "type": "object",
            "properties": {"response": {"type": "string"}}
        },
        "dto.ChatTurn": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "isBot": {"type": "boolean"}}
        },
        "dto.ChatHistoryResponse": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "turns": {"type": "array", "items": {"$ref": "#/definitions/dto.ChatTurn"}}
            }
        },
        "dto.CreateUserRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "name": {"type": "string"},
                "education": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "interests": {"type": "array", "items": {"type": "string"}},
                "careerGoals": {"type": "string"}
            }
        },
        "errors.FieldError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "response.MessageBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/errors.FieldError"}}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "mess": {"type": "string"},
                "data": {}
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
	Title:            "Career Guide API",
	Description:      "Career-path recommendations and a career assistant chat.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
