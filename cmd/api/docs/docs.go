// Package docs registers the OpenAPI document served at /swagger/*.
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
        "/quiz/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Generate a quiz on a topic",
                "parameters": [
                    {
                        "description": "Topic to generate a quiz for",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.GenerateQuizRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GenerateQuizResponse"}},
                    "400": {"description": "Bad Request"},
                    "502": {"description": "Bad Gateway"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/quiz/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "Score submitted quiz answers",
                "parameters": [
                    {
                        "description": "Quiz data and the learner's answers",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.SubmitQuizRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubmitQuizResponse"}},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    },
    "definitions": {
        "dto.GenerateQuizRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"}
            }
        },
        "dto.Question": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "correctAnswer": {"type": "integer"},
                "explanation": {"type": "string"}
            }
        },
        "dto.GenerateQuizResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "topic": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.Question"}}
            }
        },
        "dto.SubmitQuizRequest": {
            "type": "object",
            "properties": {
                "quizData": {
                    "type": "object",
                    "properties": {
                        "questions": {"type": "array", "items": {"$ref": "#/definitions/dto.Question"}}
                    }
                },
                "userAnswers": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "dto.FeedbackItem": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "userAnswer": {"type": "string"},
                "correctAnswer": {"type": "string"},
                "isCorrect": {"type": "boolean"},
                "explanation": {"type": "string"}
            }
        },
        "dto.SubmitQuizResponse": {
            "type": "object",
            "properties": {
                "score": {"type": "integer"},
                "total": {"type": "integer"},
                "feedback": {"type": "array", "items": {"$ref": "#/definitions/dto.FeedbackItem"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Quizcraft API",
	Description:      "Generates multiple-choice quizzes on arbitrary topics and scores submitted answers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
