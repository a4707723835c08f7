// Package docs registra la especificación Swagger del API para http-swagger.
// Mantener en sync con las anotaciones godoc de los handlers.
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
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.petResponse"}}}
                }
            },
            "post": {
                "description": "Abre una sesión nueva con weight=5, happiness=5, energy=5.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {"description": "Nombre opcional", "name": "payload", "in": "body", "schema": {"$ref": "#/definitions/pets.createPetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Estado de la mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}/actions": {
            "post": {
                "description": "Aplica los deltas y clampa a >= 0. Deltas ausentes o no numéricos valen 0.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Aplicar acción",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {"description": "{action, weight?, happiness?, energy?}", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.actionResponse"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/pets/{petID}/stream": {
            "get": {
                "description": "Server-Sent Events: action_applied, comment, image, animate, revert, sound_stop, sound_play.",
                "produces": ["text/event-stream"],
                "tags": ["pets"],
                "summary": "Stream de eventos de la mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "event stream", "schema": {"type": "string"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/metrics/actions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Contadores de acciones",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/inmemory.Snapshot"}}
                }
            }
        },
        "/devtools/timer/start": {
            "post": {
                "produces": ["application/json"],
                "tags": ["devtools"],
                "summary": "Iniciar timer de demo",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/devtools.timerResponse"}}}
            }
        },
        "/devtools/timer/stop": {
            "post": {
                "produces": ["application/json"],
                "tags": ["devtools"],
                "summary": "Detener timer de demo",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/devtools.timerResponse"}}}
            }
        },
        "/devtools/log": {
            "get": {
                "produces": ["application/json"],
                "tags": ["devtools"],
                "summary": "Salida del demo",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/devtools.logResponse"}}}
            }
        },
        "/devtools/sample": {
            "post": {
                "produces": ["application/json"],
                "tags": ["devtools"],
                "summary": "Transformación de ejemplo",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "pet_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/devtools.Sample"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/devtools/caught-error": {
            "post": {
                "produces": ["application/json"],
                "tags": ["devtools"],
                "summary": "Error capturado",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/devtools.logResponse"}}}
            }
        }
    },
    "definitions": {
        "pets.createPetRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "weight": {"type": "integer"},
                "happiness": {"type": "integer"},
                "energy": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "effects.Descriptor": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["treat", "play", "exercise", "sleep", "other"]},
                "comment": {"type": "string"},
                "animation": {"type": "string", "enum": ["pulse", "shake", "doze"]},
                "image": {"type": "string"},
                "overlay": {"type": "boolean"},
                "sound": {"type": "string", "enum": ["eat", "bark", "walk"]}
            }
        },
        "pets.actionResponse": {
            "type": "object",
            "properties": {
                "pet": {"$ref": "#/definitions/pets.petResponse"},
                "action": {"type": "string"},
                "kind": {"type": "string"},
                "clamped": {"type": "boolean"},
                "effects": {"$ref": "#/definitions/effects.Descriptor"}
            }
        },
        "inmemory.Snapshot": {
            "type": "object",
            "properties": {
                "action_total": {"type": "integer"},
                "action_clamped": {"type": "integer"},
                "by_kind": {"type": "object", "additionalProperties": {"type": "integer"}},
                "by_action": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "devtools.timerResponse": {
            "type": "object",
            "properties": {
                "running": {"type": "boolean"},
                "changed": {"type": "boolean"},
                "ticks": {"type": "integer"}
            }
        },
        "devtools.logResponse": {
            "type": "object",
            "properties": {"lines": {"type": "array", "items": {"type": "string"}}}
        },
        "devtools.Sample": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "snapshotEnergy": {"type": "integer"},
                "isoTime": {"type": "string"}
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
	Title:            "Virtual Pet API",
	Description:      "Mascota virtual: acciones con deltas, clamp a >= 0 y stream de efectos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
