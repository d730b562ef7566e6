// Package docs registra el documento OpenAPI servido en /swagger/*.
// Se mantiene a mano siguiendo las anotaciones godoc de los handlers.
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
        "/signup": {
            "post": {
                "description": "Crea un usuario y devuelve su token. Password mínimo 8 caracteres.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registrar usuario",
                "parameters": [
                    {"description": "Datos del usuario", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.signupRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.signupResponse"}},
                    "400": {"description": "errores por campo", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/httpjson.Detail"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Devuelve el token del usuario. 401 genérico si el email no existe o el password no coincide.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/auth.loginError"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/httpjson.Detail"}}
                }
            }
        },
        "/logout": {
            "post": {
                "description": "Elimina el token del usuario. El próximo login emite uno nuevo.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "parameters": [
                    {"type": "string", "description": "Token <key>", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpjson.Detail"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Usuario autenticado",
                "parameters": [
                    {"type": "string", "description": "Token <key>", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpjson.Detail"}}
                }
            }
        },
        "/animals": {
            "post": {
                "description": "Registra un animal. El identificador (prefijo de especie + sufijo aleatorio) lo genera el servidor. Requiere rol admin o shelterstaff.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Onboarding de animal",
                "parameters": [
                    {"type": "string", "description": "Token <key>", "name": "Authorization", "in": "header", "required": true},
                    {"description": "Datos del animal", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animals.createAnimalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/animals.AnimalResponse"}},
                    "400": {"description": "errores por campo", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpjson.Detail"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpjson.Detail"}},
                    "409": {"description": "colisión de identificador, reintentar", "schema": {"$ref": "#/definitions/httpjson.Detail"}}
                }
            }
        },
        "/animals/list": {
            "get": {
                "description": "Lista paginada en orden de inserción. page_size por defecto 100, máximo 1000.",
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Listar animales",
                "parameters": [
                    {"type": "integer", "description": "Número de página (desde 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Tamaño de página (máx. 1000)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.pageResponse"}},
                    "404": {"description": "Invalid page.", "schema": {"$ref": "#/definitions/httpjson.Detail"}}
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "description": "Acepta el id interno (uuid) o el identificador generado.",
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Obtener animal",
                "parameters": [
                    {"type": "string", "description": "Token <key>", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "uuid o animal_id", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.AnimalResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpjson.Detail"}}
                }
            },
            "delete": {
                "description": "Elimina el animal y en cascada sus fichas de salud, dueños previos, evaluaciones y predicciones.",
                "tags": ["animals"],
                "summary": "Eliminar animal",
                "parameters": [
                    {"type": "string", "description": "Token <key>", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "description": "uuid o animal_id", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpjson.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpjson.Detail"}}
                }
            }
        },
        "/animals/{animalID}/health": {
            "get": {"tags": ["health"], "summary": "Historial de salud", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["health"], "summary": "Registrar ficha de salud", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/animals/{animalID}/previous-owners": {
            "get": {"tags": ["previous-owners"], "summary": "Dueños anteriores de un animal", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["previous-owners"], "summary": "Registrar dueño anterior", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/animals/{animalID}/assessments": {
            "get": {"tags": ["assessments"], "summary": "Evaluaciones de un animal", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["assessments"], "summary": "Registrar evaluación inicial", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/animals/{animalID}/outcomes": {
            "get": {"tags": ["outcomes"], "summary": "Predicciones de un animal", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["outcomes"], "summary": "Registrar predicción de desenlace", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/adopters": {
            "post": {"tags": ["adopters"], "summary": "Crear perfil de adoptante", "responses": {"201": {"description": "Created"}}}
        },
        "/adopters/{adopterID}": {
            "get": {"tags": ["adopters"], "summary": "Obtener perfil de adoptante", "parameters": [{"type": "string", "name": "adopterID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["adopters"], "summary": "Eliminar perfil de adoptante", "parameters": [{"type": "string", "name": "adopterID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/adopters/{adopterID}/inspections": {
            "get": {"tags": ["inspections"], "summary": "Inspecciones de un adoptante", "parameters": [{"type": "string", "name": "adopterID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["inspections"], "summary": "Agendar inspección del hogar", "parameters": [{"type": "string", "name": "adopterID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/health": {
            "get": {"produces": ["text/plain"], "tags": ["ops"], "summary": "Liveness", "responses": {"200": {"description": "ok"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "httpjson.Detail": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "auth.signupRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"},
                "usertype": {"type": "string", "enum": ["shelterstaff", "adopter_or_foster", "volunteer"]},
                "phone_number": {"type": "string"},
                "location": {"type": "string"}
            }
        },
        "auth.signupResponse": {"type": "object", "properties": {"token": {"type": "string"}}},
        "auth.loginRequest": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "auth.loginResponse": {"type": "object", "properties": {"message": {"type": "string"}, "token": {"type": "string"}}},
        "auth.loginError": {"type": "object", "properties": {"error": {"type": "string"}}},
        "auth.messageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "users.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "usertype": {"type": "string"},
                "phone_number": {"type": "string"},
                "location": {"type": "string"}
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "properties": {
                "species": {"type": "string", "enum": ["dog", "cat", "bird", "other"]},
                "breed": {"type": "string"},
                "gender": {"type": "string", "enum": ["male", "female", "unknown"]},
                "colour": {"type": "string"},
                "age_in_years": {"type": "number"},
                "weight_in_kgs": {"type": "number"},
                "distinctive_features": {"type": "string"},
                "micro_chipped": {"type": "boolean"},
                "is_mix": {"type": "boolean"},
                "intake_type": {"type": "string"},
                "month_of_intake": {"type": "integer"}
            }
        },
        "animals.AnimalResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "animal_id": {"type": "string"},
                "species": {"type": "string"},
                "breed": {"type": "string"},
                "gender": {"type": "string"},
                "colour": {"type": "string"},
                "age_in_years": {"type": "number"},
                "weight_in_kgs": {"type": "number"},
                "distinctive_features": {"type": "string"},
                "micro_chipped": {"type": "boolean"},
                "is_mix": {"type": "boolean"},
                "intake_type": {"type": "string"},
                "month_of_intake": {"type": "integer"},
                "registered_by": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "animals.pageResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "next": {"type": "string"},
                "previous": {"type": "string"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/animals.AnimalResponse"}}
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
	Title:            "Animal Shelter API",
	Description:      "Onboarding de animales, fichas de salud y perfiles de adopción.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
