package server

// General API annotations for OpenAPI generation. Endpoint annotations
// live in the handler files; the served document is
// internal/embedded/openapi/openapi.yaml.
//
// @title seedmap API
// @version 1.0
// @description Read-only JSON access to the startup directory behind the seedmap pages.
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
