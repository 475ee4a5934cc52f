package constant

import (
	"time"
)

const Empty = ""

// ContextGuest is the request log user for calls without a token.
const ContextGuest = "guest"

// URL params as registered on the router.
const (
	RequestParamProjectID = "projectId"
	RequestParamTodoID    = "todoId"
)

const (
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "ASC"
)

const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const PqErrorCodeUniqueViolation = "23505"

const DateFormat = time.RFC3339

const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelS3ScopeName         = "s3"
	OtelGistScopeName       = "gist"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderUserAgent     = "User-Agent"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderAccept        = "Accept"

	// ResponseHeaderUserToken carries the token issued by signup and login.
	ResponseHeaderUserToken = "Usertoken"
)

const (
	ContentTypeJSON     = "application/json"
	ContentTypeMarkdown = "text/markdown; charset=utf-8"
)

const (
	ResponseHealthy              = "OK"
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
	ResponseErrorInternal        = "Server error."
)

const ServerEnvDevelopment = "development"
