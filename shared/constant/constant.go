package constant

import (
	"time"
)

const (
	RequestParamDate = "date"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"

	OtelWebhookScopeName  = "webhook"
	OtelEmailScopeName    = "email"
	OtelCalendarScopeName = "calendar"
	OtelKafkaScopeName    = "kafka"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	BackendLog      = "log"
	BackendWebhook  = "webhook"
	BackendEmail    = "email"
	BackendCalendar = "calendar"
	BackendKafka    = "kafka"
)

const (
	EmailProviderSendGrid = "sendgrid"
	EmailProviderSES      = "ses"
)

const (
	Empty = ""
)
