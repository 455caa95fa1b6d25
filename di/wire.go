//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"chiclon/config"
	"chiclon/infras/calendar"
	"chiclon/infras/email"
	"chiclon/infras/kafka"
	"chiclon/infras/otel"
	"chiclon/infras/redis"
	"chiclon/infras/webhook"
	"chiclon/shared/cache"
	"chiclon/shared/metrics"
	"chiclon/shared/timezone"
	"chiclon/transport/http"
	"chiclon/transport/http/middleware"
	"chiclon/transport/http/router"

	bookingNotifier "chiclon/internal/domains/booking/notifier"
	bookingService "chiclon/internal/domains/booking/service"
	catalogService "chiclon/internal/domains/catalog/service"
	contactService "chiclon/internal/domains/contact/service"
	scheduleService "chiclon/internal/domains/schedule/service"

	bookingHandler "chiclon/internal/handlers/booking"
	catalogHandler "chiclon/internal/handlers/catalog"
	contactHandler "chiclon/internal/handlers/contact"
	healthHandler "chiclon/internal/handlers/health"
	scheduleHandler "chiclon/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	webhook.New,
	email.New,
	calendar.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	metrics.NewDefault,
	timezone.NewClock,
)

var scheduleDomain = wire.NewSet(
	scheduleService.New,
)

var catalogDomain = wire.NewSet(
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingNotifier.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactService.New,
)

var domains = wire.NewSet(
	scheduleDomain,
	catalogDomain,
	bookingDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	scheduleHandler.New,
	catalogHandler.New,
	contactHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
