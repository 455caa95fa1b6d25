package router

import (
	"github.com/go-chi/chi/v5"

	"chiclon/internal/handlers/booking"
	"chiclon/internal/handlers/catalog"
	"chiclon/internal/handlers/contact"
	"chiclon/internal/handlers/health"
	"chiclon/internal/handlers/schedule"
)

type DomainHandlers struct {
	Booking  booking.Handler
	Schedule schedule.Handler
	Catalog  catalog.Handler
	Contact  contact.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
