package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/state", h.getState)

		// whole-collection replacement
		r.Put("/tasks", replace(h.validator, h.state.ReplaceTasks))
		r.Put("/tags", replace(h.validator, h.state.ReplaceTags))
		r.Put("/owners", replace(h.validator, h.state.ReplaceOwners))
		r.Put("/permissions", replace(h.validator, h.state.ReplacePermissions))
		r.Put("/running-tab", replace(h.validator, h.state.ReplaceRunningTab))
		r.Put("/expenses", replace(h.validator, h.state.ReplaceExpenses))
		r.Put("/tab-history", replace(h.validator, h.state.ReplaceTabHistory))
		r.Put("/scheduled-events", replace(h.validator, h.state.ReplaceScheduledEvents))

		r.Post("/tasks", h.addTask)
		r.Post("/tasks/{id}/complete", h.completeTask)
		r.Post("/tasks/{id}/uncomplete", h.uncompleteTask)
		r.Delete("/tasks/{id}", h.deleteTask)

		r.Post("/tags", h.addTag)
		r.Post("/owners", h.addOwner)
		r.Post("/permissions", h.setPermissions)

		r.Post("/running-tab/top-up", h.topUp)

		r.Post("/expenses", h.addExpense)
		r.Post("/expenses/{id}/approve", h.approveExpense)
		r.Post("/expenses/{id}/reject", h.rejectExpense)
		r.Put("/expenses/{id}/attachment", h.setExpenseAttachment)

		r.Post("/scheduled-events", h.addScheduledEvent)
		r.Delete("/scheduled-events/{id}", h.deleteScheduledEvent)
	})

	return router
}
