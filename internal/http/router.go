package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/navolotsky/phone-book/internal/http/handlers"
	"github.com/navolotsky/phone-book/internal/http/middleware"
	"github.com/navolotsky/phone-book/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключенными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладем request-scoped логгер в контекст и логируем
		middleware.SessionBearer(),      // вынимаем ключ сессии из Bearer в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.LogIn)
	r.Post("/auth/logout", h.LogOut)
	r.Get("/auth/session", h.Session)

	// users
	r.Get("/users/me", h.Me)

	// contacts
	r.Get("/contacts/pages", h.Pages)
	r.Get("/contacts/pages/{page}", h.PageContacts)
	r.Post("/contacts", h.AddContact)
	r.Put("/contacts/{id}", h.EditContact)
	r.Delete("/contacts/{id}", h.DeleteContact)
	r.Get("/contacts/birthdays", h.Birthdays)
}
