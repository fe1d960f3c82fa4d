package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/config"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/repository"
	"github.com/crewdeck-dev/deploy-manager/backend/internal/schedule"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	parser      *schedule.Parser
	jobChannel  *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, jobCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		parser:      schedule.NewParser(newSlogTracer()),
		jobChannel:  jobCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

// publishJob serializes a mail/report message and hands it to the worker
// queue.
func (h *Handler) publishJob(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.jobChannel.PublishWithContext(
		ctx,
		"",
		h.config.RabbitMQ.Queue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a logged-in user.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", h.GetAllStaff)
			r.With(h.RequiredManager()).Post("/", h.CreateStaff)
			r.With(h.RequiredManager()).Post("/import", h.ImportStaffRoster)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffRecord)
				r.Get("/", h.GetStaff)
				r.With(h.RequiredManager()).Patch("/", h.UpdateStaff)
				r.With(h.RequiredManager()).Delete("/", h.DeleteStaff)
			})
		})

		r.Route("/staffing-rules", func(r chi.Router) {
			r.Get("/", h.GetAllStaffingRules)
			r.With(h.RequiredManager()).Post("/", h.CreateStaffingRule)
			r.Post("/evaluate", h.EvaluateStaffingRules)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffingRule)
				r.Get("/", h.GetStaffingRule)
				r.Get("/description", h.GetStaffingRuleDescription)
				r.With(h.RequiredManager()).Patch("/", h.UpdateStaffingRule)
				r.With(h.RequiredManager()).Delete("/", h.DeleteStaffingRule)
			})
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", h.GetAllScheduleImports)
			r.With(h.RequiredManager()).Post("/import", h.ImportSchedule)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.scheduleImport)
				r.Get("/", h.GetScheduleImport)
				r.Get("/deployments", h.GetScheduleDeployments)
				r.With(h.RequiredManager()).Delete("/", h.DeleteScheduleImport)
			})
		})

		r.With(h.RequiredManager()).Post("/reports/weekly", h.RequestWeeklyReport)
	})
}
