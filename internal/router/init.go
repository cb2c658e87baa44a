package router

import (
	"github.com/carebridge/carebridge-api/internal/application"
	"github.com/carebridge/carebridge-api/internal/container"
	pginfra "github.com/carebridge/carebridge-api/internal/infrastructure/postgres"
	"github.com/carebridge/carebridge-api/internal/router/modules"
	"github.com/carebridge/carebridge-api/pkg/video"
)

// Services bundles the wired application layer so main can reuse it
// outside the HTTP surface (startup reindex, seeding checks).
type Services struct {
	Accounts     *application.AccountService
	Doctors      *application.DoctorService
	Appointments *application.AppointmentService
	Orders       *application.OrderService
	Rooms        *application.RoomService
}

// BuildServices constructs repositories and services from the
// container singletons.
func BuildServices() *Services {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	doctors := pginfra.NewDoctorRepository(pool)
	medicines := pginfra.NewMedicineRepository(pool)
	appointments := pginfra.NewAppointmentRepository(pool)
	orders := pginfra.NewOrderRepository(pool)

	notifier := application.NewNotifier(container.GetRabbitPub(), logger, cfg.MailSendEnabled)

	return &Services{
		Accounts: application.NewAccountService(
			users,
			container.GetJWT(),
			container.GetRedis(),
			logger,
			notifier,
			container.GetGCS(),
			cfg.GCSBucket,
			cfg.SessionTTL,
		),
		Doctors:      application.NewDoctorService(doctors, container.GetES(), cfg.ESDoctorsIndex, logger),
		Appointments: application.NewAppointmentService(users, doctors, appointments, notifier, logger),
		Orders:       application.NewOrderService(orders, medicines, notifier, logger),
		Rooms: application.NewRoomService(
			appointments,
			video.NewTokenIssuer(cfg.VideoAppID, cfg.VideoServerSecret, cfg.VideoTokenTTL),
			cfg.VideoAppID,
		),
	}
}

// InitModules wires every feature module into the registry. Called once
// during startup.
func InitModules(r *Registry, svcs *Services) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	r.Add(modules.NewAccountModule(svcs.Accounts, logger))
	r.Add(modules.NewDoctorModule(svcs.Doctors, svcs.Appointments, logger))
	r.Add(modules.NewAppointmentModule(svcs.Appointments, logger))
	r.Add(modules.NewOrderModule(svcs.Orders, logger))
	r.Add(modules.NewMedicineModule(pginfra.NewMedicineRepository(pool), logger))
	r.Add(modules.NewRoomModule(svcs.Rooms, logger))
	r.Add(modules.NewAssistantModule(cfg.AssistantEmbedID))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
