package router

import (
	"database/sql"
	"net/http"

	"shelter-dashboard/internal/adapters/storage/csvfile"
	mem "shelter-dashboard/internal/adapters/storage/memory"
	pg "shelter-dashboard/internal/adapters/storage/postgres"
	"shelter-dashboard/internal/config"
	"shelter-dashboard/internal/domain/animals"
	"shelter-dashboard/internal/domain/reports"
	"shelter-dashboard/internal/domain/shelters"
	"shelter-dashboard/internal/domain/staff"
	"shelter-dashboard/internal/domain/vaccinations"
	"shelter-dashboard/internal/domain/vaccines"
	"shelter-dashboard/internal/middleware"
	"shelter-dashboard/internal/platform/images"
	"shelter-dashboard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Logger logger.Logger

	// Si DB viene, los repos van contra Postgres (modo vivo).
	// Si no, se carga el snapshot CSV de DataDir y todo corre en memoria.
	DB      *sql.DB
	DataDir string

	ImagesDir string

	AuthMode     config.AuthMode
	SharedSecret string
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.New(logger.Options{})
	}

	var (
		shelterRepo     shelters.Repository
		animalRepo      animals.Repository
		vaccineRepo     vaccines.Repository
		vaccinationRepo vaccinations.Repository
		employeeRepo    staff.Repository

		reloadHandler http.HandlerFunc
	)

	if opts.DB != nil {
		shelterRepo = pg.NewSheltersRepo(opts.DB)
		animalRepo = pg.NewAnimalsRepo(opts.DB)
		vaccineRepo = pg.NewVaccinesRepo(opts.DB)
		vaccinationRepo = pg.NewVaccinationsRepo(opts.DB)
		employeeRepo = pg.NewEmployeesRepo(opts.DB)

		log.Info("storage mode", map[string]any{"mode": "postgres"})
	} else {
		snap, err := csvfile.Load(opts.DataDir)
		if err != nil {
			return nil, err
		}

		memShelters := mem.NewShelterRepo(snap.Shelters)
		memAnimals := mem.NewAnimalRepo(snap.Animals, memShelters)
		memVaccines := mem.NewVaccineRepo(snap.Vaccines)
		memVaccinations := mem.NewVaccinationRepo(snap.Records, memAnimals, memVaccines)
		memEmployees := mem.NewEmployeeRepo(snap.Employees)

		shelterRepo = memShelters
		animalRepo = memAnimals
		vaccineRepo = memVaccines
		vaccinationRepo = memVaccinations
		employeeRepo = memEmployees

		log.Info("storage mode", map[string]any{"mode": "snapshot", "dir": opts.DataDir})

		// Invalidación explícita del snapshot: recarga los archivos y
		// vuelve a sembrar los repos. Nada se invalida por tiempo.
		reloadHandler = func(w http.ResponseWriter, req *http.Request) {
			sess, ok := middleware.GetSession(req.Context())
			if !ok || !sess.Authorized {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			fresh, err := csvfile.Load(opts.DataDir)
			if err != nil {
				log.Warn("snapshot reload failed", map[string]any{"err": err.Error()})
				http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
				return
			}

			memShelters.Reseed(fresh.Shelters)
			memAnimals.Reseed(fresh.Animals)
			memVaccines.Reseed(fresh.Vaccines)
			memVaccinations.Reseed(fresh.Records)
			memEmployees.Reseed(fresh.Employees)

			log.Info("snapshot reloaded", map[string]any{"animals": len(fresh.Animals)})
			w.WriteHeader(http.StatusNoContent)
		}
	}

	// Access Guard: las sesiones viven en el servicio y el middleware las
	// resuelve por token en cada request.
	staffSvc := staff.NewService(employeeRepo, staffMode(opts.AuthMode), opts.SharedSecret)

	shelterSvc := shelters.NewService(shelterRepo)
	animalSvc := animals.NewService(animalRepo, shelterRepo)
	vaccineSvc := vaccines.NewService(vaccineRepo)
	vaccinationSvc := vaccinations.NewService(vaccinationRepo)
	reportSvc := reports.NewService(animalRepo, vaccinationRepo)

	photos := images.NewResolver(opts.ImagesDir)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SessionContext(staffSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if reloadHandler != nil {
		r.Post("/admin/reload", reloadHandler)
	}

	staff.RegisterRoutes(r, staffSvc)
	shelters.RegisterRoutes(r, shelterSvc)
	animals.RegisterRoutes(r, animalSvc, photos)
	vaccines.RegisterRoutes(r, vaccineSvc)
	vaccinations.RegisterRoutes(r, vaccinationSvc)
	reports.RegisterRoutes(r, reportSvc)

	return r, nil
}

func staffMode(m config.AuthMode) staff.Mode {
	if m == config.AuthModeSharedSecret {
		return staff.ModeSharedSecret
	}
	return staff.ModeCredentials
}
