package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "paws-cafe/docs"
	"paws-cafe/internal/adapters/catalog"
	"paws-cafe/internal/adapters/localstore"
	mem "paws-cafe/internal/adapters/storage/memory"
	"paws-cafe/internal/config"
	"paws-cafe/internal/domain/cafes"
	"paws-cafe/internal/domain/favorites"
	"paws-cafe/internal/domain/plans"
	"paws-cafe/internal/domain/profile"
	"paws-cafe/internal/metrics"
	"paws-cafe/internal/middleware"
	"paws-cafe/internal/platform/logger"
	"paws-cafe/internal/ports/kv"
)

type Options struct {
	// Config nil usa los defaults de un entorno vacío (zona Asia/Tokyo, autosave).
	Config *config.Config
	Logger logger.Logger

	// KV opcional: si no viene, in-memory. main lo abre con OpenStore.
	KV kv.Store

	// Catalog opcional: si no viene, Config.CatalogFile o la muestra incluida.
	Catalog []cafes.Cafe

	// Registry opcional: si no viene, uno nuevo por router.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) (http.Handler, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = defaultConfig()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	collector := metrics.NewCollector(reg)

	store := opts.KV
	if store == nil {
		store = mem.NewKVStore()
	}

	// Catálogo
	items := opts.Catalog
	if items == nil {
		var err error
		items, err = loadCatalog(cfg, log)
		if err != nil {
			return nil, err
		}
	}
	cat, err := cafes.NewCatalog(items)
	if err != nil {
		return nil, err
	}

	// Almacenamiento local (slots plans/profile/favorites)
	local := localstore.New(store, log, collector)

	// Services por módulo
	ctx := context.Background()
	cafesSvc := cafes.NewService(cat, collector)
	plansSvc := plans.NewService(local)
	profileSvc := profile.NewService(local)
	favoritesSvc := favorites.NewService(ctx, local, favorites.Options{
		AutoSave: cfg.FavoritesAutoSave,
		Recorder: collector,
	})

	log.Info("router ready", map[string]any{
		"cafes":     cat.Len(),
		"favorites": len(favoritesSvc.List()),
		"autosave":  cfg.FavoritesAutoSave,
	})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log, collector))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler(reg))
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/store/status", storeStatusHandler(local))

	// Rutas por módulo
	cafes.RegisterRoutes(r, cafesSvc, cfg.RecommendCount)
	plans.RegisterRoutes(r, plansSvc, cfg.Location)
	favorites.RegisterRoutes(r, favoritesSvc, cafesSvc)
	profile.RegisterRoutes(r, profileSvc)

	return r, nil
}

func loadCatalog(cfg *config.Config, log logger.Logger) ([]cafes.Cafe, error) {
	if cfg.CatalogFile == "" {
		return catalog.Sample(), nil
	}
	items, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded", map[string]any{"path": cfg.CatalogFile, "cafes": len(items)})
	return items, nil
}

func defaultConfig() *config.Config {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		loc = time.Local
	}
	return &config.Config{
		StoreDriver:       config.DriverMemory,
		FavoritesAutoSave: true,
		RecommendCount:    2,
		Location:          loc,
	}
}

// storeStatusHandler godoc
// @Summary Estado del almacenamiento
// @Description Estado de cada slot del almacenamiento local: found, missing o corrupt.
// @Tags store
// @Produce json
// @Success 200 {object} map[string]string
// @Router /store/status [get]
func storeStatusHandler(local *localstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		_, plansSt := local.LoadPlansWithStatus(ctx)
		_, profileSt := local.LoadProfileWithStatus(ctx)
		_, favoritesSt := local.LoadFavoritesWithStatus(ctx)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]localstore.Status{
			localstore.SlotPlans:     plansSt,
			localstore.SlotProfile:   profileSt,
			localstore.SlotFavorites: favoritesSt,
		})
	}
}
