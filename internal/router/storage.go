package router

import (
	"fmt"

	mem "paws-cafe/internal/adapters/storage/memory"
	pg "paws-cafe/internal/adapters/storage/postgres"
	sq "paws-cafe/internal/adapters/storage/sqlite"
	"paws-cafe/internal/config"
	"paws-cafe/internal/platform/logger"
	"paws-cafe/internal/ports/kv"
)

// OpenStore abre el backend de kv según cfg.StoreDriver y aplica migraciones.
// El close devuelto libera la conexión; para memory no hace nada.
func OpenStore(cfg *config.Config, log logger.Logger) (kv.Store, func() error, error) {
	if log == nil {
		log = logger.Nop()
	}
	noClose := func() error { return nil }

	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on exit", nil)
		return mem.NewKVStore(), noClose, nil

	case config.DriverSQLite:
		// Open crea DATA_DIR; las migraciones van después.
		db, err := sq.Open(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		if err := sq.RunMigrations(cfg.DataDir); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		path, _ := sq.Path(cfg.DataDir)
		log.Info("sqlite store ready", map[string]any{"path": path})
		return sq.NewKVStore(db), db.Close, nil

	case config.DriverPostgres:
		if err := pg.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, nil, err
		}
		db, err := pg.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("postgres store ready", nil)
		return pg.NewKVStore(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
