package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// FileName es el archivo de la base local dentro de DATA_DIR.
const FileName = "pawscafe.db"

// Path devuelve la ruta absoluta del archivo de base de datos.
func Path(dataDir string) (string, error) {
	return filepath.Abs(filepath.Join(dataDir, FileName))
}

// Open crea DATA_DIR si hace falta y abre <dataDir>/pawscafe.db.
func Open(dataDir string) (*sql.DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	path, err := Path(dataDir)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite admite un solo escritor
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}
	return db, nil
}
