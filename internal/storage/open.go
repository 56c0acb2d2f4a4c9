package storage

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/fitplanner/internal/db"
	"github.com/terraincognita07/fitplanner/internal/services"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

type Config struct {
	Backend string
	DBPath  string
	DataDir string
}

// Open returns the configured session backend and a function releasing its
// resources. The backend is not yet initialized.
func Open(config Config) (services.SessionBackend, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(config.Backend)) {
	case "", BackendSQLite:
		database, err := db.OpenSQLite(config.DBPath)
		if err != nil {
			return nil, nil, err
		}
		closeDatabase := func() error {
			return db.CloseSQLite(database)
		}
		return db.NewRepositories(database).StorageRecords, closeDatabase, nil
	case BackendFile:
		return NewFileBackend(config.DataDir), noopClose, nil
	case BackendMemory:
		return NewMemoryBackend(), noopClose, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", config.Backend)
	}
}

func noopClose() error {
	return nil
}
