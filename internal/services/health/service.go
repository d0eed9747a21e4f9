package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Status is the payload served on /health.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Storage string `json:"storage"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a health service. db may be nil for in-memory storage.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Check reports whether the API and its storage are reachable.
func (s *Service) Check(ctx context.Context) (Status, bool) {
	st := Status{Status: "OK", Message: "Resume Builder API is running", Storage: "memory"}
	if s == nil || s.DB == nil {
		return st, true
	}
	st.Storage = "postgres"
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		st.Status = "DEGRADED"
		st.Message = "Database unavailable"
		return st, false
	}
	return st, true
}
