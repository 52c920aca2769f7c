package healthz

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

// Check проверка готовности одной зависимости
type Check func(ctx context.Context) error

// Register регистрирует /healthz (процесс жив) и /readyz (зависимости отвечают)
func Register(r *mux.Router, checks map[string]Check) {
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), checkTimeout)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		handlers.RespondJSON(w, status, results)
	}).Methods(http.MethodGet)
}
