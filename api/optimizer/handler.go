package optimizer

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tanishpoddar/logitrack/core/model"
	"github.com/tanishpoddar/logitrack/core/optimize"
	"github.com/tanishpoddar/logitrack/core/runlog"
)

// Snapshotter supplies the warehouses and orders an optimization run
// operates on.
type Snapshotter interface {
	Warehouses() []model.Warehouse
	PendingOrders(now time.Time) []model.Order
}

// runRequest is the optional POST body tuning a single run.
type runRequest struct {
	TimeLimitSeconds int    `json:"time_limit_seconds"`
	PriorityWeight   string `json:"priority_weight"`
}

// NewRunHandler returns an HTTP handler triggering an optimization run via
// POST /api/optimize. Requests must include an Authorization header with
// "Bearer <token>" when token is non-empty. The body may override the
// configured time limit (5 to 60 seconds) and priority weight.
func NewRunHandler(engine *optimize.Engine, snap Snapshotter, defaults optimize.Options, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, token) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		opts := defaults
		if r.Body != nil && r.ContentLength != 0 {
			var req runRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "malformed request body", http.StatusBadRequest)
				return
			}
			if req.TimeLimitSeconds != 0 {
				if req.TimeLimitSeconds < 5 || req.TimeLimitSeconds > 60 {
					http.Error(w, "time_limit_seconds must be between 5 and 60", http.StatusBadRequest)
					return
				}
				opts.TimeLimit = time.Duration(req.TimeLimitSeconds) * time.Second
			}
			if req.PriorityWeight != "" {
				pw, ok := model.PriorityWeightFromString(req.PriorityWeight)
				if !ok {
					http.Error(w, "unknown priority_weight", http.StatusBadRequest)
					return
				}
				opts.PriorityWeight = pw
			}
		}

		res, err := engine.Optimize(snap.Warehouses(), snap.PendingOrders(time.Now()), opts)
		if err != nil {
			if errors.Is(err, optimize.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// NewRunsHandler returns an HTTP handler exposing recorded runs via
// GET /api/optimize/runs. Supported query parameters: status (Optimal,
// Feasible, Infeasible, TimedOut) and limit.
func NewRunsHandler(store *runlog.Store, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, token) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		f := runlog.Filter{}
		if s := r.URL.Query().Get("status"); s != "" {
			st, ok := statusFromString(s)
			if !ok {
				http.Error(w, "unknown status", http.StatusBadRequest)
				return
			}
			f.Status = &st
		}
		if s := r.URL.Query().Get("limit"); s != "" {
			if n, err := strconv.Atoi(s); err == nil && n > 0 {
				f.Limit = n
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(store.List(f)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func authorized(r *http.Request, token string) bool {
	if token == "" {
		return true
	}
	return r.Header.Get("Authorization") == "Bearer "+token
}

func statusFromString(s string) (model.SolveStatus, bool) {
	switch s {
	case "Optimal":
		return model.SolveOptimal, true
	case "Feasible":
		return model.SolveFeasible, true
	case "Infeasible":
		return model.SolveInfeasible, true
	case "TimedOut":
		return model.SolveTimedOut, true
	default:
		return 0, false
	}
}
