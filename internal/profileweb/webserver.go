// Package profileweb serves interactive charts of computed motion profiles.
// Query parameters override the configured defaults so a browser can stand
// in for a slider UI while exploring smoothing and advance settings.
package profileweb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/banshee-data/motion.report/internal/config"
	"github.com/banshee-data/motion.report/internal/motion"
	"github.com/banshee-data/motion.report/internal/units"
)

// WebServer handles the HTTP interface for profile exploration.
type WebServer struct {
	address  string
	defaults *config.ProfileConfig
	server   *http.Server
}

// WebServerConfig contains configuration options for the web server.
type WebServerConfig struct {
	Address  string
	Defaults *config.ProfileConfig
}

// NewWebServer creates a new web server with the provided configuration.
func NewWebServer(cfg WebServerConfig) *WebServer {
	defaults := cfg.Defaults
	if defaults == nil {
		defaults = config.EmptyProfileConfig()
	}
	ws := &WebServer{
		address:  cfg.Address,
		defaults: defaults,
	}

	ws.server = &http.Server{
		Addr:    ws.address,
		Handler: ws.setupRoutes(),
	}

	return ws
}

func (ws *WebServer) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Start begins the HTTP server in a goroutine and handles graceful shutdown.
func (ws *WebServer) Start(ctx context.Context) error {
	go func() {
		log.Printf("Starting HTTP server on %s", ws.address)
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := ws.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
		if err := ws.server.Close(); err != nil {
			log.Printf("HTTP server force close error: %v", err)
		}
	}

	log.Printf("HTTP server routine stopped")
	return nil
}

// setupRoutes configures the HTTP routes and handlers.
func (ws *WebServer) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", ws.handleHealth)
	mux.HandleFunc("/", ws.handleDashboard)
	mux.HandleFunc("/api/profile", ws.handleProfileJSON)
	mux.HandleFunc("/charts/profile", ws.handleProfileChart)
	mux.HandleFunc("/charts/advance", ws.handleAdvanceChart)

	return mux
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// paramsFromQuery builds motion parameters from the configured defaults and
// any query string overrides. Unknown values are rejected rather than
// silently replaced so a typo in the URL is visible.
func (ws *WebServer) paramsFromQuery(q url.Values) (motion.Params, motion.AdvanceMode, error) {
	params := ws.defaults.Params()
	mode := ws.defaults.GetAdvanceMode()

	if v := q.Get("trajectory"); v != "" {
		kind, err := motion.ParseTrajectoryKind(v)
		if err != nil {
			return params, mode, err
		}
		params.Trajectory = kind
	}
	if v := q.Get("advance_mode"); v != "" {
		m, err := motion.ParseAdvanceMode(v)
		if err != nil {
			return params, mode, err
		}
		mode = m
	}

	floatFields := []struct {
		name string
		dst  *float64
	}{
		{"distance", &params.Distance},
		{"rate", &params.Rate},
		{"accel", &params.Accel},
		{"accel_overshoot", &params.AccelOvershoot},
		{"advance_k", &params.AdvanceK},
		{"line_width", &params.LineWidth},
		{"layer_height", &params.LayerHeight},
		{"sample_rate", &params.SampleRate},
		{"smooth_time", &params.SmoothTime},
	}
	for _, f := range floatFields {
		if v := q.Get(f.name); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return params, mode, fmt.Errorf("%w: %s=%q is not a number", motion.ErrInvalidParameter, f.name, v)
			}
			*f.dst = parsed
		}
	}

	if v := q.Get("smooth_order"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return params, mode, fmt.Errorf("%w: smooth_order=%q is not an integer", motion.ErrInvalidParameter, v)
		}
		params.SmoothOrder = parsed
	}

	return params, mode, nil
}

// assembleFromQuery computes the planned and effective profiles for a request.
func (ws *WebServer) assembleFromQuery(q url.Values) (planned, effective *motion.Profile, err error) {
	params, mode, err := ws.paramsFromQuery(q)
	if err != nil {
		return nil, nil, err
	}

	planned, err = motion.Assemble(params)
	if err != nil {
		return nil, nil, err
	}

	effective = motion.WithAdvance(planned, mode, params.AdvanceK)
	return planned, effective, nil
}

// errorStatus maps assembly errors to HTTP status codes. Parameter
// rejections are the caller's fault; everything else is ours.
func errorStatus(err error) int {
	if errors.Is(err, motion.ErrInvalidParameter) || errors.Is(err, motion.ErrProfileTooLarge) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// profileResponse is the JSON shape returned by /api/profile.
type profileResponse struct {
	SpeedUnits string         `json:"speed_units"`
	Planned    motion.Summary `json:"planned"`
	Effective  motion.Summary `json:"effective"`
}

// convertSpeedStats rescales the velocity stats of a summary in place.
func convertSpeedStats(s *motion.Summary, targetUnits string) {
	s.Velocity.Min = units.ConvertSpeed(s.Velocity.Min, targetUnits)
	s.Velocity.Max = units.ConvertSpeed(s.Velocity.Max, targetUnits)
	s.Velocity.Mean = units.ConvertSpeed(s.Velocity.Mean, targetUnits)
}

func (ws *WebServer) handleProfileJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		ws.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	q := r.URL.Query()

	speedUnits := units.MMPS
	if v := q.Get("units"); v != "" {
		if !units.IsValid(v) {
			ws.writeJSONError(w, http.StatusBadRequest,
				fmt.Sprintf("invalid units %q (valid: %s)", v, units.GetValidUnitsString()))
			return
		}
		speedUnits = v
	}

	planned, effective, err := ws.assembleFromQuery(q)
	if err != nil {
		ws.writeJSONError(w, errorStatus(err), err.Error())
		return
	}

	resp := profileResponse{
		SpeedUnits: speedUnits,
		Planned:    planned.Summarize(),
		Effective:  effective.Summarize(),
	}
	convertSpeedStats(&resp.Planned, speedUnits)
	convertSpeedStats(&resp.Effective, speedUnits)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
