package helperd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
)

// DefaultPort is the fixed local port the daemon listens on.
const DefaultPort = 5000

// Server is the local control daemon. It binds to localhost only; the
// routes run privileged system commands and must never be reachable
// from the network.
type Server struct {
	// Port to listen on. Defaults to DefaultPort.
	Port int

	// Apps maps launchable app names to their executables. Requests
	// for unlisted apps are refused.
	Apps map[string]string

	// run executes a system command; replaced in tests.
	run func(name string, args ...string) error
}

// NewServer creates a daemon with the stock app table.
func NewServer() *Server {
	return &Server{
		Apps: map[string]string{
			"code":    "code",
			"arduino": "arduino",
		},
	}
}

// Addr returns the localhost listen address.
func (s *Server) Addr() string {
	port := s.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("127.0.0.1:%d", port)
}

// Handler returns the daemon's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/launch", s.handleLaunch)
	mux.HandleFunc("/shutdown", s.handlePower("shutdown"))
	mux.HandleFunc("/restart", s.handlePower("restart"))
	mux.HandleFunc("/lock", s.handlePower("lock"))
	return withCORS(mux)
}

// ListenAndServe runs the daemon until the listener fails.
func (s *Server) ListenAndServe() error {
	slog.Info("control daemon starting", "addr", s.Addr())
	return http.ListenAndServe(s.Addr(), s.Handler())
}

// withCORS lets the console page, served from another local port, call
// the daemon from the browser.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLaunch(w http.ResponseWriter, r *http.Request) {
	app := r.URL.Query().Get("app")
	bin, ok := s.Apps[app]
	if !ok {
		slog.Warn("refusing to launch unlisted app", "app", app)
		http.Error(w, "unknown app", http.StatusNotFound)
		return
	}
	if err := s.start(bin); err != nil {
		slog.Error("launch failed", "app", app, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Fprintln(w, "Launched")
}

func (s *Server) handlePower(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, args := powerCommand(action, runtime.GOOS)
		if name == "" {
			http.Error(w, "unsupported on this platform", http.StatusNotImplemented)
			return
		}
		if err := s.exec(name, args...); err != nil {
			slog.Error("power command failed", "action", action, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Fprintln(w, "OK")
	}
}

// powerCommand maps a power action onto the platform's command line.
func powerCommand(action, goos string) (string, []string) {
	switch goos {
	case "windows":
		switch action {
		case "shutdown":
			return "shutdown", []string{"/s", "/t", "0"}
		case "restart":
			return "shutdown", []string{"/r", "/t", "0"}
		case "lock":
			return "rundll32.exe", []string{"user32.dll,LockWorkStation"}
		}
	case "darwin":
		switch action {
		case "shutdown":
			return "osascript", []string{"-e", `tell app "System Events" to shut down`}
		case "restart":
			return "osascript", []string{"-e", `tell app "System Events" to restart`}
		case "lock":
			return "pmset", []string{"displaysleepnow"}
		}
	default: // linux and friends
		switch action {
		case "shutdown":
			return "systemctl", []string{"poweroff"}
		case "restart":
			return "systemctl", []string{"reboot"}
		case "lock":
			return "loginctl", []string{"lock-session"}
		}
	}
	return "", nil
}

func (s *Server) exec(name string, args ...string) error {
	if s.run != nil {
		return s.run(name, args...)
	}
	return exec.Command(name, args...).Run()
}

// start launches an app without waiting for it to exit.
func (s *Server) start(name string, args ...string) error {
	if s.run != nil {
		return s.run(name, args...)
	}
	return exec.Command(name, args...).Start()
}
