package pprofserver

import (
	"crypto/subtle"
	"net"
	"net/http"
	"net/http/pprof"
	"strings"
)

// Config holds the basic-auth credentials for remote profiling access.
// Empty credentials lock the endpoints down to loopback clients.
type Config struct {
	User string
	Pass string
}

// profiles served through runtime/pprof lookup handlers; index,
// cmdline, profile, symbol and trace have dedicated functions.
var profiles = []string{
	"heap", "goroutine", "allocs", "block", "mutex", "threadcreate",
}

// Handler builds the pprof mux for the side server. The shipping
// service keeps it off the public port; access from anywhere but
// loopback requires the configured credentials.
func Handler(cfg Config) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	for _, name := range profiles {
		mux.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}

	return guard(mux, cfg)
}

// guard admits loopback clients as-is and challenges everyone else for
// basic auth. With empty credentials remote access is refused outright.
func guard(next http.Handler, cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if loopbackAddr(r.RemoteAddr) {
			next.ServeHTTP(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		if cfg.User == "" || cfg.Pass == "" ||
			!ok || !constantTimeEq(user, cfg.User) || !constantTimeEq(pass, cfg.Pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="pprof"`)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func constantTimeEq(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func loopbackAddr(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}

	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
