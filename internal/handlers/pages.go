package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"stefan-booking/internal/transport"
)

const (
	landingPage = "index.html"
	bookingPage = "stefan-booking.html"
)

func (s *Server) LandingPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, landingPage)
}

func (s *Server) BookingPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, bookingPage)
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, name string) {
	file := filepath.Join(s.Cfg.StaticDir, name)
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		s.logWithRequest(r).Warn("pages: missing", slog.String("file", file))
		transport.WriteError(w, r, http.StatusNotFound, transport.MsgNotFound, nil)
		return
	}
	http.ServeFile(w, r, file)
}

// StaticFiles serves the assets next to the pages. Dot-files such as .env
// and directory listings are never served.
func (s *Server) StaticFiles() http.Handler {
	fileServer := http.FileServer(http.Dir(s.Cfg.StaticDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		if strings.HasSuffix(r.URL.Path, "/") || hasDotSegment(clean) {
			transport.WriteError(w, r, http.StatusNotFound, transport.MsgNotFound, nil)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}

func hasDotSegment(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
