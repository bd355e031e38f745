package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/access-monitor/models"
	"github.com/blogem/access-monitor/repositories"
)

// AuditLogger records every POST/PUT/DELETE request together with the status it produced.
// Writes happen off the request path; wg, when non-nil, tracks them so shutdown can wait.
func AuditLogger(auditRepo repositories.AuditRepository, logger *slog.Logger, wg *sync.WaitGroup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutation(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			entry := &models.AuditLogEntry{
				RequestID:  chimiddleware.GetReqID(r.Context()),
				Method:     r.Method,
				Path:       r.URL.Path,
				StatusCode: status,
				UserAgent:  r.UserAgent(),
				IPAddress:  getIPAddress(r),
			}

			if wg != nil {
				wg.Add(1)
			}
			go func() {
				if wg != nil {
					defer wg.Done()
				}
				if err := auditRepo.Create(context.Background(), entry); err != nil {
					logger.Error("Failed to create audit log", "error", err, "method", entry.Method, "path", entry.Path)
				}
			}()
		})
	}
}

func isMutation(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodDelete
}

// getIPAddress returns the client host. Proxy headers are already folded into
// RemoteAddr by chi's RealIP middleware.
func getIPAddress(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
