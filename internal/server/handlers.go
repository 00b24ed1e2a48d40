package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vk/packer/internal/ctxlog"
	"github.com/vk/packer/internal/packerr"
)

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (s *Server) packHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := ctxlog.WithLogger(r.Context(), loggerFromRequest(r, s.logger))
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	out, err := s.packer.PackReader(ctx, body)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			ctxlog.FromContext(ctx).Error("Packing failed", "error", err)
			http.Error(w, "internal error", status)
			return
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, out)
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch packerr.KindOf(err) {
	case packerr.ErrIncorrectInput, packerr.ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
