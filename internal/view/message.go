package view

import (
	"errors"

	"github.com/jdvalencia/fondos-dashboard-go/internal/domain"
)

// Message converts a fetch-layer error into a display-ready string. The
// server's own message wins when one exists; anything else (transport
// failures, timeouts, open breaker) degrades to the given fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var validation *domain.ErrValidation
	if errors.As(err, &validation) {
		return validation.Message
	}

	var notFound *domain.ErrNotFound
	if errors.As(err, &notFound) {
		return notFound.Error()
	}

	var server *domain.ErrServer
	if errors.As(err, &server) && server.Message != "" {
		return server.Message
	}

	return fallback
}
