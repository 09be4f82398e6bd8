// Package httpapi exposes the user, match and message services over HTTP.
//
// The caller identifies itself with the "uid" request header on /matches
// and /messages routes.
package httpapi

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
	"github.com/custodia-labs/psychmatch/internal/logger"
)

// HeaderUID carries the calling user's id.
const HeaderUID = "uid"

// Ports contains the driving ports the HTTP API uses.
type Ports struct {
	Users    driving.UserService
	Messages driving.MessageService
	Matches  driving.MatchService
}

// Server is the HTTP API.
type Server struct {
	app   *fiber.App
	ports *Ports
}

// NewServer builds the fiber app and registers the routes.
func NewServer(ports *Ports) (*Server, error) {
	if ports == nil || ports.Users == nil || ports.Messages == nil || ports.Matches == nil {
		return nil, errors.New("http api requires user, message and match services")
	}

	// Values from c.Params, c.Get and BodyParser are stored in documents,
	// so they must not alias fasthttp's reused request buffers.
	app := fiber.New(fiber.Config{
		Immutable:             true,
		AppName:               "psychmatch",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	s := &Server{app: app, ports: ports}
	s.registerRoutes()
	return s, nil
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down http api")
		if err := s.app.Shutdown(); err != nil {
			return err
		}
		return <-errCh
	}
}

func (s *Server) registerRoutes() {
	s.app.Get("/", s.index)

	users := s.app.Group("/users")
	users.Post("/", s.createUser)
	// Registered before /:uid so "confirm" is not taken as an id
	users.Get("/confirm", s.confirmUser)
	users.Get("/:uid", s.userInfo)
	users.Post("/:uid/verify", s.verifyUser)

	s.app.Get("/matches", s.matches)

	messages := s.app.Group("/messages")
	messages.Get("/", s.userMessages)
	messages.Get("/:partner", s.conversation)
	messages.Post("/:partner", s.sendMessage)
}

// errorHandler maps domain errors to status codes.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
	case errors.Is(err, domain.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidDocument):
		code = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateEmail):
		code = fiber.StatusConflict
	case errors.Is(err, domain.ErrUnknownParticipant):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotImplemented):
		code = fiber.StatusNotImplemented
	}

	if code >= fiber.StatusInternalServerError {
		logger.Warn("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
