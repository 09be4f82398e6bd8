package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/psychmatch/internal/core/domain"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driven"
	"github.com/custodia-labs/psychmatch/internal/core/ports/driving"
	"github.com/custodia-labs/psychmatch/internal/logger"
	"github.com/custodia-labs/psychmatch/internal/views"
)

// Ensure UserService implements the interface.
var _ driving.UserService = (*UserService)(nil)

// RegistrationSubject is the subject of the registration confirmation.
const RegistrationSubject = "Registration Confirmation"

// UserService registers users through the view engine.
type UserService struct {
	engine   driving.ViewEngine
	notifier driven.Notifier
	settings domain.Settings
	validate *validator.Validate

	// createMu serialises the duplicate email check with the write.
	createMu sync.Mutex
}

// NewUserService creates a user service. notifier may be nil.
func NewUserService(engine driving.ViewEngine, notifier driven.Notifier, settings domain.Settings) *UserService {
	return &UserService{
		engine:   engine,
		notifier: notifier,
		settings: settings,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Exists scans the users view for uid.
func (s *UserService) Exists(ctx context.Context, uid string) (bool, error) {
	users, err := queryUsers(ctx, s.engine)
	if err != nil {
		return false, err
	}
	for u := range users.All() {
		if u.ID == uid {
			return true, nil
		}
	}
	return false, nil
}

// Create registers an unverified user and sends a confirmation link.
func (s *UserService) Create(ctx context.Context, req driving.CreateUserRequest) (string, error) {
	if s.engine == nil {
		return "", domain.ErrNotImplemented
	}
	if err := s.validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	email := strings.ToLower(req.Email)

	s.createMu.Lock()
	defer s.createMu.Unlock()

	users, err := queryUsers(ctx, s.engine)
	if err != nil {
		return "", err
	}
	for u := range users.All() {
		if u.Body.String(domain.FieldEmail) == email {
			return "", fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, email)
		}
	}

	body := domain.Body{
		domain.FieldKind:             domain.KindUser,
		domain.FieldEmail:            email,
		domain.FieldUsername:         req.Username,
		domain.FieldVerified:         false,
		domain.FieldMatchRequirement: s.settings.Matching.Requirement,
	}
	if len(req.Hobbies) > 0 {
		body[domain.FieldHobbies] = append([]string(nil), req.Hobbies...)
	}

	uid, err := s.engine.Write(ctx, body, "")
	if err != nil {
		return "", err
	}
	logger.Info("registered user %s", uid)

	s.sendConfirmation(ctx, email, uid)
	return uid, nil
}

// sendConfirmation failures are logged; the user is already registered.
func (s *UserService) sendConfirmation(ctx context.Context, email, uid string) {
	link := fmt.Sprintf("%s/users/confirm?uid=%s", strings.TrimRight(s.settings.App.BaseURL, "/"), uid)
	content := "Please confirm your email at " + link
	if s.notifier == nil {
		logger.Info("no notifier configured; confirmation for %s: %s", email, link)
		return
	}
	if err := s.notifier.Notify(ctx, email, RegistrationSubject, content); err != nil {
		logger.Warn("sending confirmation to %s: %v", email, err)
	}
}

// Get returns the user document with the given id.
func (s *UserService) Get(ctx context.Context, uid string) (*domain.Document, error) {
	users, err := queryUsers(ctx, s.engine)
	if err != nil {
		return nil, err
	}
	doc, ok := users.Filter(func(u domain.Document) bool { return u.ID == uid }).First()
	if !ok {
		return nil, fmt.Errorf("user %s: %w", uid, domain.ErrNotFound)
	}
	return &doc, nil
}

// Verify sets verified=true on the user's document.
func (s *UserService) Verify(ctx context.Context, uid string) error {
	doc, err := s.Get(ctx, uid)
	if err != nil {
		return err
	}
	body := doc.Body.Clone()
	body[domain.FieldVerified] = true
	if _, err := s.engine.Write(ctx, body, uid); err != nil {
		return fmt.Errorf("verify user %s: %w", uid, err)
	}
	logger.Info("verified user %s", uid)
	return nil
}

// queryUsers returns a typed cursor over the users view.
func queryUsers(ctx context.Context, engine driving.ViewEngine) (*domain.Cursor[domain.Document], error) {
	if engine == nil {
		return nil, domain.ErrNotImplemented
	}
	return QueryAs[domain.Document](ctx, engine, views.Users)
}

