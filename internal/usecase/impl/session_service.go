// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

const minPasswordLength = 6

// emailPattern matches the loose "something@something.something" check
// the login form has always used.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessions  repository.SessionRepository
	discounts repository.DiscountRepository
	gateway   service.BackendGateway
	notifier  service.Notifier
	scorer    service.PasswordStrengthScorer
	cfg       *config.SessionConfig
	logger    *slog.Logger

	// loginBusy rejects a second login or registration while one is in
	// flight, since both race for the single session slot.
	loginBusy atomic.Bool

	// now is swapped in tests to control the TTL clock.
	now func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessions repository.SessionRepository,
	discounts repository.DiscountRepository,
	gateway service.BackendGateway,
	notifier service.Notifier,
	scorer service.PasswordStrengthScorer,
	cfg *config.SessionConfig,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessions:  sessions,
		discounts: discounts,
		gateway:   gateway,
		notifier:  notifier,
		scorer:    scorer,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Restore re-reads the persisted session. It runs the one-time legacy
// migration, drops expired sessions and schedules the welcome
// notification for sessions that have not shown it yet.
func (srv *sessionService) Restore(ctx context.Context) (*usecase.SessionView, error) {
	if err := srv.migrateLegacyLogin(ctx); err != nil {
		return nil, err
	}

	session, err := srv.sessions.Load(ctx)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return &usecase.SessionView{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to restore session")
	}

	if session.ExpiredAt(srv.now(), srv.cfg.TTL) {
		srv.logger.Info("Dropping expired session",
			slog.String("userID", session.User.ID),
			slog.Time("loginAt", session.LoginAt))
		if err := srv.sessions.Clear(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to clear expired session")
		}

		return &usecase.SessionView{}, nil
	}

	if !session.User.WelcomeShown {
		if err := srv.markWelcomeShown(ctx, session); err != nil {
			return nil, err
		}
		srv.scheduleWelcome(ctx, session.User.DisplayName())
	}

	return sessionView(session), nil
}

// Login authenticates against the backend and replaces the session slot.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionView, error) {
	if !emailPattern.MatchString(input.Email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	if !srv.loginBusy.CompareAndSwap(false, true) {
		return nil, domainerrors.ErrLoginInProgress
	}
	defer srv.loginBusy.Store(false)

	srv.logger.Info("Logging in", slog.String("email", input.Email))

	if err := srv.gateway.Authenticate(ctx, input.Email, input.Password); err != nil {
		return nil, errors.Wrap(err, "authentication round trip failed")
	}

	loginAt := srv.now()
	user := &entity.UserIdentity{
		ID:      strconv.FormatInt(loginAt.UnixMilli(), 10),
		Email:   input.Email,
		Name:    emailLocalPart(input.Email),
		Kind:    entity.KindRegistered,
		LoginAt: loginAt,
	}

	return srv.establishSession(ctx, user)
}

// Register creates the account and logs it in.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionView, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrNameRequired
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}

	if !srv.loginBusy.CompareAndSwap(false, true) {
		return nil, domainerrors.ErrLoginInProgress
	}
	defer srv.loginBusy.Store(false)

	srv.logger.Info("Registering account", slog.String("email", input.Email))

	if err := srv.gateway.Register(ctx, input.Name, input.Email, input.Password); err != nil {
		return nil, errors.Wrap(err, "registration round trip failed")
	}

	loginAt := srv.now()
	user := &entity.UserIdentity{
		ID:      strconv.FormatInt(loginAt.UnixMilli(), 10),
		Email:   input.Email,
		Name:    strings.TrimSpace(input.Name),
		Kind:    entity.KindRegistered,
		LoginAt: loginAt,
	}

	return srv.establishSession(ctx, user)
}

// LoginAsGuest establishes an anonymous session without a round trip.
func (srv *sessionService) LoginAsGuest(ctx context.Context) (*usecase.SessionView, error) {
	loginAt := srv.now()
	user := &entity.UserIdentity{
		ID:      "guest_" + strconv.FormatInt(loginAt.UnixMilli(), 10),
		Name:    "Invitado",
		Kind:    entity.KindGuest,
		LoginAt: loginAt,
	}

	srv.logger.Info("Starting guest session", slog.String("userID", user.ID))

	return srv.establishSession(ctx, user)
}

// Logout clears the session slot and the active discount. Carts are
// keyed per identity and survive for the next login.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessions.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}
	if err := srv.discounts.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear discount on logout")
	}

	srv.logger.Info("Logged out")
	srv.notifier.Notify(ctx, service.NotifyInfo, "Sesión cerrada")

	return nil
}

// RequestPasswordReset triggers the recovery email round trip.
func (srv *sessionService) RequestPasswordReset(ctx context.Context, input *usecase.PasswordResetInput) error {
	if !emailPattern.MatchString(input.Email) {
		return domainerrors.ErrInvalidEmail
	}

	if err := srv.gateway.RequestPasswordReset(ctx, input.Email); err != nil {
		return errors.Wrap(err, "password reset round trip failed")
	}

	srv.notifier.Notify(ctx, service.NotifySuccess,
		"Te enviamos un enlace de recuperación a "+input.Email)

	return nil
}

// PasswordStrength rates a candidate password. Purely informational;
// it never blocks registration.
func (srv *sessionService) PasswordStrength(password string) service.StrengthReport {
	return srv.scorer.Score(password)
}

// migrateLegacyLogin folds the old two-key login representation into a
// session blob, exactly once per storage namespace.
func (srv *sessionService) migrateLegacyLogin(ctx context.Context) error {
	version, err := srv.sessions.SchemaVersion(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}
	if version >= repository.SchemaVersionCurrent {
		return nil
	}

	// A current-format session wins over legacy markers.
	if _, err := srv.sessions.Load(ctx); err == nil {
		return srv.sessions.SetSchemaVersion(ctx, repository.SchemaVersionCurrent)
	} else if !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to check session during migration")
	}

	name, err := srv.sessions.LoadLegacyLogin(ctx)
	if errors.Is(err, repository.ErrLegacyLoginNotFound) {
		return srv.sessions.SetSchemaVersion(ctx, repository.SchemaVersionCurrent)
	}
	if err != nil {
		return errors.Wrap(err, "failed to read legacy login")
	}

	email := name
	if !strings.Contains(email, "@") {
		email = name + "@legacy.com"
	}

	loginAt := srv.now()
	session := &entity.Session{
		User: &entity.UserIdentity{
			ID:      "legacy_" + strconv.FormatInt(loginAt.UnixMilli(), 10),
			Email:   email,
			Name:    name,
			Kind:    entity.KindLegacy,
			LoginAt: loginAt,
		},
		LoginAt: loginAt,
	}
	if err := srv.sessions.Save(ctx, session); err != nil {
		return errors.Wrap(err, "failed to save migrated session")
	}

	srv.logger.Info("Migrated legacy login", slog.String("name", name))

	return srv.sessions.SetSchemaVersion(ctx, repository.SchemaVersionCurrent)
}

// establishSession persists the identity and schedules its welcome.
func (srv *sessionService) establishSession(ctx context.Context, user *entity.UserIdentity) (*usecase.SessionView, error) {
	session := &entity.Session{User: user, LoginAt: user.LoginAt}

	if err := srv.markWelcomeShown(ctx, session); err != nil {
		return nil, err
	}
	srv.scheduleWelcome(ctx, user.DisplayName())

	return sessionView(session), nil
}

// markWelcomeShown persists the session with the welcome flag set, so a
// later restore does not greet twice.
func (srv *sessionService) markWelcomeShown(ctx context.Context, session *entity.Session) error {
	session.User.WelcomeShown = true
	if err := srv.sessions.Save(ctx, session); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

// scheduleWelcome fires the one-time greeting after the configured
// delay so it does not overlap the login transition itself.
func (srv *sessionService) scheduleWelcome(ctx context.Context, displayName string) {
	detached := context.WithoutCancel(ctx)
	time.AfterFunc(srv.cfg.WelcomeDelay, func() {
		srv.notifier.Notify(detached, service.NotifySuccess,
			"¡Bienvenido de nuevo, "+displayName+"!")
	})
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}

	return email
}

func sessionView(session *entity.Session) *usecase.SessionView {
	user := session.User

	return &usecase.SessionView{
		LoggedIn:    true,
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		DisplayName: user.DisplayName(),
		Kind:        string(user.Kind),
		LoginAt:     user.LoginAt,
	}
}
