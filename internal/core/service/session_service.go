package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// SessionService implements the two-stage identity resolution and the session
// lifecycle around it.
type SessionService struct {
	users     ports.UserDirectory
	clients   ports.ClientRoster
	store     ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewSessionService(users ports.UserDirectory, clients ports.ClientRoster, store ports.SessionStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		users:     users,
		clients:   clients,
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login resolves (username, password) into an Identity. Stage 1 authenticates
// against the staff login endpoint; on success stage 2 is never attempted.
// Stage 2 falls back to a case-insensitive exact name match against the
// client roster. The client path performs no password verification: that is
// observed gym API behaviour, preserved as-is.
//
// A failed resolution writes nothing; any previously persisted session is
// left untouched.
func (s *SessionService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	if username == "" || password == "" {
		return "", nil, &domain.CredentialsError{}
	}

	result, err := s.users.Login(ctx, username, password)
	if err != nil {
		// A 4xx/5xx from the login endpoint is a stage-1 rejection, not a
		// resolution failure: fall through to the roster lookup, keeping the
		// gateway's message for the final error.
		var ue *domain.UpstreamError
		if !errors.As(err, &ue) {
			return "", nil, err
		}
		s.logger.Debug().Err(err).Str("username", username).Msg("staff login rejected, trying client roster")
		result = &ports.LoginResult{Message: ue.Message}
	}

	if result.Success && result.Usuario != nil {
		identity := normalizeStaff(result.Usuario, username)
		session, token, err := s.openSession(ctx, identity, result.Token)
		if err != nil {
			return "", nil, err
		}
		s.logger.Info().Str("username", username).Str("role", identity.Role).Msg("staff login")
		return token, session, nil
	}

	identity, found, err := s.lookupClient(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if !found {
		return "", nil, &domain.CredentialsError{Message: result.Message}
	}

	session, token, err := s.openSession(ctx, identity, "")
	if err != nil {
		return "", nil, err
	}
	s.logger.Info().Str("username", username).Msg("client login")
	return token, session, nil
}

// Current loads a persisted session. No gym API call happens here: a reload
// with a valid session goes straight back to the dashboard.
func (s *SessionService) Current(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Logout clears the persisted session. Idempotent.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

// lookupClient scans the client roster for an exact, case-insensitive name
// match. Substring matches do not count.
func (s *SessionService) lookupClient(ctx context.Context, username string) (domain.Identity, bool, error) {
	clientes, err := s.clients.List(ctx)
	if err != nil {
		return domain.Identity{}, false, err
	}

	for _, cliente := range clientes {
		if strings.EqualFold(cliente.Str("nombre"), username) {
			return normalizeClient(cliente), true, nil
		}
	}
	return domain.Identity{}, false, nil
}

func (s *SessionService) openSession(ctx context.Context, identity domain.Identity, upstreamToken string) (*domain.Session, string, error) {
	session := &domain.Session{
		ID:            uuid.NewString(),
		Identity:      identity,
		UpstreamToken: upstreamToken,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := s.signToken(session)
	if err != nil {
		return nil, "", err
	}
	return session, token, nil
}

func (s *SessionService) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":       session.ID,
		"name":      session.Identity.Name,
		"role":      session.Identity.Role,
		"user_type": session.Identity.UserType,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// normalizeStaff folds the staff record's shape variance (role vs rol,
// nombre vs username) into the canonical Identity. The raw record is kept on
// the profile for display.
func normalizeStaff(usuario domain.Record, username string) domain.Identity {
	role := usuario.Str("role")
	if role == "" {
		role = usuario.Str("rol")
	}

	name := usuario.Str("nombre")
	if name == "" {
		name = usuario.Str("username")
	}
	if name == "" {
		name = username
	}

	return domain.Identity{
		Name:     name,
		Role:     role,
		UserType: domain.UserTypeStaff,
		Profile:  usuario,
	}
}

func normalizeClient(cliente domain.Record) domain.Identity {
	return domain.Identity{
		Name:     cliente.Str("nombre"),
		Role:     domain.RoleCliente,
		UserType: domain.UserTypeCliente,
		Profile:  cliente,
	}
}
