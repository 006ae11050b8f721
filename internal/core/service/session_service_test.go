package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

type stubUserDirectory struct {
	result     *ports.LoginResult
	err        error
	loginCalls int
}

func (d *stubUserDirectory) Login(_ context.Context, _, _ string) (*ports.LoginResult, error) {
	d.loginCalls++
	if d.err != nil {
		return nil, d.err
	}
	return d.result, nil
}

func (d *stubUserDirectory) List(_ context.Context) ([]domain.Record, error) { return nil, nil }
func (d *stubUserDirectory) Get(_ context.Context, _ string) (domain.Record, error) {
	return nil, domain.ErrResourceNotFound
}

type stubClientRoster struct {
	clientes   []domain.Record
	listErr    error
	listCalls  int
	created    []domain.Record
	createErr  error
	visited    []string
	visitErr   error
	visitCalls int
}

func (r *stubClientRoster) List(_ context.Context) ([]domain.Record, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.clientes, nil
}

func (r *stubClientRoster) Get(_ context.Context, _ string) (domain.Record, error) {
	return nil, domain.ErrResourceNotFound
}
func (r *stubClientRoster) Create(_ context.Context, c domain.Record) (domain.Record, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, c)
	return c, nil
}
func (r *stubClientRoster) Update(_ context.Context, _ string, c domain.Record) (domain.Record, error) {
	return c, nil
}
func (r *stubClientRoster) Delete(_ context.Context, _ string) error { return nil }
func (r *stubClientRoster) Renew(_ context.Context, _ string, _ int) (domain.Record, error) {
	return nil, nil
}
func (r *stubClientRoster) RegisterVisit(_ context.Context, id string) error {
	r.visitCalls++
	if r.visitErr != nil {
		return r.visitErr
	}
	r.visited = append(r.visited, id)
	return nil
}
func (r *stubClientRoster) Expiring(_ context.Context, _ int) ([]domain.Record, error) {
	return nil, nil
}
func (r *stubClientRoster) Stats(_ context.Context) (domain.Record, error) { return nil, nil }

type memSessionStore struct {
	sessions map[string]*domain.Session
	saves    int
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*domain.Session)}
}

func cloneSession(s *domain.Session) *domain.Session {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (m *memSessionStore) Save(_ context.Context, session *domain.Session) error {
	m.saves++
	m.sessions[session.ID] = cloneSession(session)
	return nil
}

func (m *memSessionStore) Load(_ context.Context, sessionID string) (*domain.Session, error) {
	return cloneSession(m.sessions[sessionID]), nil
}

func (m *memSessionStore) Clear(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func newTestSessionService(users *stubUserDirectory, clients *stubClientRoster, store *memSessionStore) *SessionService {
	return NewSessionService(users, clients, store, "secret", time.Hour, zerolog.Nop())
}

func TestSessionService_Login_StaffShortCircuit(t *testing.T) {
	users := &stubUserDirectory{result: &ports.LoginResult{
		Success: true,
		Usuario: domain.Record{"nombre": "Carlos", "role": "gerente"},
		Token:   "upstream-jwt",
	}}
	clients := &stubClientRoster{clientes: []domain.Record{{"nombre": "Carlos"}}}
	store := newMemSessionStore()
	svc := newTestSessionService(users, clients, store)

	token, session, err := svc.Login(context.Background(), "Carlos", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if session.Identity.Role != domain.RoleGerente || session.Identity.UserType != domain.UserTypeStaff {
		t.Fatalf("unexpected identity: %+v", session.Identity)
	}
	if session.UpstreamToken != "upstream-jwt" {
		t.Fatalf("upstream token not carried: %q", session.UpstreamToken)
	}
	if clients.listCalls != 0 {
		t.Fatalf("client roster consulted after staff success: %d calls", clients.listCalls)
	}
	if store.saves != 1 {
		t.Fatalf("expected exactly one save, got %d", store.saves)
	}
}

func TestSessionService_Login_StaffRecordVariants(t *testing.T) {
	cases := []struct {
		name     string
		usuario  domain.Record
		wantName string
		wantRole string
	}{
		{"rol field", domain.Record{"username": "ana", "rol": "administrador"}, "ana", "administrador"},
		{"nombre over username", domain.Record{"nombre": "Ana P", "username": "ana", "role": "fundador"}, "Ana P", "fundador"},
		{"no name fields", domain.Record{"role": "gerente"}, "ana", "gerente"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := &stubUserDirectory{result: &ports.LoginResult{Success: true, Usuario: tc.usuario}}
			svc := newTestSessionService(users, &stubClientRoster{}, newMemSessionStore())

			_, session, err := svc.Login(context.Background(), "ana", "pass")
			if err != nil {
				t.Fatalf("login failed: %v", err)
			}
			if session.Identity.Name != tc.wantName {
				t.Fatalf("name = %q, want %q", session.Identity.Name, tc.wantName)
			}
			if session.Identity.Role != tc.wantRole {
				t.Fatalf("role = %q, want %q", session.Identity.Role, tc.wantRole)
			}
		})
	}
}

func TestSessionService_Login_ClientFallback(t *testing.T) {
	users := &stubUserDirectory{err: &domain.UpstreamError{Status: 401, Message: "Credenciales incorrectas"}}
	clients := &stubClientRoster{clientes: []domain.Record{
		{"nombre": "Pedro Gomez", "membresia": "Mensual"},
		{"nombre": "Maria Lopez", "membresia": "Anual"},
	}}
	store := newMemSessionStore()
	svc := newTestSessionService(users, clients, store)

	_, session, err := svc.Login(context.Background(), "maria lopez", "whatever")
	if err != nil {
		t.Fatalf("client fallback failed: %v", err)
	}
	if session.Identity.Name != "Maria Lopez" {
		t.Fatalf("matched wrong client: %q", session.Identity.Name)
	}
	if !session.Identity.IsClient() {
		t.Fatalf("client identity not flagged as client: %+v", session.Identity)
	}
	if session.Identity.Role != domain.RoleCliente || session.Identity.UserType != domain.UserTypeCliente {
		t.Fatalf("unexpected identity: %+v", session.Identity)
	}
	if session.UpstreamToken != "" {
		t.Fatalf("client session should carry no upstream token")
	}
}

func TestSessionService_Login_NotFoundFallsBackToRoster(t *testing.T) {
	// Some gateway builds answer an unknown staff username with a 404
	// instead of a 401. That is still a stage-1 rejection.
	users := &stubUserDirectory{err: &domain.UpstreamError{Status: 404, Message: "usuario no encontrado"}}
	clients := &stubClientRoster{clientes: []domain.Record{{"nombre": "Maria Lopez"}}}
	store := newMemSessionStore()
	svc := newTestSessionService(users, clients, store)

	_, session, err := svc.Login(context.Background(), "maria lopez", "whatever")
	if err != nil {
		t.Fatalf("client fallback failed: %v", err)
	}
	if session.Identity.Name != "Maria Lopez" || !session.Identity.IsClient() {
		t.Fatalf("unexpected identity: %+v", session.Identity)
	}

	// With no roster match the 404's message survives as the rejection.
	_, _, err = svc.Login(context.Background(), "nadie", "whatever")
	var ce *domain.CredentialsError
	if !errors.As(err, &ce) || ce.Message != "usuario no encontrado" {
		t.Fatalf("expected credentials error with the gateway message, got %v", err)
	}
}

func TestSessionService_Login_NoSubstringMatch(t *testing.T) {
	users := &stubUserDirectory{err: &domain.UpstreamError{Status: 401, Message: "Credenciales incorrectas"}}
	clients := &stubClientRoster{clientes: []domain.Record{{"nombre": "Maria Lopez"}}}
	store := newMemSessionStore()
	svc := newTestSessionService(users, clients, store)

	_, _, err := svc.Login(context.Background(), "Maria", "pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	var ce *domain.CredentialsError
	if !errors.As(err, &ce) || ce.Message != "Credenciales incorrectas" {
		t.Fatalf("gateway message not preserved: %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("failed login must not persist a session")
	}
}

func TestSessionService_Login_UpstreamUnreachable(t *testing.T) {
	users := &stubUserDirectory{err: domain.ErrUpstreamUnavailable}
	clients := &stubClientRoster{}
	store := newMemSessionStore()
	svc := newTestSessionService(users, clients, store)

	_, _, err := svc.Login(context.Background(), "ana", "pass")
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
	if clients.listCalls != 0 {
		t.Fatalf("transport failure must not fall through to the roster")
	}
	if store.saves != 0 {
		t.Fatalf("failed login must not persist a session")
	}
}

func TestSessionService_Login_EmptyCredentials(t *testing.T) {
	users := &stubUserDirectory{}
	svc := newTestSessionService(users, &stubClientRoster{}, newMemSessionStore())

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty username, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ana", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}
	if users.loginCalls != 0 {
		t.Fatalf("empty credentials should not reach the gateway")
	}
}

func TestSessionService_Login_TokenCarriesSessionID(t *testing.T) {
	users := &stubUserDirectory{result: &ports.LoginResult{
		Success: true,
		Usuario: domain.Record{"nombre": "Carlos", "role": "fundador"},
	}}
	store := newMemSessionStore()
	svc := newTestSessionService(users, &stubClientRoster{}, store)

	token, session, err := svc.Login(context.Background(), "Carlos", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sid"] != session.ID {
		t.Fatalf("sid claim = %v, want %s", claims["sid"], session.ID)
	}
	if claims["role"] != domain.RoleFundador {
		t.Fatalf("role claim = %v", claims["role"])
	}
}

func TestSessionService_Current(t *testing.T) {
	store := newMemSessionStore()
	svc := newTestSessionService(&stubUserDirectory{}, &stubClientRoster{}, store)

	saved := &domain.Session{ID: "s1", Identity: domain.Identity{Name: "Ana", Role: domain.RoleGerente}}
	if err := store.Save(context.Background(), saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	session, err := svc.Current(context.Background(), "s1")
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if session.Identity.Name != "Ana" {
		t.Fatalf("unexpected session: %+v", session)
	}

	if _, err := svc.Current(context.Background(), "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session not found, got %v", err)
	}
}

func TestSessionService_Logout_Idempotent(t *testing.T) {
	store := newMemSessionStore()
	svc := newTestSessionService(&stubUserDirectory{}, &stubClientRoster{}, store)

	_ = store.Save(context.Background(), &domain.Session{ID: "s1"})
	if err := svc.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
	if _, err := svc.Current(context.Background(), "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("session still resolvable after logout: %v", err)
	}
}
