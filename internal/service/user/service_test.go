package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"agrimart/internal/domain"
	tokenrepo "agrimart/internal/repository/token"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	created    *domain.User
	createErr  error
	lastCreate domain.User
	byEmail    *domain.User
	byEmailErr error
	byID       *domain.User
	byIDErr    error
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	s.lastCreate = u
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	out := u
	out.ID = "generated"
	return &out, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return s.byEmail, s.byEmailErr
}

func (s *stubUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return s.byID, s.byIDErr
}

type stubTokenRepo struct {
	tokens    map[string]tokenrepo.Token
	createErr error
	deleted   []string
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (s *stubTokenRepo) Create(_ context.Context, token tokenrepo.Token) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.tokens[token.Token] = token
	return nil
}

func (s *stubTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := s.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (s *stubTokenRepo) Delete(_ context.Context, token string) error {
	s.deleted = append(s.deleted, token)
	delete(s.tokens, token)
	return nil
}

func newTestService(repo *stubUserRepo, tokens *stubTokenRepo) *Service {
	return New(repo, tokens, time.Hour, 24*time.Hour)
}

func TestSignupValidatesEmail(t *testing.T) {
	svc := newTestService(&stubUserRepo{}, newStubTokenRepo())
	for _, email := range []string{"", "   ", "no-at-sign"} {
		_, err := svc.Signup(context.Background(), SignupInput{Email: email, Password: "Abcdefg1"})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("email %q: expected validation error, got %v", email, err)
		}
	}
}

func TestSignupValidatesPassword(t *testing.T) {
	svc := newTestService(&stubUserRepo{}, newStubTokenRepo())
	cases := []string{
		"Ab1",        // too short
		"abcdefgh1",  // no uppercase
		"ABCDEFGH1",  // no lowercase
		"Abcdefghij", // no digit
	}
	for _, password := range cases {
		_, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.test", Password: password})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("password %q: expected validation error, got %v", password, err)
		}
	}
}

func TestSignupNormalizesEmailAndHashes(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newTestService(repo, newStubTokenRepo())
	u, err := svc.Signup(context.Background(), SignupInput{Email: "  Asha@Example.COM ", Password: "Abcdefg1", Name: " Asha "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "asha@example.com" || u.Name != "Asha" {
		t.Fatalf("unexpected user %+v", u)
	}
	if repo.lastCreate.Role != domain.RoleUser {
		t.Fatalf("signup must create shopper accounts, got role %q", repo.lastCreate.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastCreate.PasswordHash), []byte("Abcdefg1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterAdminSetsRole(t *testing.T) {
	repo := &stubUserRepo{}
	svc := newTestService(repo, newStubTokenRepo())
	if _, err := svc.RegisterAdmin(context.Background(), SignupInput{Email: "boss@farm.test", Password: "Abcdefg1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreate.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", repo.lastCreate.Role)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestService(&stubUserRepo{createErr: domain.ErrAlreadyExists}, newStubTokenRepo())
	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.test", Password: "Abcdefg1"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(&stubUserRepo{byEmailErr: domain.ErrNotFound}, newStubTokenRepo())
	_, _, _, err := svc.Login(context.Background(), "who@where.test", "Abcdefg1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Correct1pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubUserRepo{byEmail: &domain.User{ID: "u1", Email: "a@b.test", PasswordHash: string(hash)}}
	svc := newTestService(repo, newStubTokenRepo())
	_, _, _, err = svc.Login(context.Background(), "a@b.test", "Wrong1password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Correct1pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubUserRepo{byEmail: &domain.User{ID: "u1", Email: "a@b.test", PasswordHash: string(hash)}}
	tokens := newStubTokenRepo()
	svc := newTestService(repo, tokens)

	u, access, refresh, err := svc.Login(context.Background(), "A@B.test", "Correct1pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u1" || access == "" || refresh == "" || access == refresh {
		t.Fatalf("unexpected login result u=%+v access=%q refresh=%q", u, access, refresh)
	}
	if tokens.tokens[access].Kind != "access" || tokens.tokens[refresh].Kind != "refresh" {
		t.Fatalf("unexpected token kinds %+v", tokens.tokens)
	}
	if tokens.tokens[access].UserID != "u1" {
		t.Fatalf("token not bound to user: %+v", tokens.tokens[access])
	}
}

func TestLookupByTokenUnknown(t *testing.T) {
	svc := newTestService(&stubUserRepo{}, newStubTokenRepo())
	_, err := svc.LookupByToken(context.Background(), "nope")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestLookupByTokenRejectsRefreshKind(t *testing.T) {
	tokens := newStubTokenRepo()
	tokens.tokens["r1"] = tokenrepo.Token{Token: "r1", UserID: "u1", Kind: "refresh", ExpiresAt: time.Now().Add(time.Hour)}
	svc := newTestService(&stubUserRepo{byID: &domain.User{ID: "u1"}}, tokens)
	_, err := svc.LookupByToken(context.Background(), "r1")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestLookupByTokenExpired(t *testing.T) {
	tokens := newStubTokenRepo()
	tokens.tokens["old"] = tokenrepo.Token{Token: "old", UserID: "u1", Kind: "access", ExpiresAt: time.Now().Add(-time.Minute)}
	svc := newTestService(&stubUserRepo{byID: &domain.User{ID: "u1"}}, tokens)
	_, err := svc.LookupByToken(context.Background(), "old")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	if len(tokens.deleted) != 1 || tokens.deleted[0] != "old" {
		t.Fatalf("expired token should be deleted, got %v", tokens.deleted)
	}
}

func TestLookupByTokenSuccess(t *testing.T) {
	tokens := newStubTokenRepo()
	tokens.tokens["t1"] = tokenrepo.Token{Token: "t1", UserID: "u1", Kind: "access", ExpiresAt: time.Now().Add(time.Hour)}
	svc := newTestService(&stubUserRepo{byID: &domain.User{ID: "u1", Role: domain.RoleAdmin}}, tokens)
	u, err := svc.LookupByToken(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u1" || !u.IsAdmin() {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestLookupByTokenDeletedUser(t *testing.T) {
	tokens := newStubTokenRepo()
	tokens.tokens["t1"] = tokenrepo.Token{Token: "t1", UserID: "gone", Kind: "access", ExpiresAt: time.Now().Add(time.Hour)}
	svc := newTestService(&stubUserRepo{byIDErr: domain.ErrNotFound}, tokens)
	_, err := svc.LookupByToken(context.Background(), "t1")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
