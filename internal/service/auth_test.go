package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medicore-health/hms/config"
	"github.com/medicore-health/hms/internal/dto"
	apperrors "github.com/medicore-health/hms/internal/errors"
	"github.com/medicore-health/hms/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeStore struct {
	employees []model.Employee
}

func (f *fakeEmployeeStore) FindByIdentifier(_ context.Context, identifier string) (*model.Employee, error) {
	for i := range f.employees {
		if f.employees[i].Email == identifier || f.employees[i].Phone == identifier {
			return &f.employees[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeStore) UpdateLastLogin(_ context.Context, _ uint) error {
	return nil
}

type fakePatientStore struct {
	patients []model.Patient
}

func (f *fakePatientStore) FindByIdentifier(_ context.Context, identifier string) (*model.Patient, error) {
	for i := range f.patients {
		p := &f.patients[i]
		if (p.Email != nil && *p.Email == identifier) || (p.Phone != nil && *p.Phone == identifier) {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeLedger struct {
	rows map[string]*model.RefreshToken
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: make(map[string]*model.RefreshToken)}
}

func (f *fakeLedger) Upsert(_ context.Context, token *model.RefreshToken) error {
	for existing, row := range f.rows {
		if row.UserID == token.UserID && row.UserType == token.UserType {
			delete(f.rows, existing)
		}
	}
	f.rows[token.Token] = token
	return nil
}

func (f *fakeLedger) FindByToken(_ context.Context, token string) (*model.RefreshToken, error) {
	row, ok := f.rows[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (f *fakeLedger) DeleteByToken(_ context.Context, token string) error {
	delete(f.rows, token)
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func newTokenService() *TokenService {
	return NewTokenService(config.JWTConfig{
		AccessSecret:  "access-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshSecret: "refresh-secret",
		RefreshExpiry: 30 * 24 * time.Hour,
		LedgerTTL:     30 * 24 * time.Hour,
	})
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeEmployeeStore, *fakePatientStore, *fakeLedger) {
	t.Helper()
	employees := &fakeEmployeeStore{}
	patients := &fakePatientStore{}
	ledger := newFakeLedger()
	svc := NewAuthService(employees, patients, ledger, newTokenService(), zap.NewNop())
	return svc, employees, patients, ledger
}

func TestLoginEmployeeByEmail(t *testing.T) {
	svc, employees, _, ledger := newTestAuthService(t)
	employees.employees = []model.Employee{{
		Model:        gorm.Model{ID: 7},
		FirstName:    "Asha",
		LastName:     "Rao",
		Email:        "asha@example.com",
		Phone:        "9000000001",
		Role:         "Doctor",
		PasswordHash: hashPassword(t, "secret123"),
	}}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "asha@example.com",
		Password:   "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Type != model.UserTypeEmployee {
		t.Errorf("type = %q, want %q", resp.Type, model.UserTypeEmployee)
	}
	if resp.Role != "Doctor" {
		t.Errorf("role = %q, want Doctor", resp.Role)
	}
	if resp.Name != "Asha Rao" {
		t.Errorf("name = %q, want Asha Rao", resp.Name)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if resp.AccessToken == resp.RefreshToken {
		t.Error("access and refresh tokens must differ")
	}
	if _, err := ledger.FindByToken(context.Background(), resp.RefreshToken); err != nil {
		t.Errorf("refresh token not persisted: %v", err)
	}
}

func TestLoginEmployeeByPhone(t *testing.T) {
	svc, employees, _, _ := newTestAuthService(t)
	employees.employees = []model.Employee{{
		Model:        gorm.Model{ID: 3},
		FirstName:    "Ravi",
		LastName:     "Kumar",
		Email:        "ravi@example.com",
		Phone:        "9000000002",
		Role:         "Pharmacist",
		PasswordHash: hashPassword(t, "secret123"),
	}}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "9000000002",
		Password:   "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.ID != 3 {
		t.Errorf("id = %d, want 3", resp.ID)
	}
}

func TestLoginPatientFallback(t *testing.T) {
	svc, _, patients, _ := newTestAuthService(t)
	email := "meena@example.com"
	patients.patients = []model.Patient{{
		Model:        gorm.Model{ID: 11},
		FirstName:    "Meena",
		LastName:     "Iyer",
		Email:        &email,
		PasswordHash: hashPassword(t, "patient123"),
	}}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: email,
		Password:   "patient123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Type != model.UserTypePatient {
		t.Errorf("type = %q, want %q", resp.Type, model.UserTypePatient)
	}
}

func TestLoginEmployeeWinsCollision(t *testing.T) {
	svc, employees, patients, _ := newTestAuthService(t)
	shared := "shared@example.com"
	employees.employees = []model.Employee{{
		Model:        gorm.Model{ID: 1},
		FirstName:    "Emp",
		LastName:     "One",
		Email:        shared,
		Phone:        "9000000003",
		Role:         "Admin",
		PasswordHash: hashPassword(t, "emp-pass"),
	}}
	patients.patients = []model.Patient{{
		Model:        gorm.Model{ID: 2},
		FirstName:    "Pat",
		LastName:     "Two",
		Email:        &shared,
		PasswordHash: hashPassword(t, "pat-pass"),
	}}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: shared,
		Password:   "emp-pass",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Type != model.UserTypeEmployee {
		t.Errorf("type = %q, want employee to win the collision", resp.Type)
	}

	// The patient's password does not work once the employee claims the
	// identifier.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: shared,
		Password:   "pat-pass",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginGenericFailure(t *testing.T) {
	svc, employees, _, _ := newTestAuthService(t)
	employees.employees = []model.Employee{{
		Model:        gorm.Model{ID: 1},
		Email:        "known@example.com",
		Phone:        "9000000004",
		Role:         "Admin",
		PasswordHash: hashPassword(t, "right-pass"),
	}}

	// Unknown identifier and wrong password must be indistinguishable.
	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "nobody@example.com",
		Password:   "whatever",
	})
	_, errWrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "known@example.com",
		Password:   "wrong-pass",
	})
	if !errors.Is(errUnknown, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown identifier err = %v, want ErrInvalidCredentials", errUnknown)
	}
	if !errors.Is(errWrongPass, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", errWrongPass)
	}
	if apperrors.GetErrorMessage(errUnknown) != apperrors.GetErrorMessage(errWrongPass) {
		t.Error("failure messages must match so identifiers are not probeable")
	}
}

func TestLoginReplacesPreviousRefreshToken(t *testing.T) {
	svc, employees, _, ledger := newTestAuthService(t)
	employees.employees = []model.Employee{{
		Model:        gorm.Model{ID: 5},
		Email:        "dup@example.com",
		Phone:        "9000000005",
		Role:         "Admin",
		PasswordHash: hashPassword(t, "secret123"),
	}}

	req := &dto.LoginRequest{Identifier: "dup@example.com", Password: "secret123"}
	first, err := svc.Login(context.Background(), req)
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	// Token payloads carry issued-at in seconds; wait so the second token
	// differs.
	time.Sleep(1100 * time.Millisecond)
	second, err := svc.Login(context.Background(), req)
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.RefreshToken == second.RefreshToken {
		t.Fatal("second login must mint a fresh refresh token")
	}

	if len(ledger.rows) != 1 {
		t.Fatalf("ledger rows = %d, want exactly 1 per identity", len(ledger.rows))
	}
	if _, err := svc.Refresh(context.Background(), first.RefreshToken); !errors.Is(err, apperrors.ErrUnknownToken) {
		t.Errorf("old token refresh err = %v, want ErrUnknownToken", err)
	}
	if _, err := svc.Refresh(context.Background(), second.RefreshToken); err != nil {
		t.Errorf("new token refresh: %v", err)
	}
}

func TestRefreshHappyPath(t *testing.T) {
	svc, employees, _, _ := newTestAuthService(t)
	employees.employees = []model.Employee{{
		Model:        gorm.Model{ID: 9},
		Email:        "doc@example.com",
		Phone:        "9000000006",
		Role:         "Doctor",
		PasswordHash: hashPassword(t, "secret123"),
	}}

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "doc@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected an access token")
	}

	claims, err := newTokenService().VerifyAccessToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("verify minted access token: %v", err)
	}
	if claims.UserID != 9 || claims.UserType != model.UserTypeEmployee {
		t.Errorf("claims = (%d, %q), want (9, employee)", claims.UserID, claims.UserType)
	}
}

func TestRefreshPreservesLoginPayload(t *testing.T) {
	svc, employees, _, _ := newTestAuthService(t)
	employees.employees = []model.Employee{{
		Model:        gorm.Model{ID: 14},
		FirstName:    "Nila",
		LastName:     "Shah",
		Email:        "nila@example.com",
		Phone:        "9000000009",
		Role:         "Doctor",
		PasswordHash: hashPassword(t, "secret123"),
	}}

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "nila@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	// The re-minted token must carry the same session payload as the login,
	// or role-gated routes would stop working after the first access-token
	// expiry.
	claims, err := newTokenService().VerifyAccessToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("verify minted access token: %v", err)
	}
	if claims.Role != "Doctor" {
		t.Errorf("role = %q, want Doctor", claims.Role)
	}
	if claims.Name != "Nila Shah" {
		t.Errorf("name = %q, want Nila Shah", claims.Name)
	}
}

func TestRefreshMissingToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	_, err := svc.Refresh(context.Background(), "")
	if !errors.Is(err, apperrors.ErrMissingToken) {
		t.Errorf("err = %v, want ErrMissingToken", err)
	}
}

func TestRefreshUnknownToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)

	// A forged but well-signed token fails the ledger check before the
	// signature is ever examined.
	forged, _, err := newTokenService().GenerateRefreshToken(42, model.UserTypeEmployee, "Admin", "Forged User")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	_, err = svc.Refresh(context.Background(), forged)
	if !errors.Is(err, apperrors.ErrUnknownToken) {
		t.Errorf("err = %v, want ErrUnknownToken", err)
	}
}

func TestRefreshExpiredLedgerRow(t *testing.T) {
	svc, _, _, ledger := newTestAuthService(t)
	token, _, err := newTokenService().GenerateRefreshToken(4, model.UserTypePatient, "Patient", "Old Row")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	ledger.rows[token] = &model.RefreshToken{
		Token:     token,
		UserID:    4,
		UserType:  model.UserTypePatient,
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	_, err = svc.Refresh(context.Background(), token)
	if !errors.Is(err, apperrors.ErrInvalidOrExpiredToken) {
		t.Errorf("err = %v, want ErrInvalidOrExpiredToken", err)
	}
}

func TestLedgerExpiryUsesOwnTTL(t *testing.T) {
	// The ledger row's expiry comes from its own TTL, so a generously
	// configured claim expiry cannot stretch the session past the ledger cap.
	tokens := NewTokenService(config.JWTConfig{
		AccessSecret:  "access-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshSecret: "refresh-secret",
		RefreshExpiry: 365 * 24 * time.Hour,
		LedgerTTL:     time.Hour,
	})

	token, expiresAt, err := tokens.GenerateRefreshToken(6, model.UserTypeEmployee, "Nurse", "C D")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	until := time.Until(expiresAt)
	if until <= 59*time.Minute || until > time.Hour {
		t.Errorf("ledger expiry in %v, want about 1h", until)
	}

	claims, err := tokens.VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if time.Until(claims.ExpiresAt.Time) < 300*24*time.Hour {
		t.Error("claim expiry should keep its configured value, not the ledger TTL")
	}
}

func TestRefreshWrongSecret(t *testing.T) {
	svc, _, _, ledger := newTestAuthService(t)

	// Ledgered but signed with the wrong secret, as after a secret rotation.
	other := NewTokenService(config.JWTConfig{
		AccessSecret:  "access-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshSecret: "rotated-refresh-secret",
		RefreshExpiry: 30 * 24 * time.Hour,
		LedgerTTL:     30 * 24 * time.Hour,
	})
	token, expiresAt, err := other.GenerateRefreshToken(8, model.UserTypeEmployee, "Admin", "Rotated")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	ledger.rows[token] = &model.RefreshToken{
		Token: token, UserID: 8, UserType: model.UserTypeEmployee, ExpiresAt: expiresAt,
	}

	_, err = svc.Refresh(context.Background(), token)
	if !errors.Is(err, apperrors.ErrInvalidOrExpiredToken) {
		t.Errorf("err = %v, want ErrInvalidOrExpiredToken", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, employees, _, _ := newTestAuthService(t)
	employees.employees = []model.Employee{{
		Model:        gorm.Model{ID: 2},
		Email:        "out@example.com",
		Phone:        "9000000007",
		Role:         "Admin",
		PasswordHash: hashPassword(t, "secret123"),
	}}

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Identifier: "out@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), login.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), login.RefreshToken); !errors.Is(err, apperrors.ErrUnknownToken) {
		t.Errorf("post-logout refresh err = %v, want ErrUnknownToken", err)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	svc, _, _, _ := newTestAuthService(t)
	if err := svc.Logout(context.Background(), "never-issued"); err != nil {
		t.Errorf("logout of unknown token: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Errorf("logout with empty token: %v", err)
	}
}

func TestAccessAndRefreshSecretsAreIndependent(t *testing.T) {
	tokens := newTokenService()
	access, err := tokens.GenerateAccessToken(1, model.UserTypeEmployee, "Admin", "A B")
	if err != nil {
		t.Fatalf("generate access: %v", err)
	}
	refresh, _, err := tokens.GenerateRefreshToken(1, model.UserTypeEmployee, "Admin", "A B")
	if err != nil {
		t.Fatalf("generate refresh: %v", err)
	}

	if _, err := tokens.VerifyRefreshToken(access); err == nil {
		t.Error("access token must not verify as a refresh token")
	}
	if _, err := tokens.VerifyAccessToken(refresh); err == nil {
		t.Error("refresh token must not verify as an access token")
	}
}
