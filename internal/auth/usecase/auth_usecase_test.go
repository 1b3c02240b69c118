package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"konasal-backend/internal/auth/cache"
	authdomain "konasal-backend/internal/auth/domain"
	authdto "konasal-backend/internal/auth/dto"
	"konasal-backend/internal/auth/repository"
	"konasal-backend/internal/auth/token"

	"github.com/stretchr/testify/require"
)

// fakeUserRepo keeps users in memory.
type fakeUserRepo struct {
	mu     sync.Mutex
	byID   map[string]*authdomain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*authdomain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == user.Email {
			return authdomain.ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = string(rune('a' + r.nextID))
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) MarkVerified(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		u.IsVerified = true
	}
	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeTokenCache mirrors the Redis cache semantics in memory.
type fakeTokenCache struct {
	mu          sync.Mutex
	codes       map[string]string
	resetTokens map[string]string
	blacklist   map[string]time.Duration
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{
		codes:       make(map[string]string),
		resetTokens: make(map[string]string),
		blacklist:   make(map[string]time.Duration),
	}
}

func (c *fakeTokenCache) StoreVerificationCode(ctx context.Context, email, code string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codes[email] = code
	return nil
}

func (c *fakeTokenCache) ConsumeVerificationCode(ctx context.Context, email, code string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored, ok := c.codes[email]
	if !ok || stored != code {
		return false, nil
	}
	delete(c.codes, email)
	return true, nil
}

func (c *fakeTokenCache) StoreResetToken(ctx context.Context, token, email string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetTokens[token] = email
	return nil
}

func (c *fakeTokenCache) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	email := c.resetTokens[token]
	delete(c.resetTokens, token)
	return email, nil
}

func (c *fakeTokenCache) BlacklistSession(ctx context.Context, token string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blacklist[token] = ttl
	return nil
}

func (c *fakeTokenCache) IsSessionBlacklisted(ctx context.Context, token string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.blacklist[token]
	return ok, nil
}

var _ cache.TokenCache = (*fakeTokenCache)(nil)

// recordingMailer captures every send.
type recordingMailer struct {
	mu    sync.Mutex
	sends []string
}

func (m *recordingMailer) Name() string { return "recording" }

func (m *recordingMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, to)
	return nil
}

type fixture struct {
	uc     AuthUsecase
	repo   *fakeUserRepo
	tokens *fakeTokenCache
	mail   *recordingMailer
	issuer *token.Issuer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newFakeUserRepo()
	tokens := newFakeTokenCache()
	mail := &recordingMailer{}
	issuer := token.NewIssuer("test-secret", time.Hour)
	uc := NewAuthUsecase(repo, tokens, issuer, mail, Options{ExposeAuthCodes: true})
	return &fixture{uc: uc, repo: repo, tokens: tokens, mail: mail, issuer: issuer}
}

func signupRequest(email string) *authdto.SignupRequest {
	return &authdto.SignupRequest{
		Email:          email,
		Password:       "Abcd1234!",
		PasswordVerify: "Abcd1234!",
		FirstName:      "Ada",
		LastName:       "Lovelace",
	}
}

func TestSignupThenVerify(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Signup(ctx, signupRequest("a@x.com"))
	require.NoError(t, err)
	require.NotEmpty(t, resp.DebugCode)
	require.Len(t, resp.DebugCode, 5)

	user, err := f.repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.False(t, user.IsVerified)
	require.NotEqual(t, "Abcd1234!", user.PasswordHash)

	require.NoError(t, f.uc.VerifyEmail(ctx, "a@x.com", resp.DebugCode))

	user, err = f.repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.True(t, user.IsVerified)
}

func TestVerifyConsumedCodeCannotBeReplayed(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Signup(ctx, signupRequest("a@x.com"))
	require.NoError(t, err)
	code := resp.DebugCode

	require.NoError(t, f.uc.VerifyEmail(ctx, "a@x.com", code))

	// Second call with the same code is the idempotent already-verified
	// path, not a code check.
	require.NoError(t, f.uc.VerifyEmail(ctx, "a@x.com", code))

	// With an unverified user the replay fails: the code is gone.
	_, err = f.uc.Signup(ctx, signupRequest("b@x.com"))
	require.NoError(t, err)
	require.ErrorIs(t, f.uc.VerifyEmail(ctx, "b@x.com", code), authdomain.ErrInvalidToken)
}

func TestVerifyWrongCode(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Signup(ctx, signupRequest("a@x.com"))
	require.NoError(t, err)

	err = f.uc.VerifyEmail(ctx, "a@x.com", "00000")
	require.ErrorIs(t, err, authdomain.ErrInvalidToken)

	// Wrong attempts do not consume the stored code.
	require.NoError(t, f.uc.VerifyEmail(ctx, "a@x.com", resp.DebugCode))
}

func TestVerifyUnknownEmailReadsAsInvalidToken(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Signup(ctx, signupRequest("a@x.com"))
	require.NoError(t, err)

	// An unregistered address and a wrong code produce the same error, even
	// with a code that is live for another account.
	unknownEmail := f.uc.VerifyEmail(ctx, "ghost@x.com", resp.DebugCode)
	wrongCode := f.uc.VerifyEmail(ctx, "a@x.com", "00000")

	require.ErrorIs(t, unknownEmail, authdomain.ErrInvalidToken)
	require.ErrorIs(t, wrongCode, authdomain.ErrInvalidToken)
	require.Equal(t, wrongCode.Error(), unknownEmail.Error())
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	mismatch := signupRequest("a@x.com")
	mismatch.PasswordVerify = "Different1!"
	_, err := f.uc.Signup(ctx, mismatch)
	require.ErrorIs(t, err, authdomain.ErrPasswordMismatch)

	weak := signupRequest("a@x.com")
	weak.Password = "abcd1234"
	weak.PasswordVerify = "abcd1234"
	_, err = f.uc.Signup(ctx, weak)
	require.ErrorIs(t, err, authdomain.ErrWeakPassword)

	badEmail := signupRequest("not-an-email")
	_, err = f.uc.Signup(ctx, badEmail)
	require.ErrorIs(t, err, authdomain.ErrInvalidEmail)

	// No user record exists after any failed signup.
	user, err := f.repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Signup(ctx, signupRequest("a@x.com"))
	require.NoError(t, err)

	_, err = f.uc.Signup(ctx, signupRequest("a@x.com"))
	require.ErrorIs(t, err, authdomain.ErrEmailTaken)
}

func TestResendVerificationOverwritesCode(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.uc.Signup(ctx, signupRequest("a@x.com"))
	require.NoError(t, err)

	second, err := f.uc.ResendVerification(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, second.DebugCode)

	if first.DebugCode != second.DebugCode {
		require.ErrorIs(t, f.uc.VerifyEmail(ctx, "a@x.com", first.DebugCode), authdomain.ErrInvalidToken)
	}
	require.NoError(t, f.uc.VerifyEmail(ctx, "a@x.com", second.DebugCode))
}

func TestResendVerificationUnknownUser(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.uc.ResendVerification(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, authdomain.ErrUserNotFound)
}

func TestResendVerificationAlreadyVerified(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Signup(ctx, signupRequest("a@x.com"))
	require.NoError(t, err)
	require.NoError(t, f.uc.VerifyEmail(ctx, "a@x.com", resp.DebugCode))

	out, err := f.uc.ResendVerification(ctx, "a@x.com")
	require.NoError(t, err)
	require.Empty(t, out.DebugCode)
}

func signupAndVerify(t *testing.T, f *fixture, email string) {
	t.Helper()
	ctx := context.Background()
	resp, err := f.uc.Signup(ctx, signupRequest(email))
	require.NoError(t, err)
	require.NoError(t, f.uc.VerifyEmail(ctx, email, resp.DebugCode))
}

func TestLoginIssuesTokenForSubject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	signupAndVerify(t, f, "a@x.com")

	result, err := f.uc.Login(ctx, &authdto.LoginRequest{Email: "a@x.com", Password: "Abcd1234!"})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)

	claims, err := f.issuer.Parse(result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, result.User.ID, claims.Subject)
}

func TestLoginUnverifiedIsForbiddenNotInvalid(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Signup(ctx, signupRequest("a@x.com"))
	require.NoError(t, err)

	_, err = f.uc.Login(ctx, &authdto.LoginRequest{Email: "a@x.com", Password: "Abcd1234!"})
	require.ErrorIs(t, err, authdomain.ErrNotVerified)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	signupAndVerify(t, f, "a@x.com")

	_, wrongPassword := f.uc.Login(ctx, &authdto.LoginRequest{Email: "a@x.com", Password: "Wrong1234!"})
	_, unknownEmail := f.uc.Login(ctx, &authdto.LoginRequest{Email: "nobody@x.com", Password: "Abcd1234!"})

	require.ErrorIs(t, wrongPassword, authdomain.ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, authdomain.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogoutRevokesUnexpiredToken(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	signupAndVerify(t, f, "a@x.com")
	result, err := f.uc.Login(ctx, &authdto.LoginRequest{Email: "a@x.com", Password: "Abcd1234!"})
	require.NoError(t, err)

	user, err := f.uc.Authenticate(ctx, result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", user.Email)

	require.NoError(t, f.uc.Logout(ctx, result.AccessToken))

	// The embedded expiry has not elapsed, but the blacklist rejects it.
	_, err = f.uc.Authenticate(ctx, result.AccessToken)
	require.ErrorIs(t, err, authdomain.ErrUnauthorized)

	ttl := f.tokens.blacklist[result.AccessToken]
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Hour)
}

func TestLogoutWithoutToken(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	require.ErrorIs(t, f.uc.Logout(context.Background(), ""), authdomain.ErrUnauthorized)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Authenticate(ctx, "")
	require.ErrorIs(t, err, authdomain.ErrUnauthorized)

	_, err = f.uc.Authenticate(ctx, "not.a.jwt")
	require.ErrorIs(t, err, authdomain.ErrUnauthorized)

	forged := token.NewIssuer("other-secret", time.Hour)
	signed, _, err := forged.Issue("someone")
	require.NoError(t, err)
	_, err = f.uc.Authenticate(ctx, signed)
	require.ErrorIs(t, err, authdomain.ErrUnauthorized)
}

func TestAuthenticateUnknownSubject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	signed, _, err := f.issuer.Issue("ghost")
	require.NoError(t, err)

	_, err = f.uc.Authenticate(context.Background(), signed)
	require.ErrorIs(t, err, authdomain.ErrUserNotFound)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	signupAndVerify(t, f, "a@x.com")

	resp, err := f.uc.ForgotPassword(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, resp.DebugCode)

	err = f.uc.ResetPassword(ctx, &authdto.ResetPasswordRequest{
		Token:             resp.DebugCode,
		NewPassword:       "Efgh5678!",
		NewPasswordVerify: "Efgh5678!",
	})
	require.NoError(t, err)

	// Old password no longer works, new one does.
	_, err = f.uc.Login(ctx, &authdto.LoginRequest{Email: "a@x.com", Password: "Abcd1234!"})
	require.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
	_, err = f.uc.Login(ctx, &authdto.LoginRequest{Email: "a@x.com", Password: "Efgh5678!"})
	require.NoError(t, err)

	// The reset token is single-use.
	err = f.uc.ResetPassword(ctx, &authdto.ResetPasswordRequest{
		Token:             resp.DebugCode,
		NewPassword:       "Ijkl9012!",
		NewPasswordVerify: "Ijkl9012!",
	})
	require.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestResetPasswordValidation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	err := f.uc.ResetPassword(ctx, &authdto.ResetPasswordRequest{
		Token:             "whatever",
		NewPassword:       "Efgh5678!",
		NewPasswordVerify: "Mismatch1!",
	})
	require.ErrorIs(t, err, authdomain.ErrPasswordMismatch)

	err = f.uc.ResetPassword(ctx, &authdto.ResetPasswordRequest{
		Token:             "unknown-token",
		NewPassword:       "Efgh5678!",
		NewPasswordVerify: "Efgh5678!",
	})
	require.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestResetPasswordUserGone(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	signupAndVerify(t, f, "a@x.com")
	resp, err := f.uc.ForgotPassword(ctx, "a@x.com")
	require.NoError(t, err)

	user, err := f.repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	f.repo.mu.Lock()
	delete(f.repo.byID, user.ID)
	f.repo.mu.Unlock()

	err = f.uc.ResetPassword(ctx, &authdto.ResetPasswordRequest{
		Token:             resp.DebugCode,
		NewPassword:       "Efgh5678!",
		NewPasswordVerify: "Efgh5678!",
	})
	require.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestForgotPasswordUnknownUser(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.uc.ForgotPassword(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, authdomain.ErrUserNotFound)
}

func TestDebugCodeHiddenWhenGateOff(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	tokens := newFakeTokenCache()
	issuer := token.NewIssuer("test-secret", time.Hour)
	uc := NewAuthUsecase(repo, tokens, issuer, &recordingMailer{}, Options{})

	resp, err := uc.Signup(context.Background(), signupRequest("a@x.com"))
	require.NoError(t, err)
	require.Empty(t, resp.DebugCode)
	// The code is still stored and deliverable out-of-band.
	require.NotEmpty(t, tokens.codes["a@x.com"])
}

func TestSignupDispatchesMail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.uc.Signup(context.Background(), signupRequest("a@x.com"))
	require.NoError(t, err)
	require.Equal(t, []string{"a@x.com"}, f.mail.sends)
}
