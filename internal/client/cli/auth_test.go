package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/levelup/internal/client/models"
	"github.com/dmitrijs2005/levelup/internal/common"
)

// stubInputs replaces the interactive helpers with canned answers. Text
// prompts consume lines in order; the password prompt always returns pw.
func stubInputs(t *testing.T, pw []byte, lines ...string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		v := lines[i]
		i++
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		return append([]byte(nil), pw...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAccount struct {
	current *models.User

	restoreOut *models.User
	restoreErr error

	loginOut   *models.User
	loginErr   error
	loginEmail string
	loginPass  string

	regOut     *models.User
	regErr     error
	regName    string
	regEmail   string
	regPass    string
	regCountry string

	logoutCalled bool
	logoutErr    error

	updOut     *models.User
	updErr     error
	updName    string
	updEmail   string
	updCountry string
	updPass    string

	imgOut  *models.User
	imgErr  error
	imgPath string
}

func (f *fakeAccount) CurrentUser() *models.User { return f.current }
func (f *fakeAccount) Restore(context.Context) (*models.User, error) {
	return f.restoreOut, f.restoreErr
}
func (f *fakeAccount) Login(_ context.Context, email, password string) (*models.User, error) {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr == nil {
		f.current = f.loginOut
	}
	return f.loginOut, f.loginErr
}
func (f *fakeAccount) Register(_ context.Context, name, email, password, country string) (*models.User, error) {
	f.regName, f.regEmail, f.regPass, f.regCountry = name, email, password, country
	if f.regErr == nil {
		f.current = f.regOut
	}
	return f.regOut, f.regErr
}
func (f *fakeAccount) Logout(context.Context) error {
	f.logoutCalled = true
	if f.logoutErr == nil {
		f.current = nil
	}
	return f.logoutErr
}
func (f *fakeAccount) UpdateProfile(_ context.Context, name, email, country, newPassword string) (*models.User, error) {
	f.updName, f.updEmail, f.updCountry, f.updPass = name, email, country, newPassword
	return f.updOut, f.updErr
}
func (f *fakeAccount) UpdateProfileImage(_ context.Context, path string) (*models.User, error) {
	f.imgPath = path
	return f.imgOut, f.imgErr
}

func TestRegisterCommand_PassesAllFields(t *testing.T) {
	restore := stubInputs(t, []byte("secret1"), "Alice", "a@b.com", "Chile")
	defer restore()

	f := &fakeAccount{regOut: &models.User{Name: "Alice"}}
	a := &App{account: f}

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regName != "Alice" || f.regEmail != "a@b.com" || f.regCountry != "Chile" {
		t.Fatalf("register fields mismatch: %q %q %q", f.regName, f.regEmail, f.regCountry)
	}
	if f.regPass != "secret1" {
		t.Fatalf("register pass mismatch: %q", f.regPass)
	}
}

func TestLoginCommand_Success(t *testing.T) {
	restore := stubInputs(t, []byte("secret1"), "a@b.com")
	defer restore()

	f := &fakeAccount{loginOut: &models.User{Name: "Alice", Email: "a@b.com"}}
	a := &App{account: f}

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "a@b.com" || f.loginPass != "secret1" {
		t.Fatalf("login args mismatch: %q %q", f.loginEmail, f.loginPass)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged-in state")
	}
}

func TestLoginCommand_ErrorPropagates(t *testing.T) {
	restore := stubInputs(t, []byte("bad"), "a@b.com")
	defer restore()

	f := &fakeAccount{loginErr: common.ErrInvalidCredentials}
	a := &App{account: f}

	if err := a.Login(context.Background()); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutCommand(t *testing.T) {
	f := &fakeAccount{current: &models.User{Email: "a@b.com"}}
	a := &App{account: f}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("Logout not delegated")
	}
	if a.isLoggedIn() {
		t.Fatalf("still logged in after logout")
	}
}

func TestLogoutCommand_ErrorPropagates(t *testing.T) {
	f := &fakeAccount{logoutErr: errors.New("clean-fail")}
	a := &App{account: f}
	if err := a.Logout(context.Background()); err == nil {
		t.Fatalf("want error from Logout")
	}
}

func TestProfileCommand_NotLoggedIn(t *testing.T) {
	a := &App{account: &fakeAccount{}}
	if err := a.Profile(context.Background()); !errors.Is(err, common.ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
}

func TestProfileCommand_BlankAnswersKeepCurrent(t *testing.T) {
	restore := stubInputs(t, nil, "", "", "")
	defer restore()

	current := &models.User{Name: "Alice", Email: "a@b.com", Country: "Chile"}
	f := &fakeAccount{current: current, updOut: current}
	a := &App{account: f}

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if f.updName != "Alice" || f.updEmail != "a@b.com" || f.updCountry != "Chile" {
		t.Fatalf("blank answers must keep current values: %q %q %q", f.updName, f.updEmail, f.updCountry)
	}
	if f.updPass != "" {
		t.Fatalf("empty password prompt must not replace the password: %q", f.updPass)
	}
}

func TestProfileCommand_NewValuesPassedThrough(t *testing.T) {
	restore := stubInputs(t, []byte("newpass1"), "Alicia", "alicia@b.com", "Peru")
	defer restore()

	f := &fakeAccount{
		current: &models.User{Name: "Alice", Email: "a@b.com", Country: "Chile"},
		updOut:  &models.User{Name: "Alicia", Email: "alicia@b.com", Country: "Peru"},
	}
	a := &App{account: f}

	if err := a.Profile(context.Background()); err != nil {
		t.Fatalf("Profile err: %v", err)
	}
	if f.updName != "Alicia" || f.updEmail != "alicia@b.com" || f.updCountry != "Peru" {
		t.Fatalf("profile fields mismatch: %q %q %q", f.updName, f.updEmail, f.updCountry)
	}
	if f.updPass != "newpass1" {
		t.Fatalf("new password not passed: %q", f.updPass)
	}
}

func TestAvatarCommand(t *testing.T) {
	restore := stubInputs(t, nil, "/img/avatar.png")
	defer restore()

	f := &fakeAccount{
		current: &models.User{Email: "a@b.com"},
		imgOut:  &models.User{Email: "a@b.com", ProfileImagePath: "/img/avatar.png"},
	}
	a := &App{account: f}

	if err := a.Avatar(context.Background()); err != nil {
		t.Fatalf("Avatar err: %v", err)
	}
	if f.imgPath != "/img/avatar.png" {
		t.Fatalf("image path mismatch: %q", f.imgPath)
	}
}

func TestAvatarCommand_NotLoggedIn(t *testing.T) {
	a := &App{account: &fakeAccount{}}
	if err := a.Avatar(context.Background()); !errors.Is(err, common.ErrNoSession) {
		t.Fatalf("want ErrNoSession, got %v", err)
	}
}
