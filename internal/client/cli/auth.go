package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/levelup/internal/client/services"
	"github.com/dmitrijs2005/levelup/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the profile fields and attempts to create a new
// account. Remote registration is attempted by the service but never blocks
// a local signup.
//
// On success it prints a greeting and returns nil. The password byte slice
// is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	country, err := getSimpleText(a.reader, "Enter country", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.account.Register(ctx, name, email, string(password), country)
	if err != nil {
		logAccountError(err)
		return err
	}

	fmt.Printf("Welcome, %s!\n", u.Name)
	return nil
}

// Login prompts for credentials and tries to authenticate. The service
// resolves the remote-first / local-fallback ordering; here a failure is
// only reported to the user.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.account.Login(ctx, email, string(password))
	if err != nil {
		logAccountError(err)
		return err
	}

	fmt.Printf("Welcome back, %s!\n", u.Name)
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.account.Logout(ctx); err != nil {
		log.Printf("Logout failed: %s", err.Error())
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// Profile edits the current user's profile. Each prompt shows the current
// value; an empty answer keeps it. The password is replaced only when a
// new one is entered.
func (a *App) Profile(ctx context.Context) error {
	u := a.account.CurrentUser()
	if u == nil {
		fmt.Println("Not logged in")
		return common.ErrNoSession
	}

	name, err := a.promptWithDefault("Name", u.Name)
	if err != nil {
		return err
	}
	email, err := a.promptWithDefault("Email", u.Email)
	if err != nil {
		return err
	}
	country, err := a.promptWithDefault("Country", u.Country)
	if err != nil {
		return err
	}
	password, err := getPassword("New password (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	updated, err := a.account.UpdateProfile(ctx, name, email, country, string(password))
	if err != nil {
		logAccountError(err)
		return err
	}

	fmt.Printf("Profile updated: %s <%s>, %s\n", updated.Name, updated.Email, updated.Country)
	return nil
}

// Avatar sets the profile image path of the current user.
func (a *App) Avatar(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return common.ErrNoSession
	}

	path, err := getSimpleText(a.reader, "Enter image path", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.account.UpdateProfileImage(ctx, path); err != nil {
		logAccountError(err)
		return err
	}

	fmt.Println("Profile image updated")
	return nil
}

func (a *App) promptWithDefault(label, current string) (string, error) {
	v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), os.Stdout)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// logAccountError prints service errors in user terms. Validation errors
// carry their own field message.
func logAccountError(err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		fmt.Printf("Invalid %s: %s\n", ve.Field, ve.Message)
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Println("Invalid email or password")
	case errors.Is(err, common.ErrEmailTaken):
		fmt.Println("That email is already registered")
	default:
		log.Printf("error: %v", err)
	}
}
