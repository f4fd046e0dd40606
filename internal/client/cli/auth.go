package cli

import (
	"context"
	"os"

	"github.com/tfernandez-dev/menumap/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for an email, a username, and a password and attempts to
// create a new account. A successful signup logs the session in directly.
//
// The password byte slice is securely wiped before returning. Failures
// print the message held in the session state — the server's own text for
// rejections, a generic one for transport trouble.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Signup(ctx, email, username, password); err != nil {
		printlnFn(a.session.State().Err())
		return err
	}

	printlnFn("Welcome,", a.session.State().Username())
	return nil
}

// Login prompts for an identifier (email or username) and a password and
// tries to authenticate. On success the credentials are already persisted,
// so the session survives a restart.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email or username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, identifier, password); err != nil {
		printlnFn(a.session.State().Err())
		return err
	}

	printlnFn("Logged in as", a.session.State().Username())
	return nil
}

// Logout clears the stored credentials and the in-memory session. The local
// session always ends up logged out, even when the store cleanup fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.session.Logout(ctx)
	printlnFn("Logged out")
	return err
}

// Whoami prints the current identity, or a hint when logged out.
func (a *App) Whoami(ctx context.Context) error {
	st := a.session.State()
	if !st.IsLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Logged in as", st.Username(), "(id", st.UserID()+")")
	return nil
}
