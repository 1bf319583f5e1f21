package cli

import (
	"context"
	"os"

	"github.com/proaim/proaimctl/internal/client/api"
	"github.com/proaim/proaimctl/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// provider. On rejection the single server-derived message is shown inline;
// nothing is persisted or attached on failure.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, username, string(password))
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackLoginMessage))
		return err
	}

	printlnFn("Signed in as " + user.FullName() + " (" + string(user.Role) + ")")
	return nil
}

// Register prompts for the new-account fields and creates the account.
// When the backend auto-logs the new user in, the session adopts the
// identity right away; otherwise the user is asked to login.
func (a *App) Register(ctx context.Context) error {
	req := api.RegisterRequest{}

	var err error
	if req.Username, err = getSimpleText(a.reader, "Enter username", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if req.FirstName, err = getSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	user, err := a.session.Register(ctx, req)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRegisterMessage))
		return err
	}

	if user != nil {
		printlnFn("Registered and signed in as " + user.Username)
	} else if a.isLoggedIn() {
		printlnFn("Account created.")
	} else {
		printlnFn("Success! Please login with your new account.")
	}
	return nil
}

// Logout resets the session; running it while signed out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out.")
	return nil
}

// WhoAmI prints the current session identity.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated || snap.CurrentUser == nil {
		printlnFn("Not signed in.")
		return nil
	}
	u := snap.CurrentUser
	printlnFn(u.Username + " <" + u.Email + "> " + string(u.Role))
	return nil
}
