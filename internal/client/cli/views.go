package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/proaim/proaimctl/internal/client/api"
	"github.com/proaim/proaimctl/internal/client/guard"
	"github.com/proaim/proaimctl/internal/client/models"
)

// guardView runs the route guard for the named view. A denial prints the
// redirect target and the command does not run.
func (a *App) guardView(name string) bool {
	d := guard.Check(name, a.session.Snapshot())
	if !d.Allowed {
		printlnFn("Access denied, redirecting to " + d.RedirectTo + ".")
		return false
	}
	return true
}

// Dashboard shows the summary counters of the default landing view.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.guardView("dashboard") {
		return nil
	}

	s, err := a.rentals.Dashboard(ctx)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}

	printlnFn(fmt.Sprintf("Properties: %d  Active listings: %d  Pending payments: %d  Monthly income: %.2f",
		s.TotalProperties, s.ActiveListings, s.PendingPayments, s.MonthlyRentIncome))
	return nil
}

// Properties lists all properties.
func (a *App) Properties(ctx context.Context) error {
	if !a.guardView("properties") {
		return nil
	}

	props, err := a.rentals.Properties(ctx)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}

	if len(props) == 0 {
		printlnFn("No properties.")
		return nil
	}
	for _, p := range props {
		printlnFn(fmt.Sprintf("#%d  %s  %s, %s  %.2f/mo  [%s]",
			p.ID, p.Title, p.City, p.State, p.RentAmount, p.Status))
	}
	return nil
}

// Property shows one property by id ("property <id>").
func (a *App) Property(ctx context.Context, args []string) error {
	if !a.guardView("properties") {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: property <id>")
		return nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: property <id>")
		return nil
	}

	p, err := a.rentals.Property(ctx, id)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s", p.ID, p.Title))
	printlnFn(p.Address + ", " + p.City + ", " + p.State + " " + p.ZipCode)
	printlnFn(fmt.Sprintf("%d bd / %d ba, %d sqft, %s", p.Bedrooms, p.Bathrooms, p.SquareFootage, p.PropertyType))
	printlnFn(fmt.Sprintf("Rent %.2f, deposit %.2f, lease %d months", p.RentAmount, p.SecurityDeposit, p.LeaseTermMonths))
	return nil
}

// AddProperty prompts for the new property's fields and creates it.
func (a *App) AddProperty(ctx context.Context) error {
	if !a.guardView("properties") {
		return nil
	}

	p := &models.Property{}
	var err error
	if p.Title, err = getSimpleText(a.reader, "Enter title", os.Stdout); err != nil {
		return err
	}
	if p.Address, err = getSimpleText(a.reader, "Enter address", os.Stdout); err != nil {
		return err
	}
	if p.City, err = getSimpleText(a.reader, "Enter city", os.Stdout); err != nil {
		return err
	}
	if p.State, err = getSimpleText(a.reader, "Enter state", os.Stdout); err != nil {
		return err
	}
	if p.ZipCode, err = getSimpleText(a.reader, "Enter zip code", os.Stdout); err != nil {
		return err
	}

	rent, err := getSimpleText(a.reader, "Enter monthly rent", os.Stdout)
	if err != nil {
		return err
	}
	if p.RentAmount, err = strconv.ParseFloat(rent, 64); err != nil {
		printlnFn("Monthly rent must be a number.")
		return nil
	}

	created, err := a.rentals.CreateProperty(ctx, p)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}
	printlnFn(fmt.Sprintf("Property #%d created.", created.ID))
	return nil
}

// Listings lists the published offers.
func (a *App) Listings(ctx context.Context) error {
	if !a.guardView("listings") {
		return nil
	}

	listings, err := a.rentals.Listings(ctx)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}

	if len(listings) == 0 {
		printlnFn("No listings.")
		return nil
	}
	for _, l := range listings {
		printlnFn(fmt.Sprintf("#%d  %s  %.2f/mo  [%s]", l.ID, l.Title, l.RentAmount, l.Status))
	}
	return nil
}

// Payments lists payments plus the outstanding total.
func (a *App) Payments(ctx context.Context) error {
	if !a.guardView("payments") {
		return nil
	}

	payments, outstanding, err := a.rentals.Payments(ctx)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}

	for _, p := range payments {
		printlnFn(fmt.Sprintf("#%d  %s  %.2f  due %s  [%s]",
			p.ID, p.Type, p.Amount, p.DueDate.Format("2006-01-02"), p.Status))
	}
	printlnFn(fmt.Sprintf("Outstanding: %.2f", outstanding))
	return nil
}

// AddPayment records a payment against a property.
func (a *App) AddPayment(ctx context.Context) error {
	if !a.guardView("payments") {
		return nil
	}

	p := &models.Payment{}

	idText, err := getSimpleText(a.reader, "Enter property id", os.Stdout)
	if err != nil {
		return err
	}
	if p.PropertyID, err = strconv.ParseInt(idText, 10, 64); err != nil {
		printlnFn("Property id must be a number.")
		return nil
	}

	amountText, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}
	if p.Amount, err = strconv.ParseFloat(amountText, 64); err != nil {
		printlnFn("Amount must be a number.")
		return nil
	}

	if p.Type, err = getSimpleText(a.reader, "Enter type (RENT, DEPOSIT, FEE)", os.Stdout); err != nil {
		return err
	}

	created, err := a.rentals.CreatePayment(ctx, p)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}
	printlnFn(fmt.Sprintf("Payment #%d recorded.", created.ID))
	return nil
}

// Profile shows the signed-in user's account details as the backend has
// them, not the cached snapshot.
func (a *App) Profile(ctx context.Context) error {
	if !a.guardView("profile") {
		return nil
	}

	u, err := a.rentals.Profile(ctx)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}

	printlnFn(u.FullName() + " (" + string(u.Role) + ")")
	printlnFn("Username: " + u.Username)
	printlnFn("Email: " + u.Email)
	return nil
}

// Users lists all accounts. ADMIN only; others are redirected by the guard.
func (a *App) Users(ctx context.Context) error {
	if !a.guardView("users") {
		return nil
	}

	users, err := a.admin.Users(ctx)
	if err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}

	for _, u := range users {
		printlnFn(fmt.Sprintf("#%d  %s  %s  [%s]", u.ID, u.Username, u.Email, u.Role))
	}
	return nil
}

// DeleteUser removes an account by id ("deluser <id>"). ADMIN only.
func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if !a.guardView("users") {
		return nil
	}
	if len(args) == 0 {
		printlnFn("Usage: deluser <id>")
		return nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: deluser <id>")
		return nil
	}

	if err := a.admin.DeleteUser(ctx, id); err != nil {
		printlnFn(api.UserMessage(err, api.FallbackRequestMessage))
		return err
	}
	printlnFn("User deleted.")
	return nil
}
