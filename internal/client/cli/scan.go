package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tfernandez-dev/menumap/internal/client/capture"
	"github.com/tfernandez-dev/menumap/internal/client/models"
)

// scanImage is an indirection over the QR decoder so tests can feed decode
// events without image fixtures.
var scanImage = func(ctx context.Context, path string) (capture.Event, error) {
	return capture.NewImageScanner(path).Scan(ctx)
}

// Scan decodes a menu QR code from an image file and walks the capture flow
// through to registration: capture the link, attach a location sample if
// permitted, prompt for the remaining details, and submit.
//
// A server or validation failure leaves the capture in place; "cancel"
// discards it, which is also needed before starting a new scan. A
// successful registration resets the flow.
func (a *App) Scan(ctx context.Context, path string) error {
	if err := a.flow.Begin(); err != nil {
		printlnFn(err.Error())
		return err
	}

	ev, err := scanImage(ctx, path)
	if err != nil {
		a.flow.Reset()
		printlnFn("Could not decode a QR code:", err.Error())
		return err
	}
	if !a.flow.HandleScan(ev) {
		a.flow.Reset()
		printlnFn("Not a QR code.")
		return capture.ErrNotScanning
	}
	printlnFn("Captured menu link:", a.flow.MenuLink())

	if err := a.flow.ResolveLocation(ctx, a.locator); err != nil {
		a.flow.Reset()
		return err
	}
	if c := a.flow.Coordinates(); c != nil {
		printlnFn(fmt.Sprintf("Location attached: %.5f, %.5f", c.Latitude, c.Longitude))
	} else {
		printlnFn("No location attached.")
	}

	name, err := getSimpleText(a.reader, "Restaurant name", os.Stdout)
	if err != nil {
		return err
	}
	prompt := fmt.Sprintf("Category %v (optional)", models.Categories)
	category, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address (optional)", os.Stdout)
	if err != nil {
		return err
	}

	draft, err := a.flow.Draft(name, category, address)
	if err != nil {
		return err
	}

	created, err := a.restaurants.Add(ctx, draft)
	if err != nil {
		printlnFn(a.restaurants.State().Err())
		return err
	}

	a.flow.Reset()
	printlnFn(fmt.Sprintf("Registered %q (id %d)", created.Name, created.ID))
	return nil
}

// Cancel abandons a capture in progress.
func (a *App) Cancel(ctx context.Context) error {
	a.flow.Reset()
	printlnFn("Capture discarded.")
	return nil
}
