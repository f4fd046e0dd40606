// Package capture implements the scan-and-register flow: decoding a QR code
// into a candidate menu link, attaching an optional location sample, and
// producing the draft the user completes before submission.
package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tfernandez-dev/menumap/internal/client/models"
)

// State names a phase of the capture flow.
type State string

const (
	// StateIdle: no capture in progress.
	StateIdle State = "idle"
	// StateScanning: waiting for a decode event.
	StateScanning State = "scanning"
	// StateCaptured: a menu link is held, location not yet resolved.
	StateCaptured State = "captured"
	// StateReady: the candidate is complete (with or without coordinates)
	// and can feed the draft form.
	StateReady State = "ready"
)

var (
	ErrNotScanning = errors.New("no scan in progress")
	ErrNotCaptured = errors.New("nothing captured")
	ErrNotReady    = errors.New("capture not ready")
)

// Flow is the capture state machine. Decode events arriving outside the
// scanning state are ignored, which guards against duplicate decodes while
// the camera keeps streaming frames.
type Flow struct {
	mu       sync.Mutex
	state    State
	menuLink string
	coords   *models.Position
}

func NewFlow() *Flow {
	return &Flow{state: StateIdle}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// MenuLink returns the captured payload, verbatim as decoded.
func (f *Flow) MenuLink() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.menuLink
}

// Coordinates returns the attached position, or nil when permission was
// denied or location is not yet resolved.
func (f *Flow) Coordinates() *models.Position {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.coords == nil {
		return nil
	}
	c := *f.coords
	return &c
}

// Begin starts a capture: idle → scanning.
func (f *Flow) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateIdle {
		return fmt.Errorf("capture already in progress (state %s)", f.state)
	}
	f.state = StateScanning
	return nil
}

// HandleScan consumes one decode event. The first QR event while scanning
// stores its payload and moves to captured; every other event — duplicate
// payload, different payload, non-QR type — reports false and changes
// nothing until the flow resets to idle.
func (f *Flow) HandleScan(ev Event) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateScanning || ev.Type != TypeQR {
		return false
	}
	f.menuLink = ev.Data
	f.state = StateCaptured
	return true
}

// ResolveLocation moves captured → ready, attaching one position sample when
// permission is granted. Permission denial is non-fatal: the flow proceeds
// to ready with nil coordinates. Other locator failures also degrade to nil
// coordinates rather than aborting the capture.
func (f *Flow) ResolveLocation(ctx context.Context, loc Locator) error {
	f.mu.Lock()
	if f.state != StateCaptured {
		f.mu.Unlock()
		return ErrNotCaptured
	}
	f.mu.Unlock()

	var coords *models.Position
	if err := loc.RequestPermission(ctx); err == nil {
		if pos, err := loc.Current(ctx); err == nil {
			coords = &pos
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateCaptured {
		// canceled while waiting for the position sample
		return ErrNotCaptured
	}
	f.coords = coords
	f.state = StateReady
	return nil
}

// Draft builds the submission candidate from a ready capture and the
// user-completed form fields.
func (f *Flow) Draft(name, category, address string) (*models.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateReady {
		return nil, ErrNotReady
	}

	d := &models.Draft{
		Name:     name,
		Category: category,
		MenuLink: f.menuLink,
		Address:  address,
	}
	if f.coords != nil {
		lat, lon := f.coords.Latitude, f.coords.Longitude
		d.Latitude = &lat
		d.Longitude = &lon
	}
	return d, nil
}

// Reset discards the candidate and returns to idle. Called on cancel and
// after a successful submit; it never touches any other state.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	f.menuLink = ""
	f.coords = nil
}
