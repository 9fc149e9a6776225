package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in invitation.
func Default() (*Invitation, error) {
	inv := &Invitation{}
	if err := yaml.Unmarshal(defaultYAML, inv); err != nil {
		return nil, fmt.Errorf("decode default content: %w", err)
	}
	return inv, nil
}

// Load returns the built-in invitation with the file at path merged on top.
// Keys present in the file replace the defaults; lists are replaced whole.
// An empty path returns the defaults.
func Load(path string) (*Invitation, error) {
	inv, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content file: %w", err)
		}
		if err := yaml.Unmarshal(data, inv); err != nil {
			return nil, fmt.Errorf("decode content file %s: %w", path, err)
		}
	}

	inv.normalize()
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return inv, nil
}

// Validate checks the fields the scenes and exports depend on.
func (inv *Invitation) Validate() error {
	var errs []error
	if inv.Title == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if inv.Event.Title == "" {
		errs = append(errs, errors.New("event.title is required"))
	}
	if inv.Event.Start.IsZero() || inv.Event.End.IsZero() {
		errs = append(errs, errors.New("event.start and event.end are required"))
	} else if !inv.Event.End.After(inv.Event.Start) {
		errs = append(errs, errors.New("event.end must be after event.start"))
	}
	for i, p := range inv.Journey.Photos {
		switch p.Size {
		case PhotoSmall, PhotoMedium, PhotoLarge:
		default:
			errs = append(errs, fmt.Errorf("journey.photos[%d]: unknown size %q", i, p.Size))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	return nil
}

func (inv *Invitation) normalize() {
	for i := range inv.Journey.Photos {
		if inv.Journey.Photos[i].Size == "" {
			inv.Journey.Photos[i].Size = PhotoMedium
		}
	}
	if inv.Event.FileName == "" {
		inv.Event.FileName = "wedding.ics"
	}
}
