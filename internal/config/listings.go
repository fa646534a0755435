package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
	"github.com/osse101/BaroCatalog_Go/internal/validation"
)

// Listings are the listing presets and the merchants written to the default listing.
type Listings struct {
	Presets   domain.ListingPresets `yaml:"presets"`
	Merchants []string              `yaml:"merchants" validate:"dive,required"`
}

// DefaultListings returns the built-in presets and merchants.
func DefaultListings() Listings {
	return Listings{
		Presets:   domain.DefaultListingPresets(),
		Merchants: slices.Clone(DefaultMerchants),
	}
}

// LoadListings reads a listings file. Fields the file leaves out keep their built-in
// values; a missing file yields the built-in listings.
func LoadListings(path string) (*Listings, error) {
	listings := DefaultListings()
	if path == "" {
		return &listings, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &listings, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadListingsFailed, path, err)
	}

	if err := yaml.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf(ErrMsgParseListingsFailed, path, err)
	}
	if err := validation.Structs().ValidateStruct(&listings); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidListings, path, err)
	}
	return &listings, nil
}
