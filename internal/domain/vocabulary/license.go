package vocabulary

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownLicense is returned when a license is not in the license vocabulary.
var ErrUnknownLicense = errors.New("unknown license")

// UnknownLicenseError carries the license name that failed to resolve.
// It matches ErrUnknownLicense with errors.Is.
type UnknownLicenseError struct {
	License string
}

func (e *UnknownLicenseError) Error() string {
	return fmt.Sprintf("unknown license %q", e.License)
}

func (e *UnknownLicenseError) Unwrap() error {
	return ErrUnknownLicense
}

// ResolveLicenseURL returns the reference URL of a known license.
//
// The license families are scanned in definition order and the first family
// whose prefix starts the license name wins. A known license that no family
// matches (e.g. "None", "Custom", "Proprietary") has no URL: ok is false and
// err is nil. A license outside the vocabulary is an *UnknownLicenseError.
func (r *Registry) ResolveLicenseURL(license string) (url string, ok bool, err error) {
	if !r.IsKnownLicense(license) {
		return "", false, &UnknownLicenseError{License: license}
	}
	for _, f := range r.families {
		if strings.HasPrefix(license, f.Prefix) {
			return f.URL, true, nil
		}
	}
	return "", false, nil
}

// LicenseFamilies returns the license families in match order.
func (r *Registry) LicenseFamilies() []LicenseFamily {
	return slices.Clone(r.families)
}

// LicenseURLs returns every known license that has a reference URL, in
// license vocabulary order.
func (r *Registry) LicenseURLs() []NamedURL {
	var out []NamedURL
	for _, l := range r.vocabs[VocabLicenses].values {
		if u, ok, _ := r.ResolveLicenseURL(l); ok {
			out = append(out, NamedURL{Name: l, URL: u})
		}
	}
	return out
}
