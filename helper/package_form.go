package helper

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"venue_manager/constants"
	"venue_manager/model"
)

// ValidatePackageForm checks the package form rules in order and returns
// the first violation. The submit-button predicate is derived from this
// same result so the two can never disagree.
func ValidatePackageForm(form model.PackageFormInput) error {
	if form.PackageTypeId == 0 {
		return errors.New(constants.PACKAGE_TYPE_REQUIRED)
	}
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return errors.New(constants.NAME_REQUIRED)
	}
	if len([]rune(name)) > constants.MAX_NAME_LENGTH {
		return errors.New(constants.NAME_TOO_LONG)
	}
	if strings.TrimSpace(form.Description) == "" {
		return errors.New(constants.DESCRIPTION_REQUIRED)
	}
	if _, ok := parsePrice(form.ExcessPaxPrice); !ok {
		return errors.New(constants.EXCESS_PAX_PRICE_NUMBER)
	}
	if len(form.PaxPriceTiers) == 0 {
		return errors.New(constants.TIER_REQUIRED)
	}
	seen := make(map[int]bool, len(form.PaxPriceTiers))
	for _, tier := range form.PaxPriceTiers {
		pax, ok := parsePax(tier.PaxCount)
		if !ok {
			continue // rule 7 reports the parse failure below
		}
		if seen[pax] {
			return errors.New(constants.DUPLICATE_PAX_COUNT)
		}
		seen[pax] = true
	}
	for _, tier := range form.PaxPriceTiers {
		if _, ok := parsePax(tier.PaxCount); !ok {
			return errors.New(constants.TIER_INVALID)
		}
		if _, ok := parsePrice(tier.Price); !ok {
			return errors.New(constants.TIER_INVALID)
		}
	}
	if len(form.ServiceIds) == 0 {
		return errors.New(constants.SERVICE_REQUIRED)
	}
	return nil
}

// IsPackageFormSubmittable drives submit enablement: the form must
// validate and no duplicate-name flag may be pending.
func IsPackageFormSubmittable(form model.PackageFormInput, pendingDuplicate bool) bool {
	return ValidatePackageForm(form) == nil && !pendingDuplicate
}

// ParseExcessPaxPrice converts the cleaned textual price. Call only
// after ValidatePackageForm has accepted the form.
func ParseExcessPaxPrice(form model.PackageFormInput) float64 {
	price, _ := parsePrice(form.ExcessPaxPrice)
	return price
}

// BuildPaxPriceTiers converts the textual tier rows into model rows.
func BuildPaxPriceTiers(packageId uint, tiers []model.PaxPriceTierInput) []model.PaxPriceTier {
	rows := make([]model.PaxPriceTier, 0, len(tiers))
	for _, tier := range tiers {
		pax, _ := parsePax(tier.PaxCount)
		price, _ := parsePrice(tier.Price)
		rows = append(rows, model.PaxPriceTier{
			PackageId: packageId,
			PaxCount:  pax,
			Price:     price,
		})
	}
	return rows
}

// HasPackageChanges compares a loaded package (with its tiers and
// service ids) against the submitted form. An unchanged submission is
// refused rather than written.
func HasPackageChanges(original model.EventPackage, originalServiceIds []uint, form model.PackageFormInput) bool {
	if original.PackageTypeId != form.PackageTypeId {
		return true
	}
	if original.Name != strings.TrimSpace(form.Name) {
		return true
	}
	if original.Description != strings.TrimSpace(form.Description) {
		return true
	}
	if price, ok := parsePrice(form.ExcessPaxPrice); !ok || original.ExcessPaxPrice != price {
		return true
	}
	if form.Active != nil && original.Active != nil && *form.Active != *original.Active {
		return true
	}
	if tiersChanged(original.PaxPriceTiers, form.PaxPriceTiers) {
		return true
	}
	return idSetChanged(originalServiceIds, form.ServiceIds)
}

func tiersChanged(original []model.PaxPriceTier, submitted []model.PaxPriceTierInput) bool {
	if len(original) != len(submitted) {
		return true
	}
	type pair struct {
		pax   int
		price float64
	}
	a := make([]pair, 0, len(original))
	for _, t := range original {
		a = append(a, pair{t.PaxCount, t.Price})
	}
	b := make([]pair, 0, len(submitted))
	for _, t := range submitted {
		pax, _ := parsePax(t.PaxCount)
		price, _ := parsePrice(t.Price)
		b = append(b, pair{pax, price})
	}
	less := func(s []pair) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].pax != s[j].pax {
				return s[i].pax < s[j].pax
			}
			return s[i].price < s[j].price
		}
	}
	sort.Slice(a, less(a))
	sort.Slice(b, less(b))
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}

func idSetChanged(a, b []uint) bool {
	if len(a) != len(b) {
		return true
	}
	set := make(map[uint]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if !set[id] {
			return true
		}
	}
	return false
}

func parsePax(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || HasRedundantLeadingZero(s) {
		return 0, false
	}
	pax, err := strconv.Atoi(s)
	if err != nil || pax < 0 {
		return 0, false
	}
	return pax, true
}

func parsePrice(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || HasRedundantLeadingZero(s) {
		return 0, false
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, false
	}
	return price, true
}
