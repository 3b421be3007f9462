package helper

import (
	"testing"

	"venue_manager/constants"
	"venue_manager/model"
	"venue_manager/utils"
)

func validForm() model.PackageFormInput {
	return model.PackageFormInput{
		PackageTypeId:  1,
		Name:           "Gold Package",
		Description:    "Full service wedding package",
		ExcessPaxPrice: "25",
		PaxPriceTiers: []model.PaxPriceTierInput{
			{PaxCount: "50", Price: "1000"},
			{PaxCount: "100", Price: "1800"},
		},
		ServiceIds: []uint{1, 2},
	}
}

func TestValidatePackageFormAcceptsValidForm(t *testing.T) {
	t.Parallel()

	if err := ValidatePackageForm(validForm()); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidatePackageFormRuleOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*model.PackageFormInput)
		want   string
	}{
		{
			"missing package type", func(f *model.PackageFormInput) { f.PackageTypeId = 0 },
			constants.PACKAGE_TYPE_REQUIRED,
		},
		{
			"blank name", func(f *model.PackageFormInput) { f.Name = "   " },
			constants.NAME_REQUIRED,
		},
		{
			"name too long", func(f *model.PackageFormInput) {
				long := make([]rune, constants.MAX_NAME_LENGTH+1)
				for i := range long {
					long[i] = 'a'
				}
				f.Name = string(long)
			},
			constants.NAME_TOO_LONG,
		},
		{
			"blank description", func(f *model.PackageFormInput) { f.Description = "" },
			constants.DESCRIPTION_REQUIRED,
		},
		{
			"excess price not a number", func(f *model.PackageFormInput) { f.ExcessPaxPrice = "abc" },
			constants.EXCESS_PAX_PRICE_NUMBER,
		},
		{
			"excess price empty", func(f *model.PackageFormInput) { f.ExcessPaxPrice = "" },
			constants.EXCESS_PAX_PRICE_NUMBER,
		},
		{
			"excess price negative", func(f *model.PackageFormInput) { f.ExcessPaxPrice = "-5" },
			constants.EXCESS_PAX_PRICE_NUMBER,
		},
		{
			"excess price NaN", func(f *model.PackageFormInput) { f.ExcessPaxPrice = "NaN" },
			constants.EXCESS_PAX_PRICE_NUMBER,
		},
		{
			"excess price lowercase nan", func(f *model.PackageFormInput) { f.ExcessPaxPrice = "nan" },
			constants.EXCESS_PAX_PRICE_NUMBER,
		},
		{
			"excess price infinite", func(f *model.PackageFormInput) { f.ExcessPaxPrice = "+Inf" },
			constants.EXCESS_PAX_PRICE_NUMBER,
		},
		{
			"no tiers", func(f *model.PackageFormInput) { f.PaxPriceTiers = nil },
			constants.TIER_REQUIRED,
		},
		{
			"duplicate pax counts", func(f *model.PackageFormInput) {
				f.PaxPriceTiers = []model.PaxPriceTierInput{
					{PaxCount: "50", Price: "100"},
					{PaxCount: "50", Price: "200"},
				}
			},
			constants.DUPLICATE_PAX_COUNT,
		},
		{
			"tier pax not a number", func(f *model.PackageFormInput) {
				f.PaxPriceTiers[0].PaxCount = "fifty"
			},
			constants.TIER_INVALID,
		},
		{
			"tier pax empty after cleaning", func(f *model.PackageFormInput) {
				f.PaxPriceTiers[0].PaxCount = ""
			},
			constants.TIER_INVALID,
		},
		{
			"tier pax leading zero", func(f *model.PackageFormInput) {
				f.PaxPriceTiers[0].PaxCount = "050"
			},
			constants.TIER_INVALID,
		},
		{
			"tier price negative", func(f *model.PackageFormInput) {
				f.PaxPriceTiers[0].Price = "-1"
			},
			constants.TIER_INVALID,
		},
		{
			"tier price NaN", func(f *model.PackageFormInput) {
				f.PaxPriceTiers[0].Price = "NaN"
			},
			constants.TIER_INVALID,
		},
		{
			"tier price infinite", func(f *model.PackageFormInput) {
				f.PaxPriceTiers[0].Price = "Inf"
			},
			constants.TIER_INVALID,
		},
		{
			"no services", func(f *model.PackageFormInput) { f.ServiceIds = nil },
			constants.SERVICE_REQUIRED,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			err := ValidatePackageForm(form)
			if err == nil {
				t.Fatalf("expected %q, got nil", tc.want)
			}
			if err.Error() != tc.want {
				t.Fatalf("got %q, want %q", err.Error(), tc.want)
			}
		})
	}
}

func TestValidatePackageFormFirstViolationWins(t *testing.T) {
	t.Parallel()

	// Several rules broken at once: the earliest one is reported.
	form := validForm()
	form.Name = ""
	form.PaxPriceTiers = nil
	form.ServiceIds = nil
	err := ValidatePackageForm(form)
	if err == nil || err.Error() != constants.NAME_REQUIRED {
		t.Fatalf("got %v, want %q", err, constants.NAME_REQUIRED)
	}
}

func TestValidatePackageFormUnparsablePaxIsNotDuplicate(t *testing.T) {
	t.Parallel()

	// An unparsable pax count must be reported as invalid, not as a
	// duplicate of another unparsable row.
	form := validForm()
	form.PaxPriceTiers = []model.PaxPriceTierInput{
		{PaxCount: "x", Price: "100"},
		{PaxCount: "x", Price: "200"},
	}
	err := ValidatePackageForm(form)
	if err == nil || err.Error() != constants.TIER_INVALID {
		t.Fatalf("got %v, want %q", err, constants.TIER_INVALID)
	}
}

func TestIsPackageFormSubmittable(t *testing.T) {
	t.Parallel()

	if !IsPackageFormSubmittable(validForm(), false) {
		t.Fatal("valid form without pending duplicate should be submittable")
	}
	if IsPackageFormSubmittable(validForm(), true) {
		t.Fatal("pending duplicate must block submission")
	}
	broken := validForm()
	broken.ServiceIds = nil
	if IsPackageFormSubmittable(broken, false) {
		t.Fatal("invalid form must not be submittable")
	}
}

func TestParseExcessPaxPrice(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.ExcessPaxPrice = "25.5"
	if got := ParseExcessPaxPrice(form); got != 25.5 {
		t.Fatalf("got %v, want 25.5", got)
	}
}

func TestBuildPaxPriceTiers(t *testing.T) {
	t.Parallel()

	rows := BuildPaxPriceTiers(7, []model.PaxPriceTierInput{
		{PaxCount: "50", Price: "1000"},
		{PaxCount: "100", Price: "1800.50"},
	})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].PackageId != 7 || rows[0].PaxCount != 50 || rows[0].Price != 1000 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].PaxCount != 100 || rows[1].Price != 1800.50 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func savedPackage() (model.EventPackage, []uint) {
	pkg := model.EventPackage{
		Name:           "Gold Package",
		PackageTypeId:  1,
		Description:    "Full service wedding package",
		ExcessPaxPrice: 25,
		Active:         utils.Ptr(true),
		PaxPriceTiers: []model.PaxPriceTier{
			{PackageId: 3, PaxCount: 50, Price: 1000},
			{PackageId: 3, PaxCount: 100, Price: 1800},
		},
	}
	return pkg, []uint{1, 2}
}

func TestHasPackageChangesUnchanged(t *testing.T) {
	t.Parallel()

	original, serviceIds := savedPackage()
	form := validForm()
	form.Active = utils.Ptr(true)
	if HasPackageChanges(original, serviceIds, form) {
		t.Fatal("identical form must report no changes")
	}
}

func TestHasPackageChangesTierOrderIgnored(t *testing.T) {
	t.Parallel()

	original, serviceIds := savedPackage()
	form := validForm()
	form.PaxPriceTiers = []model.PaxPriceTierInput{
		{PaxCount: "100", Price: "1800"},
		{PaxCount: "50", Price: "1000"},
	}
	if HasPackageChanges(original, serviceIds, form) {
		t.Fatal("tier row order must not count as a change")
	}
}

func TestHasPackageChangesDetectsEachField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*model.PackageFormInput)
	}{
		{"name", func(f *model.PackageFormInput) { f.Name = "Silver Package" }},
		{"package type", func(f *model.PackageFormInput) { f.PackageTypeId = 2 }},
		{"description", func(f *model.PackageFormInput) { f.Description = "Updated" }},
		{"excess pax price", func(f *model.PackageFormInput) { f.ExcessPaxPrice = "30" }},
		{"active flag", func(f *model.PackageFormInput) { f.Active = utils.Ptr(false) }},
		{"tier price", func(f *model.PackageFormInput) { f.PaxPriceTiers[0].Price = "1100" }},
		{"tier added", func(f *model.PackageFormInput) {
			f.PaxPriceTiers = append(f.PaxPriceTiers, model.PaxPriceTierInput{PaxCount: "150", Price: "2500"})
		}},
		{"service set", func(f *model.PackageFormInput) { f.ServiceIds = []uint{1, 3} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			original, serviceIds := savedPackage()
			form := validForm()
			form.Active = utils.Ptr(true)
			tc.mutate(&form)
			if !HasPackageChanges(original, serviceIds, form) {
				t.Fatalf("change to %s not detected", tc.name)
			}
		})
	}
}
