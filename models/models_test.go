package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"crm-tracker/models"
)

var stamp = time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

func TestInteractionDescribe(t *testing.T) {
	tests := map[string]struct {
		interaction models.Interaction
		expected    string
	}{
		"Call": {
			interaction: models.NewCall(stamp, "Discussed new product features", 15),
			expected:    "Call on 2026-03-14 09:26:53 (Duration: 15 minutes): Discussed new product features",
		},
		"Email": {
			interaction: models.NewEmail(stamp, "Sending exclusive offer details", "VIP Exclusive Offer"),
			expected:    "Email on 2026-03-14 09:26:53 (Subject: VIP Exclusive Offer): Sending exclusive offer details",
		},
		"Meeting": {
			interaction: models.NewMeeting(stamp, "Quarterly review meeting", "Headquarters", 60),
			expected:    "Meeting on 2026-03-14 09:26:53 at Headquarters (Duration: 60 minutes): Quarterly review meeting",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.interaction.Describe())
		})
	}
}

func TestInteractionKindFixedAtConstruction(t *testing.T) {
	assert.Equal(t, models.InteractionCall, models.NewCall(stamp, "c", 1).Kind)
	assert.Equal(t, models.InteractionEmail, models.NewEmail(stamp, "c", "s").Kind)
	assert.Equal(t, models.InteractionMeeting, models.NewMeeting(stamp, "c", "l", 1).Kind)
}

func TestTotalInteractionMinutes(t *testing.T) {
	tests := map[string]struct {
		customer     *models.Customer
		interactions []models.Interaction
		expected     int
	}{
		"FreshCustomerIsZero": {
			customer: &models.Customer{Kind: models.CustomerRegular, Regular: &models.RegularProfile{}},
			expected: 0,
		},
		"RegularSumsCallsAndMeetings_EmailIgnored": {
			customer: &models.Customer{Kind: models.CustomerRegular, Regular: &models.RegularProfile{}},
			interactions: []models.Interaction{
				models.NewCall(stamp, "c", 15),
				models.NewEmail(stamp, "c", "subject"),
			},
			expected: 15,
		},
		"VIPScalesBy1_2Truncated": {
			customer: &models.Customer{Kind: models.CustomerVIP, VIP: &models.VIPProfile{}},
			interactions: []models.Interaction{
				models.NewMeeting(stamp, "c", "HQ", 60),
			},
			expected: 72, // floor(60 * 1.2)
		},
		"VIPTruncatesTowardZero": {
			customer: &models.Customer{Kind: models.CustomerVIP, VIP: &models.VIPProfile{}},
			interactions: []models.Interaction{
				models.NewCall(stamp, "c", 13),
			},
			expected: 15, // floor(13 * 1.2) = floor(15.6)
		},
		"CorporateLargeHeadcountScales1_5": {
			customer: &models.Customer{Kind: models.CustomerCorporate, Corporate: &models.CorporateProfile{Employees: 1500}},
			interactions: []models.Interaction{
				models.NewCall(stamp, "c", 30),
			},
			expected: 45, // floor(30 * 1.5)
		},
		"CorporateMidHeadcountScales1_3": {
			customer: &models.Customer{Kind: models.CustomerCorporate, Corporate: &models.CorporateProfile{Employees: 500}},
			interactions: []models.Interaction{
				models.NewCall(stamp, "c", 30),
			},
			expected: 39, // floor(30 * 1.3)
		},
		"CorporateExactly1000TakesMidTier": {
			customer: &models.Customer{Kind: models.CustomerCorporate, Corporate: &models.CorporateProfile{Employees: 1000}},
			interactions: []models.Interaction{
				models.NewCall(stamp, "c", 30),
			},
			expected: 39,
		},
		"CorporateExactly100TakesBaseTier": {
			customer: &models.Customer{Kind: models.CustomerCorporate, Corporate: &models.CorporateProfile{Employees: 100}},
			interactions: []models.Interaction{
				models.NewCall(stamp, "c", 30),
			},
			expected: 30,
		},
		"CorporateSmallHeadcountUnscaled": {
			customer: &models.Customer{Kind: models.CustomerCorporate, Corporate: &models.CorporateProfile{Employees: 10}},
			interactions: []models.Interaction{
				models.NewCall(stamp, "c", 30),
				models.NewMeeting(stamp, "c", "office", 90),
			},
			expected: 120,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for _, in := range tt.interactions {
				tt.customer.AddInteraction(in)
			}
			assert.Equal(t, tt.expected, tt.customer.TotalInteractionMinutes())
		})
	}
}

func TestSpecificAction(t *testing.T) {
	tests := map[string]struct {
		customer *models.Customer
		expected string
	}{
		"Regular": {
			customer: &models.Customer{
				Name:    "John Doe",
				Kind:    models.CustomerRegular,
				Regular: &models.RegularProfile{Segment: "Small Business"},
			},
			expected: "Sending regular promotional materials to John Doe in segment Small Business",
		},
		"VIP": {
			customer: &models.Customer{
				Name: "Jane Smith",
				Kind: models.CustomerVIP,
				VIP:  &models.VIPProfile{AccountManager: "Michael Johnson"},
			},
			expected: "Scheduling quarterly review with Jane Smith and account manager Michael Johnson",
		},
		"Corporate": {
			customer: &models.Customer{
				Name:      "Bob Anderson",
				Kind:      models.CustomerCorporate,
				Corporate: &models.CorporateProfile{CompanyName: "MegaCorp", Employees: 1500},
			},
			expected: "Arranging corporate training session for MegaCorp with 1500 potential users",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.customer.SpecificAction())
		})
	}
}

func TestLoyaltyCapability(t *testing.T) {
	vip := &models.Customer{Kind: models.CustomerVIP, VIP: &models.VIPProfile{}}
	regular := &models.Customer{Kind: models.CustomerRegular, Regular: &models.RegularProfile{}}
	corporate := &models.Customer{Kind: models.CustomerCorporate, Corporate: &models.CorporateProfile{}}

	assert.NotNil(t, vip.Loyalty())
	assert.Nil(t, regular.Loyalty())
	assert.Nil(t, corporate.Loyalty())

	total := vip.Loyalty().AddLoyaltyPoints(7.5)
	assert.Equal(t, 7.5, total)
	total = vip.Loyalty().AddLoyaltyPoints(10)
	assert.Equal(t, 17.5, total)
}

func TestRenewContract(t *testing.T) {
	profile := &models.CorporateProfile{CompanyName: "MegaCorp", AnnualContract: 50000}

	old := profile.RenewContract(75000)
	assert.Equal(t, 50000.0, old)
	assert.Equal(t, 75000.0, profile.AnnualContract)

	// Negative and zero amounts are stored as given.
	old = profile.RenewContract(-100)
	assert.Equal(t, 75000.0, old)
	assert.Equal(t, -100.0, profile.AnnualContract)
}
