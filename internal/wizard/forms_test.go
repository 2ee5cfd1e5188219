package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidconnect/internal/domain"
)

var home = &domain.Location{Latitude: 40.7128, Longitude: -74.006, Address: "New York, NY"}

func fill(w *Wizard, answers map[string]string) {
	for k, v := range answers {
		w.Set(k, v)
	}
}

func TestRequestForm_HappyPath(t *testing.T) {
	f := NewRequestForm(home)
	assert.Equal(t, 4, f.Len())

	require.NoError(t, f.Next(), "category is optional")
	fill(f.Wizard, map[string]string{FieldTitle: "Groceries", FieldDescription: "Milk and bread"})
	require.NoError(t, f.Next())
	assert.Equal(t, "flexible", f.Get(FieldTimeframe))
	f.Set(FieldTimeframe, "today")
	require.NoError(t, f.Next())
	assert.Equal(t, "New York, NY", f.Get(FieldAddress))

	out, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, "Groceries", out.Title)
	assert.Equal(t, domain.Category(""), out.Category)
	assert.Equal(t, domain.TimeframeToday, out.Timeframe)
	assert.Equal(t, 40.7128, out.Location.Latitude)
	assert.Equal(t, -74.006, out.Location.Longitude)
}

func TestRequestForm_DetailsBlankRejected(t *testing.T) {
	f := NewRequestForm(nil)
	f.Set(FieldCategory, "food")
	require.NoError(t, f.Next())

	f.Set(FieldTitle, "   ")
	f.Set(FieldDescription, "x")
	err := f.Next()
	assert.ErrorIs(t, err, ErrStepInvalid)
	assert.EqualError(t, err, "title is required")
	assert.Equal(t, 1, f.Index())
}

func TestRequestForm_UnknownCategory(t *testing.T) {
	f := NewRequestForm(nil)
	f.Set(FieldCategory, "plumbing")
	assert.ErrorIs(t, f.Next(), ErrStepInvalid)
}

func TestRequestForm_LocationChecks(t *testing.T) {
	f := NewRequestForm(nil)
	require.NoError(t, f.Next())
	fill(f.Wizard, map[string]string{FieldTitle: "t", FieldDescription: "d"})
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())

	fill(f.Wizard, map[string]string{FieldAddress: "Somewhere", FieldLatitude: "north", FieldLongitude: "0"})
	assert.EqualError(t, f.Next(), "latitude must be a number")

	f.Set(FieldLatitude, "91")
	assert.EqualError(t, f.Next(), "location latitude must be at most 90")

	f.Set(FieldLatitude, "-33.86")
	f.Set(FieldLongitude, "151.2")
	_, err := f.Build()
	require.NoError(t, err)
}

func TestRequestForm_BuildBeforeLastStep(t *testing.T) {
	_, err := NewRequestForm(home).Build()
	assert.ErrorIs(t, err, ErrNotLastStep)
}

func offerToLastStep(t *testing.T) *OfferForm {
	t.Helper()
	f := NewOfferForm(home)
	fill(f.Wizard, map[string]string{FieldCategory: "transport", FieldSkills: "driving, heavy lifting ,"})
	require.NoError(t, f.Next())
	fill(f.Wizard, map[string]string{FieldTitle: "Van available", FieldDescription: "Can move furniture"})
	require.NoError(t, f.Next())
	fill(f.Wizard, map[string]string{
		FieldStart:     "2026-08-01 09:00",
		FieldEnd:       "2026-08-01 17:00",
		FieldRecurring: "yes",
		FieldDays:      "sat, Sunday, 0",
	})
	require.NoError(t, f.Next())
	return f
}

func TestOfferForm_HappyPath(t *testing.T) {
	f := offerToLastStep(t)
	assert.Equal(t, "5000", f.Get(FieldMaxDistance))
	assert.Equal(t, "1", f.Get(FieldCapacity))
	f.Set(FieldCapacity, "3")

	out, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryTransport, out.Category)
	assert.Equal(t, []string{"driving", "heavy lifting"}, out.Skills)
	assert.True(t, out.Availability.Recurring)
	assert.Equal(t, []int{5, 6, 0}, out.Availability.DaysOfWeek)
	assert.Equal(t, 8*time.Hour, out.Availability.EndTime.Sub(out.Availability.StartTime))
	assert.Equal(t, 3, out.Capacity)
	assert.Equal(t, 5000, out.MaxDistance)
	assert.Equal(t, "New York, NY", out.Location.Address)
}

func TestOfferForm_CategoryRequired(t *testing.T) {
	f := NewOfferForm(nil)
	assert.EqualError(t, f.Next(), "category is required")
}

func TestOfferForm_ScheduleChecks(t *testing.T) {
	f := NewOfferForm(nil)
	f.Set(FieldCategory, "food")
	require.NoError(t, f.Next())
	fill(f.Wizard, map[string]string{FieldTitle: "t", FieldDescription: "d"})
	require.NoError(t, f.Next())

	fill(f.Wizard, map[string]string{FieldStart: "tomorrow", FieldEnd: "2026-08-01 17:00"})
	assert.EqualError(t, f.Next(), "start must look like 2006-01-02 15:04")

	fill(f.Wizard, map[string]string{FieldStart: "2026-08-01 18:00"})
	assert.EqualError(t, f.Next(), "availability end time must be after start time")

	fill(f.Wizard, map[string]string{FieldStart: "2026-08-01 08:00", FieldDays: "7"})
	assert.EqualError(t, f.Next(), "availability days of week[0] must be at most 6")

	f.Set(FieldDays, "someday")
	assert.EqualError(t, f.Next(), `unknown day "someday"`)

	f.Set(FieldDays, "")
	require.NoError(t, f.Next())
}

func TestOfferForm_CapacityAtLeastOne(t *testing.T) {
	f := offerToLastStep(t)
	f.Set(FieldCapacity, "0")
	assert.EqualError(t, f.Next(), "capacity must be at least 1")
	f.Set(FieldCapacity, "many")
	assert.EqualError(t, f.Next(), "capacity must be a whole number")
}

func TestCheck_UserCreate(t *testing.T) {
	in := domain.UserCreate{
		Email:    "not-an-email",
		Password: "secret1",
		Profile:  domain.UserProfile{Name: "Ann", Location: *home},
	}
	assert.EqualError(t, Check(&in), "email must be a valid email address")
	in.Email = "ann@example.com"
	in.Password = "123"
	assert.EqualError(t, Check(&in), "password must be at least 6 characters")
	in.Password = "123456"
	assert.NoError(t, Check(&in))
}
