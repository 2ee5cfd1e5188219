package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"aidconnect/internal/domain"
)

// Field names shared by the request and offer forms.
const (
	FieldCategory    = "category"
	FieldSkills      = "skills"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldTimeframe   = "timeframe"
	FieldStart       = "start"
	FieldEnd         = "end"
	FieldRecurring   = "recurring"
	FieldDays        = "days"
	FieldAddress     = "address"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
	FieldMaxDistance = "max_distance"
	FieldCapacity    = "capacity"
)

// TimeLayout is how availability times are typed in.
const TimeLayout = "2006-01-02 15:04"

var weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// RequestForm collects a new help request.
type RequestForm struct {
	*Wizard
}

// NewRequestForm builds the request wizard. home, when known, pre-fills the
// location step.
func NewRequestForm(home *domain.Location) *RequestForm {
	timeframes := make([]string, len(domain.Timeframes))
	for i, t := range domain.Timeframes {
		timeframes[i] = string(t)
	}
	return &RequestForm{Wizard: New(
		Step{
			Name:  "category",
			Title: "What kind of help do you need?",
			Fields: []Field{{
				Name:     FieldCategory,
				Label:    "Category",
				Help:     "leave empty to have it classified for you",
				Options:  categoryOptions(),
				Optional: true,
			}},
		},
		Step{
			Name:   "details",
			Title:  "Describe what you need",
			Fields: detailFields(),
			Validate: func(v Values) error {
				return checkFields(&domain.HelpRequestCreate{
					Title:       v[FieldTitle],
					Description: v[FieldDescription],
				}, "Title", "Description")
			},
		},
		Step{
			Name:  "schedule",
			Title: "When do you need it?",
			Fields: []Field{{
				Name:    FieldTimeframe,
				Label:   "Timeframe",
				Options: timeframes,
				Default: string(domain.TimeframeFlexible),
			}},
		},
		Step{
			Name:   "location",
			Title:  "Where do you need it?",
			Fields: locationFields(home),
			Validate: func(v Values) error {
				loc, err := parseLocation(v)
				if err != nil {
					return err
				}
				return checkFields(&domain.HelpRequestCreate{Location: loc},
					"Location.Address", "Location.Latitude", "Location.Longitude")
			},
		},
	)}
}

// Build submits the wizard and returns the request payload.
func (f *RequestForm) Build() (domain.HelpRequestCreate, error) {
	if err := f.Submit(); err != nil {
		return domain.HelpRequestCreate{}, err
	}
	v := f.Values()
	loc, err := parseLocation(v)
	if err != nil {
		return domain.HelpRequestCreate{}, err
	}
	out := domain.HelpRequestCreate{
		Title:       v[FieldTitle],
		Description: v[FieldDescription],
		Category:    domain.Category(v[FieldCategory]),
		Timeframe:   domain.Timeframe(v[FieldTimeframe]),
		Location:    loc,
	}
	if err := Check(&out); err != nil {
		return domain.HelpRequestCreate{}, err
	}
	return out, nil
}

// OfferForm collects a new help offer.
type OfferForm struct {
	*Wizard
}

// NewOfferForm builds the offer wizard. home, when known, pre-fills the
// location step.
func NewOfferForm(home *domain.Location) *OfferForm {
	return &OfferForm{Wizard: New(
		Step{
			Name:  "category",
			Title: "What can you help with?",
			Fields: []Field{
				{Name: FieldCategory, Label: "Category", Options: categoryOptions()},
				{Name: FieldSkills, Label: "Skills", Help: "comma separated", Optional: true},
			},
		},
		Step{
			Name:   "details",
			Title:  "Describe your offer",
			Fields: detailFields(),
			Validate: func(v Values) error {
				return checkFields(&domain.HelpOfferCreate{
					Title:       v[FieldTitle],
					Description: v[FieldDescription],
				}, "Title", "Description")
			},
		},
		Step{
			Name:  "schedule",
			Title: "When are you available?",
			Fields: []Field{
				{Name: FieldStart, Label: "Start", Help: TimeLayout},
				{Name: FieldEnd, Label: "End", Help: TimeLayout},
				{Name: FieldRecurring, Label: "Recurring", Options: []string{"yes", "no"}, Default: "no"},
				{Name: FieldDays, Label: "Days", Help: "e.g. mon,wed,fri", Optional: true},
			},
			Validate: func(v Values) error {
				av, err := parseAvailability(v)
				if err != nil {
					return err
				}
				return checkFields(&domain.HelpOfferCreate{Availability: av},
					"Availability.EndTime", "Availability.DaysOfWeek")
			},
		},
		Step{
			Name:  "location",
			Title: "Where can you help?",
			Fields: append(locationFields(home),
				Field{Name: FieldMaxDistance, Label: "Max distance", Help: "meters", Default: "5000"},
				Field{Name: FieldCapacity, Label: "Capacity", Help: "how many people at once", Default: "1"},
			),
			Validate: func(v Values) error {
				out, err := parseOfferReach(v)
				if err != nil {
					return err
				}
				return checkFields(&out,
					"Location.Address", "Location.Latitude", "Location.Longitude", "MaxDistance", "Capacity")
			},
		},
	)}
}

// Build submits the wizard and returns the offer payload.
func (f *OfferForm) Build() (domain.HelpOfferCreate, error) {
	if err := f.Submit(); err != nil {
		return domain.HelpOfferCreate{}, err
	}
	v := f.Values()
	out, err := parseOfferReach(v)
	if err != nil {
		return domain.HelpOfferCreate{}, err
	}
	if out.Availability, err = parseAvailability(v); err != nil {
		return domain.HelpOfferCreate{}, err
	}
	out.Title = v[FieldTitle]
	out.Description = v[FieldDescription]
	out.Category = domain.Category(v[FieldCategory])
	out.Skills = splitList(v[FieldSkills])
	if err := Check(&out); err != nil {
		return domain.HelpOfferCreate{}, err
	}
	return out, nil
}

func categoryOptions() []string {
	out := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		out[i] = string(c)
	}
	return out
}

func detailFields() []Field {
	return []Field{
		{Name: FieldTitle, Label: "Title"},
		{Name: FieldDescription, Label: "Description"},
	}
}

func locationFields(home *domain.Location) []Field {
	fields := []Field{
		{Name: FieldAddress, Label: "Address"},
		{Name: FieldLatitude, Label: "Latitude"},
		{Name: FieldLongitude, Label: "Longitude"},
	}
	if home != nil {
		fields[0].Default = home.Address
		fields[1].Default = strconv.FormatFloat(home.Latitude, 'f', -1, 64)
		fields[2].Default = strconv.FormatFloat(home.Longitude, 'f', -1, 64)
	}
	return fields
}

func parseLocation(v Values) (domain.Location, error) {
	lat, err := parseFloat(v, FieldLatitude)
	if err != nil {
		return domain.Location{}, err
	}
	lng, err := parseFloat(v, FieldLongitude)
	if err != nil {
		return domain.Location{}, err
	}
	return domain.Location{Latitude: lat, Longitude: lng, Address: v[FieldAddress]}, nil
}

func parseOfferReach(v Values) (domain.HelpOfferCreate, error) {
	loc, err := parseLocation(v)
	if err != nil {
		return domain.HelpOfferCreate{}, err
	}
	maxDistance, err := parseInt(v, FieldMaxDistance)
	if err != nil {
		return domain.HelpOfferCreate{}, err
	}
	capacity, err := parseInt(v, FieldCapacity)
	if err != nil {
		return domain.HelpOfferCreate{}, err
	}
	return domain.HelpOfferCreate{Location: loc, MaxDistance: maxDistance, Capacity: capacity}, nil
}

func parseAvailability(v Values) (domain.OfferAvailability, error) {
	start, err := parseTime(v, FieldStart)
	if err != nil {
		return domain.OfferAvailability{}, err
	}
	end, err := parseTime(v, FieldEnd)
	if err != nil {
		return domain.OfferAvailability{}, err
	}
	days, err := parseDays(v[FieldDays])
	if err != nil {
		return domain.OfferAvailability{}, err
	}
	return domain.OfferAvailability{
		StartTime:  start,
		EndTime:    end,
		Recurring:  v[FieldRecurring] == "yes",
		DaysOfWeek: days,
	}, nil
}

func parseFloat(v Values, name string) (float64, error) {
	f, err := strconv.ParseFloat(v[name], 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return f, nil
}

func parseInt(v Values, name string) (int, error) {
	n, err := strconv.Atoi(v[name])
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", strings.ReplaceAll(name, "_", " "))
	}
	return n, nil
}

func parseTime(v Values, name string) (time.Time, error) {
	s := v[name]
	if t, err := time.ParseInLocation(TimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%s must look like %s", name, TimeLayout)
}

// parseDays accepts weekday names (mon..sun) or numbers, 0 being Monday.
// Range checking is left to validation.
func parseDays(s string) ([]int, error) {
	days := []int{}
	for _, item := range splitList(s) {
		item = strings.ToLower(item)
		if n, err := strconv.Atoi(item); err == nil {
			days = append(days, n)
			continue
		}
		idx := -1
		for i, d := range weekdays {
			if strings.HasPrefix(item, d) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown day %q", item)
		}
		days = append(days, idx)
	}
	return days, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
