// Package seed holds the built-in screens and their sample collections, and
// loads replacement collections from YAML, JSON(C) or JSONL files.
package seed

import (
	"errors"
	"fmt"
	"sort"

	"airops/internal/model"
)

// ErrUnknownScreen is returned when a name matches no built-in screen.
var ErrUnknownScreen = errors.New("unknown screen")

var (
	FlightStatus = model.Vocabulary{
		{Value: "scheduled", Label: "Scheduled"},
		{Value: "boarding", Label: "Boarding"},
		{Value: "departed", Label: "Departed"},
		{Value: "delayed", Label: "Delayed"},
		{Value: "cancelled", Label: "Cancelled"},
		{Value: "landed", Label: "Landed"},
	}
	CrewRole = model.Vocabulary{
		{Value: "pilot", Label: "Captain"},
		{Value: "copilot", Label: "First Officer"},
		{Value: "attendant", Label: "Flight Attendant"},
		{Value: "engineer", Label: "Flight Engineer"},
	}
	CrewStatus = model.Vocabulary{
		{Value: "active", Label: "Active"},
		{Value: "off-duty", Label: "Off duty"},
		{Value: "vacation", Label: "Vacation"},
		{Value: "training", Label: "Training"},
	}
	AircraftStatus = model.Vocabulary{
		{Value: "active", Label: "In service"},
		{Value: "maintenance", Label: "Maintenance"},
		{Value: "inactive", Label: "Inactive"},
	}
	CabinClass = model.Vocabulary{
		{Value: "economy", Label: "Economy"},
		{Value: "premium", Label: "Premium Economy"},
		{Value: "business", Label: "Business"},
		{Value: "first", Label: "First"},
	}
	LoyaltyTier = model.Vocabulary{
		{Value: "none", Label: "No tier"},
		{Value: "silver", Label: "Silver"},
		{Value: "gold", Label: "Gold"},
		{Value: "platinum", Label: "Platinum"},
	}
	Department = model.Vocabulary{
		{Value: "operations", Label: "Operations"},
		{Value: "maintenance", Label: "Maintenance"},
		{Value: "customer-service", Label: "Customer Service"},
		{Value: "finance", Label: "Finance"},
		{Value: "hr", Label: "Human Resources"},
	}
	EmployeeStatus = model.Vocabulary{
		{Value: "active", Label: "Active"},
		{Value: "leave", Label: "On leave"},
		{Value: "terminated", Label: "Terminated"},
	}
)

var screens = map[string]model.Screen{
	"flights": {
		Name:  "flights",
		Title: "Flights",
		Columns: []model.Column{
			{Field: "flightNumber", Title: "Flight", Width: 8},
			{Field: "origin", Title: "From", Width: 6},
			{Field: "destination", Title: "To", Width: 6},
			{Field: "departure", Title: "Departure", Width: 17},
			{Field: "aircraft", Title: "Aircraft", Width: 10},
			{Field: "status", Title: "Status", Width: 10},
		},
		Searchable: []string{"flightNumber", "origin", "destination"},
		Categorical: []model.Facet{
			{Field: "status", Label: "Status", Vocabulary: FlightStatus},
		},
		Tabs: []model.Tab{
			{Name: "overview", Label: "Overview", Fields: []string{"flightNumber", "origin", "destination", "departure", "arrival", "status"}},
			{Name: "crew", Label: "Crew", Fields: []string{"captain", "firstOfficer", "cabinCrew"}, RequiresSelection: true},
			{Name: "load", Label: "Load", Fields: []string{"aircraft", "passengers", "gate"}, RequiresSelection: true},
		},
		AddFields: []string{"flightNumber", "origin", "destination", "departure"},
	},
	"crew": {
		Name:  "crew",
		Title: "Crew",
		Columns: []model.Column{
			{Field: "name", Title: "Name", Width: 20},
			{Field: "role", Title: "Role", Width: 16},
			{Field: "base", Title: "Base", Width: 6},
			{Field: "flightHours", Title: "Hours", Width: 7},
			{Field: "status", Title: "Status", Width: 10},
		},
		Searchable: []string{"name", "role"},
		Categorical: []model.Facet{
			{Field: "role", Label: "Role", Vocabulary: CrewRole},
			{Field: "status", Label: "Status", Vocabulary: CrewStatus},
		},
		Tabs: []model.Tab{
			{Name: "profile", Label: "Profile", Fields: []string{"name", "role", "base", "status"}},
			{Name: "qualifications", Label: "Qualifications", Fields: []string{"license", "typeRatings", "medicalExpiry"}, RequiresSelection: true},
			{Name: "schedule", Label: "Schedule", Fields: []string{"nextDuty", "flightHours"}, RequiresSelection: true},
		},
		AddFields: []string{"name", "role", "base"},
	},
	"aircraft": {
		Name:  "aircraft",
		Title: "Aircraft",
		Columns: []model.Column{
			{Field: "registration", Title: "Reg", Width: 8},
			{Field: "model", Title: "Model", Width: 16},
			{Field: "seats", Title: "Seats", Width: 6},
			{Field: "lastCheck", Title: "Last check", Width: 11},
			{Field: "status", Title: "Status", Width: 12},
		},
		Searchable: []string{"registration", "model"},
		Categorical: []model.Facet{
			{Field: "status", Label: "Status", Vocabulary: AircraftStatus},
		},
		Tabs: []model.Tab{
			{Name: "summary", Label: "Summary", Fields: []string{"registration", "model", "seats", "status"}},
			{Name: "maintenance", Label: "Maintenance history", Fields: []string{"lastCheck", "nextCheck", "maintenanceHistory"}, RequiresSelection: true},
		},
		AddFields: []string{"registration", "model", "seats"},
	},
	"passengers": {
		Name:  "passengers",
		Title: "Passengers",
		Columns: []model.Column{
			{Field: "name", Title: "Name", Width: 20},
			{Field: "email", Title: "Email", Width: 24},
			{Field: "flight", Title: "Flight", Width: 8},
			{Field: "class", Title: "Class", Width: 16},
			{Field: "tier", Title: "Tier", Width: 9},
		},
		Searchable: []string{"name", "email", "flight"},
		Categorical: []model.Facet{
			{Field: "class", Label: "Class", Vocabulary: CabinClass},
			{Field: "tier", Label: "Loyalty", Vocabulary: LoyaltyTier},
		},
		Tabs: []model.Tab{
			{Name: "profile", Label: "Profile", Fields: []string{"name", "email", "phone", "tier"}},
			{Name: "booking", Label: "Booking", Fields: []string{"flight", "seat", "class"}, RequiresSelection: true},
			{Name: "complaints", Label: "Complaints", Fields: []string{"complaints"}, RequiresSelection: true},
		},
		AddFields: []string{"name", "email", "flight"},
	},
	"employees": {
		Name:  "employees",
		Title: "HR",
		Columns: []model.Column{
			{Field: "name", Title: "Name", Width: 20},
			{Field: "position", Title: "Position", Width: 22},
			{Field: "department", Title: "Department", Width: 17},
			{Field: "hireDate", Title: "Hired", Width: 11},
			{Field: "status", Title: "Status", Width: 10},
		},
		Searchable: []string{"name", "position", "email"},
		Categorical: []model.Facet{
			{Field: "department", Label: "Department", Vocabulary: Department},
			{Field: "status", Label: "Status", Vocabulary: EmployeeStatus},
		},
		Tabs: []model.Tab{
			{Name: "profile", Label: "Profile", Fields: []string{"name", "email", "position", "department"}},
			{Name: "employment", Label: "Employment", Fields: []string{"hireDate", "salary", "manager", "status"}, RequiresSelection: true},
		},
		AddFields: []string{"name", "position", "department"},
	},
}

// order is the tab order of the dashboard.
var order = []string{"flights", "crew", "aircraft", "passengers", "employees"}

// Names lists the built-in screens in dashboard order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Screen returns the definition of a built-in screen.
func Screen(name string) (model.Screen, error) {
	s, ok := screens[name]
	if !ok {
		known := make([]string, 0, len(screens))
		for k := range screens {
			known = append(known, k)
		}
		sort.Strings(known)
		return model.Screen{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownScreen, name, known)
	}
	return s, nil
}
