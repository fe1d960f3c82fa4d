package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `Weekly Deployment Report
Maple Grove 4821's schedule for 6/2/2025 - 6/8/2025
Monday 2 Tuesday 3 Wednesday 4 Thursday 5 Friday 6 Saturday 7 Sunday 8
Kitchen Deployment
Name Mon Tue Wed Thu Fri Sat Sun
Alice Johnson 9:00a 5:00p 9:00a 5:00p 9:00a 5:00p 9:00a 5:00p 9:00a 5:00p 10:00a 6:00p 10:00a 6:00p
Bob Smith 4:00p 11:00p 4:00p 11:00p 4:00p 11:00p 4:00p 11:00p
Front Counter Deployment
Carol Davis 11:00a 7:00p 11:00a 7:00p
`

type recordingTracer struct {
	locations []string
	sections  []string
	employees []string
}

func (r *recordingTracer) LocationFound(name, code string) {
	r.locations = append(r.locations, name+" "+code)
}

func (r *recordingTracer) SectionFound(role string) {
	r.sections = append(r.sections, role)
}

func (r *recordingTracer) EmployeeAdded(name, role string, shiftCount int) {
	r.employees = append(r.employees, name)
}

func TestParseSampleDocument(t *testing.T) {
	p := NewParser(nil)

	doc, err := p.Parse(sampleDocument)
	require.NoError(t, err)

	assert.Equal(t, "Maple Grove", doc.Location)
	assert.Equal(t, "4821", doc.LocationCode)
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), doc.WeekStart)
	assert.Equal(t, time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC), doc.WeekEnd)

	require.Len(t, doc.Employees, 3)

	alice := doc.Employees[0]
	assert.Equal(t, "Alice Johnson", alice.Name)
	assert.Equal(t, "Kitchen", alice.Role)
	require.Len(t, alice.Schedule, 7)
	assert.Equal(t, domain.TimeRange{StartTime: "9:00a", EndTime: "5:00p"}, alice.Schedule["Monday"])
	assert.Equal(t, domain.TimeRange{StartTime: "10:00a", EndTime: "6:00p"}, alice.Schedule["Sunday"])

	bob := doc.Employees[1]
	assert.Equal(t, "Kitchen", bob.Role)
	assert.Len(t, bob.Schedule, 4)

	carol := doc.Employees[2]
	assert.Equal(t, "Front Counter", carol.Role)
	assert.Len(t, carol.Schedule, 2)
}

func TestParseEmitsTraceEvents(t *testing.T) {
	tracer := &recordingTracer{}
	p := NewParser(tracer)

	_, err := p.Parse(sampleDocument)
	require.NoError(t, err)

	assert.Equal(t, []string{"Maple Grove 4821"}, tracer.locations)
	assert.Equal(t, []string{"Kitchen", "Front Counter"}, tracer.sections)
	assert.Equal(t, []string{"Alice Johnson", "Bob Smith", "Carol Davis"}, tracer.employees)
}

func TestParseFailsOnZeroEmployees(t *testing.T) {
	p := NewParser(nil)

	_, err := p.Parse("Weekly Deployment Report\nsome page footer\n")

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseWithoutDayHeaderUsesMondayFirstOrder(t *testing.T) {
	text := strings.Join([]string{
		"Kitchen Deployment",
		"Dana Lee 8:00a 4:00p 10:00a 6:00p",
	}, "\n")

	p := NewParser(nil)
	doc, err := p.Parse(text)
	require.NoError(t, err)

	require.Len(t, doc.Employees, 1)
	sched := doc.Employees[0].Schedule
	require.Len(t, sched, 2)
	assert.Equal(t, "8:00a", sched["Monday"].StartTime)
	assert.Equal(t, "10:00a", sched["Tuesday"].StartTime)
}

func TestParseCorrectsWeekStartFromDayHeader(t *testing.T) {
	// The date range says the week starts on the 1st, but the day header
	// says Monday is the 2nd. Only the day of month is rewritten.
	text := strings.Join([]string{
		"Maple Grove 4821's schedule for 6/1/2025 - 6/8/2025",
		"Monday 2 Tuesday 3 Wednesday 4",
		"Kitchen Deployment",
		"Dana Lee 8:00a 4:00p 10:00a 6:00p",
	}, "\n")

	p := NewParser(nil)
	doc, err := p.Parse(text)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), doc.WeekStart)
}

func TestParseRejectsImplausibleNames(t *testing.T) {
	text := strings.Join([]string{
		"Kitchen Deployment",
		"Week of June 9:00a 5:00p",   // contains "of "
		"3rd Shift 9:00a 5:00p",      // starts with a digit
		"Al 9:00a 5:00p",             // too short
		"Dana Lee 8:00a 4:00p",       // valid
	}, "\n")

	p := NewParser(nil)
	doc, err := p.Parse(text)
	require.NoError(t, err)

	require.Len(t, doc.Employees, 1)
	assert.Equal(t, "Dana Lee", doc.Employees[0].Name)
}

func TestParseDropsOddTrailingToken(t *testing.T) {
	text := strings.Join([]string{
		"Kitchen Deployment",
		"Dana Lee 8:00a 4:00p 10:00a",
	}, "\n")

	p := NewParser(nil)
	doc, err := p.Parse(text)
	require.NoError(t, err)

	require.Len(t, doc.Employees, 1)
	assert.Len(t, doc.Employees[0].Schedule, 1)
}

func TestParseIgnoresRowsOutsideSections(t *testing.T) {
	text := strings.Join([]string{
		"Dana Lee 8:00a 4:00p", // before any section header
		"Kitchen Deployment",
		"Erik Ford 8:00a 4:00p",
	}, "\n")

	p := NewParser(nil)
	doc, err := p.Parse(text)
	require.NoError(t, err)

	require.Len(t, doc.Employees, 1)
	assert.Equal(t, "Erik Ford", doc.Employees[0].Name)
}

func TestParseIsIdempotent(t *testing.T) {
	p := NewParser(nil)

	first, err := p.Parse(sampleDocument)
	require.NoError(t, err)
	second, err := p.Parse(sampleDocument)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildDeployments(t *testing.T) {
	p := NewParser(nil)
	doc, err := p.Parse(sampleDocument)
	require.NoError(t, err)

	records, err := BuildDeployments(doc)
	require.NoError(t, err)
	require.Len(t, records, 13)

	first := records[0]
	assert.Equal(t, "Alice Johnson", first.EmployeeName)
	assert.Equal(t, "Kitchen", first.Role)
	assert.Equal(t, "2025-06-02", first.Date)
	assert.Equal(t, "09:00:00", first.StartTime)
	assert.Equal(t, "17:00:00", first.EndTime)
	assert.Equal(t, domain.ShiftDay, first.ShiftType)

	// Bob closes: 4:00p-11:00p is a night shift.
	for _, rec := range records {
		if rec.EmployeeName == "Bob Smith" {
			assert.Equal(t, domain.ShiftNight, rec.ShiftType)
		}
	}
}

func TestBuildDeploymentsAbortsOnMalformedToken(t *testing.T) {
	doc := &domain.ScheduleDocument{
		WeekStart: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		Employees: []domain.EmployeeSchedule{
			{
				Name: "Dana Lee",
				Role: "Kitchen",
				Schedule: map[string]domain.TimeRange{
					"Monday": {StartTime: "8:00", EndTime: "4:00p"},
				},
			},
		},
	}

	_, err := BuildDeployments(doc)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}
