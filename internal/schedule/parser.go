package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/crewdeck-dev/deploy-manager/backend/internal/domain"
)

// ParseError means the document yielded no usable employee rows. It is
// fatal to the import and surfaced to the caller verbatim.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "schedule parse failed: " + e.Reason
}

// Tracer receives diagnostic checkpoints while a document is scanned.
// Implementations must not mutate the parse; they exist so callers can
// log or assert on parser progress without the parser writing anywhere
// itself.
type Tracer interface {
	LocationFound(name, code string)
	SectionFound(role string)
	EmployeeAdded(name, role string, shiftCount int)
}

type nopTracer struct{}

func (nopTracer) LocationFound(string, string)      {}
func (nopTracer) SectionFound(string)               {}
func (nopTracer) EmployeeAdded(string, string, int) {}

type Parser struct {
	tracer Tracer
}

func NewParser(tracer Tracer) *Parser {
	if tracer == nil {
		tracer = nopTracer{}
	}
	return &Parser{tracer: tracer}
}

// parserState is the scan state threaded through the line loop: the role
// section we are inside, the day order declared by the document's day
// header, and whether that header has been seen yet.
type parserState struct {
	section        string
	dayOrder       []string
	foundDayHeader bool
}

var (
	locationRegexp  = regexp.MustCompile(`(?i)^(.+?)\s+(\d+)'s\s+schedule\s+for`)
	dateRegexp      = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	dayHeaderRegexp = regexp.MustCompile(`(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\s+(\d{1,2})\b`)
	sectionRegexp   = regexp.MustCompile(`(?i)^(.+?)\s+Deployment\s*$`)
	timeTokenRegexp = regexp.MustCompile(`\d{1,2}:\d{2}[ap]`)
	columnHeaderRe  = regexp.MustCompile(`(?i)^(name|employee)\b`)
)

// Parse scans the raw text of one weekly schedule and produces the
// structured document. Times in the result are still in the document's
// 12-hour shorthand; BuildDeployments normalizes them.
//
// The scan is a single forward pass over non-empty trimmed lines. Lines
// matching no known pattern (titles, page breaks, column headers) are
// skipped, so interleaved non-schedule text is tolerated.
func (p *Parser) Parse(text string) (*domain.ScheduleDocument, error) {
	doc := &domain.ScheduleDocument{
		Employees: make([]domain.EmployeeSchedule, 0),
	}
	state := parserState{
		dayOrder: domain.WeekDays,
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if doc.Location == "" {
			if m := locationRegexp.FindStringSubmatch(line); m != nil {
				doc.Location = strings.TrimSpace(m[1])
				doc.LocationCode = m[2]
				p.tracer.LocationFound(doc.Location, doc.LocationCode)
				// A location line also carries the week range; fall through
				// to the date scan below.
			}
		}

		if doc.WeekStart.IsZero() {
			if dates := dateRegexp.FindAllStringSubmatch(line, -1); len(dates) >= 2 {
				start, okStart := parseLooseDate(dates[0])
				end, okEnd := parseLooseDate(dates[1])
				if okStart && okEnd {
					doc.WeekStart = start
					doc.WeekEnd = end
					continue
				}
			}
		}

		if !state.foundDayHeader {
			if headers := dayHeaderRegexp.FindAllStringSubmatch(line, -1); len(headers) >= 2 {
				state.foundDayHeader = true
				state.dayOrder = make([]string, 0, len(headers))
				for _, h := range headers {
					state.dayOrder = append(state.dayOrder, h[1])
				}

				// The day header is authoritative for the week-start day of
				// month. If the loosely-parsed date range disagrees, rewrite
				// only the day-of-month component, keeping month and year.
				if firstDay, err := strconv.Atoi(headers[0][2]); err == nil && !doc.WeekStart.IsZero() && doc.WeekStart.Day() != firstDay {
					doc.WeekStart = time.Date(doc.WeekStart.Year(), doc.WeekStart.Month(), firstDay, 0, 0, 0, 0, doc.WeekStart.Location())
				}
				continue
			}
		}

		if m := sectionRegexp.FindStringSubmatch(line); m != nil {
			state.section = strings.TrimSpace(m[1])
			p.tracer.SectionFound(state.section)
			continue
		}

		if columnHeaderRe.MatchString(line) {
			continue
		}

		if state.section == "" {
			continue
		}

		if emp, ok := extractEmployeeRow(line, state.dayOrder); ok {
			emp.Role = state.section
			doc.Employees = append(doc.Employees, emp)
			p.tracer.EmployeeAdded(emp.Name, emp.Role, len(emp.Schedule))
		}
	}

	if len(doc.Employees) == 0 {
		return nil, &ParseError{Reason: "no employee rows recognized in document"}
	}

	return doc, nil
}

// extractEmployeeRow pulls an employee schedule out of one line inside a
// role section. A line qualifies only if it carries at least two time
// tokens; the text before the first token is the employee name. Tokens
// pair up sequentially onto the day order (0-1 first day, 2-3 second day,
// ...), capped at seven days; an odd trailing token is dropped.
func extractEmployeeRow(line string, dayOrder []string) (domain.EmployeeSchedule, bool) {
	tokens := timeTokenRegexp.FindAllStringIndex(line, -1)
	if len(tokens) < 2 {
		return domain.EmployeeSchedule{}, false
	}

	name := strings.TrimSpace(line[:tokens[0][0]])
	if !plausibleEmployeeName(name) {
		return domain.EmployeeSchedule{}, false
	}

	emp := domain.EmployeeSchedule{
		Name:     name,
		Schedule: make(map[string]domain.TimeRange),
	}

	for i := 0; i+1 < len(tokens) && i/2 < len(dayOrder) && i/2 < 7; i += 2 {
		day := dayOrder[i/2]
		emp.Schedule[day] = domain.TimeRange{
			StartTime: line[tokens[i][0]:tokens[i][1]],
			EndTime:   line[tokens[i+1][0]:tokens[i+1][1]],
		}
	}

	return emp, true
}

// plausibleEmployeeName rejects header and date fragments that would
// otherwise be mistaken for names: too short, containing "of " (as in
// "Week of ..."), or starting with a digit.
func plausibleEmployeeName(name string) bool {
	if len(name) <= 2 {
		return false
	}
	if strings.Contains(name, "of ") {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return false
	}
	return true
}

// parseLooseDate turns one M/D/Y regex match into a date. Two-digit years
// are taken as 20xx.
func parseLooseDate(m []string) (time.Time, bool) {
	month, err := strconv.Atoi(m[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// BuildDeployments derives one deployment record per (employee, day) pair
// of a parsed document: times normalized to 24-hour form, day names
// resolved to calendar dates, and the shift category classified. A single
// malformed time token aborts the whole document.
func BuildDeployments(doc *domain.ScheduleDocument) ([]domain.DeploymentRecord, error) {
	records := make([]domain.DeploymentRecord, 0)

	for _, emp := range doc.Employees {
		for _, day := range domain.WeekDays {
			tr, ok := emp.Schedule[day]
			if !ok {
				continue
			}

			start, err := ToMilitary(tr.StartTime)
			if err != nil {
				return nil, fmt.Errorf("employee %s, %s: %w", emp.Name, day, err)
			}
			end, err := ToMilitary(tr.EndTime)
			if err != nil {
				return nil, fmt.Errorf("employee %s, %s: %w", emp.Name, day, err)
			}

			date, err := DateForDay(doc.WeekStart, day)
			if err != nil {
				return nil, err
			}

			records = append(records, domain.DeploymentRecord{
				EmployeeName: emp.Name,
				Role:         emp.Role,
				Date:         date,
				StartTime:    start,
				EndTime:      end,
				ShiftType:    Classify(start[:5], end[:5]),
			})
		}
	}

	return records, nil
}
