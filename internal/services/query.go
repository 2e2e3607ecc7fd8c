package services

import (
	"net/url"

	"timetableportal/internal/domain"
)

// Filters are the user-chosen day-lookup filters. Which of them are required
// depends on the querying role context. TargetRole is only meaningful for the
// admin overview, which browses another role's grid.
type Filters struct {
	Department string
	Section    string
	Semester   string
	FacultyID  string
	TargetRole domain.Role
	Date       string // YYYY-MM-DD, informational
}

// BuildDayQuery validates the filters for the given role context and shapes
// the day-lookup query parameters. When a required filter is missing it
// returns a ValidationError and the caller must not issue a network call.
//
// Required per role: student needs department, section, and semester;
// faculty needs department and a faculty id; hod needs only department (the
// HOD view is department-wide, a faculty id merely narrows it); admin browses
// any role's grid and needs nothing up front.
func BuildDayQuery(role domain.Role, f Filters) (url.Values, error) {
	var missing []string
	switch role {
	case domain.RoleStudent:
		if f.Department == "" {
			missing = append(missing, "department is required")
		}
		if f.Section == "" {
			missing = append(missing, "section is required")
		}
		if f.Semester == "" {
			missing = append(missing, "semester is required")
		}
	case domain.RoleFaculty:
		if f.Department == "" {
			missing = append(missing, "department is required")
		}
		if f.FacultyID == "" {
			missing = append(missing, "faculty id is required")
		}
	case domain.RoleHOD:
		if f.Department == "" {
			missing = append(missing, "department is required")
		}
	case domain.RoleAdmin:
		if f.TargetRole == "" {
			missing = append(missing, "viewing role is required")
		}
	default:
		return nil, domain.NewValidationError("unknown role")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	params := url.Values{}
	if role == domain.RoleAdmin {
		params.Set("role", string(f.TargetRole))
	} else {
		params.Set("role", string(role))
	}
	if f.Department != "" {
		params.Set("department", f.Department)
	}
	switch role {
	case domain.RoleStudent:
		params.Set("section", f.Section)
		params.Set("semester", f.Semester)
	case domain.RoleFaculty:
		params.Set("facultyId", f.FacultyID)
	case domain.RoleHOD:
		if f.FacultyID != "" {
			params.Set("facultyId", f.FacultyID)
		}
	}
	if f.Date != "" {
		params.Set("date", f.Date)
	}
	return params, nil
}
