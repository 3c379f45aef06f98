package config

import "railassist/backend/internal/models"

// DepartmentSLA is the expected response and resolution window for a
// department, in hours. Not every department has one configured.
type DepartmentSLA struct {
	ResponseHours   int
	ResolutionHours int
}

const (
	DeptElectricalMaintenance = "Electrical Maintenance"
	DeptHousekeeping          = "Housekeeping"
	DeptITServices            = "IT Services"
	DeptSafetySecurity        = "Safety & Security"
	DeptGeneralServices       = "General Services"
)

// Departments lists every service department, in display order.
var Departments = []string{
	DeptElectricalMaintenance,
	DeptHousekeeping,
	DeptITServices,
	DeptSafetySecurity,
	DeptGeneralServices,
}

// CategoryDepartments maps each complaint category to the department
// responsible for it. Every category must have an entry; the router
// verifies this at startup.
var CategoryDepartments = map[models.ComplaintCategory]string{
	models.CategoryElectrical:  DeptElectricalMaintenance,
	models.CategoryCleanliness: DeptHousekeeping,
	models.CategoryWifi:        DeptITServices,
	models.CategorySafety:      DeptSafetySecurity,
	models.CategoryOther:       DeptGeneralServices,
}

// DepartmentSLAs holds the configured SLA windows. General Services has
// no committed window, so a missing entry is a legitimate miss.
var DepartmentSLAs = map[string]DepartmentSLA{
	DeptElectricalMaintenance: {ResponseHours: 4, ResolutionHours: 24},
	DeptHousekeeping:          {ResponseHours: 2, ResolutionHours: 12},
	DeptITServices:            {ResponseHours: 6, ResolutionHours: 24},
	DeptSafetySecurity:        {ResponseHours: 1, ResolutionHours: 6},
}
