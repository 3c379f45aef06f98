// Package routing maps complaint categories to the departments that own
// them and exposes each department's configured SLA window.
package routing

import (
	"fmt"

	"railassist/backend/internal/config"
	"railassist/backend/internal/models"
)

// Router is a pure lookup over the static department configuration. It is
// safe for concurrent use.
type Router struct {
	departments map[models.ComplaintCategory]string
	slas        map[string]config.DepartmentSLA
}

// New builds a Router from the static configuration tables and verifies
// that every category has a department. An unmapped category is a
// configuration fault, not a runtime condition, so callers are expected
// to treat the error as fatal.
func New() (*Router, error) {
	r := &Router{
		departments: config.CategoryDepartments,
		slas:        config.DepartmentSLAs,
	}
	for _, category := range models.Categories {
		if r.departments[category] == "" {
			return nil, fmt.Errorf("routing: category %q has no department mapping", category)
		}
	}
	return r, nil
}

// ResolveDepartment returns the department responsible for a category.
// New guarantees a mapping exists for every valid category.
func (r *Router) ResolveDepartment(category models.ComplaintCategory) string {
	return r.departments[category]
}

// SLAFor returns the configured SLA window for a department. The second
// return is false when the department has no configured window, which is
// a legitimate miss that callers must treat as optional data.
func (r *Router) SLAFor(department string) (config.DepartmentSLA, bool) {
	sla, ok := r.slas[department]
	return sla, ok
}
