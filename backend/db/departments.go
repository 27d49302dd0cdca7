package db

import (
	"context"
	"database/sql"

	"civictrack/backend/routing"
	"civictrack/backend/server/api"

	"github.com/apex/log"
)

func departmentExistsTx(ctx context.Context, tx *sql.Tx, id string) (bool, error) {
	var found string
	err := tx.QueryRowContext(ctx, `SELECT id FROM departments WHERE id = ?`, id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		log.Errorf("Error checking department %s: %v", id, err)
		return false, err
	}
	return true, nil
}

// ListDepartments returns the department catalog with the categories
// routed to each department.
func ListDepartments(db *sql.DB) (*api.DepartmentsResponse, error) {
	rows, err := db.Query(`SELECT d.id, d.name, d.color, d.icon, dc.category
	  FROM departments d
	  LEFT JOIN department_categories dc ON dc.department_id = d.id
	  ORDER BY d.id ASC, dc.category ASC`)
	if err != nil {
		log.Errorf("Error listing departments: %v", err)
		return nil, err
	}
	defer rows.Close()

	resp := &api.DepartmentsResponse{Departments: []api.DepartmentView{}}
	byID := map[string]int{}
	for rows.Next() {
		var (
			d        api.DepartmentView
			category sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.Color, &d.Icon, &category); err != nil {
			return nil, err
		}
		idx, ok := byID[d.ID]
		if !ok {
			idx = len(resp.Departments)
			byID[d.ID] = idx
			resp.Departments = append(resp.Departments, d)
		}
		if category.Valid {
			resp.Departments[idx].Categories = append(resp.Departments[idx].Categories, category.String)
		}
	}
	return resp, rows.Err()
}

// LoadAffinities reads the category-to-department routing table for the
// suggestion advisor.
func LoadAffinities(db *sql.DB) ([]routing.Affinity, error) {
	rows, err := db.Query(`SELECT category, department_id FROM department_categories`)
	if err != nil {
		log.Errorf("Error loading routing affinities: %v", err)
		return nil, err
	}
	defer rows.Close()

	var affinities []routing.Affinity
	for rows.Next() {
		var a routing.Affinity
		if err := rows.Scan(&a.Category, &a.DepartmentID); err != nil {
			return nil, err
		}
		affinities = append(affinities, a)
	}
	return affinities, rows.Err()
}
