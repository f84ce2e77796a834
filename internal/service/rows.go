package service

import (
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/models/response"
)

type blankable interface {
	IsBlank() bool
}

// appendRow adds one empty row at the end
func appendRow[T any](rows []T) []T {
	var zero T
	return append(rows, zero)
}

// removeRow removes the row with the 1-based number. A table always keeps at least one
// row, so removing the last remaining row (or an unknown number) leaves rows untouched.
func removeRow[T any](rows []T, no int) ([]T, bool) {
	if len(rows) <= 1 || no < 1 || no > len(rows) {
		return rows, false
	}
	out := make([]T, 0, len(rows)-1)
	out = append(out, rows[:no-1]...)
	out = append(out, rows[no:]...)
	return out, true
}

// numberRows renumbers rows 1..n; the remove control is shown only when more than one row exists
func numberRows[T any](rows []T) []response.NumberedRow[T] {
	out := make([]response.NumberedRow[T], len(rows))
	for i, row := range rows {
		out[i] = response.NumberedRow[T]{
			No:        i + 1,
			Removable: len(rows) > 1,
			Row:       row,
		}
	}
	return out
}

// compactRows drops completely blank rows
func compactRows[T blankable](rows []T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if !row.IsBlank() {
			out = append(out, row)
		}
	}
	return out
}

func toHouseholdMembers(rows []models.HouseholdRow) []models.HouseholdMember {
	rows = compactRows(rows)
	out := make([]models.HouseholdMember, len(rows))
	for i, row := range rows {
		out[i] = models.HouseholdMember{
			Position:     i + 1,
			Name:         row.Name,
			Relationship: row.Relationship,
			Phone:        row.Phone,
		}
	}
	return out
}

func toVehicles(rows []models.VehicleRow) []models.Vehicle {
	rows = compactRows(rows)
	out := make([]models.Vehicle, len(rows))
	for i, row := range rows {
		out[i] = models.Vehicle{
			Position:      i + 1,
			Model:         row.Model,
			PlateNumber:   row.PlateNumber,
			StickerNumber: row.StickerNumber,
		}
	}
	return out
}
