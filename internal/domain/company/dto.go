package company

import (
	"github.com/worknai009/worknai-HRMS-sub000/internal/pkg/validator"
)

type LocationInput struct {
	Name         string   `json:"name"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	RadiusMeters *float64 `json:"radius_meters"`
}

type ConfigureLocationsRequest struct {
	Locations []LocationInput `json:"locations"`
}

func (r *ConfigureLocationsRequest) Validate() error {
	var errs validator.ValidationErrors

	for i, loc := range r.Locations {
		field := "locations[" + validator.Itoa(i) + "]"
		if validator.IsEmpty(loc.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".name",
				Message: "name is required",
			})
		}
		if !validator.IsValidLatitude(loc.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(loc.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
		if loc.RadiusMeters != nil && *loc.RadiusMeters <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".radius_meters",
				Message: "radius_meters must be greater than zero",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LocationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}
