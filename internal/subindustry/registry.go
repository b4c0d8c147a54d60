package subindustry

import "github.com/quotelens/interview-engine/internal/industry"

// #region registry

// Registry maps a parent industry key to its registered sub-industries. Only
// parents present here support the second classification pass.
type Registry map[string][]industry.Entry

// For returns the sub-industries registered under parentKey, after
// normalization. Nil when the parent has none.
func (r Registry) For(parentKey string) []industry.Entry {
	return r[industry.NormalizeKey(parentKey)]
}

// DefaultRegistry returns the built-in sub-industry lists for the parents
// that have a meaningful second pass.
func DefaultRegistry() Registry {
	return Registry{
		"auto_detailing": {
			{Key: "mobile_detailing", Label: "Mobile Detailing"},
			{Key: "ceramic_coating", Label: "Ceramic Coating"},
			{Key: "paint_correction", Label: "Paint Correction"},
			{Key: "window_tinting", Label: "Window Tinting"},
		},
		"auto_repair": {
			{Key: "general_repair", Label: "General Repair"},
			{Key: "transmission_repair", Label: "Transmission Repair"},
			{Key: "brake_and_suspension", Label: "Brake and Suspension"},
			{Key: "engine_diagnostics", Label: "Engine Diagnostics"},
		},
		"cleaning_services": {
			{Key: "residential_cleaning", Label: "Residential Cleaning"},
			{Key: "commercial_janitorial", Label: "Commercial Janitorial"},
			{Key: "carpet_cleaning", Label: "Carpet Cleaning"},
			{Key: "pressure_washing", Label: "Pressure Washing"},
		},
		"landscaping": {
			{Key: "lawn_maintenance", Label: "Lawn Maintenance"},
			{Key: "hardscaping", Label: "Hardscaping"},
			{Key: "tree_service", Label: "Tree Service"},
		},
		"hvac": {
			{Key: "residential_hvac", Label: "Residential HVAC"},
			{Key: "commercial_hvac", Label: "Commercial HVAC"},
			{Key: "refrigeration", Label: "Refrigeration"},
		},
	}
}

// #endregion
