package site

// Authority is the development authority issuing the permission.
// It is recorded for audit but carries no numeric weight in the
// current GDCR 2017 rule set.
type Authority string

const (
	AuthorityAUDA Authority = "AUDA"
	AuthorityAMC  Authority = "AMC"
)

// AllAuthorities lists every recognised authority.
var AllAuthorities = []Authority{AuthorityAUDA, AuthorityAMC}

// Valid reports whether a is a recognised authority.
func (a Authority) Valid() bool {
	for _, v := range AllAuthorities {
		if a == v {
			return true
		}
	}
	return false
}

// Zone is the land-use classification. It is the primary key into the
// GDCR zone rule table.
type Zone string

const (
	ZoneR1         Zone = "R1"
	ZoneR2         Zone = "R2"
	ZoneCommercial Zone = "Commercial"
	ZoneIndustrial Zone = "Industrial"
	ZoneMixedUse   Zone = "Mixed-Use"
)

// AllZones lists every zone the rule table must cover.
var AllZones = []Zone{ZoneR1, ZoneR2, ZoneCommercial, ZoneIndustrial, ZoneMixedUse}

// Valid reports whether z is a recognised zone.
func (z Zone) Valid() bool {
	for _, v := range AllZones {
		if z == v {
			return true
		}
	}
	return false
}

// IntendedUse is the building use category. It selects the parking
// norm and filters the building-norms catalog; it does not affect
// FSI, height, setbacks, or ground coverage.
type IntendedUse string

const (
	UseResidentialSingle     IntendedUse = "Residential-Single"
	UseResidentialMulti      IntendedUse = "Residential-Multi"
	UseCommercialOffice      IntendedUse = "Commercial-Office"
	UseCommercialRetail      IntendedUse = "Commercial-Retail"
	UseCommercialHospitality IntendedUse = "Commercial-Hospitality"
	UseMixedUse              IntendedUse = "Mixed-Use"
)

// AllUses lists every use category the parking norms must cover.
var AllUses = []IntendedUse{
	UseResidentialSingle,
	UseResidentialMulti,
	UseCommercialOffice,
	UseCommercialRetail,
	UseCommercialHospitality,
	UseMixedUse,
}

// Valid reports whether u is a recognised use category.
func (u IntendedUse) Valid() bool {
	for _, v := range AllUses {
		if u == v {
			return true
		}
	}
	return false
}

// Location is a WGS84 coordinate pair. Descriptive only.
type Location struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

// PlotDimensions describes the plot rectangle in meters. Area must
// equal Length × Width; the engine trusts the caller and never
// re-derives it.
type PlotDimensions struct {
	Length float64 `yaml:"length" json:"length"`
	Width  float64 `yaml:"width" json:"width"`
	Area   float64 `yaml:"area" json:"area"`
}

// SpecialConditions flags overlay designations on the plot. Recorded
// and displayed, but not consumed by any current numeric rule.
type SpecialConditions struct {
	Heritage bool `yaml:"heritage" json:"heritage"`
	TOZ      bool `yaml:"toz" json:"toz"`
	SEZ      bool `yaml:"sez" json:"sez"`
}

// Description is the full site input to the regulation calculator.
type Description struct {
	ProjectName        string            `yaml:"project_name" json:"projectName"`
	Address            string            `yaml:"address" json:"address"`
	Location           Location          `yaml:"location" json:"location"`
	Authority          Authority         `yaml:"authority" json:"authority"`
	Zone               Zone              `yaml:"zone" json:"zone"`
	PlotDimensions     PlotDimensions    `yaml:"plot_dimensions" json:"plotDimensions"`
	IsCornerPlot       bool              `yaml:"is_corner_plot" json:"isCornerPlot"`
	RoadWidthPrimary   float64           `yaml:"road_width_primary" json:"roadWidthPrimary"`
	RoadWidthSecondary float64           `yaml:"road_width_secondary,omitempty" json:"roadWidthSecondary,omitempty"`
	IntendedUse        IntendedUse       `yaml:"intended_use" json:"intendedUse"`
	SpecialConditions  SpecialConditions `yaml:"special_conditions" json:"specialConditions"`
}
