package domain

// ServiceType represents one of the fixed barber services
type ServiceType string

const (
	ServiceCorte             ServiceType = "Corte"
	ServiceCorteBarba        ServiceType = "Corte + Barba"
	ServiceCorteSellado      ServiceType = "Corte + Sellado"
	ServiceCorteBarbaSellado ServiceType = "Corte + Barba + Sellado"
	ServiceColor             ServiceType = "Color"
	ServicePermanente        ServiceType = "Permanente"
)

// Speed represents the work speed modifier applied to a service
type Speed string

const (
	SpeedRapido Speed = "Rápido"
	SpeedNormal Speed = "Normal"
	SpeedLento  Speed = "Lento"
)

// ServiceTypes список всех услуг в порядке отображения
var ServiceTypes = []ServiceType{
	ServiceCorte,
	ServiceCorteBarba,
	ServiceCorteSellado,
	ServiceCorteBarbaSellado,
	ServiceColor,
	ServicePermanente,
}

// Speeds список всех скоростей работы
var Speeds = []Speed{
	SpeedRapido,
	SpeedNormal,
	SpeedLento,
}

// IsValid returns true if the service type belongs to the fixed set
func (s ServiceType) IsValid() bool {
	for _, known := range ServiceTypes {
		if s == known {
			return true
		}
	}
	return false
}

// IsValid returns true if the speed belongs to the fixed set
func (s Speed) IsValid() bool {
	for _, known := range Speeds {
		if s == known {
			return true
		}
	}
	return false
}
