package domain

import "time"

// RuleSet is the configurable set of duration rules.
// All values are whole minutes; the maps are keyed by service type name,
// speed name, and speed-adjust key respectively (matching the persisted blob).
type RuleSet struct {
	BaseMinutes         map[string]int `json:"baseMinutes"`
	SelladoDeltaMinutes map[string]int `json:"selladoDeltaMinutes"`
	SpeedAdjustMinutes  map[string]int `json:"speedAdjustMinutes"`
}

// DefaultRuleSet returns a fresh copy of the built-in duration rules
func DefaultRuleSet() RuleSet {
	return RuleSet{
		BaseMinutes: map[string]int{
			string(ServiceCorte):             30,
			string(ServiceCorteBarba):        45,
			string(ServiceCorteBarbaSellado): 60,
			string(ServiceColor):             170,
			string(ServicePermanente):        160,
		},
		SelladoDeltaMinutes: map[string]int{
			string(SpeedRapido): 15,
			string(SpeedNormal): 20,
			string(SpeedLento):  25,
		},
		SpeedAdjustMinutes: map[string]int{
			string(SpeedRapido): -10,
			string(SpeedNormal): 0,
			string(SpeedLento):  10,
			AdjustKeyLentoLargo: 15,
		},
	}
}

// Clone returns a deep copy of the rule set
func (r RuleSet) Clone() RuleSet {
	out := RuleSet{
		BaseMinutes:         make(map[string]int, len(r.BaseMinutes)),
		SelladoDeltaMinutes: make(map[string]int, len(r.SelladoDeltaMinutes)),
		SpeedAdjustMinutes:  make(map[string]int, len(r.SpeedAdjustMinutes)),
	}
	for k, v := range r.BaseMinutes {
		out.BaseMinutes[k] = v
	}
	for k, v := range r.SelladoDeltaMinutes {
		out.SelladoDeltaMinutes[k] = v
	}
	for k, v := range r.SpeedAdjustMinutes {
		out.SpeedAdjustMinutes[k] = v
	}
	return out
}

// MergeDefaults дополняет набор правил недостающими ключами из дефолтов.
// Частично сохранённый blob настроек остаётся валидным: каждый
// отсутствующий ключ берёт значение по умолчанию, ошибкой это не считается.
func (r *RuleSet) MergeDefaults() {
	defaults := DefaultRuleSet()
	if r.BaseMinutes == nil {
		r.BaseMinutes = make(map[string]int, len(defaults.BaseMinutes))
	}
	if r.SelladoDeltaMinutes == nil {
		r.SelladoDeltaMinutes = make(map[string]int, len(defaults.SelladoDeltaMinutes))
	}
	if r.SpeedAdjustMinutes == nil {
		r.SpeedAdjustMinutes = make(map[string]int, len(defaults.SpeedAdjustMinutes))
	}
	for k, v := range defaults.BaseMinutes {
		if _, ok := r.BaseMinutes[k]; !ok {
			r.BaseMinutes[k] = v
		}
	}
	for k, v := range defaults.SelladoDeltaMinutes {
		if _, ok := r.SelladoDeltaMinutes[k]; !ok {
			r.SelladoDeltaMinutes[k] = v
		}
	}
	for k, v := range defaults.SpeedAdjustMinutes {
		if _, ok := r.SpeedAdjustMinutes[k]; !ok {
			r.SpeedAdjustMinutes[k] = v
		}
	}
}

// PlannedMinutes computes the planned duration of a service in whole minutes.
// Pure function over the supplied rule set: base minutes by service type
// (Corte + Sellado is composed from the Corte base plus the sellado delta for
// the chosen speed), then a signed speed adjustment on the total. The Lento
// adjustment variant is selected by the pre-adjustment subtotal. Unrecognized
// keys degrade to the built-in defaults and finally to zero; the result never
// drops below one minute.
func PlannedMinutes(service ServiceType, speed Speed, rules RuleSet) int {
	var base int
	if service == ServiceCorteSellado {
		base = ruleValue(rules.BaseMinutes, defaultBaseMinutes, string(ServiceCorte)) +
			ruleValue(rules.SelladoDeltaMinutes, defaultSelladoDelta, string(speed))
	} else {
		base = ruleValue(rules.BaseMinutes, defaultBaseMinutes, string(service))
	}

	var adj int
	switch speed {
	case SpeedRapido, SpeedNormal:
		adj = ruleValue(rules.SpeedAdjustMinutes, defaultSpeedAdjust, string(speed))
	case SpeedLento:
		key := string(SpeedLento)
		if base > LentoLargoThresholdMinutes {
			key = AdjustKeyLentoLargo
		}
		adj = ruleValue(rules.SpeedAdjustMinutes, defaultSpeedAdjust, key)
	}

	total := base + adj
	if total < 1 {
		total = 1
	}
	return total
}

// PlannedDuration computes the planned duration of a service
func PlannedDuration(service ServiceType, speed Speed, rules RuleSet) time.Duration {
	return time.Duration(PlannedMinutes(service, speed, rules)) * time.Minute
}

// ruleValue ищет значение сначала в настроенной карте, затем в дефолтной
func ruleValue(configured map[string]int, defaults func() map[string]int, key string) int {
	if v, ok := configured[key]; ok {
		return v
	}
	if v, ok := defaults()[key]; ok {
		return v
	}
	return 0
}

func defaultBaseMinutes() map[string]int   { return DefaultRuleSet().BaseMinutes }
func defaultSelladoDelta() map[string]int  { return DefaultRuleSet().SelladoDeltaMinutes }
func defaultSpeedAdjust() map[string]int   { return DefaultRuleSet().SpeedAdjustMinutes }
