package models

import "github.com/m04kA/SMC-TurnsService/internal/domain"

// SettingsResponse ответ с текущим набором правил длительностей
type SettingsResponse struct {
	BaseMinutes         map[string]int `json:"baseMinutes"`
	SelladoDeltaMinutes map[string]int `json:"selladoDeltaMinutes"`
	SpeedAdjustMinutes  map[string]int `json:"speedAdjustMinutes"`
}

// UpdateSettingsRequest запрос на сохранение набора правил.
// Отсутствующие ключи дополняются дефолтами при применении.
type UpdateSettingsRequest struct {
	BaseMinutes         map[string]int `json:"baseMinutes"`
	SelladoDeltaMinutes map[string]int `json:"selladoDeltaMinutes"`
	SpeedAdjustMinutes  map[string]int `json:"speedAdjustMinutes"`
}

// ToDomainRuleSet конвертирует запрос в domain модель
func (r *UpdateSettingsRequest) ToDomainRuleSet() domain.RuleSet {
	return domain.RuleSet{
		BaseMinutes:         r.BaseMinutes,
		SelladoDeltaMinutes: r.SelladoDeltaMinutes,
		SpeedAdjustMinutes:  r.SpeedAdjustMinutes,
	}
}

// FromDomainRuleSet конвертирует domain модель в DTO
func FromDomainRuleSet(rules domain.RuleSet) *SettingsResponse {
	return &SettingsResponse{
		BaseMinutes:         rules.BaseMinutes,
		SelladoDeltaMinutes: rules.SelladoDeltaMinutes,
		SpeedAdjustMinutes:  rules.SpeedAdjustMinutes,
	}
}
