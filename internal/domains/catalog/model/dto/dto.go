package dto

import "chiclon/internal/domains/catalog/model"

type HaircutTypeResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type HaircutTypesResponse struct {
	HaircutTypes []HaircutTypeResponse `json:"haircutTypes"`
}

func (r *HaircutTypesResponse) FromModels(models []model.HaircutType) {
	r.HaircutTypes = make([]HaircutTypeResponse, len(models))
	for i, mod := range models {
		r.HaircutTypes[i] = HaircutTypeResponse{Code: mod.Code, Name: mod.Name}
	}
}
