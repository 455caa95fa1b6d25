package model

const EntityName = "haircut type"

type HaircutType struct {
	Code string
	Name string
}

// HaircutTypes is the catalog offered by the shop, in display order.
var HaircutTypes = []HaircutType{
	{Code: "taper-fade", Name: "Taper Fade"},
	{Code: "low-fade", Name: "Low Fade"},
	{Code: "high-fade", Name: "High Fade"},
	{Code: "mid-fade", Name: "Mid Fade"},
	{Code: "burst-fade", Name: "Burst Fade"},
	{Code: "mullet", Name: "Mullet"},
	{Code: "v-fade", Name: "V Fade"},
}
