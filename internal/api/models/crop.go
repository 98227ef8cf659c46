package models

// Crop is the wire representation of a crop's requirements.
type Crop struct {
	Key                       string  `json:"key,omitempty"`
	ScientificName            string  `json:"scientificName"`
	Type                      string  `json:"type"`
	PlantingSeason            string  `json:"plantingSeason"`
	GrowthDurationDays        int     `json:"growthDurationDays"`
	ExpectedYieldKgPerHectare float64 `json:"expectedYieldKgPerHectare"`
	PreferredSoil             string  `json:"preferredSoil"`
	MinTemperature            string  `json:"minTemperature"`
	CommonPestsDiseases       string  `json:"commonPestsDiseases"`
	Notes                     string  `json:"notes"`
	Source                    string  `json:"source"`
}

// CropMatch is the response for a resolved crop name.
type CropMatch struct {
	Query     string `json:"query"`
	Key       string `json:"key"`
	MatchedBy string `json:"matchedBy"`
	Crop      Crop   `json:"crop"`
}

// CropList is a list of crops.
// Crops from filtered queries carry no key.
type CropList struct {
	Items []Crop `json:"items"`
	Count int    `json:"count"`
}

// CropTypes lists the distinct crop types.
type CropTypes struct {
	Items []string `json:"items"`
}

// CropNameSearch is the response for a crop name search.
type CropNameSearch struct {
	Query string   `json:"query"`
	Items []string `json:"items"`
}
