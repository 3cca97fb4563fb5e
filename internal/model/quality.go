package model

type Quality struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type QualityItem struct {
	Quality Quality `json:"quality"`
	Allowed bool    `json:"allowed"`
}

type QualityProfile struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Cutoff         int           `json:"cutoff"`
	Items          []QualityItem `json:"items"`
	UpgradeAllowed bool          `json:"upgradeAllowed"`
}

type QualityDefinition struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Weight        int     `json:"weight"`
	MinSize       float64 `json:"minSize"`
	MaxSize       float64 `json:"maxSize"`
	PreferredSize float64 `json:"preferredSize"`
}
