package habit

type CreateHabitDTO struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Metric      Metric    `json:"metric"`
	Unit        Unit      `json:"unit"`
	Target      float64   `json:"target"`
	Frequency   Frequency `json:"frequency"`
	Schedule    Schedule  `json:"schedule"`
}
