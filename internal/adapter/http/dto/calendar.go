package dto

type CalendarResponse struct {
	Customer   CustomerItem          `json:"customer"`
	Days       []string              `json:"days"`
	TasksByDay map[string][]TaskItem `json:"tasks_by_day"`
	Weeks      []WeekCard            `json:"weeks"`
}

type WeekCard struct {
	Start string     `json:"start"`
	End   string     `json:"end"`
	Tasks []TaskItem `json:"tasks"`
}
