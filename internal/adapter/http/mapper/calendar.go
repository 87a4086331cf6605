package mapper

import (
	"github.com/agenciathoth/checklist/internal/adapter/http/dto"
	"github.com/agenciathoth/checklist/internal/core/domain"
)

func ToCalendarResponse(calendar domain.CustomerCalendar) dto.CalendarResponse {
	days := make([]string, 0, len(calendar.Days))
	for _, day := range calendar.Days {
		days = append(days, domain.DayKey(day))
	}

	tasksByDay := make(map[string][]dto.TaskItem, len(calendar.TasksByDay))
	for key, tasks := range calendar.TasksByDay {
		tasksByDay[key] = ToTaskItems(tasks)
	}

	weeks := make([]dto.WeekCard, 0, len(calendar.Weeks))
	for _, week := range calendar.Weeks {
		weeks = append(weeks, dto.WeekCard{
			Start: domain.DayKey(week.Start),
			End:   domain.DayKey(week.End),
			Tasks: ToTaskItems(domain.TasksInWeek(calendar.Customer.Tasks, week)),
		})
	}

	customer := calendar.Customer
	customer.Tasks = nil // tasks are carried by the day/week buckets

	return dto.CalendarResponse{
		Customer:   ToCustomerItem(customer),
		Days:       days,
		TasksByDay: tasksByDay,
		Weeks:      weeks,
	}
}
