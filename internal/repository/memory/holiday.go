package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/holiday"
)

type HolidayRepositoryMemory struct {
	mu       sync.Mutex
	holidays map[string]holiday.Holiday // keyed by companyID|date
}

func NewHolidayRepository() *HolidayRepositoryMemory {
	return &HolidayRepositoryMemory{holidays: make(map[string]holiday.Holiday)}
}

func (r *HolidayRepositoryMemory) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := h.CompanyID + "|" + h.Date
	if _, ok := r.holidays[key]; ok {
		return holiday.Holiday{}, holiday.ErrHolidayExists
	}
	h.CreatedAt = time.Now().UTC()
	r.holidays[key] = h
	return h, nil
}

func (r *HolidayRepositoryMemory) ListInRange(_ context.Context, companyID, startDate, endDate string) ([]holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []holiday.Holiday
	for _, h := range r.holidays {
		if h.CompanyID == companyID && startDate <= h.Date && h.Date <= endDate {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
