package holiday

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worknai009/worknai-HRMS-sub000/internal/domain/holiday"
	"github.com/worknai009/worknai-HRMS-sub000/internal/repository/memory"
)

func authContext(t *testing.T, companyID string) context.Context {
	t.Helper()

	auth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := auth.Encode(map[string]interface{}{
		"user_id":     "user-1",
		"employee_id": "employee-1",
		"company_id":  companyID,
		"role":        "hr",
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestMark(t *testing.T) {
	svc := NewHolidayService(memory.NewHolidayRepository())
	ctx := authContext(t, "company-1")

	resp, err := svc.Mark(ctx, holiday.MarkHolidayRequest{Date: "2026-05-01", Reason: "labour day"})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", resp.Date)
	assert.NotEmpty(t, resp.ID)
}

func TestMarkDuplicateDate(t *testing.T) {
	svc := NewHolidayService(memory.NewHolidayRepository())
	ctx := authContext(t, "company-1")

	_, err := svc.Mark(ctx, holiday.MarkHolidayRequest{Date: "2026-05-01", Reason: "labour day"})
	require.NoError(t, err)

	_, err = svc.Mark(ctx, holiday.MarkHolidayRequest{Date: "2026-05-01", Reason: "again"})
	assert.ErrorIs(t, err, holiday.ErrHolidayExists)
}

func TestMarkIsCompanyScoped(t *testing.T) {
	repo := memory.NewHolidayRepository()
	svc := NewHolidayService(repo)

	_, err := svc.Mark(authContext(t, "company-1"), holiday.MarkHolidayRequest{Date: "2026-05-01", Reason: "labour day"})
	require.NoError(t, err)

	// The same date in another company is a different holiday.
	_, err = svc.Mark(authContext(t, "company-2"), holiday.MarkHolidayRequest{Date: "2026-05-01", Reason: "labour day"})
	assert.NoError(t, err)
}

func TestListInRange(t *testing.T) {
	svc := NewHolidayService(memory.NewHolidayRepository())
	ctx := authContext(t, "company-1")

	for _, h := range []holiday.MarkHolidayRequest{
		{Date: "2026-05-01", Reason: "labour day"},
		{Date: "2026-06-01", Reason: "pancasila day"},
		{Date: "2026-12-25", Reason: "christmas"},
	} {
		_, err := svc.Mark(ctx, h)
		require.NoError(t, err)
	}

	out, err := svc.ListInRange(ctx, "2026-05-01", "2026-06-30")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2026-05-01", out[0].Date)
	assert.Equal(t, "2026-06-01", out[1].Date)
}
