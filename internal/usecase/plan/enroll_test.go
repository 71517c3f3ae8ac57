package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptdomain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
)

// terças 10:00 (corte) e sextas 15:00 (barba), datas em 2030
func premiumInput() EnrollPlanInput {
	return EnrollPlanInput{
		BarbershopID: 1,
		BarberID:     1,
		ClientID:     100,
		Tier:         "premium",
		MonthlyPrice: 100,
		StartDate:    "2030-06-01",
		Entries: []ScheduleEntryInput{
			{Weekday: 2, Time: "10:00", ServiceID: 10},
			{Weekday: 5, Time: "15:00", ServiceID: 11},
		},
		VisitDates: []string{"2030-06-11", "2030-06-14", "2030-06-18", "2030-06-21"},
	}
}

func TestEnrollPlan(t *testing.T) {
	plans := newFakePlanRepo()
	appts := newFakeApptRepo()
	uc := NewEnrollPlan(plans, appts, nil)

	p, err := uc.Execute(context.Background(), premiumInput())
	require.NoError(t, err)

	assert.Equal(t, "premium", p.Tier)
	assert.Equal(t, string(domain.StatusActive), p.Status)
	assert.Equal(t, string(domain.PaymentPending), p.PaymentStatus)
	require.NotNil(t, p.NextPaymentDate)
	assert.Equal(t, p.StartDate, *p.NextPaymentDate)
	require.Len(t, p.ScheduleEntries, 2)
	assert.Equal(t, 0, p.ScheduleEntries[0].Position)
	assert.Equal(t, 1, p.ScheduleEntries[1].Position)

	// 4 datas → 4 agendamentos gerados, rateio da mensalidade por entry
	require.Len(t, plans.generated, 4)
	for _, ap := range plans.generated {
		assert.Equal(t, 50.0, ap.Price) // 100 / 2 horários semanais
		assert.Equal(t, apptdomain.OriginPlan, ap.Origin)
		assert.Equal(t, PlanNoteTag, ap.Notes)
		require.NotNil(t, ap.MonthlyPlanID)
		assert.Equal(t, p.ID, *ap.MonthlyPlanID)
		assert.NotEmpty(t, ap.Reference)
	}

	// terça usa o corte das 10:00; sexta, a barba das 15:00
	first := plans.generated[0]
	assert.Equal(t, uint(10), first.ServiceID)
	assert.Equal(t, 10, first.StartTime.Hour())
	assert.Equal(t, 45.0, first.EndTime.Sub(first.StartTime).Minutes())

	second := plans.generated[1]
	assert.Equal(t, uint(11), second.ServiceID)
	assert.Equal(t, 15, second.StartTime.Hour())
}

func TestEnrollPlanTwoEntriesSameWeekday(t *testing.T) {
	plans := newFakePlanRepo()
	appts := newFakeApptRepo()
	uc := NewEnrollPlan(plans, appts, nil)

	// premium com duas visitas na mesma terça: 10:00 e 15:00
	in := premiumInput()
	in.Entries = []ScheduleEntryInput{
		{Weekday: 2, Time: "10:00", ServiceID: 10},
		{Weekday: 2, Time: "15:00", ServiceID: 11},
	}
	in.VisitDates = []string{"2030-06-11", "2030-06-18"}

	p, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// cada terça gera os dois horários do dia
	require.Len(t, plans.generated, 4)
	hours := make(map[int]int)
	for _, ap := range plans.generated {
		hours[ap.StartTime.Hour()]++
		assert.Equal(t, 50.0, ap.Price)
		require.NotNil(t, ap.MonthlyPlanID)
		assert.Equal(t, p.ID, *ap.MonthlyPlanID)
	}
	assert.Equal(t, 2, hours[10])
	assert.Equal(t, 2, hours[15])
}

func TestEnrollPlanInvalidTier(t *testing.T) {
	uc := NewEnrollPlan(newFakePlanRepo(), newFakeApptRepo(), nil)

	in := premiumInput()
	in.Tier = "vip"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_tier"))
}

func TestEnrollPlanCapacity(t *testing.T) {
	uc := NewEnrollPlan(newFakePlanRepo(), newFakeApptRepo(), nil)

	// básico aceita no máximo 2 horários
	in := premiumInput()
	in.Tier = "basico"
	in.Entries = append(in.Entries, ScheduleEntryInput{Weekday: 3, Time: "11:00", ServiceID: 10})
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "capacity_exceeded"))

	// premium exige pelo menos 2
	in = premiumInput()
	in.Entries = in.Entries[:1]
	in.VisitDates = []string{"2030-06-11", "2030-06-18"}
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "capacity_exceeded"))
}

func TestEnrollPlanDuplicateSlot(t *testing.T) {
	uc := NewEnrollPlan(newFakePlanRepo(), newFakeApptRepo(), nil)

	in := premiumInput()
	in.Entries = []ScheduleEntryInput{
		{Weekday: 2, Time: "10:00", ServiceID: 10},
		{Weekday: 2, Time: "10:00", ServiceID: 11},
	}
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "duplicate_slot"))
}

func TestEnrollPlanScheduleConflict(t *testing.T) {
	plans := newFakePlanRepo()
	appts := newFakeApptRepo()
	uc := NewEnrollPlan(plans, appts, nil)

	_, err := uc.Execute(context.Background(), premiumInput())
	require.NoError(t, err)

	// segundo plano disputando terça 10:00
	in := premiumInput()
	in.Entries = []ScheduleEntryInput{
		{Weekday: 2, Time: "10:00", ServiceID: 10},
		{Weekday: 4, Time: "09:00", ServiceID: 11},
	}
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "schedule_conflict"))
}

func TestEnrollPlanVisitDateMustMatchWeekday(t *testing.T) {
	uc := NewEnrollPlan(newFakePlanRepo(), newFakeApptRepo(), nil)

	in := premiumInput()
	// 2030-06-12 é quarta: nenhuma entry casa
	in.VisitDates = []string{"2030-06-12"}
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_visit_date"))
}

func TestEnrollPlanVisitOutsideBusinessHours(t *testing.T) {
	uc := NewEnrollPlan(newFakePlanRepo(), newFakeApptRepo(), nil)

	in := premiumInput()
	in.Entries[0].Time = "21:00"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_business_hours"))
}

func TestEnrollPlanVisitInPast(t *testing.T) {
	uc := NewEnrollPlan(newFakePlanRepo(), newFakeApptRepo(), nil)

	in := premiumInput()
	in.VisitDates = []string{"2020-06-09"} // terça de 2020
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "in_past"))
}
