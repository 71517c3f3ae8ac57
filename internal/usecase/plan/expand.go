package plan

import (
	"context"
	"time"

	"github.com/google/uuid"

	apptdomain "github.com/BruksfildServices01/barber-manager/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-manager/internal/domain/plan"
	"github.com/BruksfildServices01/barber-manager/internal/httperr"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/timezone"
)

// Marcador gravado na observação dos agendamentos gerados por plano,
// além de origin=plan e do vínculo monthly_plan_id.
const PlanNoteTag = "plano mensal"

type ScheduleEntryInput struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Time      string `json:"time" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
}

func buildEntries(inputs []ScheduleEntryInput) []models.PlanScheduleEntry {
	entries := make([]models.PlanScheduleEntry, 0, len(inputs))
	for i, in := range inputs {
		entries = append(entries, models.PlanScheduleEntry{
			Weekday:   in.Weekday,
			Time:      in.Time,
			ServiceID: in.ServiceID,
			Position:  i,
		})
	}
	return entries
}

// expandSchedule materializa os horários semanais nas datas escolhidas
// pelo operador para o ciclo. Cada data precisa casar com o dia da
// semana de alguma entry; o preço por visita rateia a mensalidade.
func expandSchedule(
	ctx context.Context,
	repo apptdomain.Repository,
	shop *models.Barbershop,
	barberID uint,
	clientID uint,
	entries []models.PlanScheduleEntry,
	visitDates []string,
	monthlyPrice float64,
) ([]models.Appointment, error) {

	loc := timezone.Location(shop.Timezone)
	now := timezone.NowIn(shop.Timezone)
	pricePerVisit := domain.PricePerVisit(monthlyPrice, len(entries))

	services := make(map[uint]*models.Service)

	generated := make([]models.Appointment, 0, len(visitDates))
	for _, dateStr := range visitDates {
		date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_visit_date")
		}

		matched := domain.MatchEntries(entries, date)
		if len(matched) == 0 {
			return nil, httperr.ErrBusiness("invalid_visit_date")
		}

		// Cada entry do dia vira uma visita: um plano com dois horários
		// na mesma terça gera dois agendamentos nessa data.
		for _, entry := range matched {
			start, err := time.ParseInLocation(
				"2006-01-02 15:04",
				dateStr+" "+entry.Time,
				loc,
			)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_date_or_time")
			}

			window := apptdomain.WindowForDate(shop, start)
			if err := window.ValidateStart(start); err != nil {
				return nil, err
			}
			if err := apptdomain.ValidateNotPast(start, now); err != nil {
				return nil, err
			}

			service, ok := services[entry.ServiceID]
			if !ok {
				service, err = repo.GetService(ctx, shop.ID, entry.ServiceID)
				if err != nil {
					return nil, httperr.ErrBusiness("service_not_found")
				}
				services[entry.ServiceID] = service
			}

			cid := clientID
			generated = append(generated, models.Appointment{
				Reference:    uuid.NewString(),
				BarbershopID: shop.ID,
				BarberID:     barberID,
				ClientID:     &cid,
				ServiceID:    service.ID,
				StartTime:    start,
				EndTime:      start.Add(time.Duration(service.DurationMin) * time.Minute),
				Price:        pricePerVisit,
				Status:       string(apptdomain.InitialStatus()),
				Origin:       apptdomain.OriginPlan,
				Notes:        PlanNoteTag,
			})
		}
	}

	return generated, nil
}
