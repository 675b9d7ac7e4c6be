package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func activePass(passType string, balance ServiceBalance, expiresAt time.Time) ActivePass {
	return ActivePass{
		Type:              passType,
		ServicesRemaining: balance,
		ExpiresAt:         expiresAt,
	}
}

func TestActivePass_IsExpired(t *testing.T) {
	future := activePass("combo", ServiceBalance{DayPasses: 1}, now.AddDate(0, 0, 10))
	assert.False(t, future.IsExpired(now))

	past := activePass("combo", ServiceBalance{DayPasses: 1}, now.AddDate(0, 0, -1))
	assert.True(t, past.IsExpired(now))

	// Абонемент действует включительно до даты окончания
	today := activePass("combo", ServiceBalance{DayPasses: 1}, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.False(t, today.IsExpired(now))

	// Нулевой баланс сам по себе не означает истечение
	drained := activePass("combo", ServiceBalance{}, now.AddDate(0, 0, 10))
	assert.False(t, drained.IsExpired(now))
}

func TestEligiblePasses_SharedCoworking(t *testing.T) {
	passes := []ActivePass{
		activePass("days", ServiceBalance{DayPasses: 2}, now.AddDate(0, 0, 10)),
		activePass("hours", ServiceBalance{PrivateOfficeHours: 5}, now.AddDate(0, 0, 10)),
		activePass("expired", ServiceBalance{DayPasses: 3}, now.AddDate(0, 0, -5)),
	}

	eligible := EligiblePasses(passes, SpaceSharedCoworking, 0, now)

	require.Len(t, eligible, 1)
	assert.Equal(t, "days", eligible[0].Type)
}

func TestEligiblePasses_OfficeRequiresEnoughHours(t *testing.T) {
	passes := []ActivePass{
		activePass("small", ServiceBalance{PrivateOfficeHours: 2}, now.AddDate(0, 0, 10)),
		activePass("big", ServiceBalance{PrivateOfficeHours: 8}, now.AddDate(0, 0, 10)),
	}

	eligible := EligiblePasses(passes, SpacePrivateOffice4, 3, now)

	require.Len(t, eligible, 1)
	assert.Equal(t, "big", eligible[0].Type)
}

func TestEligiblePasses_Idempotent(t *testing.T) {
	passes := []ActivePass{
		activePass("days", ServiceBalance{DayPasses: 2}, now.AddDate(0, 0, 10)),
		activePass("hours", ServiceBalance{PrivateOfficeHours: 5}, now.AddDate(0, 0, 10)),
		activePass("expired", ServiceBalance{DayPasses: 3}, now.AddDate(0, 0, -5)),
	}
	original := make([]ActivePass, len(passes))
	copy(original, passes)

	first := EligiblePasses(passes, SpaceSharedCoworking, 0, now)
	second := EligiblePasses(passes, SpaceSharedCoworking, 0, now)

	// Повторный вызов с теми же аргументами дает тот же результат
	assert.Equal(t, first, second)
	// Исходный список не меняется
	assert.Equal(t, original, passes)
}

func TestDebitPasses_SharedDebitsOneDay(t *testing.T) {
	passes := []ActivePass{
		activePass("days", ServiceBalance{DayPasses: 3, MeetingRoomHours: 2}, now.AddDate(0, 0, 10)),
	}

	updated := DebitPasses(passes, "days", SpaceSharedCoworking, 0)

	assert.Equal(t, 2, updated[0].ServicesRemaining.DayPasses)
	// Остальные квоты не затрагиваются
	assert.Equal(t, 2, updated[0].ServicesRemaining.MeetingRoomHours)
	// Исходный список не меняется
	assert.Equal(t, 3, passes[0].ServicesRemaining.DayPasses)
}

func TestDebitPasses_OfficeDebitsFullDuration(t *testing.T) {
	passes := []ActivePass{
		activePass("hours", ServiceBalance{PrivateOfficeHours: 10}, now.AddDate(0, 0, 10)),
	}

	updated := DebitPasses(passes, "hours", SpacePrivateOffice4, 4)

	assert.Equal(t, 6, updated[0].ServicesRemaining.PrivateOfficeHours)
}

func TestDebitPasses_OnlyFirstMatchingPass(t *testing.T) {
	passes := []ActivePass{
		activePass("days", ServiceBalance{DayPasses: 2}, now.AddDate(0, 0, 10)),
		activePass("days", ServiceBalance{DayPasses: 5}, now.AddDate(0, 0, 20)),
	}

	updated := DebitPasses(passes, "days", SpaceSharedCoworking, 0)

	assert.Equal(t, 1, updated[0].ServicesRemaining.DayPasses)
	assert.Equal(t, 5, updated[1].ServicesRemaining.DayPasses)
}

func TestDebitPasses_NeverGoesBelowZero(t *testing.T) {
	passes := []ActivePass{
		activePass("hours", ServiceBalance{PrivateOfficeHours: 2}, now.AddDate(0, 0, 10)),
	}

	updated := DebitPasses(passes, "hours", SpacePrivateOffice4, 5)

	assert.Equal(t, 0, updated[0].ServicesRemaining.PrivateOfficeHours)
}

func TestResidualAfterUpfrontSchedule(t *testing.T) {
	pass := &Pass{
		Type: "combo",
		ServicesIncluded: ServiceBalance{
			DayPasses:          5,
			PrivateOfficeHours: 10,
			MeetingRoomHours:   4,
		},
	}

	residual := ResidualAfterUpfrontSchedule(pass, 2, 6)

	assert.Equal(t, 3, residual.DayPasses)
	assert.Equal(t, 4, residual.PrivateOfficeHours)
	// Часы переговорной при покупке не планируются
	assert.Equal(t, 4, residual.MeetingRoomHours)
}

func TestResidualAfterUpfrontSchedule_FullyConsumed(t *testing.T) {
	pass := &Pass{
		Type:             "days",
		ServicesIncluded: ServiceBalance{DayPasses: 3},
	}

	residual := ResidualAfterUpfrontSchedule(pass, 3, 0)

	assert.True(t, residual.IsZero())
}

func TestPruneExpiredPasses(t *testing.T) {
	passes := []ActivePass{
		activePass("live", ServiceBalance{DayPasses: 1}, now.AddDate(0, 0, 5)),
		activePass("dead", ServiceBalance{DayPasses: 9}, now.AddDate(0, 0, -1)),
		activePass("drained", ServiceBalance{}, now.AddDate(0, 0, 5)),
	}

	kept := PruneExpiredPasses(passes, now)

	require.Len(t, kept, 2)
	assert.Equal(t, "live", kept[0].Type)
	// Израсходованный, но не истекший абонемент сохраняется
	assert.Equal(t, "drained", kept[1].Type)
}
