package visit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// schedule builds, on the day after now:
//
//	08:00 doctor 1 (Cardiology), free
//	09:00 doctor 1, booked by 42
//	10:00 doctor 2 (Dermatology), free
//	23:45 doctor 3 (Cardiology), free
//
// plus a free cardiology visit at 00:00 two days after now and an
// unassigned visit at 12:00 on the first day.
func schedule(t *testing.T) (*memory.Store, time.Time) {
	t.Helper()
	s := newSeededStore()
	day := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)

	// Created out of order on purpose.
	v4 := mustCreate(t, s, day.Add(23*time.Hour+45*time.Minute), 15*time.Minute)
	v1 := mustCreate(t, s, day.Add(8*time.Hour), 30*time.Minute)
	v3 := mustCreate(t, s, day.Add(10*time.Hour), 30*time.Minute)
	v2 := mustCreate(t, s, day.Add(9*time.Hour), 30*time.Minute)
	v5 := mustCreate(t, s, day.AddDate(0, 0, 1), 15*time.Minute)
	mustCreate(t, s, day.Add(12*time.Hour), 15*time.Minute)

	mustAssign(t, s, v1.ID, 1, 0)
	mustAssign(t, s, v2.ID, 1, 42)
	mustAssign(t, s, v3.ID, 2, 0)
	mustAssign(t, s, v4.ID, 3, 0)
	mustAssign(t, s, v5.ID, 1, 0)

	return s, day
}

func hours(visits []models.Visit) []string {
	out := make([]string, 0, len(visits))
	for _, v := range visits {
		out = append(out, v.StartTime.Format("01-02 15:04"))
	}
	return out
}

func TestListVisitsForPatient(t *testing.T) {
	s, day := schedule(t)
	uc := NewListVisitsForPatient(s, s)

	visits, err := uc.Execute(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []string{day.Add(9 * time.Hour).Format("01-02 15:04")}, hours(visits))

	visits, err = uc.Execute(context.Background(), 43)
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestListVisitsForPatient_UnknownPatient(t *testing.T) {
	s := memory.NewStore()

	_, err := NewListVisitsForPatient(s, s).Execute(context.Background(), 99)

	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.EqualError(t, err, "patient not found")
}

func TestListVisitsForDoctor(t *testing.T) {
	s, day := schedule(t)

	all, err := NewListVisitsForDoctor(s, s).Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{
		day.Add(8 * time.Hour).Format("01-02 15:04"),
		day.Add(9 * time.Hour).Format("01-02 15:04"),
		day.AddDate(0, 0, 1).Format("01-02 15:04"),
	}, hours(all))

	free, err := NewListAvailableForDoctor(s, s).Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, free, 2)
	for _, v := range free {
		assert.Nil(t, v.PatientID)
	}

	_, err = NewListVisitsForDoctor(s, s).Execute(context.Background(), 77)
	assert.True(t, httperr.IsBusiness(err, domain.CodeDoctorNotFound))

	_, err = NewListAvailableForDoctor(s, s).Execute(context.Background(), 77)
	assert.True(t, httperr.IsBusiness(err, domain.CodeDoctorNotFound))
}

func TestListAvailableBySpecializationAndDate(t *testing.T) {
	s, day := schedule(t)
	uc := NewListAvailableBySpecializationAndDate(s, s, time.UTC)

	visits, err := uc.Execute(context.Background(), "Cardiology", day.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{
		day.Add(8 * time.Hour).Format("01-02 15:04"),
		day.Add(23*time.Hour + 45*time.Minute).Format("01-02 15:04"),
	}, hours(visits))

	visits, err = uc.Execute(context.Background(), "Dermatology", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, visits, "known specialization with nothing scheduled is an empty list")
}

func TestListAvailableBySpecializationAndDate_UnknownSpecialization(t *testing.T) {
	s, day := schedule(t)

	visits, err := NewListAvailableBySpecializationAndDate(s, s, time.UTC).Execute(context.Background(), "Neurology", day)

	assert.Nil(t, visits)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.EqualError(t, err, "no doctors found with given specialization")
}

func TestListBySpecializationAndDateRange(t *testing.T) {
	s, day := schedule(t)
	uc := NewListBySpecializationAndDateRange(s, s, time.UTC)

	visits, err := uc.Execute(context.Background(), "Cardiology", day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{
		day.Add(8 * time.Hour).Format("01-02 15:04"),
		day.Add(23*time.Hour + 45*time.Minute).Format("01-02 15:04"),
		day.AddDate(0, 0, 1).Format("01-02 15:04"),
	}, hours(visits))

	_, err = uc.Execute(context.Background(), "Cardiology", day.AddDate(0, 0, 1), day)
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidDateRange))

	_, err = uc.Execute(context.Background(), "Oncology", day, day)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNoDoctorsForSpecialization))
}

func TestListAvailableByDateRange(t *testing.T) {
	s, day := schedule(t)
	uc := NewListAvailableByDateRange(s, time.UTC)

	visits, err := uc.Execute(context.Background(), day, day)
	require.NoError(t, err)
	assert.Equal(t, []string{
		day.Add(8 * time.Hour).Format("01-02 15:04"),
		day.Add(10 * time.Hour).Format("01-02 15:04"),
		day.Add(12 * time.Hour).Format("01-02 15:04"),
		day.Add(23*time.Hour + 45*time.Minute).Format("01-02 15:04"),
	}, hours(visits))

	visits, err = uc.Execute(context.Background(), day.AddDate(0, 0, 5), day.AddDate(0, 0, 6))
	require.NoError(t, err)
	assert.Empty(t, visits)
}

func TestListAvailableByDateRange_ClinicTimezone(t *testing.T) {
	s, day := schedule(t)

	// In UTC+2 the clinic day of `day` spans 22:00 UTC the evening before
	// to 21:59 UTC, which drops the 23:45 UTC visit.
	loc := time.FixedZone("CEST", 2*3600)
	local := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)

	visits, err := NewListAvailableByDateRange(s, loc).Execute(context.Background(), local, local)
	require.NoError(t, err)
	assert.Len(t, visits, 3)
}
