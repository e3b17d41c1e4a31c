package visit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// now is a Monday morning, a few minutes past a quarter-hour mark.
var now = time.Date(2030, 4, 1, 9, 7, 0, 0, time.UTC)

func fixedClock() timezone.Clock {
	return timezone.FixedClock(now)
}

func nextHour() time.Time {
	return now.Truncate(time.Hour).Add(time.Hour)
}

func newSeededStore() *memory.Store {
	s := memory.NewStore()
	s.AddPatient(models.Patient{ID: 42, FirstName: "Anna", LastName: "Nowak"})
	s.AddPatient(models.Patient{ID: 43, FirstName: "Jan", LastName: "Kowalski"})
	s.AddDoctor(models.Doctor{ID: 1, FirstName: "Ewa", LastName: "Lis", Specialization: "Cardiology"})
	s.AddDoctor(models.Doctor{ID: 2, FirstName: "Adam", LastName: "Wolf", Specialization: "Dermatology"})
	s.AddDoctor(models.Doctor{ID: 3, FirstName: "Ola", LastName: "Sowa", Specialization: "Cardiology"})
	return s
}

func mustCreate(t *testing.T, s *memory.Store, start time.Time, length time.Duration) *models.Visit {
	t.Helper()
	v, err := NewCreateVisit(s, fixedClock(), time.UTC, zap.NewNop()).Execute(context.Background(), CreateVisitInput{
		StartTime: start,
		EndTime:   start.Add(length),
	})
	require.NoError(t, err)
	return v
}

func mustAssign(t *testing.T, s *memory.Store, visitID uint, doctorID, patientID uint) {
	t.Helper()
	ctx := context.Background()
	if doctorID != 0 {
		ok, err := s.AssignDoctor(ctx, visitID, doctorID)
		require.NoError(t, err)
		require.True(t, ok)
	}
	if patientID != 0 {
		ok, err := s.AssignPatient(ctx, visitID, patientID)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

// racingStore wraps the memory store and lets a test override single
// methods to simulate what a concurrent writer would do between the
// read and the write of a use case.
type racingStore struct {
	*memory.Store

	ExistsByStartTimeFunc func(ctx context.Context, start time.Time) (bool, error)
	AssignPatientFunc     func(ctx context.Context, visitID, patientID uint) (bool, error)
}

func (r *racingStore) ExistsByStartTime(ctx context.Context, start time.Time) (bool, error) {
	if r.ExistsByStartTimeFunc != nil {
		return r.ExistsByStartTimeFunc(ctx, start)
	}
	return r.Store.ExistsByStartTime(ctx, start)
}

func (r *racingStore) AssignPatient(ctx context.Context, visitID, patientID uint) (bool, error) {
	if r.AssignPatientFunc != nil {
		return r.AssignPatientFunc(ctx, visitID, patientID)
	}
	return r.Store.AssignPatient(ctx, visitID, patientID)
}
