// Package memory holds a process-local implementation of the visit store and
// the patient/doctor directories. It is used for local runs with
// STORE_DRIVER=memory and as the fake behind use case and handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Store struct {
	mu sync.RWMutex

	nextID   uint
	visits   map[uint]models.Visit
	starts   map[int64]uint
	patients map[uint]models.Patient
	doctors  map[uint]models.Doctor

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		nextID:   1,
		visits:   make(map[uint]models.Visit),
		starts:   make(map[int64]uint),
		patients: make(map[uint]models.Patient),
		doctors:  make(map[uint]models.Doctor),
		now:      time.Now,
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (s *Store) AddPatient(p models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients[p.ID] = p
}

func (s *Store) AddDoctor(d models.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors[d.ID] = d
}

// --------------------------------------------------
// Visits
// --------------------------------------------------

func (s *Store) CreateVisit(_ context.Context, v *models.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := v.StartTime.UnixNano()
	if _, taken := s.starts[key]; taken {
		return fmt.Errorf("create visit at %s: %w", v.StartTime.Format(time.RFC3339), domain.ErrStartTimeTaken)
	}

	now := s.now()
	v.ID = s.nextID
	v.CreatedAt = now
	v.UpdatedAt = now
	s.nextID++

	s.visits[v.ID] = cloneVisit(*v)
	s.starts[key] = v.ID
	return nil
}

func (s *Store) GetVisit(_ context.Context, id uint) (*models.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.visits[id]
	if !ok {
		return nil, fmt.Errorf("visit %d: %w", id, domain.ErrNotFound)
	}
	out := cloneVisit(v)
	return &out, nil
}

func (s *Store) DeleteVisit(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visits[id]
	if !ok {
		return fmt.Errorf("visit %d: %w", id, domain.ErrNotFound)
	}
	delete(s.starts, v.StartTime.UnixNano())
	delete(s.visits, id)
	return nil
}

func (s *Store) ExistsByStartTime(_ context.Context, start time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.starts[start.UnixNano()]
	return ok, nil
}

func (s *Store) AssignPatient(_ context.Context, visitID, patientID uint) (bool, error) {
	return s.assign(visitID, func(v *models.Visit) **uint { return &v.PatientID }, patientID)
}

func (s *Store) AssignDoctor(_ context.Context, visitID, doctorID uint) (bool, error) {
	return s.assign(visitID, func(v *models.Visit) **uint { return &v.DoctorID }, doctorID)
}

func (s *Store) assign(visitID uint, field func(*models.Visit) **uint, refID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visits[visitID]
	if !ok {
		return false, nil
	}

	ref := field(&v)
	if *ref != nil {
		return false, nil
	}

	id := refID
	*ref = &id
	v.UpdatedAt = s.now()
	s.visits[visitID] = v
	return true, nil
}

func (s *Store) ListByPatient(_ context.Context, patientID uint) ([]models.Visit, error) {
	return s.filter(func(v models.Visit) bool {
		return v.PatientID != nil && *v.PatientID == patientID
	}), nil
}

func (s *Store) ListByDoctor(_ context.Context, doctorID uint) ([]models.Visit, error) {
	return s.filter(func(v models.Visit) bool {
		return v.DoctorID != nil && *v.DoctorID == doctorID
	}), nil
}

func (s *Store) ListByStartTimeBetween(_ context.Context, from, to time.Time) ([]models.Visit, error) {
	return s.filter(func(v models.Visit) bool {
		return inRange(v.StartTime, from, to)
	}), nil
}

func (s *Store) ListByDoctorSpecializationAndStartTimeBetween(
	_ context.Context,
	specialization string,
	from time.Time,
	to time.Time,
) ([]models.Visit, error) {
	// keep runs under the read lock taken by filter, so the doctor lookup
	// and the visit scan see the same snapshot.
	return s.filter(func(v models.Visit) bool {
		if v.DoctorID == nil {
			return false
		}
		d, ok := s.doctors[*v.DoctorID]
		if !ok || d.Specialization != specialization {
			return false
		}
		return inRange(v.StartTime, from, to)
	}), nil
}

// filter returns sorted copies of the visits matching keep. keep is called
// with the read lock held and must not lock the store itself.
func (s *Store) filter(keep func(models.Visit) bool) []models.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Visit, 0)
	for _, v := range s.visits {
		if keep(v) {
			out = append(out, cloneVisit(v))
		}
	}
	domain.SortByStart(out)
	return out
}

// --------------------------------------------------
// Directories
// --------------------------------------------------

func (s *Store) GetPatient(_ context.Context, id uint) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[id]
	if !ok {
		return nil, fmt.Errorf("patient %d: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

func (s *Store) PatientExists(_ context.Context, id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.patients[id]
	return ok, nil
}

func (s *Store) GetDoctor(_ context.Context, id uint) (*models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.doctors[id]
	if !ok {
		return nil, fmt.Errorf("doctor %d: %w", id, domain.ErrNotFound)
	}
	return &d, nil
}

func (s *Store) ListDoctorsBySpecialization(_ context.Context, specialization string) ([]models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Doctor, 0)
	for _, d := range s.doctors {
		if d.Specialization == specialization {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func cloneVisit(v models.Visit) models.Visit {
	if v.PatientID != nil {
		id := *v.PatientID
		v.PatientID = &id
	}
	if v.DoctorID != nil {
		id := *v.DoctorID
		v.DoctorID = &id
	}
	return v
}

var (
	_ domain.Repository       = (*Store)(nil)
	_ domain.PatientDirectory = (*Store)(nil)
	_ domain.DoctorDirectory  = (*Store)(nil)
)
