package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/internal/domain/repository"
)

// In-memory repositories backing the service tests.

type fakeUserRepo struct {
	byID map[string]*entity.User
	seq  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, ex := range f.byID {
		if ex.Email == u.Email {
			return repository.ErrConflict
		}
	}
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

type fakeDoctorRepo struct {
	byID map[string]*entity.Doctor
}

func newFakeDoctorRepo(doctors ...*entity.Doctor) *fakeDoctorRepo {
	f := &fakeDoctorRepo{byID: map[string]*entity.Doctor{}}
	for _, d := range doctors {
		f.byID[d.ID] = d
	}
	return f
}

func (f *fakeDoctorRepo) Create(_ context.Context, d *entity.Doctor) error {
	f.byID[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) GetByID(_ context.Context, id string) (*entity.Doctor, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

func (f *fakeDoctorRepo) List(_ context.Context) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, 0, len(f.byID))
	for _, d := range f.byID {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeMedicineRepo struct {
	byID map[string]*entity.Medicine
}

func newFakeMedicineRepo(meds ...*entity.Medicine) *fakeMedicineRepo {
	f := &fakeMedicineRepo{byID: map[string]*entity.Medicine{}}
	for _, m := range meds {
		f.byID[m.ID] = m
	}
	return f
}

func (f *fakeMedicineRepo) Create(_ context.Context, m *entity.Medicine) error {
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMedicineRepo) GetByID(_ context.Context, id string) (*entity.Medicine, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeMedicineRepo) List(_ context.Context) ([]entity.Medicine, error) {
	out := make([]entity.Medicine, 0, len(f.byID))
	for _, m := range f.byID {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeAppointmentRepo struct {
	users   *fakeUserRepo
	doctors *fakeDoctorRepo
	byID    map[string]*entity.Appointment
	seq     int
}

func newFakeAppointmentRepo(users *fakeUserRepo, doctors *fakeDoctorRepo) *fakeAppointmentRepo {
	return &fakeAppointmentRepo{users: users, doctors: doctors, byID: map[string]*entity.Appointment{}}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	for _, ex := range f.byID {
		if ex.DoctorID == a.DoctorID && ex.Date.Equal(a.Date) {
			return repository.ErrConflict
		}
	}
	f.seq++
	a.ID = fmt.Sprintf("appt-%d", f.seq)
	a.CreatedAt = time.Now()
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*entity.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) detail(a *entity.Appointment) entity.AppointmentDetail {
	d := entity.AppointmentDetail{Appointment: *a}
	if u, ok := f.users.byID[a.UserID]; ok {
		s := u.Summary()
		d.User = &s
	}
	if doc, ok := f.doctors.byID[a.DoctorID]; ok {
		s := doc.Summary()
		d.Doctor = &s
	}
	return d
}

func (f *fakeAppointmentRepo) GetDetail(_ context.Context, id string) (*entity.AppointmentDetail, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d := f.detail(a)
	return &d, nil
}

func (f *fakeAppointmentRepo) ListByUser(_ context.Context, userID string) ([]entity.AppointmentDetail, error) {
	out := make([]entity.AppointmentDetail, 0)
	for _, a := range f.byID {
		if a.UserID == userID {
			out = append(out, f.detail(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeAppointmentRepo) ListByDoctor(_ context.Context, doctorID string) ([]entity.AppointmentDetail, error) {
	out := make([]entity.AppointmentDetail, 0)
	for _, a := range f.byID {
		if a.DoctorID == doctorID {
			out = append(out, f.detail(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type fakeOrderRepo struct {
	users     *fakeUserRepo
	medicines *fakeMedicineRepo
	byID      map[string]*entity.Order
	seq       int
}

func newFakeOrderRepo(users *fakeUserRepo, medicines *fakeMedicineRepo) *fakeOrderRepo {
	return &fakeOrderRepo{users: users, medicines: medicines, byID: map[string]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.seq++
	o.ID = fmt.Sprintf("order-%d", f.seq)
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	f.byID[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) detail(o *entity.Order) entity.OrderDetail {
	d := entity.OrderDetail{Order: *o}
	if u, ok := f.users.byID[o.UserID]; ok {
		s := u.Summary()
		d.User = &s
	}
	if m, ok := f.medicines.byID[o.MedicineID]; ok {
		s := m.Summary()
		d.Medicine = &s
	}
	return d
}

func (f *fakeOrderRepo) GetDetail(_ context.Context, id string) (*entity.OrderDetail, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d := f.detail(o)
	return &d, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]entity.OrderDetail, error) {
	out := make([]entity.OrderDetail, 0)
	for _, o := range f.byID {
		if o.UserID == userID {
			out = append(out, f.detail(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrderRepo) ListAll(_ context.Context) ([]entity.OrderDetail, error) {
	out := make([]entity.OrderDetail, 0)
	for _, o := range f.byID {
		out = append(out, f.detail(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) (*entity.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

var (
	_ repository.UserRepository        = (*fakeUserRepo)(nil)
	_ repository.DoctorRepository      = (*fakeDoctorRepo)(nil)
	_ repository.MedicineRepository    = (*fakeMedicineRepo)(nil)
	_ repository.AppointmentRepository = (*fakeAppointmentRepo)(nil)
	_ repository.OrderRepository       = (*fakeOrderRepo)(nil)
)
