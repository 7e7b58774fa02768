package attendance

import (
	"context"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/master/branch"
)

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Record
	err     error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]attendance.Record{}}
}

func (f *fakeAttendanceRepo) CreateIfAbsent(_ context.Context, rec attendance.Record) (attendance.Record, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return attendance.Record{}, false, f.err
	}
	if existing, ok := f.records[rec.ID]; ok {
		return existing, false, nil
	}
	f.records[rec.ID] = rec
	return rec, true, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return attendance.Record{}, f.err
	}
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) MarkCheckedOut(_ context.Context, id string, checkoutTime string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok || rec.State() != attendance.StateCheckedIn {
		return false, nil
	}
	rec.CheckoutTime = checkoutTime
	rec.CheckoutTimestamp = &at
	f.records[id] = rec
	return true, nil
}

func (f *fakeAttendanceRepo) ListByDate(context.Context, time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListBetween(context.Context, time.Time, time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeBetween(context.Context, string, time.Time, time.Time) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) HasAutoAbsent(context.Context, time.Time) (bool, error) {
	return false, nil
}

func (f *fakeAttendanceRepo) InsertAbsences(context.Context, []attendance.Record) (int, error) {
	return 0, nil
}

type fakeEmployeeRepo map[string]employee.Employee

func (f fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f fakeEmployeeRepo) List(context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f))
	for _, e := range f {
		out = append(out, e)
	}
	return out, nil
}

type fakeBranchRepo map[string]branch.Branch

func (f fakeBranchRepo) GetByName(_ context.Context, name string) (branch.Branch, error) {
	b, ok := f[name]
	if !ok {
		return branch.Branch{}, branch.ErrBranchNotFound
	}
	return b, nil
}
