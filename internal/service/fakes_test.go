package service

import (
	"context"
	"time"

	"carwash-service/internal/apperr"
	"carwash-service/internal/entity"
)

type fakePackageStore struct {
	packages map[int]entity.Package
	refs     map[int]int // packageNumber -> referencing service records
	nextID   int
}

func newFakePackageStore() *fakePackageStore {
	return &fakePackageStore{packages: map[int]entity.Package{}, refs: map[int]int{}, nextID: 1}
}

func (f *fakePackageStore) GetPackages(ctx context.Context) ([]entity.Package, error) {
	out := []entity.Package{}
	for _, p := range f.packages {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePackageStore) GetPackageByID(ctx context.Context, id int) (*entity.Package, error) {
	p, ok := f.packages[id]
	if !ok {
		return nil, apperr.NotFound("Package not found")
	}
	return &p, nil
}

func (f *fakePackageStore) CreatePackage(ctx context.Context, pkg *entity.Package) error {
	if pkg.PackageNumber == 0 {
		pkg.PackageNumber = f.nextID
		f.nextID++
	}
	if _, ok := f.packages[pkg.PackageNumber]; ok {
		return apperr.Conflict("Package already exists")
	}
	f.packages[pkg.PackageNumber] = *pkg
	return nil
}

func (f *fakePackageStore) UpdatePackage(ctx context.Context, pkg *entity.Package) error {
	if _, ok := f.packages[pkg.PackageNumber]; !ok {
		return apperr.NotFound("Package not found")
	}
	f.packages[pkg.PackageNumber] = *pkg
	return nil
}

func (f *fakePackageStore) CountServiceRecords(ctx context.Context, id int) (int, error) {
	return f.refs[id], nil
}

func (f *fakePackageStore) DeletePackage(ctx context.Context, id int) error {
	if _, ok := f.packages[id]; !ok {
		return apperr.NotFound("Package not found")
	}
	delete(f.packages, id)
	return nil
}

type fakeRecordStore struct {
	records map[int]entity.ServiceRecord
	nextID  int
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{records: map[int]entity.ServiceRecord{}, nextID: 1}
}

func (f *fakeRecordStore) GetRecords(ctx context.Context) ([]entity.ServiceRecord, error) {
	out := []entity.ServiceRecord{}
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRecordStore) GetRecordsByPlate(ctx context.Context, plate string) ([]entity.ServiceRecord, error) {
	out := []entity.ServiceRecord{}
	for _, r := range f.records {
		if r.PlateNumber == plate {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordStore) GetRecordByID(ctx context.Context, id int) (*entity.ServiceRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, apperr.NotFound("Service record not found")
	}
	return &r, nil
}

func (f *fakeRecordStore) CreateRecord(ctx context.Context, rec *entity.ServiceRecord) error {
	rec.RecordNumber = f.nextID
	f.nextID++
	f.records[rec.RecordNumber] = *rec
	return nil
}

func (f *fakeRecordStore) UpdateRecord(ctx context.Context, rec *entity.ServiceRecord) error {
	if _, ok := f.records[rec.RecordNumber]; !ok {
		return apperr.NotFound("Service record not found")
	}
	f.records[rec.RecordNumber] = *rec
	return nil
}

func (f *fakeRecordStore) DeleteRecord(ctx context.Context, id int) error {
	if _, ok := f.records[id]; !ok {
		return apperr.NotFound("Service record not found")
	}
	delete(f.records, id)
	return nil
}

type fakeUserStore struct {
	users  map[string]entity.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]entity.User{}, nextID: 1}
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *entity.User) error {
	if _, ok := f.users[user.Username]; ok {
		return apperr.Conflict("Username already exists")
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = *user
	return nil
}

type memSessionStore struct {
	sessions map[string]entity.User
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]entity.User{}}
}

func (m *memSessionStore) Save(ctx context.Context, sid string, user entity.User, ttl time.Duration) error {
	m.sessions[sid] = user
	return nil
}

func (m *memSessionStore) Get(ctx context.Context, sid string) (*entity.User, error) {
	u, ok := m.sessions[sid]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memSessionStore) Delete(ctx context.Context, sid string) error {
	delete(m.sessions, sid)
	return nil
}

type fakeReportStore struct {
	rows []entity.ReportRow
}

func (f *fakeReportStore) DailyPayments(ctx context.Context, date string) ([]entity.ReportRow, error) {
	out := []entity.ReportRow{}
	for _, r := range f.rows {
		if len(r.PaymentDate) >= 10 && r.PaymentDate[:10] == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportStore) AllPayments(ctx context.Context) ([]entity.ReportRow, error) {
	return f.rows, nil
}

func (f *fakeReportStore) CountCars(ctx context.Context) (int, error)           { return 0, nil }
func (f *fakeReportStore) CountPackages(ctx context.Context) (int, error)       { return 0, nil }
func (f *fakeReportStore) CountServiceRecords(ctx context.Context) (int, error) { return 0, nil }
func (f *fakeReportStore) CountPayments(ctx context.Context) (int, error)       { return len(f.rows), nil }

func (f *fakeReportStore) SumPayments(ctx context.Context) (float64, error) {
	var total float64
	for _, r := range f.rows {
		total += r.AmountPaid
	}
	return total, nil
}
