package businessflow

import (
	"context"
	"sort"
	"time"

	"github.com/amirphl/Simorgh/models"
)

// In-memory repository fakes for exercising flows without a database.

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeCustomerRepo struct {
	customers map[uint]*models.Customer
}

func newFakeCustomerRepo(customers ...*models.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[uint]*models.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) ByID(ctx context.Context, id uint) (*models.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) ByUUID(ctx context.Context, uuid string) (*models.Customer, error) {
	for _, c := range r.customers {
		if c.UUID.String() == uuid {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) ByFilter(ctx context.Context, filter models.CustomerFilter, orderBy string, limit, offset int) ([]*models.Customer, error) {
	var out []*models.Customer
	for _, c := range r.customers {
		if filter.ID != nil && c.ID != *filter.ID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Save(ctx context.Context, entity *models.Customer) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.customers) + 1)
	}
	r.customers[entity.ID] = entity
	return nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, entity *models.Customer) error {
	r.customers[entity.ID] = entity
	return nil
}

func (r *fakeCustomerRepo) Count(ctx context.Context, filter models.CustomerFilter) (int64, error) {
	items, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(items)), nil
}

func (r *fakeCustomerRepo) Exists(ctx context.Context, filter models.CustomerFilter) (bool, error) {
	count, _ := r.Count(ctx, filter)
	return count > 0, nil
}

type fakeVehicleRepo struct {
	vehicles map[uint]*models.Vehicle
}

func newFakeVehicleRepo(vehicles ...*models.Vehicle) *fakeVehicleRepo {
	r := &fakeVehicleRepo{vehicles: make(map[uint]*models.Vehicle)}
	for _, v := range vehicles {
		r.vehicles[v.ID] = v
	}
	return r
}

func (r *fakeVehicleRepo) ByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	return r.vehicles[id], nil
}

func (r *fakeVehicleRepo) ByFilter(ctx context.Context, filter models.VehicleFilter, orderBy string, limit, offset int) ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range r.vehicles {
		if filter.CustomerID != nil && v.CustomerID != *filter.CustomerID {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVehicleRepo) Save(ctx context.Context, entity *models.Vehicle) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.vehicles) + 1)
	}
	r.vehicles[entity.ID] = entity
	return nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, entity *models.Vehicle) error {
	r.vehicles[entity.ID] = entity
	return nil
}

func (r *fakeVehicleRepo) Count(ctx context.Context, filter models.VehicleFilter) (int64, error) {
	items, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(items)), nil
}

func (r *fakeVehicleRepo) Exists(ctx context.Context, filter models.VehicleFilter) (bool, error) {
	count, _ := r.Count(ctx, filter)
	return count > 0, nil
}

func (r *fakeVehicleRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*models.Vehicle, error) {
	return r.ByFilter(ctx, models.VehicleFilter{CustomerID: &customerID}, "", 0, 0)
}

type fakeHomeRepo struct {
	homes map[uint]*models.Home
}

func newFakeHomeRepo(homes ...*models.Home) *fakeHomeRepo {
	r := &fakeHomeRepo{homes: make(map[uint]*models.Home)}
	for _, h := range homes {
		r.homes[h.ID] = h
	}
	return r
}

func (r *fakeHomeRepo) ByID(ctx context.Context, id uint) (*models.Home, error) {
	return r.homes[id], nil
}

func (r *fakeHomeRepo) ByFilter(ctx context.Context, filter models.HomeFilter, orderBy string, limit, offset int) ([]*models.Home, error) {
	var out []*models.Home
	for _, h := range r.homes {
		if filter.CustomerID != nil && h.CustomerID != *filter.CustomerID {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHomeRepo) Save(ctx context.Context, entity *models.Home) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.homes) + 1)
	}
	r.homes[entity.ID] = entity
	return nil
}

func (r *fakeHomeRepo) Update(ctx context.Context, entity *models.Home) error {
	r.homes[entity.ID] = entity
	return nil
}

func (r *fakeHomeRepo) Count(ctx context.Context, filter models.HomeFilter) (int64, error) {
	items, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(items)), nil
}

func (r *fakeHomeRepo) Exists(ctx context.Context, filter models.HomeFilter) (bool, error) {
	count, _ := r.Count(ctx, filter)
	return count > 0, nil
}

func (r *fakeHomeRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*models.Home, error) {
	return r.ByFilter(ctx, models.HomeFilter{CustomerID: &customerID}, "", 0, 0)
}

type fakeAccidentRepo struct {
	accidents []*models.Accident
}

func (r *fakeAccidentRepo) ByID(ctx context.Context, id uint) (*models.Accident, error) {
	for _, a := range r.accidents {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccidentRepo) ByFilter(ctx context.Context, filter models.AccidentFilter, orderBy string, limit, offset int) ([]*models.Accident, error) {
	var out []*models.Accident
	for _, a := range r.accidents {
		if filter.CustomerID != nil && a.CustomerID != *filter.CustomerID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAccidentRepo) Save(ctx context.Context, entity *models.Accident) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.accidents) + 1)
	}
	r.accidents = append(r.accidents, entity)
	return nil
}

func (r *fakeAccidentRepo) Update(ctx context.Context, entity *models.Accident) error {
	return nil
}

func (r *fakeAccidentRepo) Count(ctx context.Context, filter models.AccidentFilter) (int64, error) {
	items, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(items)), nil
}

func (r *fakeAccidentRepo) Exists(ctx context.Context, filter models.AccidentFilter) (bool, error) {
	count, _ := r.Count(ctx, filter)
	return count > 0, nil
}

func (r *fakeAccidentRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*models.Accident, error) {
	return r.ByFilter(ctx, models.AccidentFilter{CustomerID: &customerID}, "", 0, 0)
}

func (r *fakeAccidentRepo) CountSince(ctx context.Context, customerID uint, since time.Time) (int64, error) {
	var count int64
	for _, a := range r.accidents {
		if a.CustomerID == customerID && a.Date.After(since) {
			count++
		}
	}
	return count, nil
}

type fakeAutoQuoteRepo struct {
	quotes map[uint]*models.AutoQuote
}

func newFakeAutoQuoteRepo(quotes ...*models.AutoQuote) *fakeAutoQuoteRepo {
	r := &fakeAutoQuoteRepo{quotes: make(map[uint]*models.AutoQuote)}
	for _, q := range quotes {
		r.quotes[q.ID] = q
	}
	return r
}

func (r *fakeAutoQuoteRepo) ByID(ctx context.Context, id uint) (*models.AutoQuote, error) {
	return r.quotes[id], nil
}

func (r *fakeAutoQuoteRepo) ByFilter(ctx context.Context, filter models.AutoQuoteFilter, orderBy string, limit, offset int) ([]*models.AutoQuote, error) {
	var out []*models.AutoQuote
	for _, q := range r.quotes {
		if filter.CustomerID != nil && q.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Active != nil && q.Active != *filter.Active {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeAutoQuoteRepo) Save(ctx context.Context, entity *models.AutoQuote) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.quotes) + 1)
	}
	r.quotes[entity.ID] = entity
	return nil
}

func (r *fakeAutoQuoteRepo) Update(ctx context.Context, entity *models.AutoQuote) error {
	r.quotes[entity.ID] = entity
	return nil
}

func (r *fakeAutoQuoteRepo) Count(ctx context.Context, filter models.AutoQuoteFilter) (int64, error) {
	items, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(items)), nil
}

func (r *fakeAutoQuoteRepo) Exists(ctx context.Context, filter models.AutoQuoteFilter) (bool, error) {
	count, _ := r.Count(ctx, filter)
	return count > 0, nil
}

func (r *fakeAutoQuoteRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*models.AutoQuote, error) {
	return r.ByFilter(ctx, models.AutoQuoteFilter{CustomerID: &customerID}, "", 0, 0)
}

func (r *fakeAutoQuoteRepo) ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.AutoQuote, error) {
	active := true
	return r.ByFilter(ctx, models.AutoQuoteFilter{CustomerID: &customerID, Active: &active}, "", 0, 0)
}

func (r *fakeAutoQuoteRepo) SetActive(ctx context.Context, id uint, active bool) error {
	if q, ok := r.quotes[id]; ok {
		q.Active = active
	}
	return nil
}

type fakeHomeQuoteRepo struct {
	quotes map[uint]*models.HomeQuote
}

func newFakeHomeQuoteRepo(quotes ...*models.HomeQuote) *fakeHomeQuoteRepo {
	r := &fakeHomeQuoteRepo{quotes: make(map[uint]*models.HomeQuote)}
	for _, q := range quotes {
		r.quotes[q.ID] = q
	}
	return r
}

func (r *fakeHomeQuoteRepo) ByID(ctx context.Context, id uint) (*models.HomeQuote, error) {
	return r.quotes[id], nil
}

func (r *fakeHomeQuoteRepo) ByFilter(ctx context.Context, filter models.HomeQuoteFilter, orderBy string, limit, offset int) ([]*models.HomeQuote, error) {
	var out []*models.HomeQuote
	for _, q := range r.quotes {
		if filter.CustomerID != nil && q.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Active != nil && q.Active != *filter.Active {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeHomeQuoteRepo) Save(ctx context.Context, entity *models.HomeQuote) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.quotes) + 1)
	}
	r.quotes[entity.ID] = entity
	return nil
}

func (r *fakeHomeQuoteRepo) Update(ctx context.Context, entity *models.HomeQuote) error {
	r.quotes[entity.ID] = entity
	return nil
}

func (r *fakeHomeQuoteRepo) Count(ctx context.Context, filter models.HomeQuoteFilter) (int64, error) {
	items, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(items)), nil
}

func (r *fakeHomeQuoteRepo) Exists(ctx context.Context, filter models.HomeQuoteFilter) (bool, error) {
	count, _ := r.Count(ctx, filter)
	return count > 0, nil
}

func (r *fakeHomeQuoteRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*models.HomeQuote, error) {
	return r.ByFilter(ctx, models.HomeQuoteFilter{CustomerID: &customerID}, "", 0, 0)
}

func (r *fakeHomeQuoteRepo) ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.HomeQuote, error) {
	active := true
	return r.ByFilter(ctx, models.HomeQuoteFilter{CustomerID: &customerID, Active: &active}, "", 0, 0)
}

func (r *fakeHomeQuoteRepo) SetActive(ctx context.Context, id uint, active bool) error {
	if q, ok := r.quotes[id]; ok {
		q.Active = active
	}
	return nil
}

type fakeAutoPolicyRepo struct {
	policies map[uint]*models.AutoPolicy
}

func newFakeAutoPolicyRepo(policies ...*models.AutoPolicy) *fakeAutoPolicyRepo {
	r := &fakeAutoPolicyRepo{policies: make(map[uint]*models.AutoPolicy)}
	for _, p := range policies {
		r.policies[p.ID] = p
	}
	return r
}

func (r *fakeAutoPolicyRepo) ByID(ctx context.Context, id uint) (*models.AutoPolicy, error) {
	return r.policies[id], nil
}

func (r *fakeAutoPolicyRepo) ByFilter(ctx context.Context, filter models.AutoPolicyFilter, orderBy string, limit, offset int) ([]*models.AutoPolicy, error) {
	var out []*models.AutoPolicy
	for _, p := range r.policies {
		if filter.CustomerID != nil && p.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		if filter.EndsBefore != nil && !p.EndDate.Before(*filter.EndsBefore) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAutoPolicyRepo) Save(ctx context.Context, entity *models.AutoPolicy) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.policies) + 1)
	}
	r.policies[entity.ID] = entity
	return nil
}

func (r *fakeAutoPolicyRepo) Update(ctx context.Context, entity *models.AutoPolicy) error {
	r.policies[entity.ID] = entity
	return nil
}

func (r *fakeAutoPolicyRepo) Count(ctx context.Context, filter models.AutoPolicyFilter) (int64, error) {
	items, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(items)), nil
}

func (r *fakeAutoPolicyRepo) Exists(ctx context.Context, filter models.AutoPolicyFilter) (bool, error) {
	count, _ := r.Count(ctx, filter)
	return count > 0, nil
}

func (r *fakeAutoPolicyRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*models.AutoPolicy, error) {
	return r.ByFilter(ctx, models.AutoPolicyFilter{CustomerID: &customerID}, "", 0, 0)
}

func (r *fakeAutoPolicyRepo) ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.AutoPolicy, error) {
	active := true
	return r.ByFilter(ctx, models.AutoPolicyFilter{CustomerID: &customerID, Active: &active}, "", 0, 0)
}

func (r *fakeAutoPolicyRepo) UpdateStatus(ctx context.Context, id uint, active bool, endDate *time.Time) error {
	if p, ok := r.policies[id]; ok {
		p.Active = active
		if endDate != nil {
			p.EndDate = *endDate
		}
	}
	return nil
}

func (r *fakeAutoPolicyRepo) ListExpiredActive(ctx context.Context, asOf time.Time) ([]*models.AutoPolicy, error) {
	active := true
	return r.ByFilter(ctx, models.AutoPolicyFilter{Active: &active, EndsBefore: &asOf}, "", 0, 0)
}

type fakeHomePolicyRepo struct {
	policies map[uint]*models.HomePolicy
}

func newFakeHomePolicyRepo(policies ...*models.HomePolicy) *fakeHomePolicyRepo {
	r := &fakeHomePolicyRepo{policies: make(map[uint]*models.HomePolicy)}
	for _, p := range policies {
		r.policies[p.ID] = p
	}
	return r
}

func (r *fakeHomePolicyRepo) ByID(ctx context.Context, id uint) (*models.HomePolicy, error) {
	return r.policies[id], nil
}

func (r *fakeHomePolicyRepo) ByFilter(ctx context.Context, filter models.HomePolicyFilter, orderBy string, limit, offset int) ([]*models.HomePolicy, error) {
	var out []*models.HomePolicy
	for _, p := range r.policies {
		if filter.CustomerID != nil && p.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		if filter.EndsBefore != nil && !p.EndDate.Before(*filter.EndsBefore) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeHomePolicyRepo) Save(ctx context.Context, entity *models.HomePolicy) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.policies) + 1)
	}
	r.policies[entity.ID] = entity
	return nil
}

func (r *fakeHomePolicyRepo) Update(ctx context.Context, entity *models.HomePolicy) error {
	r.policies[entity.ID] = entity
	return nil
}

func (r *fakeHomePolicyRepo) Count(ctx context.Context, filter models.HomePolicyFilter) (int64, error) {
	items, _ := r.ByFilter(ctx, filter, "", 0, 0)
	return int64(len(items)), nil
}

func (r *fakeHomePolicyRepo) Exists(ctx context.Context, filter models.HomePolicyFilter) (bool, error) {
	count, _ := r.Count(ctx, filter)
	return count > 0, nil
}

func (r *fakeHomePolicyRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*models.HomePolicy, error) {
	return r.ByFilter(ctx, models.HomePolicyFilter{CustomerID: &customerID}, "", 0, 0)
}

func (r *fakeHomePolicyRepo) ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.HomePolicy, error) {
	active := true
	return r.ByFilter(ctx, models.HomePolicyFilter{CustomerID: &customerID, Active: &active}, "", 0, 0)
}

func (r *fakeHomePolicyRepo) UpdateStatus(ctx context.Context, id uint, active bool, endDate *time.Time) error {
	if p, ok := r.policies[id]; ok {
		p.Active = active
		if endDate != nil {
			p.EndDate = *endDate
		}
	}
	return nil
}

func (r *fakeHomePolicyRepo) ListExpiredActive(ctx context.Context, asOf time.Time) ([]*models.HomePolicy, error) {
	active := true
	return r.ByFilter(ctx, models.HomePolicyFilter{Active: &active, EndsBefore: &asOf}, "", 0, 0)
}

type fakeRiskFactorRepo struct {
	snapshots []*models.RiskFactorSnapshot
}

func (r *fakeRiskFactorRepo) ByID(ctx context.Context, id uint) (*models.RiskFactorSnapshot, error) {
	for _, s := range r.snapshots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeRiskFactorRepo) ByFilter(ctx context.Context, filter models.RiskFactorSnapshotFilter, orderBy string, limit, offset int) ([]*models.RiskFactorSnapshot, error) {
	return r.snapshots, nil
}

func (r *fakeRiskFactorRepo) Save(ctx context.Context, entity *models.RiskFactorSnapshot) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.snapshots) + 1)
	}
	r.snapshots = append(r.snapshots, entity)
	return nil
}

func (r *fakeRiskFactorRepo) Update(ctx context.Context, entity *models.RiskFactorSnapshot) error {
	return nil
}

func (r *fakeRiskFactorRepo) Count(ctx context.Context, filter models.RiskFactorSnapshotFilter) (int64, error) {
	return int64(len(r.snapshots)), nil
}

func (r *fakeRiskFactorRepo) Exists(ctx context.Context, filter models.RiskFactorSnapshotFilter) (bool, error) {
	return len(r.snapshots) > 0, nil
}

func (r *fakeRiskFactorRepo) Latest(ctx context.Context) (*models.RiskFactorSnapshot, error) {
	if len(r.snapshots) == 0 {
		return nil, nil
	}
	return r.snapshots[len(r.snapshots)-1], nil
}
