package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Shivanand-hulikatti/medcamp/internal/model"
)

// MockRegistrationStore is a mock implementation of RegistrationStore.
type MockRegistrationStore struct {
	CreateFunc       func(ctx context.Context, reg *model.Registration) (model.InsertResult, error)
	FindByEmailFunc  func(ctx context.Context, email, filter string) ([]model.Registration, error)
	FindAllFunc      func(ctx context.Context, filter string) ([]model.Registration, error)
	SetConfirmedFunc func(ctx context.Context, id string) (model.UpdateResult, error)
	SetPaidFunc      func(ctx context.Context, id string) (model.PaymentSnapshot, model.UpdateResult, error)
	DeleteFunc       func(ctx context.Context, id string) (model.DeleteResult, error)
}

func (m *MockRegistrationStore) Create(ctx context.Context, reg *model.Registration) (model.InsertResult, error) {
	return m.CreateFunc(ctx, reg)
}

func (m *MockRegistrationStore) FindByEmail(ctx context.Context, email, filter string) ([]model.Registration, error) {
	return m.FindByEmailFunc(ctx, email, filter)
}

func (m *MockRegistrationStore) FindAll(ctx context.Context, filter string) ([]model.Registration, error) {
	return m.FindAllFunc(ctx, filter)
}

func (m *MockRegistrationStore) SetConfirmed(ctx context.Context, id string) (model.UpdateResult, error) {
	return m.SetConfirmedFunc(ctx, id)
}

func (m *MockRegistrationStore) SetPaid(ctx context.Context, id string) (model.PaymentSnapshot, model.UpdateResult, error) {
	return m.SetPaidFunc(ctx, id)
}

func (m *MockRegistrationStore) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	return m.DeleteFunc(ctx, id)
}

// MockCampCounter is a mock implementation of CampCounter.
type MockCampCounter struct {
	IncrementFunc func(ctx context.Context, campID string, by int) (model.UpdateResult, error)
}

func (m *MockCampCounter) Increment(ctx context.Context, campID string, by int) (model.UpdateResult, error) {
	return m.IncrementFunc(ctx, campID, by)
}

// MockPaymentLedger is a mock implementation of PaymentLedger.
type MockPaymentLedger struct {
	RecordFunc                 func(ctx context.Context, p *model.Payment) (model.InsertResult, error)
	UpdateByRegistrationIDFunc func(ctx context.Context, ref model.RegistrationRef, status model.ConfirmationStatus) (model.UpdateResult, error)
	DeleteByRegistrationIDFunc func(ctx context.Context, ref model.RegistrationRef) (model.DeleteResult, error)
	FindByEmailFunc            func(ctx context.Context, email, filter string) ([]model.Payment, error)
}

func (m *MockPaymentLedger) Record(ctx context.Context, p *model.Payment) (model.InsertResult, error) {
	return m.RecordFunc(ctx, p)
}

func (m *MockPaymentLedger) UpdateByRegistrationID(ctx context.Context, ref model.RegistrationRef, status model.ConfirmationStatus) (model.UpdateResult, error) {
	return m.UpdateByRegistrationIDFunc(ctx, ref, status)
}

func (m *MockPaymentLedger) DeleteByRegistrationID(ctx context.Context, ref model.RegistrationRef) (model.DeleteResult, error) {
	return m.DeleteByRegistrationIDFunc(ctx, ref)
}

func (m *MockPaymentLedger) FindByEmail(ctx context.Context, email, filter string) ([]model.Payment, error) {
	return m.FindByEmailFunc(ctx, email, filter)
}

var errNotFound = errors.New("not found")

// fakeBackend keeps registrations, payments and camp counts in memory and
// exposes them through the mocks above. It reproduces the store semantics
// the workflow depends on: unpaid/Pending on create, non-atomic SetPaid,
// oldest-first payment matching, zero-effect deletes, and case-insensitive
// substring filters over camp name, fee and payment status.
type fakeBackend struct {
	mu            sync.Mutex
	nextID        int
	registrations map[string]model.Registration
	payments      []model.Payment
	counts        map[string]int
}

func newFakeBackend(campIDs ...string) *fakeBackend {
	b := &fakeBackend{
		registrations: map[string]model.Registration{},
		counts:        map[string]int{},
	}
	for _, id := range campIDs {
		b.counts[id] = 0
	}
	return b
}

func (b *fakeBackend) id(prefix string) string {
	b.nextID++
	return fmt.Sprintf("%s-%d", prefix, b.nextID)
}

func (b *fakeBackend) registrationStore() *MockRegistrationStore {
	return &MockRegistrationStore{
		CreateFunc: func(_ context.Context, reg *model.Registration) (model.InsertResult, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			reg.ID = b.id("reg")
			reg.PaymentStatus = model.PaymentUnpaid
			reg.ConfirmationStatus = model.ConfirmationPending
			b.registrations[reg.ID] = *reg
			return model.InsertResult{Acknowledged: true, InsertedID: reg.ID}, nil
		},
		FindByEmailFunc: func(_ context.Context, email, filter string) ([]model.Registration, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			var out []model.Registration
			for _, r := range b.registrations {
				if r.ParticipantEmail == email && matchesFilter(filter, r.CampName, string(r.CampFees), string(r.PaymentStatus)) {
					out = append(out, r)
				}
			}
			return out, nil
		},
		FindAllFunc: func(_ context.Context, filter string) ([]model.Registration, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			var out []model.Registration
			for _, r := range b.registrations {
				if matchesFilter(filter, r.CampName, string(r.CampFees), string(r.PaymentStatus)) {
					out = append(out, r)
				}
			}
			return out, nil
		},
		SetConfirmedFunc: func(_ context.Context, id string) (model.UpdateResult, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			r, ok := b.registrations[id]
			if !ok {
				return model.UpdateResult{}, errNotFound
			}
			res := model.UpdateResult{Acknowledged: true, MatchedCount: 1}
			if r.ConfirmationStatus != model.ConfirmationConfirmed {
				r.ConfirmationStatus = model.ConfirmationConfirmed
				b.registrations[id] = r
				res.ModifiedCount = 1
			}
			return res, nil
		},
		SetPaidFunc: func(_ context.Context, id string) (model.PaymentSnapshot, model.UpdateResult, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			r, ok := b.registrations[id]
			if !ok {
				return model.PaymentSnapshot{}, model.UpdateResult{}, errNotFound
			}
			snap := model.PaymentSnapshot{
				CampName:           r.CampName,
				CampFees:           r.CampFees,
				PaymentStatus:      r.PaymentStatus,
				ConfirmationStatus: r.ConfirmationStatus,
			}
			res := model.UpdateResult{Acknowledged: true, MatchedCount: 1}
			if r.PaymentStatus != model.PaymentPaid {
				r.PaymentStatus = model.PaymentPaid
				b.registrations[id] = r
				res.ModifiedCount = 1
			}
			return snap, res, nil
		},
		DeleteFunc: func(_ context.Context, id string) (model.DeleteResult, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.registrations[id]; !ok {
				return model.DeleteResult{Acknowledged: true}, nil
			}
			delete(b.registrations, id)
			return model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		},
	}
}

func (b *fakeBackend) campCounter() *MockCampCounter {
	return &MockCampCounter{
		IncrementFunc: func(_ context.Context, campID string, by int) (model.UpdateResult, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.counts[campID]; !ok {
				return model.UpdateResult{Acknowledged: true}, nil
			}
			b.counts[campID] += by
			return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
}

func (b *fakeBackend) paymentLedger() *MockPaymentLedger {
	return &MockPaymentLedger{
		RecordFunc: func(_ context.Context, p *model.Payment) (model.InsertResult, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			p.ID = b.id("pay")
			b.payments = append(b.payments, *p)
			return model.InsertResult{Acknowledged: true, InsertedID: p.ID}, nil
		},
		UpdateByRegistrationIDFunc: func(_ context.Context, ref model.RegistrationRef, status model.ConfirmationStatus) (model.UpdateResult, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, p := range b.payments {
				if p.RegistrationID != ref {
					continue
				}
				res := model.UpdateResult{Acknowledged: true, MatchedCount: 1}
				if p.ConfirmationStatus != status {
					b.payments[i].ConfirmationStatus = status
					res.ModifiedCount = 1
				}
				return res, nil
			}
			return model.UpdateResult{Acknowledged: true}, nil
		},
		DeleteByRegistrationIDFunc: func(_ context.Context, ref model.RegistrationRef) (model.DeleteResult, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, p := range b.payments {
				if p.RegistrationID == ref {
					b.payments = append(b.payments[:i], b.payments[i+1:]...)
					return model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
				}
			}
			return model.DeleteResult{Acknowledged: true}, nil
		},
		FindByEmailFunc: func(_ context.Context, email, filter string) ([]model.Payment, error) {
			b.mu.Lock()
			defer b.mu.Unlock()
			var out []model.Payment
			for _, p := range b.payments {
				if p.Email == email && matchesFilter(filter, p.CampName, string(p.CampFees), string(p.PaymentStatus)) {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}
}

// matchesFilter reports whether filter occurs, ignoring case, in any field.
// An empty filter matches everything.
func matchesFilter(filter string, fields ...string) bool {
	filter = strings.ToLower(filter)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), filter) {
			return true
		}
	}
	return false
}

func (b *fakeBackend) service() *RegistrationService {
	log := zerolog.Nop()
	return NewRegistrationService(b.registrationStore(), b.campCounter(), b.paymentLedger(), &log)
}

func (b *fakeBackend) paymentsFor(id string) []model.Payment {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []model.Payment
	for _, p := range b.payments {
		if p.RegistrationID == model.RegistrationRef(id) {
			out = append(out, p)
		}
	}
	return out
}

func (b *fakeBackend) registration(id string) (model.Registration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.registrations[id]
	return r, ok
}

func (b *fakeBackend) count(campID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[campID]
}
