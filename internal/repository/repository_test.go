package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Shivanand-hulikatti/medcamp/internal/database"
	"github.com/Shivanand-hulikatti/medcamp/internal/model"
	"github.com/Shivanand-hulikatti/medcamp/internal/service"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "%%"},
		{"eye", "%eye%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}
	for _, tt := range tests {
		if got := containsPattern(tt.in); got != tt.want {
			t.Errorf("containsPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// testPool connects to MEDCAMP_TEST_DATABASE_URL, applies the migrations and
// empties every table. Tests are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("MEDCAMP_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("MEDCAMP_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	log := zerolog.Nop()
	if _, err := database.ApplyMigrations(ctx, pool, "../../migrations", &log); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE camps, registrations, payments, users, feedback`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func TestRegistrationFilterIsLiteralSubstring(t *testing.T) {
	pool := testPool(t)
	repo := NewRegistrationRepository(pool)
	ctx := context.Background()

	for name, fee := range map[string]model.Fee{"Eye": "50", "Bone": "75", "Skin": "100"} {
		reg := &model.Registration{
			CampID:           "camp-1",
			CampName:         name,
			CampFees:         fee,
			ParticipantEmail: "p@example.com",
		}
		if _, err := repo.Create(ctx, reg); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := repo.FindByEmail(ctx, "p@example.com", "5")
	if err != nil {
		t.Fatalf("FindByEmail() error = %v", err)
	}
	fees := map[model.Fee]bool{}
	for _, r := range got {
		fees[r.CampFees] = true
	}
	if len(got) != 2 || !fees["50"] || !fees["75"] {
		t.Errorf("filter 5 matched %v, want 50 and 75", fees)
	}

	got, err = repo.FindByEmail(ctx, "p@example.com", "UNPAID")
	if err != nil || len(got) != 3 {
		t.Errorf("filter UNPAID = %d, %v; want 3 case-insensitive matches", len(got), err)
	}

	got, err = repo.FindAll(ctx, "%")
	if err != nil || len(got) != 0 {
		t.Errorf("filter %% = %d, %v; want 0 literal matches", len(got), err)
	}
}

func TestRegistrationLifecycle(t *testing.T) {
	pool := testPool(t)
	regs := NewRegistrationRepository(pool)
	payments := NewPaymentRepository(pool)
	camps := NewCampRepository(pool)
	ctx := context.Background()

	camp, err := camps.Create(ctx, model.CampRequest{CampName: "Eye", DateTime: "2026-11-01", Location: "Pune", Fees: 50, ProfessionalName: "Dr. A"})
	if err != nil {
		t.Fatalf("camps.Create() error = %v", err)
	}
	log := zerolog.Nop()
	svc := service.NewRegistrationService(regs, camps, payments, &log)

	reg, err := svc.Register(ctx, model.RegisterRequest{
		CampID: camp.InsertedID, CampName: "Eye", CampFees: "50", ParticipantEmail: "p@example.com",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	id := reg.Registration.InsertedID

	got, err := camps.GetByID(ctx, camp.InsertedID)
	if err != nil || got.ParticipantCount != 1 {
		t.Fatalf("participant count = %v, %v; want 1", got, err)
	}

	if _, err := svc.Pay(ctx, id, model.PayRequest{TransactionID: "pi_1", Email: "p@example.com"}); err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if _, err := svc.Pay(ctx, id, model.PayRequest{TransactionID: "pi_2", Email: "p@example.com"}); !errors.Is(err, service.ErrAlreadyPaid) {
		t.Fatalf("second Pay() error = %v, want ErrAlreadyPaid", err)
	}

	first, err := svc.Confirm(ctx, id)
	if err != nil || first.PaymentConfirmation.ModifiedCount != 1 {
		t.Fatalf("Confirm() = %+v, %v", first, err)
	}
	again, err := svc.Confirm(ctx, id)
	if err != nil || again.Result.ModifiedCount != 0 || again.PaymentConfirmation.ModifiedCount != 0 {
		t.Fatalf("repeat Confirm() = %+v, %v; want no modifications", again, err)
	}

	history, err := payments.FindByEmail(ctx, "p@example.com", "")
	if err != nil || len(history) != 1 {
		t.Fatalf("payment history = %d, %v; want 1", len(history), err)
	}
	if history[0].ConfirmationStatus != model.ConfirmationConfirmed || history[0].CampFees != "50" {
		t.Errorf("payment = %+v", history[0])
	}

	cancelled, err := svc.Cancel(ctx, id)
	if err != nil || cancelled.Result.DeletedCount != 1 || cancelled.PayDelete.DeletedCount != 1 {
		t.Fatalf("Cancel() = %+v, %v", cancelled, err)
	}
	got, _ = camps.GetByID(ctx, camp.InsertedID)
	if got.ParticipantCount != 1 {
		t.Errorf("participant count after cancel = %d, want 1", got.ParticipantCount)
	}

	if _, err := svc.Confirm(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Confirm() on deleted registration error = %v, want ErrNotFound", err)
	}
}

func TestIncrementUnknownCampMatchesNothing(t *testing.T) {
	pool := testPool(t)
	res, err := NewCampRepository(pool).Increment(context.Background(), "no-such-camp", 1)
	if err != nil {
		t.Fatalf("Increment() error = %v", err)
	}
	if res.MatchedCount != 0 {
		t.Errorf("MatchedCount = %d, want 0", res.MatchedCount)
	}
}

func TestCampSearchAndTop(t *testing.T) {
	pool := testPool(t)
	camps := NewCampRepository(pool)
	ctx := context.Background()

	names := []string{"Bone Camp", "Eye Camp", "Alpha Dental", "Heart", "Skin", "Ear", "Lungs"}
	for i, name := range names {
		res, err := camps.Create(ctx, model.CampRequest{CampName: name, DateTime: "2026-11-01", Location: "Pune", Fees: float64(10 * (len(names) - i)), ProfessionalName: "Dr. A"})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if _, err := camps.Increment(ctx, res.InsertedID, i); err != nil {
			t.Fatalf("Increment() error = %v", err)
		}
	}

	top, err := camps.TopByParticipants(ctx, 6)
	if err != nil || len(top) != 6 {
		t.Fatalf("TopByParticipants() = %d, %v; want 6", len(top), err)
	}
	if top[0].CampName != "Lungs" {
		t.Errorf("top camp = %q, want Lungs", top[0].CampName)
	}

	sorted, err := camps.Search(ctx, "camp", service.SortAlphabeticalName)
	if err != nil || len(sorted) != 2 || sorted[0].CampName != "Bone Camp" {
		t.Errorf("Search(camp, alphabetical) = %+v, %v", sorted, err)
	}
}

func TestUserInsertIfAbsent(t *testing.T) {
	pool := testPool(t)
	users := NewUserRepository(pool)
	ctx := context.Background()

	u := &model.User{Email: "u@example.com", Name: "U", Role: model.RoleParticipant}
	inserted, err := users.InsertIfAbsent(ctx, u)
	if err != nil || !inserted {
		t.Fatalf("first InsertIfAbsent() = %v, %v", inserted, err)
	}
	inserted, err = users.InsertIfAbsent(ctx, &model.User{Email: "u@example.com", Name: "Other"})
	if err != nil || inserted {
		t.Fatalf("second InsertIfAbsent() = %v, %v; want false", inserted, err)
	}
	got, err := users.GetByEmail(ctx, "u@example.com")
	if err != nil || got.Name != "U" {
		t.Errorf("GetByEmail() = %+v, %v; want original user", got, err)
	}
	if _, err := users.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByEmail(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMarkPaidAfterDeleteMatchesNothing(t *testing.T) {
	pool := testPool(t)
	repo := NewRegistrationRepository(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Registration{CampID: "camp-1", CampName: "Eye", CampFees: "50", ParticipantEmail: "p@example.com"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Delete(ctx, created.InsertedID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	res, err := repo.markPaid(ctx, created.InsertedID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("markPaid() error = %v, want ErrNotFound", err)
	}
	if res.MatchedCount != 0 || res.ModifiedCount != 0 {
		t.Errorf("markPaid() = %+v, want nothing matched", res)
	}
}
