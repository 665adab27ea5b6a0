package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gesol/go-solar-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestCreateContact_AssignsIDAndTimestamp(t *testing.T) {
	db := newTestDB(t)

	c, err := CreateContact(context.Background(), db, "Maria", "maria@example.com", "11999990000", "Instalação", "Quero um orçamento")
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected server-assigned ID")
	}
	if _, err := uuid.Parse(c.ID); err != nil {
		t.Fatalf("ID is not a UUID: %v", err)
	}
	if c.CreatedAt.IsZero() {
		t.Fatal("expected server-assigned CreatedAt")
	}

	list, err := ListContacts(context.Background(), db)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(list) != 1 || list[0].ID != c.ID {
		t.Fatalf("expected stored row back, got %+v", list)
	}
}

func TestListContacts_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		c, err := CreateContact(ctx, db, fmt.Sprintf("User %d", i), "u@example.com", "11999990000", "s", "m")
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		ids = append(ids, c.ID)
		time.Sleep(2 * time.Millisecond) // distinct created_at
	}

	list, err := ListContacts(ctx, db)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(list))
	}
	for i, c := range list {
		if c.ID != ids[i] {
			t.Fatalf("row %d out of order: got %s want %s", i, c.ID, ids[i])
		}
	}
}

func TestCreateBudget_PersistsMinorUnits(t *testing.T) {
	db := newTestDB(t)

	b, err := CreateBudget(context.Background(), db, BudgetRow{
		Name:                         "João",
		Email:                        "joao@example.com",
		Phone:                        "11988887777",
		MonthlyConsumptionKwh:        300,
		RoofAreaM2:                   50,
		RoofType:                     domain.RoofCeramic,
		Location:                     "São Paulo, SP",
		EstimatedCostCents:           3750000,
		EstimatedMonthlySavingsCents: 21000,
		PaybackPeriodMonths:          179,
	})
	if err != nil {
		t.Fatalf("CreateBudget: %v", err)
	}
	if b.ID == "" || b.CreatedAt.IsZero() {
		t.Fatal("expected server-assigned ID and CreatedAt")
	}

	list, err := ListBudgets(context.Background(), db)
	if err != nil {
		t.Fatalf("ListBudgets: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 row, got %d", len(list))
	}
	got := list[0]
	if got.EstimatedCostCents != 3750000 || got.EstimatedMonthlySavingsCents != 21000 || got.PaybackPeriodMonths != 179 {
		t.Fatalf("derived fields not persisted as given: %+v", got)
	}
}

func TestGetUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := GetUser(ctx, db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	u := &domain.User{ID: "u1", Name: "Owner", Email: "owner@example.com", Role: "admin"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	got, err := GetUser(ctx, db, "u1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "owner@example.com" || got.Role != "admin" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if err := TouchLastSignedIn(ctx, db, "u1"); err != nil {
		t.Fatalf("TouchLastSignedIn: %v", err)
	}
	// Missing rows are a no-op, not an error.
	if err := TouchLastSignedIn(ctx, db, "missing"); err != nil {
		t.Fatalf("TouchLastSignedIn(missing): %v", err)
	}
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	s, err := Stats(ctx, db)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.Contacts != 0 || s.Budgets != 0 {
		t.Fatalf("expected empty stats, got %+v", s)
	}

	if _, err := CreateContact(ctx, db, "a", "a@b.co", "1", "s", "m"); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateBudget(ctx, db, BudgetRow{Name: "n", Email: "e@x.co", Phone: "1", MonthlyConsumptionKwh: 1, RoofAreaM2: 1, RoofType: domain.RoofOther, Location: "l"}); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateBudget(ctx, db, BudgetRow{Name: "n", Email: "e@x.co", Phone: "1", MonthlyConsumptionKwh: 1, RoofAreaM2: 1, RoofType: domain.RoofOther, Location: "l"}); err != nil {
		t.Fatal(err)
	}

	s, err = Stats(ctx, db)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.Contacts != 1 || s.Budgets != 2 {
		t.Fatalf("Stats = %+v, want {1 2}", s)
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	if _, err := OpenSQLite("/definitely/not/here/app.db"); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestOpenSQLite_CreatesFile(t *testing.T) {
	path := t.TempDir() + "/app.db"
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	if _, err := CreateContact(context.Background(), db, "n", "n@x.co", "1", "s", "m"); err != nil {
		t.Fatalf("insert after open: %v", err)
	}
}
