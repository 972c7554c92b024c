package serviceImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"washline/database"
	custRepoImp "washline/pkg/customer/repositoryImp"
	"washline/pkg/customer/service"
)

func newTestService(t *testing.T) service.CustomerService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(custRepoImp.New(db))
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"+234 801-555-0199", "2348015550199"},
		{"08015550199", "08015550199"},
		{"(080) 1555 0199", "08015550199"},
		{"", ""},
	}
	for _, c := range cases {
		if got := service.NormalizePhone(c.in); got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEnsureCreatesOnce(t *testing.T) {
	svc := newTestService(t)

	a, err := svc.Ensure("+234 801 555 0199", "Ada")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if a.Phone != "2348015550199" || a.Name != "Ada" {
		t.Errorf("customer = %+v", a)
	}

	// Different formatting, same digits, same record.
	b, err := svc.Ensure("2348015550199", "")
	if err != nil {
		t.Fatal(err)
	}
	if b.CustomerID != a.CustomerID {
		t.Errorf("second Ensure created a new customer: %d vs %d", b.CustomerID, a.CustomerID)
	}
}

func TestEnsureBackfillsName(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Ensure("08015550199", ""); err != nil {
		t.Fatal(err)
	}
	c, err := svc.Ensure("08015550199", "Ada")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Ada" {
		t.Errorf("name = %q, want backfilled Ada", c.Name)
	}
}

func TestRecordPayment(t *testing.T) {
	svc := newTestService(t)
	if err := svc.RecordPayment("0801-555-0199", 2500); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordPayment("08015550199", 1500); err != nil {
		t.Fatal(err)
	}
	c, err := svc.GetByPhone("08015550199")
	if err != nil {
		t.Fatal(err)
	}
	if c.OrderCount != 2 || c.TotalSpent != 4000 {
		t.Errorf("counters = %d/%.2f, want 2/4000", c.OrderCount, c.TotalSpent)
	}
}
