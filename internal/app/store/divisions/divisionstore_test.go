package divisionstore_test

import (
	"errors"
	"testing"

	divisionstore "github.com/imadiksi/orgsite/internal/app/store/divisions"
	"github.com/imadiksi/orgsite/internal/app/system/indexes"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"github.com/imadiksi/orgsite/internal/testutil"
)

func TestStore_Create_SlugFromName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Division{
		Name:         "Divisi Media & Informasi",
		Description:  "Publikasi kegiatan",
		WorkPrograms: []string{"Buletin bulanan", "Pengelolaan media sosial"},
		Members: []models.DivisionMember{
			{Name: "Gita", Role: "Koordinator"},
			{Name: "Hadi"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Slug != "divisi-media-informasi" {
		t.Errorf("expected slug derived from name, got %q", created.Slug)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.WorkPrograms) != 2 || len(got.Members) != 2 {
		t.Errorf("embedded lists not round-tripped: %+v", got)
	}
	if got.Members[0].Role != "Koordinator" {
		t.Errorf("member role lost: %+v", got.Members[0])
	}
}

func TestStore_Create_DuplicateSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	if _, err := store.Create(ctx, models.Division{Name: "Divisi Humas"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, models.Division{Name: "Divisi Humas"})
	if !errors.Is(err, divisionstore.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestStore_Update_WorkPrograms(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := divisionstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fx.CreateDivision(ctx, "Divisi Pendidikan")

	programs := []string{"Kelas mentoring", "Bedah buku"}
	err := store.Update(ctx, created.ID, divisionstore.UpdateInput{WorkPrograms: &programs})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.WorkPrograms) != 2 {
		t.Errorf("expected 2 work programs, got %d", len(got.WorkPrograms))
	}
}
