package orgmemberstore_test

import (
	"testing"

	orgmemberstore "github.com/imadiksi/orgsite/internal/app/store/orgmembers"
	"github.com/imadiksi/orgsite/internal/domain/models"
	"github.com/imadiksi/orgsite/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create_ClassifiesRankFromPosition(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orgmemberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.OrganizationMember{
		Name:     "Budi",
		Position: "Wakil Ketua Umum",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Rank != models.RankWakilKetua {
		t.Errorf("expected rank %q, got %q", models.RankWakilKetua, created.Rank)
	}
}

func TestStore_Create_ExplicitRankKept(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orgmemberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.OrganizationMember{
		Name:     "Citra",
		Position: "Koordinator Acara",
		Rank:     models.RankSekretaris,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Rank != models.RankSekretaris {
		t.Errorf("expected explicit rank kept, got %q", created.Rank)
	}
}

func TestStore_List_OrderedAndBackfilled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orgmemberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A record written before the rank field existed: insert directly
	// without a rank.
	legacy := models.OrganizationMember{
		ID:         primitive.NewObjectID(),
		Name:       "Lama",
		Position:   "Sekretaris Umum",
		OrderIndex: 2,
	}
	if _, err := db.Collection("organization_members").InsertOne(ctx, legacy); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := store.Create(ctx, models.OrganizationMember{
		Name:       "Pertama",
		Position:   "Ketua Umum",
		OrderIndex: 1,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	members, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Name != "Pertama" || members[1].Name != "Lama" {
		t.Errorf("expected order_index ascending, got %q then %q", members[0].Name, members[1].Name)
	}
	if members[1].Rank != models.RankSekretaris {
		t.Errorf("expected legacy record backfilled to %q, got %q", models.RankSekretaris, members[1].Rank)
	}
}

func TestStore_Update_PositionKeepsStoredRank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orgmemberstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.OrganizationMember{
		Name:     "Dewi",
		Position: "Sekretaris Umum",
		Rank:     models.RankSekretaris,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A position-only edit must not rewrite the explicit rank, even
	// when the new text matches a different rank's keywords.
	pos := "Bendahara Umum"
	if err := store.Update(ctx, created.ID, orgmemberstore.UpdateInput{Position: &pos}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	members, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}
	if members[0].Position != "Bendahara Umum" {
		t.Errorf("position = %q, want updated text", members[0].Position)
	}
	if members[0].Rank != models.RankSekretaris {
		t.Errorf("rank = %q, want stored %q untouched", members[0].Rank, models.RankSekretaris)
	}
}

func TestStore_Update_ClearDivisionMakesCore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orgmemberstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	divID := primitive.NewObjectID()
	created := fx.CreateMember(ctx, "Eko", "Anggota", &divID)

	// SetDivision with a nil DivisionID clears the reference.
	err := store.Update(ctx, created.ID, orgmemberstore.UpdateInput{SetDivision: true})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var got models.OrganizationMember
	if err := db.Collection("organization_members").FindOne(ctx, bson.M{"_id": created.ID}).Decode(&got); err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !got.IsCore() {
		t.Error("expected member to become a core member after clearing the division")
	}
}

func TestStore_Update_AssignDivision(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := orgmemberstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fx.CreateMember(ctx, "Fajar", "Anggota", nil)

	divID := primitive.NewObjectID()
	err := store.Update(ctx, created.ID, orgmemberstore.UpdateInput{
		SetDivision: true,
		DivisionID:  &divID,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	var got models.OrganizationMember
	if err := db.Collection("organization_members").FindOne(ctx, bson.M{"_id": created.ID}).Decode(&got); err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.DivisionID == nil || *got.DivisionID != divID {
		t.Errorf("expected division %s assigned, got %v", divID.Hex(), got.DivisionID)
	}
}
