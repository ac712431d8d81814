package manage_test

import (
	"net/http"
	"testing"

	"github.com/imadiksi/orgsite/internal/app/content"
	uierrors "github.com/imadiksi/orgsite/internal/app/features/errors"
	"github.com/imadiksi/orgsite/internal/app/features/manage"
	"github.com/imadiksi/orgsite/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*manage.Handler, *content.Service, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	svc := content.NewService(content.NewGateway(db), logger)
	t.Cleanup(svc.Close)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := svc.RefreshAll(ctx); err != nil {
		t.Fatalf("initial refresh failed: %v", err)
	}

	h := manage.NewHandler(svc, nil, "/files", uierrors.NewErrorLogger(logger), logger)
	return h, svc, testutil.NewFixtures(t, db)
}

// serve runs a handler func, swallowing the panic that a form
// re-render raises when layout templates are not registered.
func serve(fn http.HandlerFunc, w http.ResponseWriter, r *http.Request) {
	defer func() { recover() }()
	fn(w, r)
}

func TestHandleCreateEvent_AddsToCache(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	req := testutil.NewFormRequest("/admin/manage/events", map[string]string{
		"title":    "Rapat Kerja",
		"date":     "2026-10-01",
		"location": "Aula Utama",
	})
	rec := testutil.NewRecorder()
	serve(h.HandleCreateEvent, rec, req)

	rec.AssertRedirect(t, "/admin/manage/events?success=created")

	st := svc.State()
	if len(st.Events) != 1 {
		t.Fatalf("cache has %d events, want 1", len(st.Events))
	}
	if st.Events[0].Title != "Rapat Kerja" {
		t.Errorf("cached event title = %q", st.Events[0].Title)
	}
}

func TestHandleCreateEvent_InvalidDateRejected(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	req := testutil.NewFormRequest("/admin/manage/events", map[string]string{
		"title": "Rapat Kerja",
		"date":  "01/10/2026",
	})
	rec := testutil.NewRecorder()
	serve(h.HandleCreateEvent, rec, req)

	if len(svc.State().Events) != 0 {
		t.Error("invalid event should not reach the store or cache")
	}
}

func TestHandleUpdateEvent_ReflectedInCache(t *testing.T) {
	h, svc, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e := fixtures.CreateEvent(ctx, "Rapat Kerja", "2026-10-01")
	if err := svc.RefreshAll(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	req := testutil.NewFormRequest("/admin/manage/events/"+e.ID.Hex(), map[string]string{
		"title":    "Rapat Kerja Nasional",
		"date":     "2026-11-15",
		"location": "Gedung Serbaguna",
	})
	req = testutil.WithChiURLParam(req, "id", e.ID.Hex())

	rec := testutil.NewRecorder()
	serve(h.HandleUpdateEvent, rec, req)

	rec.AssertRedirect(t, "/admin/manage/events?success=updated")

	st := svc.State()
	if len(st.Events) != 1 || st.Events[0].Title != "Rapat Kerja Nasional" {
		t.Errorf("cache not updated after mutation: %+v", st.Events)
	}
}

func TestHandleDeleteEvent_RemovesFromCache(t *testing.T) {
	h, svc, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	e := fixtures.CreateEvent(ctx, "Rapat Kerja", "2026-10-01")
	if err := svc.RefreshAll(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	del := func() *testutil.ResponseRecorder {
		req := testutil.NewFormRequest("/admin/manage/events/"+e.ID.Hex()+"/delete", nil)
		req = testutil.WithChiURLParam(req, "id", e.ID.Hex())
		rec := testutil.NewRecorder()
		serve(h.HandleDeleteEvent, rec, req)
		return rec
	}

	del().AssertRedirect(t, "/admin/manage/events?success=deleted")
	if len(svc.State().Events) != 0 {
		t.Fatal("event still in cache after delete")
	}

	// Deleting again lands back on the list without error.
	del().AssertRedirect(t, "/admin/manage/events?success=deleted")
}

func TestHandleCreateProgram_AddsToCache(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	req := testutil.NewFormRequest("/admin/manage/programs", map[string]string{
		"title":   "Bakti Sosial",
		"summary": "Kegiatan pengabdian masyarakat",
		"status":  "upcoming",
		"tags":    "sosial\npengabdian",
	})
	rec := testutil.NewRecorder()
	serve(h.HandleCreateProgram, rec, req)

	rec.AssertRedirect(t, "/admin/manage/programs?success=created")

	st := svc.State()
	if len(st.Programs) != 1 {
		t.Fatalf("cache has %d programs, want 1", len(st.Programs))
	}
	p := st.Programs[0]
	if p.Status != "upcoming" {
		t.Errorf("program status = %q, want upcoming", p.Status)
	}
	if len(p.Tags) != 2 {
		t.Errorf("program tags = %v, want 2 entries", p.Tags)
	}
}

func TestHandleCreateProgram_BadStatusRejected(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	req := testutil.NewFormRequest("/admin/manage/programs", map[string]string{
		"title":  "Bakti Sosial",
		"status": "paused",
	})
	rec := testutil.NewRecorder()
	serve(h.HandleCreateProgram, rec, req)

	if len(svc.State().Programs) != 0 {
		t.Error("program with unknown status should be rejected")
	}
}

func TestHandleCreatePost_SlugDerivedAndCached(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	req := testutil.NewMultipartRequest("/admin/manage/posts", map[string]string{
		"title":   "Pelantikan Pengurus Baru",
		"content": "<p>Selamat kepada pengurus baru.</p>",
	})
	rec := testutil.NewRecorder()
	serve(h.HandleCreatePost, rec, req)

	rec.AssertRedirect(t, "/admin/manage/posts?success=created")

	st := svc.State()
	if len(st.Posts) != 1 {
		t.Fatalf("cache has %d posts, want 1", len(st.Posts))
	}
	if st.Posts[0].Slug != "pelantikan-pengurus-baru" {
		t.Errorf("slug = %q, want pelantikan-pengurus-baru", st.Posts[0].Slug)
	}
}

func TestHandleCreatePost_ScriptStrippedFromContent(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	req := testutil.NewMultipartRequest("/admin/manage/posts", map[string]string{
		"title":   "Berita Uji",
		"content": `<p>Halo</p><script>alert("x")</script>`,
	})
	rec := testutil.NewRecorder()
	serve(h.HandleCreatePost, rec, req)

	st := svc.State()
	if len(st.Posts) != 1 {
		t.Fatalf("cache has %d posts, want 1", len(st.Posts))
	}
	body := st.Posts[0].Content
	if body == "" || body != "<p>Halo</p>" {
		t.Errorf("stored content = %q, want sanitized <p>Halo</p>", body)
	}
}

func TestHandleCreateDivision_ParsesMemberLines(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	req := testutil.NewFormRequest("/admin/manage/divisions", map[string]string{
		"name":          "Divisi Media",
		"description":   "Publikasi dan dokumentasi",
		"work_programs": "Podcast\nBuletin",
		"members":       "Andi, Koordinator\nBudi",
	})
	rec := testutil.NewRecorder()
	serve(h.HandleCreateDivision, rec, req)

	rec.AssertRedirect(t, "/admin/manage/divisions?success=created")

	st := svc.State()
	if len(st.Divisions) != 1 {
		t.Fatalf("cache has %d divisions, want 1", len(st.Divisions))
	}
	d := st.Divisions[0]
	if len(d.WorkPrograms) != 2 {
		t.Errorf("work programs = %v, want 2 entries", d.WorkPrograms)
	}
	if len(d.Members) != 2 {
		t.Fatalf("members = %v, want 2 entries", d.Members)
	}
	if d.Members[0].Name != "Andi" || d.Members[0].Role != "Koordinator" {
		t.Errorf("first member = %+v, want Andi/Koordinator", d.Members[0])
	}
	if d.Members[1].Name != "Budi" || d.Members[1].Role != "" {
		t.Errorf("second member = %+v, want Budi with no role", d.Members[1])
	}
}

func TestHandleCreateMember_CoreWhenNoDivision(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	req := testutil.NewMultipartRequest("/admin/manage/members", map[string]string{
		"name":      "Citra Lestari",
		"position":  "Ketua Umum",
		"rank":      "ketua_umum",
		"is_active": "on",
	})
	rec := testutil.NewRecorder()
	serve(h.HandleCreateMember, rec, req)

	rec.AssertRedirect(t, "/admin/manage/members?success=created")

	st := svc.State()
	if len(st.OrganizationMembers) != 1 {
		t.Fatalf("cache has %d members, want 1", len(st.OrganizationMembers))
	}
	m := st.OrganizationMembers[0]
	if !m.IsCore() {
		t.Error("member without division should be core leadership")
	}
	if m.Rank != "ketua_umum" {
		t.Errorf("rank = %q, want ketua_umum", m.Rank)
	}
}

func TestHandleUpdateMember_MoveBetweenDivisions(t *testing.T) {
	h, svc, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := fixtures.CreateDivision(ctx, "Divisi Media")
	m := fixtures.CreateMember(ctx, "Budi Santoso", "Anggota", nil)
	if err := svc.RefreshAll(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	req := testutil.NewMultipartRequest("/admin/manage/members/"+m.ID.Hex(), map[string]string{
		"name":        "Budi Santoso",
		"position":    "Anggota",
		"rank":        "anggota",
		"division_id": d.ID.Hex(),
		"is_active":   "on",
	})
	req = testutil.WithChiURLParam(req, "id", m.ID.Hex())

	rec := testutil.NewRecorder()
	serve(h.HandleUpdateMember, rec, req)

	rec.AssertRedirect(t, "/admin/manage/members?success=updated")

	st := svc.State()
	if len(st.OrganizationMembers) != 1 {
		t.Fatalf("cache has %d members, want 1", len(st.OrganizationMembers))
	}
	got := st.OrganizationMembers[0]
	if got.DivisionID == nil || *got.DivisionID != d.ID {
		t.Errorf("member division = %v, want %s", got.DivisionID, d.ID.Hex())
	}
}
