package ranks

import (
	"testing"

	"github.com/imadiksi/orgsite/internal/domain/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		position string
		want     string
	}{
		{"Ketua Umum", models.RankKetuaUmum},
		{"Ketua Umum IMADIKSI", models.RankKetuaUmum},
		{"Wakil Ketua", models.RankWakilKetua},
		{"Wakil Ketua Umum", models.RankWakilKetua},
		{"Sekretaris 1", models.RankSekretaris},
		{"Bendahara Umum", models.RankBendahara},
		{"Koordinator Divisi Media", models.RankAnggota},
		{"", models.RankAnggota},
	}
	for _, c := range cases {
		if got := Classify(c.position); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.position, got, c.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, rank := range Ordered() {
		if !IsValid(rank) {
			t.Errorf("IsValid(%q) = false, want true", rank)
		}
	}
	if IsValid("presiden") {
		t.Error(`IsValid("presiden") = true, want false`)
	}
}

func TestLabel(t *testing.T) {
	if got := Label(models.RankKetuaUmum); got != "Ketua Umum" {
		t.Errorf("Label = %q, want %q", got, "Ketua Umum")
	}
	if got := Label("unknown"); got != "Anggota" {
		t.Errorf("Label fallback = %q, want %q", got, "Anggota")
	}
}
