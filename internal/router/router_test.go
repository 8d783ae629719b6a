package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"paws-cafe/internal/adapters/catalog"
	"paws-cafe/internal/adapters/localstore"
	mem "paws-cafe/internal/adapters/storage/memory"
	"paws-cafe/internal/ports/kv"
	"paws-cafe/internal/router"
)

type cafeResp struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

type planResp struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
	Memo string `json:"memo"`
}

type favoriteStatusResp struct {
	CafeID   string `json:"cafe_id"`
	Favorite bool   `json:"favorite"`
}

func newServer(t *testing.T, store kv.Store) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(router.Options{KV: store})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t, nil)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func TestHTTP_SearchCafes(t *testing.T) {
	ts := newServer(t, nil)

	// 1) Sin criterios => catálogo completo en orden
	{
		var got []cafeResp
		getJSON(t, ts.URL, "/cafes", &got)
		if len(got) != 4 {
			t.Fatalf("expected 4 cafes, got %d", len(got))
		}
		if got[0].ID != catalog.NyanNyanID || got[3].ID != catalog.BuuBuuID {
			t.Fatalf("expected catalog order, got %+v", got)
		}
	}

	// 2) animal se combina con OR
	{
		var got []cafeResp
		getJSON(t, ts.URL, "/cafes?"+url.Values{"animal": {"ネコ", "イヌ"}}.Encode(), &got)
		if len(got) != 2 || got[0].ID != catalog.NyanNyanID || got[1].ID != catalog.WanWanID {
			t.Fatalf("expected nyan+wan, got %+v", got)
		}
	}

	// 3) tag exige todos los valores (también separados por coma)
	{
		var got []cafeResp
		getJSON(t, ts.URL, "/cafes?"+url.Values{"tag": {"12歳以下OK,女性のみ"}}.Encode(), &got)
		if len(got) != 1 || got[0].ID != catalog.NyanNyanID {
			t.Fatalf("expected only nyan, got %+v", got)
		}
	}

	// 4) criterios combinados con AND
	{
		var got []cafeResp
		q := url.Values{"prefecture": {"大阪府"}, "price": {"2001円〜3000円"}, "animal": {"ネコ"}}
		getJSON(t, ts.URL, "/cafes?"+q.Encode(), &got)
		if len(got) != 0 {
			t.Fatalf("expected no match, got %+v", got)
		}
	}

	// 5) sin resultados => [] (no null)
	{
		st, body := doReq(t, ts.URL, "GET", "/cafes?"+url.Values{"animal": {"キツネ"}}.Encode(), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		if strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected [], got %s", string(body))
		}
	}
}

func TestHTTP_CafeDetailAndOptions(t *testing.T) {
	ts := newServer(t, nil)

	st, body := doReq(t, ts.URL, "GET", "/cafes/"+catalog.WanWanID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	if !strings.Contains(string(body), `"tags":[]`) {
		t.Fatalf("expected empty tags array, got %s", string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/cafes/does-not-exist", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown cafe, got %d", st)
	}

	var opts struct {
		Animals     []string `json:"animals"`
		Prefectures []string `json:"prefectures"`
		Prices      []string `json:"prices"`
		Tags        []string `json:"tags"`
	}
	getJSON(t, ts.URL, "/search/options", &opts)
	if len(opts.Prefectures) != 47 {
		t.Fatalf("expected 47 prefectures, got %d", len(opts.Prefectures))
	}
	if len(opts.Animals) == 0 || len(opts.Prices) == 0 || len(opts.Tags) == 0 {
		t.Fatalf("expected non-empty options, got %+v", opts)
	}
}

func TestHTTP_RecommendedAndNearby(t *testing.T) {
	ts := newServer(t, nil)

	var rec []cafeResp
	getJSON(t, ts.URL, "/cafes/recommended", &rec)
	if len(rec) != 2 || rec[0].ID == rec[1].ID {
		t.Fatalf("expected 2 distinct cafes, got %+v", rec)
	}

	st, _ := doReq(t, ts.URL, "GET", "/cafes/recommended?n=0", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for n=0, got %d", st)
	}

	// Cerca de Umeda: nyan primero
	var near []struct {
		Cafe       cafeResp `json:"cafe"`
		DistanceKm float64  `json:"distance_km"`
	}
	getJSON(t, ts.URL, "/cafes/nearby?lat=34.7025&lon=135.4959&radius_km=10", &near)
	if len(near) != 4 || near[0].Cafe.ID != catalog.NyanNyanID {
		t.Fatalf("expected nyan first of 4, got %+v", near)
	}
	for i := 1; i < len(near); i++ {
		if near[i].DistanceKm < near[i-1].DistanceKm {
			t.Fatalf("expected ascending distances, got %+v", near)
		}
	}

	st, _ = doReq(t, ts.URL, "GET", "/cafes/nearby?lat=95&lon=135", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for lat out of range, got %d", st)
	}
}

func TestHTTP_Plans(t *testing.T) {
	ts := newServer(t, nil)

	// 1) Nombre vacío => 422 y nada guardado
	{
		st, body := doReq(t, ts.URL, "POST", "/plans", map[string]any{
			"date": "2099-09-13",
			"name": "   ",
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 empty name, got %d body=%s", st, string(body))
		}

		var got []planResp
		getJSON(t, ts.URL, "/plans", &got)
		if len(got) != 0 {
			t.Fatalf("expected no plans, got %+v", got)
		}
	}

	// 2) Fecha inválida => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/plans", map[string]any{
			"date": "2099年9月13日",
			"name": "にゃんにゃんカフェ",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid date, got %d", st)
		}
	}

	// 3) Se agregan fuera de orden y se listan por fecha
	lateID := createPlan(t, ts.URL, map[string]any{"date": "2099-09-20", "name": "ぴよぴよカフェ"})
	earlyID := createPlan(t, ts.URL, map[string]any{
		"date": "2099-09-13",
		"time": "14:30",
		"name": " にゃんにゃんカフェ ",
		"memo": "おやつ持参",
	})

	var got []planResp
	getJSON(t, ts.URL, "/plans", &got)
	if len(got) != 2 || got[0].ID != earlyID || got[1].ID != lateID {
		t.Fatalf("expected [early, late], got %+v", got)
	}
	if got[0].Name != "にゃんにゃんカフェ" || got[0].Memo != "おやつ持参" {
		t.Fatalf("unexpected first plan: %+v", got[0])
	}
	if !strings.HasPrefix(got[0].Date, "2099-09-13T14:30:00+09:00") {
		t.Fatalf("expected JST date with clock, got %s", got[0].Date)
	}

	// 4) Próximas
	var upcoming []planResp
	getJSON(t, ts.URL, "/plans/upcoming?limit=1", &upcoming)
	if len(upcoming) != 1 || upcoming[0].ID != earlyID {
		t.Fatalf("expected only early plan, got %+v", upcoming)
	}

	// 5) Borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/plans/"+earlyID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/plans/"+earlyID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 second delete, got %d", st)
		}
	}
}

func TestHTTP_Favorites(t *testing.T) {
	ts := newServer(t, nil)

	path := "/favorites/" + catalog.NyanNyanID

	var status favoriteStatusResp
	postJSON(t, ts.URL, path+"/toggle", &status)
	if !status.Favorite {
		t.Fatalf("expected favorite after first toggle")
	}

	getJSON(t, ts.URL, path, &status)
	if !status.Favorite || status.CafeID != catalog.NyanNyanID {
		t.Fatalf("unexpected status: %+v", status)
	}

	var list []cafeResp
	getJSON(t, ts.URL, "/favorites", &list)
	if len(list) != 1 || list[0].ID != catalog.NyanNyanID {
		t.Fatalf("expected [nyan], got %+v", list)
	}

	postJSON(t, ts.URL, path+"/toggle", &status)
	if status.Favorite {
		t.Fatalf("expected not favorite after second toggle")
	}

	getJSON(t, ts.URL, "/favorites", &list)
	if len(list) != 0 {
		t.Fatalf("expected no favorites, got %+v", list)
	}

	st, _ := doReq(t, ts.URL, "POST", "/favorites/unknown/toggle", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 toggling unknown cafe, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/favorites/save", nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 save, got %d", st)
	}
}

func TestHTTP_Profile(t *testing.T) {
	ts := newServer(t, nil)

	// 1) Sin guardar => perfil vacío
	{
		var p map[string]any
		getJSON(t, ts.URL, "/profile", &p)
		if p["nickname"] != "" || p["age"].(float64) != 0 {
			t.Fatalf("expected empty profile, got %+v", p)
		}
	}

	// 2) Guardar válido
	{
		st, body := doReq(t, ts.URL, "PUT", "/profile", map[string]any{
			"full_name": "山田 花子",
			"nickname":  "はなこ",
			"email":     "hanako@example.com",
			"age":       28,
			"gender":    "女性",
			"region":    "大阪府",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 save profile, got %d body=%s", st, string(body))
		}

		var p map[string]any
		getJSON(t, ts.URL, "/profile", &p)
		if p["nickname"] != "はなこ" || p["region"] != "大阪府" || p["gender"] != "女性" {
			t.Fatalf("unexpected profile: %+v", p)
		}
	}

	// 3) Inválidos => 400 y no cambia lo guardado
	for name, payload := range map[string]map[string]any{
		"age":     {"age": 130},
		"gender":  {"gender": "unknown"},
		"region":  {"region": "カリフォルニア"},
		"unknown": {"nickname": "x", "call": "080"},
	} {
		st, _ := doReq(t, ts.URL, "PUT", "/profile", payload)
		if st != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, st)
		}
	}

	var p map[string]any
	getJSON(t, ts.URL, "/profile", &p)
	if p["nickname"] != "はなこ" {
		t.Fatalf("invalid input must not overwrite profile, got %+v", p)
	}
}

func TestHTTP_StatePersistsAcrossRouters(t *testing.T) {
	store := mem.NewKVStore()

	first := newServer(t, store)
	createPlan(t, first.URL, map[string]any{"date": "2099-01-01", "name": "わんわんカフェ"})
	var status favoriteStatusResp
	postJSON(t, first.URL, "/favorites/"+catalog.BuuBuuID+"/toggle", &status)

	// Un router nuevo sobre el mismo store ve lo guardado.
	second := newServer(t, store)

	var plans []planResp
	getJSON(t, second.URL, "/plans", &plans)
	if len(plans) != 1 || plans[0].Name != "わんわんカフェ" {
		t.Fatalf("expected persisted plan, got %+v", plans)
	}

	getJSON(t, second.URL, "/favorites/"+catalog.BuuBuuID, &status)
	if !status.Favorite {
		t.Fatalf("expected persisted favorite")
	}
}

func TestHTTP_CorruptSlotFallsBackToEmpty(t *testing.T) {
	store := mem.NewKVStore()
	legacy := `[{"id":"x","date":"2025年9月13日","name":"にゃんにゃんカフェ"}]`
	if err := store.Set(context.Background(), localstore.SlotPlans, []byte(legacy)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ts := newServer(t, store)

	var plans []planResp
	getJSON(t, ts.URL, "/plans", &plans)
	if len(plans) != 0 {
		t.Fatalf("expected empty plans, got %+v", plans)
	}

	var status map[string]string
	getJSON(t, ts.URL, "/store/status", &status)
	want := map[string]string{"plans": "corrupt", "profile": "missing", "favorites": "missing"}
	for k, v := range want {
		if status[k] != v {
			t.Fatalf("slot %s: expected %s, got %q (all=%v)", k, v, status[k], status)
		}
	}
}

func TestHTTP_MetricsAndSwagger(t *testing.T) {
	ts := newServer(t, nil)

	_, _ = doReq(t, ts.URL, "GET", "/cafes", nil)

	st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	for _, name := range []string{"pawscafe_searches_total", "pawscafe_http_responses_total", "pawscafe_store_loads_total"} {
		if !strings.Contains(string(body), name) {
			t.Fatalf("expected %s in metrics output", name)
		}
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/plans/upcoming") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func createPlan(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/plans", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create plan, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create plan: missing id body=%s", string(body))
	}
	return resp.ID
}

func getJSON(t *testing.T, baseURL, path string, out any) {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, nil)
	if st != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d body=%s", path, st, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("GET %s: decode: %v body=%s", path, err, string(body))
	}
}

func postJSON(t *testing.T, baseURL, path string, out any) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, nil)
	if st != http.StatusOK {
		t.Fatalf("POST %s: expected 200, got %d body=%s", path, st, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("POST %s: decode: %v body=%s", path, err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}
