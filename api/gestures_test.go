package api_test

import (
	"net/http"
	"testing"

	"gesturecraft/preset"
)

// saveVia stores phrase under the given fingers in the active preset.
func saveVia(t *testing.T, base, fingersJSON, phrase string) preset.SavedGesture {
	t.Helper()
	do(t, http.MethodPut, base+"/editor", `{"fingers":`+fingersJSON+`,"phrase":"`+phrase+`"}`, nil)
	var g preset.SavedGesture
	if resp := do(t, http.MethodPost, base+"/editor/save", "", &g); resp.StatusCode != http.StatusOK {
		t.Fatalf("save %s: expected 200, got %d", phrase, resp.StatusCode)
	}
	return g
}

func TestListGesturesFilterAndSearch(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)
	base := srv.URL + "/api/sessions/" + sid

	home := saveVia(t, base, `["thumb"]`, "Hello")
	do(t, http.MethodPost, base+"/presets", `{"name":"Work"}`, nil)
	saveVia(t, base, `["pinky"]`, "Meeting now")

	var all []preset.Entry
	do(t, http.MethodGet, base+"/gestures?preset=all", "", &all)
	if len(all) != 2 {
		t.Fatalf("expected 2 gestures, got %d", len(all))
	}

	var homeOnly []preset.Entry
	do(t, http.MethodGet, base+"/gestures?preset="+home.PresetID, "", &homeOnly)
	if len(homeOnly) != 1 || homeOnly[0].Phrase != "Hello" {
		t.Fatalf("unexpected preset filter result: %+v", homeOnly)
	}

	var found []preset.Entry
	do(t, http.MethodGet, base+"/gestures?q=PINKY", "", &found)
	if len(found) != 1 || found[0].Phrase != "Meeting now" {
		t.Fatalf("unexpected search result: %+v", found)
	}
}

func TestDeleteGestureIdempotent(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)
	base := srv.URL + "/api/sessions/" + sid

	g := saveVia(t, base, `["index","middle"]`, "Help me")
	url := base + "/presets/" + g.PresetID + "/gestures/" + string(g.GestureID)

	for i := 0; i < 2; i++ {
		if resp := do(t, http.MethodDelete, url, "", nil); resp.StatusCode != http.StatusNoContent {
			t.Fatalf("delete #%d: expected 204, got %d", i+1, resp.StatusCode)
		}
	}
	var all []preset.Entry
	do(t, http.MethodGet, base+"/gestures", "", &all)
	if len(all) != 0 {
		t.Fatalf("expected no gestures, got %+v", all)
	}

	resp := do(t, http.MethodDelete, base+"/presets/"+g.PresetID+"/gestures/bogus", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", resp.StatusCode)
	}
}

func TestStats(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()
	sid := login(t, srv)
	base := srv.URL + "/api/sessions/" + sid

	saveVia(t, base, `["thumb"]`, "a")
	do(t, http.MethodPost, base+"/presets", `{"name":"Work"}`, nil)
	saveVia(t, base, `["thumb"]`, "b")
	saveVia(t, base, `["ring"]`, "c")

	var st preset.Stats
	do(t, http.MethodGet, base+"/stats", "", &st)
	if st.Total != 3 || st.UniquePatterns != 2 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}
